package jsonfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCommentLines_DiscardsBlankAndDedents(t *testing.T) {
	lines := normalizeCommentLines("first\n\n    second\n    third")
	require.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestNormalizeCommentLines_PreservesRelativeIndent(t *testing.T) {
	lines := normalizeCommentLines("a\n  one\n    two")
	require.Equal(t, []string{"a", "one", "  two"}, lines)
}

func TestCellWithComma_BeforePadding(t *testing.T) {
	pad := newPaddingTokens(Default)
	col := &TableColumn{Type: ColumnSimple}
	// "Bob  " (2 trailing fill spaces) -> comma spliced right after the value,
	// then pad.comma's own space, then the fill spaces that follow it.
	got := cellWithComma("Bob  ", col, CommaBeforePadding, pad)
	assert.Equal(t, "Bob,   ", got)
}

func TestCellWithComma_AfterPadding(t *testing.T) {
	pad := newPaddingTokens(Default)
	col := &TableColumn{Type: ColumnSimple}
	got := cellWithComma("Bob  ", col, CommaAfterPadding, pad)
	assert.Equal(t, "Bob  , ", got)
}

func TestCellWithComma_BeforePaddingExceptNumbers(t *testing.T) {
	pad := newPaddingTokens(Default)
	numCol := &TableColumn{Type: ColumnNumber}
	simpleCol := &TableColumn{Type: ColumnSimple}
	assert.Equal(t, "30 , ", cellWithComma("30 ", numCol, CommaBeforePaddingExceptNumbers, pad))
	assert.Equal(t, "Bob,  ", cellWithComma("Bob ", simpleCol, CommaBeforePaddingExceptNumbers, pad))
}

func TestRenderInlineValue_Scalars(t *testing.T) {
	pad := newPaddingTokens(Default)
	assert.Equal(t, "null", renderInlineValue(&Item{Kind: KindNull, Value: "null"}, pad))
	assert.Equal(t, "42", renderInlineValue(&Item{Kind: KindNumber, Value: "42"}, pad))
}

func TestEmitExpanded_EmptyContainerCollapsesToOneLine(t *testing.T) {
	pad := newPaddingTokens(Default)
	buf := newLineBuffer(pad.length)
	var stats Stats
	emitExpanded(&Item{Kind: KindArray}, 0, pad, Default, buf, &stats)
	assert.Equal(t, "[]", buf.String())
}

func TestNormalizeNumber_DegradesOnExponent(t *testing.T) {
	pad := newPaddingTokens(Default)
	_, ok := normalizeNumber("1e10", &numberColumnFormat{fracWidth: 3}, pad)
	assert.False(t, ok)
}

func TestNormalizeNumber_DegradesOnFalseZero(t *testing.T) {
	pad := newPaddingTokens(Default)
	_, ok := normalizeNumber("1e-400", &numberColumnFormat{fracWidth: 3}, pad)
	assert.False(t, ok) // exponent form already disqualifies, but guards the zero-but-not-textually-zero path too
}

func TestNormalizeNumber_FormatsToFixedDecimals(t *testing.T) {
	pad := newPaddingTokens(Default)
	out, ok := normalizeNumber("1.5", &numberColumnFormat{fracWidth: 3}, pad)
	require.True(t, ok)
	assert.Equal(t, "1.50", out)
}
