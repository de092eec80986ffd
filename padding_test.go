package jsonfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaddingTokens_DefaultPunctuation(t *testing.T) {
	pad := newPaddingTokens(Default)
	assert.Equal(t, ", ", pad.comma)
	assert.Equal(t, ": ", pad.colon)
	assert.Equal(t, "[ ", pad.arrayOpen[BracketSimple])
	assert.Equal(t, " ]", pad.arrayClose[BracketSimple])
	assert.Equal(t, "[]", pad.arrayOpen[BracketEmpty]+pad.arrayClose[BracketEmpty])
}

func TestNewPaddingTokens_TabIndent(t *testing.T) {
	opts := Default
	opts.UseTabIndent = true
	pad := newPaddingTokens(opts)
	assert.Equal(t, "\t", pad.indent(1))
	assert.Equal(t, "\t\t", pad.indent(2))
}

func TestPaddingTokensIndent_CachesProgressively(t *testing.T) {
	pad := newPaddingTokens(Default)
	assert.Equal(t, "", pad.indent(0))
	assert.Equal(t, "    ", pad.indent(1))
	assert.Equal(t, "        ", pad.indent(2))
}

func TestBracketPaddingFor(t *testing.T) {
	empty := &Item{Kind: KindArray}
	assert.Equal(t, BracketEmpty, bracketPaddingFor(empty))

	simple := &Item{Kind: KindArray, Children: []*Item{
		{Kind: KindNumber, Value: "1"},
		{Kind: KindNumber, Value: "2"},
	}}
	assert.Equal(t, BracketSimple, bracketPaddingFor(simple))

	nested := &Item{Kind: KindArray, Children: []*Item{
		{Kind: KindArray},
	}}
	assert.Equal(t, BracketComplex, bracketPaddingFor(nested))
}

func TestSpaces(t *testing.T) {
	assert.Equal(t, "", spaces(0))
	assert.Equal(t, "", spaces(-1))
	assert.Equal(t, "   ", spaces(3))
	assert.Equal(t, 12, len(spaces(12)))
}

func TestNewPaddingTokens_RejectsNothingOnDefault(t *testing.T) {
	pad := newPaddingTokens(Default)
	require.NotNil(t, pad)
	assert.Equal(t, " ", pad.dummyComma[:1])
	assert.Equal(t, pad.commaWidth, len(pad.dummyComma))
}
