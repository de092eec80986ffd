package jsonfmt

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	s, err := newScanner(src)
	require.NoError(t, err)
	var toks []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		toks = append(toks, tok)
	}
	return toks
}

func TestScanner_Punctuation(t *testing.T) {
	toks := scanAll(t, `{}[],:`)
	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenBeginObject, TokenEndObject, TokenBeginArray, TokenEndArray,
		TokenComma, TokenColon,
	}, kinds)
}

func TestScanner_Keywords(t *testing.T) {
	toks := scanAll(t, `true false null`)
	require.Len(t, toks, 3)
	assert.Equal(t, TokenTrue, toks[0].Kind)
	assert.Equal(t, TokenFalse, toks[1].Kind)
	assert.Equal(t, TokenNull, toks[2].Kind)
}

func TestScanner_KeywordTypo(t *testing.T) {
	_, err := newScanner("")
	require.NoError(t, err)
	s, _ := newScanner("tru ")
	_, err = s.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyword)
}

func TestScanner_NumberLeadingZeroForbidsMoreDigits(t *testing.T) {
	toks := scanAll(t, `0`)
	require.Len(t, toks, 1)
	assert.Equal(t, "0", toks[0].Text)

	s, _ := newScanner(`01`)
	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "0", tok.Text) // scanner stops after the lone zero

	tok2, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenNumber, tok2.Kind)
	assert.Equal(t, "1", tok2.Text)
}

func TestScanner_NumberFull(t *testing.T) {
	toks := scanAll(t, `-12.345e-6`)
	require.Len(t, toks, 1)
	assert.Equal(t, "-12.345e-6", toks[0].Text)
}

func TestScanner_NumberMissingExponentDigitErrors(t *testing.T) {
	s, _ := newScanner(`1e`)
	_, err := s.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestScanner_StringWithEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nbA"`)
	require.Len(t, toks, 1)
	assert.Equal(t, `"a\nbA"`, toks[0].Text)
}

func TestScanner_StringControlCharRejected(t *testing.T) {
	s, _ := newScanner("\"a\tb\"")
	_, err := s.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestScanner_StringUnterminated(t *testing.T) {
	s, _ := newScanner(`"abc`)
	_, err := s.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidString)
}

func TestScanner_LineComment(t *testing.T) {
	toks := scanAll(t, "// hi\n1")
	require.Len(t, toks, 2)
	assert.Equal(t, TokenLineComment, toks[0].Kind)
	assert.Equal(t, "// hi", toks[0].Text)
	assert.Equal(t, TokenNumber, toks[1].Kind)
}

func TestScanner_BlockCommentMultiline(t *testing.T) {
	toks := scanAll(t, "/* a\nb */1")
	require.Len(t, toks, 2)
	assert.Equal(t, "/* a\nb */", toks[0].Text)
}

func TestScanner_BlockCommentUnterminated(t *testing.T) {
	s, _ := newScanner(`/* never closed`)
	_, err := s.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestScanner_BlankLineToken(t *testing.T) {
	toks := scanAll(t, "1\n\n2")
	require.Len(t, toks, 3)
	assert.Equal(t, TokenNumber, toks[0].Kind)
	assert.Equal(t, TokenBlankLine, toks[1].Kind)
	assert.Equal(t, TokenNumber, toks[2].Kind)
}
