package jsonfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodePointWidth_CountsRunesNotBytes(t *testing.T) {
	assert.Equal(t, 3, CodePointWidth("abc"))
	assert.Equal(t, 1, CodePointWidth("é")) // single rune, two UTF-8 bytes
}

func TestEastAsianWidth_DoublesWideRunes(t *testing.T) {
	assert.Equal(t, 3, EastAsianWidth("abc"))
	assert.Equal(t, 4, EastAsianWidth("你好")) // each CJK rune is double-width
}

func TestMeasureLiterals(t *testing.T) {
	lit := measureLiterals(CodePointWidth)
	assert.Equal(t, 4, lit.null)
	assert.Equal(t, 4, lit.true_)
	assert.Equal(t, 5, lit.false_)
}
