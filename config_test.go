package jsonfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsYAML_EmptyInputReturnsDefault(t *testing.T) {
	opts, err := LoadOptionsYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default, opts)
}

func TestLoadOptionsYAML_PartialOverridesOnlyMentionedFields(t *testing.T) {
	opts, err := LoadOptionsYAML(strings.NewReader("maxTotalLineLength: 40\nindentSpaces: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 40, opts.MaxTotalLineLength)
	assert.Equal(t, 2, opts.IndentSpaces)
	// everything else keeps the default
	assert.Equal(t, Default.MaxInlineComplexity, opts.MaxInlineComplexity)
	assert.Equal(t, Default.TableCommaPlacement, opts.TableCommaPlacement)
}

func TestLoadOptionsYAML_InvalidYAMLErrors(t *testing.T) {
	_, err := LoadOptionsYAML(strings.NewReader("maxTotalLineLength: [unterminated\n"))
	require.Error(t, err)
}
