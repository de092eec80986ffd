package jsonfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMeasure(t *testing.T, src string) *Item {
	t.Helper()
	doc, err := Parse(src, Default)
	require.NoError(t, err)
	pad := newPaddingTokens(Default)
	for _, it := range doc.Items {
		measure(it, pad)
	}
	return doc.Value()
}

func TestInferColumnType_NumberVsStringIsMixed(t *testing.T) {
	item := mustMeasure(t, `[1,"a"]`)
	assert.Equal(t, ColumnMixed, inferColumnType(item.Rows()))
}

func TestInferColumnType_StringBoolShareSimpleBucket(t *testing.T) {
	item := mustMeasure(t, `["a",true,false]`)
	assert.Equal(t, ColumnSimple, inferColumnType(item.Rows()))
}

func TestInferColumnType_NullIsUniversal(t *testing.T) {
	item := mustMeasure(t, `[1,null,2]`)
	assert.Equal(t, ColumnNumber, inferColumnType(item.Rows()))
}

func TestInferColumnType_AllNullIsSimple(t *testing.T) {
	item := mustMeasure(t, `[null,null]`)
	assert.Equal(t, ColumnSimple, inferColumnType(item.Rows()))
}

func TestMeasureColumnWidth_ShorterThanNullAdjustment(t *testing.T) {
	item := mustMeasure(t, `[1,null,22]`)
	pad := newPaddingTokens(Default)
	col := &TableColumn{Type: ColumnNumber}
	measureColumnWidth(col, item.Rows(), pad)
	assert.True(t, col.ContainsNull)
	assert.Equal(t, pad.literals.null, col.Width)
	assert.Positive(t, col.ShorterThanNullAdjustment)
}

func TestBuildTableTemplate_ArrayOfObjects(t *testing.T) {
	item := mustMeasure(t, `[{"name":"Alice","age":30},{"name":"Bob","age":25}]`)
	tt, ok := buildTableTemplate(item, newPaddingTokens(Default))
	require.True(t, ok)
	require.Len(t, tt.Columns, 2)
	assert.Equal(t, "\"name\"", tt.Columns[0].Name)
	assert.Equal(t, ColumnSimple, tt.Columns[0].Type)
	assert.Equal(t, ColumnNumber, tt.Columns[1].Type)
}

func TestBuildTableTemplate_MixedValueBailsOut(t *testing.T) {
	item := mustMeasure(t, `[{"a":1},{"a":"x"}]`)
	_, ok := buildTableTemplate(item, newPaddingTokens(Default))
	assert.False(t, ok)
}

func TestBuildTableTemplate_MemberTableNeedsTwoRows(t *testing.T) {
	item := mustMeasure(t, `{"a":1}`)
	_, ok := buildTableTemplate(item, newPaddingTokens(Default))
	assert.False(t, ok)
}

func TestSplitNumber(t *testing.T) {
	pad := newPaddingTokens(Default)
	intW, fracW, expW := splitNumber("12.345e-6", pad)
	assert.Equal(t, 2, intW)
	assert.Equal(t, 4, fracW) // ".345"
	assert.Equal(t, 3, expW)  // "e-6"
}

func TestBuildTableTemplate_ObjectColumnGetsRecursiveChildTemplate(t *testing.T) {
	item := mustMeasure(t, `[{"id":1,"meta":{"x":1,"y":2,"z":3}},{"id":2,"meta":{"x":4,"y":5,"z":6}}]`)
	tt, ok := buildTableTemplate(item, newPaddingTokens(Default))
	require.True(t, ok)
	require.Len(t, tt.Columns, 2)
	metaCol := tt.Columns[1]
	require.NotNil(t, metaCol.Children)
	assert.Len(t, metaCol.Children.Columns, 3) // x, y, z pooled by name
	// width is derived from the child template, not the flat "{...}" text
	assert.Equal(t, compositeContainerWidth(metaCol.Children, false, newPaddingTokens(Default)), metaCol.Width)
}

func TestPruneAndRecompute_CollapsesChildTemplateBeforeDroppingColumn(t *testing.T) {
	pad := newPaddingTokens(Default)
	item := mustMeasure(t, `[{"id":1,"meta":{"x":1,"y":2,"z":3}},{"id":2,"meta":{"x":4,"y":5,"z":6}}]`)
	tt, ok := buildTableTemplate(item, pad)
	require.True(t, ok)
	require.Len(t, tt.Columns, 2)
	require.NotNil(t, tt.Columns[1].Children)

	ok = pruneAndRecompute(tt, pad)
	require.True(t, ok)
	require.Len(t, tt.Columns, 2) // first round only collapses the child template
	assert.Nil(t, tt.Columns[1].Children)
	assert.Positive(t, tt.Columns[1].Width) // remeasured from flat cell width, not left at zero

	ok = pruneAndRecompute(tt, pad)
	require.True(t, ok)
	assert.Less(t, len(tt.Columns), 2) // second round drops the column outright
}
