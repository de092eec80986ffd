package jsonfmt

import "strings"

// ColumnType classifies what a table column's cells hold, driving both its
// alignment and whether it is eligible for the Table layout at all
// (spec §4.E).
type ColumnType int

const (
	ColumnUnknown ColumnType = iota
	ColumnSimple
	ColumnNumber
	ColumnArray
	ColumnObject
	ColumnMixed
)

// TableColumn is one column of a TableTemplate: a name (for object-row
// tables) or index (for array-row tables), its inferred type, and the
// measured width its cells need. The alignment math below is adapted from
// the original column-width and cell-alignment routines used to lay out
// bordered tables, generalized to JSON's value types and to decimal-point
// alignment for numbers.
type TableColumn struct {
	Name  string // property name, for an object-row table; "" for array-row
	Index int    // position, for an array-row table
	Type  ColumnType

	NameWidth int
	Width     int // measured cell width, after number-alignment accounting

	ContainsNull              bool
	ShorterThanNullAdjustment int // spec §4.E: pad non-null rows this much more when null is the widest cell

	// Children is the recursive sub-template for an Array/Object column,
	// built by pooling every cell's own rows (positionally for Array,
	// by property name for Object). Width is then derived from Children's
	// own column widths rather than from the cells' flat inline length.
	// Nil when the column's cells aren't uniform enough to tabulate one
	// level deeper, or pruning has since collapsed it.
	Children *TableTemplate

	numFmt *numberColumnFormat
}

// TableTemplate is a measured, column-major view over a container's rows,
// ready for the layout selector to either commit to (Table layout) or
// discard in favor of Expanded.
type TableTemplate struct {
	Columns    []*TableColumn
	Rows       [][]*Item // Rows[r][c] is nil when row r has no cell for column c
	NameColumn bool      // true when this is an object's name+value table
	Complexity int
}

type numberColumnFormat struct {
	intWidth  int
	fracWidth int // includes the decimal point when nonzero
	expWidth  int
}

// buildTableTemplate attempts to build a table view of item's rows. It
// returns ok=false when the rows are not uniform enough to tabulate, in
// which case the layout selector falls back to Expanded.
func buildTableTemplate(item *Item, pad *paddingTokens) (*TableTemplate, bool) {
	if item.Kind == KindObject {
		return buildMemberTable(item, pad)
	}
	if item.Kind == KindArray {
		return buildArrayTable(item, pad)
	}
	return nil, false
}

// buildMemberTable builds the object case: one row per member, a Name
// column holding the property names and a single Value column holding the
// (type-inferred) member values.
func buildMemberTable(item *Item, pad *paddingTokens) (*TableTemplate, bool) {
	rows := item.Rows()
	if len(rows) < 2 {
		return nil, false
	}

	valType := inferColumnType(rows)
	if valType == ColumnMixed {
		return nil, false
	}

	nameCol := &TableColumn{Name: "(name)", Type: ColumnSimple}
	valCol := &TableColumn{Name: "(value)", Type: valType}
	for _, r := range rows {
		if w := pad.length(r.Name); w > nameCol.NameWidth {
			nameCol.NameWidth = w
		}
	}
	measureColumnWidth(valCol, rows, pad)

	tt := &TableTemplate{
		Columns:    []*TableColumn{nameCol, valCol},
		NameColumn: true,
	}
	tt.Rows = make([][]*Item, len(rows))
	for i, r := range rows {
		tt.Rows[i] = []*Item{r, r}
	}
	tt.Complexity = tableComplexity(tt)
	return tt, true
}

// buildArrayTable builds the array case: rows that are all uniform objects
// (columns keyed by property name, union order) or all uniform arrays
// (columns keyed by position), or all uniform scalars (a single unnamed
// column).
func buildArrayTable(item *Item, pad *paddingTokens) (*TableTemplate, bool) {
	rows := item.Rows()
	if len(rows) < 2 {
		return nil, false
	}

	allObjects, allArrays, allScalar := true, true, true
	for _, r := range rows {
		switch {
		case r.Kind == KindObject:
			allArrays, allScalar = false, false
		case r.Kind == KindArray:
			allObjects, allScalar = false, false
		case r.Kind.IsScalar():
			allObjects, allArrays = false, false
		default:
			return nil, false
		}
	}

	switch {
	case allObjects:
		return buildObjectRowsTable(rows, pad)
	case allArrays:
		return buildArrayRowsTable(rows, pad)
	case allScalar:
		return buildScalarRowsTable(rows, pad)
	default:
		return nil, false
	}
}

func buildObjectRowsTable(rows []*Item, pad *paddingTokens) (*TableTemplate, bool) {
	var order []string
	seen := map[string]int{}
	for _, row := range rows {
		for _, member := range row.Rows() {
			if _, ok := seen[member.Name]; !ok {
				seen[member.Name] = len(order)
				order = append(order, member.Name)
			}
		}
	}
	if len(order) == 0 {
		return nil, false
	}

	cols := make([]*TableColumn, len(order))
	cells := make([][]*Item, len(rows))
	for i := range cells {
		cells[i] = make([]*Item, len(order))
	}
	for r, row := range rows {
		for _, member := range row.Rows() {
			cells[r][seen[member.Name]] = member
		}
	}

	for c, name := range order {
		colValues := make([]*Item, len(rows))
		for r := range rows {
			colValues[r] = cells[r][c]
		}
		typ := inferColumnType(colValues)
		if typ == ColumnMixed {
			return nil, false
		}
		col := &TableColumn{Name: name, Type: typ, NameWidth: pad.length(name)}
		measureColumnWidth(col, colValues, pad)
		cols[c] = col
	}

	tt := &TableTemplate{Columns: cols, Rows: cells}
	tt.Complexity = tableComplexity(tt)
	return tt, true
}

func buildArrayRowsTable(rows []*Item, pad *paddingTokens) (*TableTemplate, bool) {
	width := 0
	for _, row := range rows {
		if n := len(row.Rows()); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, false
	}

	cols := make([]*TableColumn, width)
	cells := make([][]*Item, len(rows))
	for r, row := range rows {
		cells[r] = make([]*Item, width)
		for c, v := range row.Rows() {
			cells[r][c] = v
		}
	}

	for c := 0; c < width; c++ {
		colValues := make([]*Item, len(rows))
		for r := range rows {
			colValues[r] = cells[r][c]
		}
		typ := inferColumnType(colValues)
		if typ == ColumnMixed {
			return nil, false
		}
		col := &TableColumn{Index: c, Type: typ}
		measureColumnWidth(col, colValues, pad)
		cols[c] = col
	}

	tt := &TableTemplate{Columns: cols, Rows: cells}
	tt.Complexity = tableComplexity(tt)
	return tt, true
}

func buildScalarRowsTable(rows []*Item, pad *paddingTokens) (*TableTemplate, bool) {
	typ := inferColumnType(rows)
	if typ == ColumnMixed {
		return nil, false
	}
	col := &TableColumn{Type: typ}
	measureColumnWidth(col, rows, pad)

	cells := make([][]*Item, len(rows))
	for r, v := range rows {
		cells[r] = []*Item{v}
	}
	tt := &TableTemplate{Columns: []*TableColumn{col}, Rows: cells}
	tt.Complexity = tableComplexity(tt)
	return tt, true
}

// rowType buckets a Kind into the column type it would promote an Unknown
// column to: True/False/String all count as the single Simple bucket, so a
// column only turns Mixed when it sees two different *buckets*, not merely
// two different scalar kinds.
func rowType(k Kind) ColumnType {
	switch k {
	case KindNumber:
		return ColumnNumber
	case KindArray:
		return ColumnArray
	case KindObject:
		return ColumnObject
	default:
		return ColumnSimple
	}
}

// inferColumnType classifies a column from the items occupying it, per
// spec §4.E: starting from Unknown, each row promotes the type to its own
// bucket; a mismatch (other than Null, which is universal) sets Mixed. nil
// entries (a row that has no cell in this column) are ignored entirely,
// not treated as Null.
func inferColumnType(items []*Item) ColumnType {
	typ := ColumnUnknown
	sawNull := false
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.Kind == KindNull {
			sawNull = true
			continue
		}
		rt := rowType(it.Kind)
		switch {
		case typ == ColumnUnknown:
			typ = rt
		case typ != rt:
			return ColumnMixed
		}
	}
	if typ == ColumnUnknown {
		if sawNull {
			return ColumnSimple
		}
		return ColumnUnknown
	}
	return typ
}

func columnContainsNull(items []*Item) bool {
	for _, it := range items {
		if it != nil && it.Kind == KindNull {
			return true
		}
	}
	return false
}

func measureColumnWidth(col *TableColumn, items []*Item, pad *paddingTokens) {
	col.ContainsNull = columnContainsNull(items)

	switch col.Type {
	case ColumnNumber:
		fmtw := &numberColumnFormat{}
		for _, it := range items {
			if it == nil || it.Kind != KindNumber {
				continue
			}
			intW, fracW, expW := splitNumber(it.Value, pad)
			if intW > fmtw.intWidth {
				fmtw.intWidth = intW
			}
			if fracW > fmtw.fracWidth {
				fmtw.fracWidth = fracW
			}
			if expW > fmtw.expWidth {
				fmtw.expWidth = expW
			}
		}
		col.numFmt = fmtw
		col.Width = fmtw.intWidth + fmtw.fracWidth + fmtw.expWidth
	case ColumnArray, ColumnObject:
		kind := KindArray
		if col.Type == ColumnObject {
			kind = KindObject
		}
		if child, ok := buildChildColumnTemplate(items, kind, pad); ok {
			col.Children = child
			col.Width = compositeContainerWidth(child, kind == KindArray, pad)
		} else {
			col.Children = nil
			flatColumnWidth(col, items)
		}
	default:
		flatColumnWidth(col, items)
	}

	// Short-value-vs-null adjustment (spec §4.E): a null cell in a
	// container/number column may be wider than every real value, so the
	// emitter needs to know how much extra padding the non-null rows want.
	if col.ContainsNull && pad.literals.null > col.Width {
		col.ShorterThanNullAdjustment = pad.literals.null - col.Width
		col.Width = pad.literals.null
	} else {
		col.ShorterThanNullAdjustment = 0
	}
}

// flatColumnWidth measures col from each cell's own already-computed inline
// length, the fallback used for Simple columns and for Array/Object columns
// whose cells aren't uniform enough to build a recursive child template.
func flatColumnWidth(col *TableColumn, items []*Item) {
	col.Width = 0
	for _, it := range items {
		if it == nil || it.Kind == KindNull {
			continue
		}
		if w := it.ValueLength; w > col.Width {
			col.Width = w
		}
	}
}

// buildChildColumnTemplate pools an Array/Object column's own cells — every
// row's children, indexed positionally for Array or by property name for
// Object — into one level deeper TableTemplate, the "child templates (for
// Array/Object columns)" of spec §4.E. Cells of the wrong kind (e.g. a null
// in an otherwise-uniform column) are skipped rather than pooled; fewer than
// two uniform cells isn't enough to tabulate.
func buildChildColumnTemplate(items []*Item, kind Kind, pad *paddingTokens) (*TableTemplate, bool) {
	rows := make([]*Item, 0, len(items))
	for _, it := range items {
		if it == nil || it.Kind != kind {
			continue
		}
		rows = append(rows, it)
	}
	if len(rows) < 2 {
		return nil, false
	}
	if kind == KindObject {
		return buildObjectRowsTable(rows, pad)
	}
	return buildArrayRowsTable(rows, pad)
}

// compositeContainerWidth estimates the width one row of this column would
// need if rendered inline through its child template: brackets plus each
// child column's own width, joined by commas (spec §4.E's
// compositeValueLength).
func compositeContainerWidth(child *TableTemplate, isArray bool, pad *paddingTokens) int {
	bp := BracketSimple
	for _, c := range child.Columns {
		if c.Type == ColumnArray || c.Type == ColumnObject {
			bp = BracketComplex
			break
		}
	}
	var open, close string
	if isArray {
		open, close = pad.arrayOpen[bp], pad.arrayClose[bp]
	} else {
		open, close = pad.objectOpen[bp], pad.objectClose[bp]
	}
	width := pad.length(open) + pad.length(close)
	for i, c := range child.Columns {
		if i > 0 {
			width += pad.commaWidth
		}
		if !isArray {
			width += c.NameWidth + pad.colonWidth
		}
		width += c.Width
	}
	return width
}

// splitNumber measures the integer, fractional (dot included), and
// exponent portions of a JSON number's source text, used by
// AlignNumberDecimal to line up decimal points across a column.
func splitNumber(text string, pad *paddingTokens) (intW, fracW, expW int) {
	dot := strings.IndexByte(text, '.')
	exp := strings.IndexAny(text, "eE")

	intEnd := len(text)
	if dot >= 0 {
		intEnd = dot
	} else if exp >= 0 {
		intEnd = exp
	}
	intW = pad.length(text[:intEnd])

	if dot >= 0 {
		fracEnd := len(text)
		if exp >= 0 {
			fracEnd = exp
		}
		fracW = pad.length(text[dot:fracEnd])
	}
	if exp >= 0 {
		expW = pad.length(text[exp:])
	}
	return
}

func tableComplexity(tt *TableTemplate) int {
	max := 0
	for _, row := range tt.Rows {
		for _, cell := range row {
			if cell != nil && cell.Complexity > max {
				max = cell.Complexity
			}
		}
	}
	return 1 + max
}

// tryToFit reports whether tt, rendered at the given indent level, fits
// MaxTableRowComplexity and MaxTotalLineLength. It is the Table-layout
// admission test the layout selector runs once, after its complexity-driven
// pruneAndRecompute loop; a table that is still too wide is not pruned
// further, and the selector falls back to Expanded.
func tryToFit(tt *TableTemplate, opts Options, indent int, pad *paddingTokens) bool {
	if tt.Complexity-1 > opts.MaxTableRowComplexity {
		return false
	}
	rowWidth := pad.length(pad.indent(indent))
	if tt.NameColumn {
		rowWidth += tt.Columns[0].NameWidth + pad.colonWidth
		rowWidth += tt.Columns[1].Width
	} else {
		for _, col := range tt.Columns {
			rowWidth += col.Width + pad.commaWidth
		}
	}
	return rowWidth <= opts.MaxTotalLineLength
}

// pruneAndRecompute narrows tt for another sizing attempt (spec §4.E's
// pruning). It prefers collapsing the widest column that still has a
// recursive child template — falling back to that column's own flat cell
// width, same as a column whose cells were never uniform enough to
// tabulate one level deeper — over discarding a whole column outright.
// Only once no column has a child template left to collapse does it drop
// the widest Array/Object column entirely, the coarsest fallback.
// Recomputes tt.Complexity afterward so the caller's retry loop actually
// converges.
func pruneAndRecompute(tt *TableTemplate, pad *paddingTokens) bool {
	if tt.NameColumn {
		return false
	}

	if widest := widestColumnWithChildren(tt.Columns); widest >= 0 {
		collapseColumn(tt.Columns[widest], tt.Rows, widest, pad)
		tt.Complexity = tableComplexity(tt)
		return true
	}

	worst := -1
	worstWidth := 0
	for i, col := range tt.Columns {
		if col.Type != ColumnArray && col.Type != ColumnObject {
			continue
		}
		if col.Width > worstWidth {
			worstWidth = col.Width
			worst = i
		}
	}
	if worst < 0 {
		return false
	}

	tt.Columns = append(tt.Columns[:worst], tt.Columns[worst+1:]...)
	for r := range tt.Rows {
		tt.Rows[r] = append(tt.Rows[r][:worst], tt.Rows[r][worst+1:]...)
	}
	if len(tt.Columns) == 0 {
		return false
	}
	tt.Complexity = tableComplexity(tt)
	return true
}

func widestColumnWithChildren(cols []*TableColumn) int {
	widest := -1
	widestWidth := 0
	for i, col := range cols {
		if col.Children == nil {
			continue
		}
		if col.Width > widestWidth {
			widestWidth = col.Width
			widest = i
		}
	}
	return widest
}

// collapseColumn drops col's recursive child template and remeasures it
// from its own cells' flat inline width — the shallower degrade
// pruneAndRecompute tries before ever deleting the column.
func collapseColumn(col *TableColumn, rows [][]*Item, colIdx int, pad *paddingTokens) {
	col.Children = nil
	items := make([]*Item, len(rows))
	for r, row := range rows {
		items[r] = row[colIdx]
	}
	col.ContainsNull = columnContainsNull(items)
	flatColumnWidth(col, items)
	if col.ContainsNull && pad.literals.null > col.Width {
		col.ShorterThanNullAdjustment = pad.literals.null - col.Width
		col.Width = pad.literals.null
	} else {
		col.ShorterThanNullAdjustment = 0
	}
}
