package jsonfmt

import (
	"math"
	"strconv"
	"strings"
)

// Stats reports the layout decisions a formatting pass made, for callers
// that want to log or assert on them (spec §3.5's instrumented entry
// point).
type Stats struct {
	Inline            int
	CompactMultiline  int
	Table             int
	Expanded          int
	CommentsPreserved int
	PruneRounds       int
}

func emitStandaloneContent(item *Item, buf *lineBuffer, stats *Stats) {
	if item.Kind == KindBlankLine {
		return
	}
	buf.add(item.Value)
	stats.CommentsPreserved++
}

func availableWidth(opts Options, pad *paddingTokens, depth int) int {
	w := opts.MaxTotalLineLength - pad.length(opts.PrefixString) - pad.length(pad.indent(depth))
	if w < 0 {
		return 0
	}
	return w
}

// chooseAndEmitLayout is the per-container decision point: it tries
// {inline, compact-multiline, table, expanded} in order and commits to the
// first that fits, per spec §4.F. Scalars are written directly.
func chooseAndEmitLayout(item *Item, depth int, pad *paddingTokens, opts Options, buf *lineBuffer, stats *Stats) error {
	if !item.Kind.IsContainer() {
		buf.add(renderInlineValue(item, pad))
		return nil
	}

	forcedExpanded := opts.AlwaysExpandDepth >= 0 && depth <= opts.AlwaysExpandDepth

	if !forcedExpanded && !item.RequiresMultipleLines {
		if item.Complexity <= opts.MaxInlineComplexity && item.MinimumTotalLength <= availableWidth(opts, pad, depth) {
			buf.add(renderInlineValue(item, pad))
			stats.Inline++
			return nil
		}

		if item.Kind == KindArray {
			rows := item.Rows()
			if len(rows) >= opts.MinCompactArrayItems && item.Complexity <= opts.MaxCompactArrayComplex {
				emitCompactMultiline(item, depth, pad, opts, buf, stats)
				return nil
			}
		}

		if tt, ok := buildTableTemplate(item, pad); ok {
			for tt.Complexity-1 > opts.MaxTableRowComplexity {
				if !pruneAndRecompute(tt, pad) {
					tt = nil
					break
				}
				stats.PruneRounds++
			}
			if tt != nil && tryToFit(tt, opts, depth, pad) {
				emitTable(item, tt, depth, pad, opts, buf, stats)
				stats.Table++
				return nil
			}
		}
	}

	emitExpanded(item, depth, pad, opts, buf, stats)
	stats.Expanded++
	return nil
}

// renderInlineValue renders item's literal/container value on a single
// line, ignoring any name/prefix/middle/postfix slots — the form a table
// cell or a compact-multiline element needs. Safe to call only on items
// whose RequiresMultipleLines is false.
func renderInlineValue(item *Item, pad *paddingTokens) string {
	var sb strings.Builder
	writeValue(&sb, item, pad)
	return sb.String()
}

// renderInlineMember renders item's full row form (prefix comment, name,
// middle comment, value, postfix comment) on one line, as used by the
// Inline layout for the item it owns and by CompactMultiline for each of
// its scalar elements.
func renderInlineMember(item *Item, pad *paddingTokens) string {
	var sb strings.Builder
	if item.PrefixComment != "" {
		sb.WriteString(item.PrefixComment)
		sb.WriteString(pad.commentPad)
	}
	if item.Name != "" {
		sb.WriteString(item.Name)
		sb.WriteString(pad.colon)
	}
	if item.MiddleComment != "" {
		sb.WriteString(item.MiddleComment)
		sb.WriteString(pad.commentPad)
	}
	writeValue(&sb, item, pad)
	if item.PostfixComment != "" {
		sb.WriteString(pad.commentPad)
		sb.WriteString(item.PostfixComment)
	}
	return sb.String()
}

func writeValue(sb *strings.Builder, item *Item, pad *paddingTokens) {
	switch item.Kind {
	case KindNull, KindTrue, KindFalse, KindString, KindNumber:
		sb.WriteString(item.Value)
	case KindArray, KindObject:
		bp := bracketPaddingFor(item)
		var open, close string
		if item.Kind == KindArray {
			open, close = pad.arrayOpen[bp], pad.arrayClose[bp]
		} else {
			open, close = pad.objectOpen[bp], pad.objectClose[bp]
		}
		sb.WriteString(open)
		rows := item.Rows()
		for i, row := range rows {
			if i > 0 {
				sb.WriteString(pad.comma)
			}
			sb.WriteString(renderInlineMember(row, pad))
		}
		sb.WriteString(close)
	}
}

// emitRowTerminator writes a row's trailing comma and postfix comment,
// respecting the rule that a `//` postfix forces the comma to precede it
// (spec §4.F, "Trailing commas and line comments").
func emitRowTerminator(rowItem *Item, isLast bool, pad *paddingTokens, buf *lineBuffer) {
	switch {
	case rowItem.PostfixComment == "":
		if !isLast {
			buf.add(pad.comma)
		}
	case rowItem.IsPostCommentLineStyle:
		if !isLast {
			buf.add(pad.comma)
		}
		buf.add(pad.commentPad, rowItem.PostfixComment)
	default:
		buf.add(pad.commentPad, rowItem.PostfixComment)
		if !isLast {
			buf.add(pad.comma)
		}
	}
}

func lastRowChildIndex(children []*Item) int {
	last := -1
	for i, c := range children {
		if !c.Kind.IsStandalone() {
			last = i
		}
	}
	return last
}

// emitExpanded is the fallback layout: one child per line at depth+1,
// with object-name alignment applied when it is affordable (spec §4.F
// point 4).
func emitExpanded(item *Item, depth int, pad *paddingTokens, opts Options, buf *lineBuffer, stats *Stats) {
	bp := bracketPaddingFor(item)
	var open, close string
	if item.Kind == KindArray {
		open, close = pad.arrayOpen[bp], pad.arrayClose[bp]
	} else {
		open, close = pad.objectOpen[bp], pad.objectClose[bp]
	}

	rows := item.Rows()
	if len(item.Children) == 0 {
		buf.add(open, close)
		return
	}

	buf.add(open)
	buf.endLine(pad.eol)
	childDepth := depth + 1
	last := lastRowChildIndex(item.Children)

	nameWidth := -1
	if item.Kind == KindObject {
		nameWidth = objectNameAlignWidth(rows, opts, pad, childDepth)
	}

	for i, c := range item.Children {
		buf.add(opts.PrefixString, pad.indent(childDepth))
		if c.Kind.IsStandalone() {
			emitStandaloneContent(c, buf, stats)
			buf.endLine(pad.eol)
			continue
		}
		emitMemberExpanded(c, childDepth, nameWidth, pad, opts, buf, stats)
		emitRowTerminator(c, i == last, pad, buf)
		buf.endLine(pad.eol)
	}

	buf.add(opts.PrefixString, pad.indent(depth))
	buf.add(close)
}

// objectNameAlignWidth returns the name column width every member should
// be padded to, or -1 when alignment is not worth applying (spread beyond
// maxPropNamePadding, a multiline middle comment present, or the padded
// line would overflow the width budget).
func objectNameAlignWidth(rows []*Item, opts Options, pad *paddingTokens, depth int) int {
	if len(rows) == 0 {
		return -1
	}
	minName, maxName := rows[0].NameLength, rows[0].NameLength
	for _, r := range rows {
		if r.MiddleCommentHasNewline {
			return -1
		}
		if r.NameLength < minName {
			minName = r.NameLength
		}
		if r.NameLength > maxName {
			maxName = r.NameLength
		}
	}
	if maxName-minName > opts.MaxPropNamePadding {
		return -1
	}
	avail := availableWidth(opts, pad, depth)
	for _, r := range rows {
		padded := r.MinimumTotalLength - r.NameLength + maxName
		if padded > avail {
			return -1
		}
	}
	return maxName
}

// emitMemberExpanded writes one expanded row's prefix comment, name
// (optionally aligned to nameWidth), middle comment (breaking the line if
// it has an embedded newline), and value — everything but the trailing
// comma/postfix comment, which the caller writes via emitRowTerminator.
func emitMemberExpanded(item *Item, depth int, nameWidth int, pad *paddingTokens, opts Options, buf *lineBuffer, stats *Stats) {
	if item.PrefixComment != "" {
		buf.add(item.PrefixComment, pad.commentPad)
	}

	if item.Name != "" {
		if nameWidth >= 0 {
			gap := nameWidth - item.NameLength
			if gap < 0 {
				gap = 0
			}
			if opts.ColonBeforePropNamePadding {
				buf.add(item.Name, pad.colon, spaces(gap))
			} else {
				buf.add(item.Name, spaces(gap), pad.colon)
			}
		} else {
			buf.add(item.Name, pad.colon)
		}
	}

	if item.MiddleComment != "" {
		if item.MiddleCommentHasNewline {
			buf.endLine(pad.eol)
			for _, line := range normalizeCommentLines(item.MiddleComment) {
				buf.add(opts.PrefixString, pad.indent(depth+1), line)
				buf.endLine(pad.eol)
			}
			buf.add(opts.PrefixString, pad.indent(depth+1))
			depth++
		} else {
			buf.add(item.MiddleComment, pad.commentPad)
		}
	}

	chooseAndEmitLayout(item, depth, pad, opts, buf, stats)
}

// normalizeCommentLines splits a joined middle comment on "\n", discards
// blank lines, and dedents continuation lines to the shortest common
// leading whitespace so ASCII-art alignment inside the comment survives
// the move to the new column (spec §4.F, "Middle-comment line break").
func normalizeCommentLines(comment string) []string {
	raw := strings.Split(comment, "\n")
	var lines []string
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return lines
	}
	lines[0] = strings.TrimSpace(lines[0])

	minIndent := -1
	for _, l := range lines[1:] {
		n := leadingWhitespace(l)
		if minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= minIndent {
				lines[i] = lines[i][minIndent:]
			} else {
				lines[i] = strings.TrimLeft(lines[i], " \t")
			}
		}
	}
	return lines
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// emitCompactMultiline packs an array's elements several per line, sharing
// one column width when the array's elements form a non-Mixed, non-Unknown
// column (so numbers can still be decimal-aligned), or packed
// greedily by each element's own rendered width otherwise.
func emitCompactMultiline(item *Item, depth int, pad *paddingTokens, opts Options, buf *lineBuffer, stats *Stats) {
	rows := item.Rows()
	bp := bracketPaddingFor(item)

	var col *TableColumn
	if tt, ok := buildScalarRowsTable(rows, pad); ok {
		c := tt.Columns[0]
		if c.Type != ColumnMixed && c.Type != ColumnUnknown {
			col = c
		}
	}

	texts := make([]string, len(rows))
	widths := make([]int, len(rows))
	for i, r := range rows {
		if col != nil {
			texts[i] = formatCell(r, col, opts.NumberListAlignment, pad)
		} else {
			texts[i] = renderInlineMember(r, pad)
		}
		widths[i] = pad.length(texts[i])
	}

	buf.add(pad.arrayOpen[bp])
	buf.endLine(pad.eol)

	childDepth := depth + 1
	avail := availableWidth(opts, pad, childDepth)
	curWidth := 0
	lineOpen := false

	for i := range rows {
		isLast := i == len(rows)-1
		needed := widths[i] + pad.commaWidth
		if !lineOpen {
			buf.add(opts.PrefixString, pad.indent(childDepth))
			curWidth = pad.length(pad.indent(childDepth))
			lineOpen = true
		} else if curWidth+needed > avail {
			buf.endLine(pad.eol)
			buf.add(opts.PrefixString, pad.indent(childDepth))
			curWidth = pad.length(pad.indent(childDepth))
		}
		buf.add(texts[i])
		curWidth += widths[i]
		if !isLast {
			buf.add(pad.comma)
			curWidth += pad.commaWidth
		}
	}
	buf.endLine(pad.eol)
	buf.add(opts.PrefixString, pad.indent(depth))
	buf.add(pad.arrayClose[bp])
	stats.CompactMultiline++
}

// emitTable writes item's rows using the already-measured TableTemplate:
// every row shares the same column offsets, padded per column type.
func emitTable(item *Item, tt *TableTemplate, depth int, pad *paddingTokens, opts Options, buf *lineBuffer, stats *Stats) {
	bp := bracketPaddingFor(item)
	var open, close string
	if item.Kind == KindArray {
		open, close = pad.arrayOpen[bp], pad.arrayClose[bp]
	} else {
		open, close = pad.objectOpen[bp], pad.objectClose[bp]
	}

	buf.add(open)
	buf.endLine(pad.eol)
	childDepth := depth + 1
	last := lastRowChildIndex(item.Children)

	rowIdx := 0
	for i, c := range item.Children {
		buf.add(opts.PrefixString, pad.indent(childDepth))
		if c.Kind.IsStandalone() {
			emitStandaloneContent(c, buf, stats)
			buf.endLine(pad.eol)
			continue
		}
		emitTableRow(tt, rowIdx, c, i == last, opts, pad, buf)
		buf.endLine(pad.eol)
		rowIdx++
	}

	buf.add(opts.PrefixString, pad.indent(depth))
	buf.add(close)
}

func emitTableRow(tt *TableTemplate, rowIdx int, rowItem *Item, isLast bool, opts Options, pad *paddingTokens, buf *lineBuffer) {
	cells := tt.Rows[rowIdx]

	// The row's own prefix and postfix comments are written here and by
	// emitRowTerminator, so a cell that is the row item itself is formatted
	// without them.
	cellFor := func(it *Item) *Item {
		if it != rowItem || !rowItem.HasComment() {
			return it
		}
		bare := *it
		bare.PrefixComment, bare.PostfixComment = "", ""
		return &bare
	}

	if rowItem.PrefixComment != "" {
		buf.add(rowItem.PrefixComment, pad.commentPad)
	}

	if tt.NameColumn {
		nameCol := tt.Columns[0]
		gap := nameCol.NameWidth - pad.length(rowItem.Name)
		if gap < 0 {
			gap = 0
		}
		buf.add(rowItem.Name, spaces(gap), pad.colon)
		if rowItem.MiddleComment != "" {
			buf.add(rowItem.MiddleComment, pad.commentPad)
		}
		buf.add(formatCell(cellFor(cells[1]), tt.Columns[1], opts.NumberListAlignment, pad))
	} else {
		for c, col := range tt.Columns {
			text := formatCell(cellFor(cells[c]), col, opts.NumberListAlignment, pad)
			if c < len(tt.Columns)-1 {
				text = cellWithComma(text, col, opts.TableCommaPlacement, pad)
			}
			buf.add(text)
		}
	}

	emitRowTerminator(rowItem, isLast, pad, buf)
}

// cellWithComma splices an inter-column comma into a padded cell's text
// per tableCommaPlacement: BeforePadding puts it right after the value
// (ahead of fill spaces), AfterPadding puts it after the column's full
// width, and BeforePaddingExceptNumbers uses AfterPadding only for Number
// columns so decimal alignment survives.
func cellWithComma(text string, col *TableColumn, placement CommaPlacement, pad *paddingTokens) string {
	useAfter := placement == CommaAfterPadding ||
		(placement == CommaBeforePaddingExceptNumbers && col.Type == ColumnNumber)
	if useAfter {
		return text + pad.comma
	}
	trimmed := strings.TrimRight(text, " ")
	fill := text[len(trimmed):]
	return trimmed + pad.comma + fill
}

// formatCell renders one table/compact-multiline cell, padded to col's
// width. A nil item (an absent cell in a ragged array-of-objects table)
// renders as blank filler.
func formatCell(item *Item, col *TableColumn, align NumberAlignment, pad *paddingTokens) string {
	if item == nil {
		return spaces(col.Width)
	}

	text := renderInlineValue(item, pad)
	if item.PrefixComment != "" {
		text = item.PrefixComment + pad.commentPad + text
	}
	if item.PostfixComment != "" {
		text = text + pad.commentPad + item.PostfixComment
	}

	if col.Type != ColumnNumber || item.Kind != KindNumber {
		gap := col.Width - pad.length(text)
		if gap < 0 {
			gap = 0
		}
		return text + spaces(gap)
	}

	switch align {
	case AlignNumberRight:
		gap := col.Width - pad.length(text)
		if gap < 0 {
			gap = 0
		}
		return spaces(gap) + text

	case AlignNumberDecimal:
		intW, _, _ := splitNumber(item.Value, pad)
		leftGap := col.numFmt.intWidth - intW
		if leftGap < 0 {
			leftGap = 0
		}
		rightGap := col.Width - leftGap - pad.length(text)
		if rightGap < 0 {
			rightGap = 0
		}
		return spaces(leftGap) + text + spaces(rightGap)

	case AlignNumberNormalize:
		if normalized, ok := normalizeNumber(item.Value, col.numFmt, pad); ok {
			gap := col.Width - pad.length(normalized)
			if gap < 0 {
				gap = 0
			}
			return spaces(gap) + normalized
		}
		gap := col.Width - pad.length(text)
		if gap < 0 {
			gap = 0
		}
		return text + spaces(gap)

	default: // AlignNumberLeft
		gap := col.Width - pad.length(text)
		if gap < 0 {
			gap = 0
		}
		return text + spaces(gap)
	}
}

// normalizeNumber reparses text as a float and re-emits it with exactly
// the column's fractional-digit count, per spec §4.E's Normalize mode. It
// degrades (returns ok=false) for NaN/Inf, an exponent, text longer than
// 16 characters, or a value that parses to zero without being textually
// zero.
func normalizeNumber(text string, fmtw *numberColumnFormat, pad *paddingTokens) (string, bool) {
	if len(text) > 16 || strings.ContainsAny(text, "eE") {
		return "", false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	if f == 0 {
		for _, c := range strings.TrimPrefix(text, "-") {
			if c != '0' && c != '.' {
				return "", false
			}
		}
	}
	decimals := 0
	if fmtw.fracWidth > 0 {
		decimals = fmtw.fracWidth - 1
	}
	return strconv.FormatFloat(f, 'f', decimals, 64), true
}
