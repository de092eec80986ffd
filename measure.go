package jsonfmt

import "strings"

// measure walks the item tree bottom-up, filling in the width fields that
// the layout selector and table template engine need (spec §4.D). It must
// run once, after parsing, before any layout decision is made.
func measure(item *Item, pad *paddingTokens) {
	for _, c := range item.Children {
		measure(c, pad)
	}

	length := pad.length

	item.NameLength = 0
	if item.Name != "" {
		item.NameLength = length(item.Name)
	}
	item.PrefixCommentLength = 0
	if item.PrefixComment != "" {
		item.PrefixCommentLength = length(item.PrefixComment)
	}
	item.MiddleCommentLength = 0
	if item.MiddleComment != "" {
		item.MiddleCommentLength = length(item.MiddleComment)
	}
	item.PostfixCommentLength = 0
	if item.PostfixComment != "" {
		item.PostfixCommentLength = length(item.PostfixComment)
	}

	item.ValueLength = measureValue(item, pad)
	item.RequiresMultipleLines = requiresMultipleLines(item)
	item.MinimumTotalLength = minimumTotalLength(item, pad)
}

func measureValue(item *Item, pad *paddingTokens) int {
	switch item.Kind {
	case KindNull:
		return pad.literals.null
	case KindTrue:
		return pad.literals.true_
	case KindFalse:
		return pad.literals.false_
	case KindString, KindNumber:
		return pad.length(item.Value)
	case KindBlankLine:
		return 0
	case KindLineComment, KindBlockComment:
		return pad.length(item.Value)
	case KindObject, KindArray:
		return measureContainerValue(item, pad)
	default:
		return 0
	}
}

// measureContainerValue computes the width of item rendered as a single
// inline row: its bracket padding plus each row's own minimum width, joined
// by commas. For an item whose RequiresMultipleLines is false this equals
// the width writeValue renders, so the layout selector compares it against
// the available width without rendering first.
func measureContainerValue(item *Item, pad *paddingTokens) int {
	bp := bracketPaddingFor(item)
	var open, close string
	if item.Kind == KindArray {
		open, close = pad.arrayOpen[bp], pad.arrayClose[bp]
	} else {
		open, close = pad.objectOpen[bp], pad.objectClose[bp]
	}
	width := pad.length(open) + pad.length(close)

	rows := item.Rows()
	for i, row := range rows {
		if i > 0 {
			width += pad.commaWidth
		}
		width += row.MinimumTotalLength
	}
	return width
}

func requiresMultipleLines(item *Item) bool {
	if item.Kind == KindBlockComment && strings.Contains(item.Value, "\n") {
		return true
	}
	if item.IsPostCommentLineStyle {
		return true
	}
	if item.MiddleCommentHasNewline {
		return true
	}
	if strings.Contains(item.PrefixComment, "\n") || strings.Contains(item.PostfixComment, "\n") {
		return true
	}
	for _, c := range item.Children {
		// A standalone blank line or comment forces every ancestor onto
		// multiple lines even though it has no multiline content of its
		// own to report: it occupies a whole physical line by itself.
		if c.Kind.IsStandalone() {
			return true
		}
		if c.RequiresMultipleLines {
			return true
		}
	}
	return false
}

// minimumTotalLength is the narrowest this item could ever render to: its
// name and colon (if it is an object member), its value, and any attached
// comments with their single space of padding. The layout selector compares
// this against MaxTotalLineLength to rule out Inline/Table before doing any
// real rendering work.
func minimumTotalLength(item *Item, pad *paddingTokens) int {
	total := item.ValueLength
	if item.Name != "" {
		total += item.NameLength + pad.colonWidth
	}
	if item.PrefixComment != "" {
		total += item.PrefixCommentLength + pad.length(pad.commentPad)
	}
	if item.MiddleComment != "" && !item.MiddleCommentHasNewline {
		total += item.MiddleCommentLength + pad.length(pad.commentPad)
	}
	if item.PostfixComment != "" {
		total += item.PostfixCommentLength + pad.length(pad.commentPad)
	}
	return total
}
