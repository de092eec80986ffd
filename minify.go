package jsonfmt

import "strings"

// Minify parses text as JSON/JSONC and re-emits it with every optional byte
// removed: no indentation, no padding around colons/commas, and no line
// breaks beyond the ones a preserved comment or blank line requires (spec
// §6's minify). Comments and blank lines are kept or dropped according to
// opts.CommentPolicy/PreserveBlankLines, exactly as Parse would apply them;
// the result is valid JSON whenever no comment survives the policy.
func Minify(text string, opts Options) (string, error) {
	doc, err := Parse(text, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, it := range doc.Items {
		writeMinified(&sb, it)
	}
	return sb.String(), nil
}

// writeMinified renders item with no optional whitespace, recursing into
// containers in document order (including any standalone comments/blank
// lines interleaved among their rows). A standalone line comment, a
// multiline middle comment, or a line-style postfix comment forces a newline
// immediately after it, since without one the following bytes would be
// swallowed into the comment on re-parse; a preserved blank line is written
// as a newline of its own. Nothing else forces a break.
func writeMinified(sb *strings.Builder, item *Item) {
	switch item.Kind {
	case KindBlankLine:
		sb.WriteByte('\n')
		return
	case KindLineComment:
		sb.WriteString(item.Value)
		sb.WriteByte('\n')
		return
	case KindBlockComment:
		sb.WriteString(item.Value)
		return
	}

	if item.PrefixComment != "" {
		sb.WriteString(item.PrefixComment)
	}
	if item.Name != "" {
		sb.WriteString(item.Name)
		sb.WriteByte(':')
	}
	if item.MiddleComment != "" {
		sb.WriteString(item.MiddleComment)
		if item.MiddleCommentHasNewline {
			sb.WriteByte('\n')
		}
	}

	switch item.Kind {
	case KindNull, KindTrue, KindFalse, KindString, KindNumber:
		sb.WriteString(item.Value)
	case KindArray, KindObject:
		open, close := byte('['), byte(']')
		if item.Kind == KindObject {
			open, close = '{', '}'
		}
		sb.WriteByte(open)
		wroteRow := false
		for _, c := range item.Children {
			if c.Kind.IsStandalone() {
				writeMinified(sb, c)
				continue
			}
			if wroteRow {
				sb.WriteByte(',')
			}
			writeMinified(sb, c)
			wroteRow = true
		}
		sb.WriteByte(close)
	}

	if item.PostfixComment != "" {
		sb.WriteString(item.PostfixComment)
		if item.IsPostCommentLineStyle {
			sb.WriteByte('\n')
		}
	}
}
