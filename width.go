package jsonfmt

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// CodePointWidth is the default StringLengthFunc: a plain code-point count.
func CodePointWidth(s string) int { return utf8.RuneCountInString(s) }

// EastAsianWidth measures display width the way terminals render East-Asian
// wide characters (double-width CJK, full-width forms) — assign this to
// Options.StringLength for documents whose string content is CJK-heavy, so
// table/compact-multiline column alignment accounts for actual rendered
// width rather than code-point count.
func EastAsianWidth(s string) int { return runewidth.StringWidth(s) }

// literalWidths returns the measured widths of the three JSON keyword
// literals under the given length function, used by the item-width pass so
// that null/true/false widths are routed through the same pluggable hook as
// everything else (spec §9).
type literalWidths struct {
	null, true_, false_ int
}

func measureLiterals(length StringLengthFunc) literalWidths {
	return literalWidths{
		null:   length("null"),
		true_:  length("true"),
		false_: length("false"),
	}
}
