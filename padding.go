package jsonfmt

import "strings"

// BracketPadding selects which of a container's three bracket-spacing
// variants to use when emitting its open/close punctuation. See spec §4.D
// and the GLOSSARY.
type BracketPadding int

const (
	// BracketEmpty is used for containers with zero children: "[]"/"{}".
	BracketEmpty BracketPadding = iota
	// BracketSimple is used when every child is a scalar.
	BracketSimple
	// BracketComplex is used when any child is itself a container.
	BracketComplex
)

// paddingTokens bundles the punctuation strings and width measurements
// derived from Options once per format invocation (spec §4.C).
type paddingTokens struct {
	opts Options
	length StringLengthFunc

	comma      string
	commaWidth int
	dummyComma string // spaces matching the comma's width, for column filler

	colon      string
	colonWidth int

	commentPad string // single space, or empty, before a comment

	eol string

	arrayOpen  [3]string
	arrayClose [3]string
	objectOpen [3]string
	objectClose [3]string

	literals literalWidths

	indentUnit  string
	indentCache []string
}

func newPaddingTokens(opts Options) *paddingTokens {
	length := opts.lengthFunc()

	comma := ","
	if opts.CommaPadding {
		comma = ", "
	}
	colon := ":"
	if opts.ColonPadding {
		colon = ": "
	}
	commentPad := ""
	if opts.CommentPadding {
		commentPad = " "
	}

	indentUnit := strings.Repeat(" ", opts.IndentSpaces)
	if opts.UseTabIndent {
		indentUnit = "\t"
	}

	p := &paddingTokens{
		opts:       opts,
		length:     length,
		comma:      comma,
		commaWidth: length(comma),
		colon:      colon,
		colonWidth: length(colon),
		commentPad: commentPad,
		eol:        opts.eol(),
		literals:   measureLiterals(length),
		indentUnit: indentUnit,
		indentCache: []string{""},
	}
	p.dummyComma = strings.Repeat(" ", p.commaWidth)

	p.arrayOpen[BracketEmpty] = "["
	p.arrayClose[BracketEmpty] = "]"
	p.objectOpen[BracketEmpty] = "{"
	p.objectClose[BracketEmpty] = "}"

	if opts.SimpleBracketPadding {
		p.arrayOpen[BracketSimple] = "[ "
		p.arrayClose[BracketSimple] = " ]"
		p.objectOpen[BracketSimple] = "{ "
		p.objectClose[BracketSimple] = " }"
	} else {
		p.arrayOpen[BracketSimple] = "["
		p.arrayClose[BracketSimple] = "]"
		p.objectOpen[BracketSimple] = "{"
		p.objectClose[BracketSimple] = "}"
	}

	if opts.NestedBracketPadding {
		p.arrayOpen[BracketComplex] = "[ "
		p.arrayClose[BracketComplex] = " ]"
		p.objectOpen[BracketComplex] = "{ "
		p.objectClose[BracketComplex] = " }"
	} else {
		p.arrayOpen[BracketComplex] = "["
		p.arrayClose[BracketComplex] = "]"
		p.objectOpen[BracketComplex] = "{"
		p.objectClose[BracketComplex] = "}"
	}

	return p
}

// indent returns (and caches) the indent string for the given nesting level.
func (p *paddingTokens) indent(level int) string {
	for len(p.indentCache) <= level {
		p.indentCache = append(p.indentCache, p.indentCache[len(p.indentCache)-1]+p.indentUnit)
	}
	return p.indentCache[level]
}

// bracketPaddingFor determines which bracket variant a container should use:
// Empty for zero children, Simple when every row is a scalar, Complex when
// any row is itself a container.
func bracketPaddingFor(it *Item) BracketPadding {
	rows := it.Rows()
	if len(rows) == 0 {
		return BracketEmpty
	}
	for _, row := range rows {
		if row.Kind.IsContainer() {
			return BracketComplex
		}
	}
	return BracketSimple
}

var spaceCache = []string{
	"", " ", "  ", "   ", "    ", "     ", "      ", "       ", "        ",
}

// spaces returns n spaces, consulting a small cache for common counts
// (spec §4.G).
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	if n < len(spaceCache) {
		return spaceCache[n]
	}
	return strings.Repeat(" ", n)
}
