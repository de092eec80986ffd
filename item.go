package jsonfmt

// Kind identifies the structural class of an Item.
type Kind int

const (
	KindNull Kind = iota
	KindTrue
	KindFalse
	KindString
	KindNumber
	KindObject
	KindArray
	KindBlankLine
	KindLineComment
	KindBlockComment
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindBlankLine:
		return "BlankLine"
	case KindLineComment:
		return "LineComment"
	case KindBlockComment:
		return "BlockComment"
	default:
		return "Unknown"
	}
}

// IsContainer reports whether the item is an Object or Array.
func (k Kind) IsContainer() bool { return k == KindObject || k == KindArray }

// IsScalar reports whether the item is a leaf JSON value (not a container,
// comment, or blank line).
func (k Kind) IsScalar() bool {
	switch k {
	case KindNull, KindTrue, KindFalse, KindString, KindNumber:
		return true
	default:
		return false
	}
}

// IsStandalone reports whether the item is a blank line or a comment that
// occupies its own slot in a parent's Children rather than annotating a
// sibling value.
func (k Kind) IsStandalone() bool {
	return k == KindBlankLine || k == KindLineComment || k == KindBlockComment
}

// Item is a node of the parsed document tree. Comments and blank lines are
// attached to the element they visually belong to (see spec §3); a
// standalone comment or blank line is itself an Item living directly in a
// parent's Children.
type Item struct {
	Kind     Kind
	Position Position

	// Complexity is 0 for scalars and empty containers, else
	// 1 + max(child.Complexity).
	Complexity int

	// Name is the quoted property-name text (including quotes) when this
	// item is an object member; empty otherwise.
	Name string

	// Value is the verbatim scalar text (including quotes for strings,
	// original digits for numbers); empty for containers.
	Value string

	// Children holds ordered container elements, and also in-body blank
	// lines / standalone comments for both arrays and objects.
	Children []*Item

	PrefixComment           string
	MiddleComment           string
	PostfixComment          string
	MiddleCommentHasNewline bool
	IsPostCommentLineStyle  bool

	// Widths populated by the item-width pass (component D).
	NameLength           int
	ValueLength          int
	PrefixCommentLength  int
	MiddleCommentLength  int
	PostfixCommentLength int
	MinimumTotalLength   int

	RequiresMultipleLines bool
}

// Rows returns the Children that represent actual elements/members — i.e.
// excluding standalone blank lines and comments. It is the "row" view the
// table template engine and layout selector operate on.
func (it *Item) Rows() []*Item {
	rows := make([]*Item, 0, len(it.Children))
	for _, c := range it.Children {
		if !c.Kind.IsStandalone() {
			rows = append(rows, c)
		}
	}
	return rows
}

// HasComment reports whether the item carries any prefix/middle/postfix
// comment text.
func (it *Item) HasComment() bool {
	return it.PrefixComment != "" || it.MiddleComment != "" || it.PostfixComment != ""
}
