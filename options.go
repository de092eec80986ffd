package jsonfmt

// EOLStyle selects the line terminator written between output lines.
type EOLStyle int

const (
	EOLLf EOLStyle = iota
	EOLCrlf
)

// CommaPlacement controls where a row's comma lands relative to its value
// padding when the Table layout is chosen. See spec §4.F.
type CommaPlacement int

const (
	CommaBeforePadding CommaPlacement = iota
	CommaAfterPadding
	CommaBeforePaddingExceptNumbers
)

// NumberAlignment selects how a Number column is aligned within a
// CompactMultiline or Table layout. See spec §4.E.
type NumberAlignment int

const (
	AlignNumberLeft NumberAlignment = iota
	AlignNumberRight
	AlignNumberDecimal
	AlignNumberNormalize
)

// CommentPolicy controls how the parser treats comments found in input.
type CommentPolicy int

const (
	// CommentTreatAsError rejects any comment with a FormattingError.
	CommentTreatAsError CommentPolicy = iota
	// CommentRemove parses comments but discards them from the item tree.
	CommentRemove
	// CommentPreserve attaches comments to the item tree for re-emission.
	CommentPreserve
)

// StringLengthFunc measures the display width of a string. All measurements
// in the formatter — scalar values, comments, brackets, indentation, the
// literals null/true/false — are routed through this one hook so that a
// caller who overrides it gets consistent column arithmetic (spec §9).
type StringLengthFunc func(string) int

// Options configures every tunable of the formatting pipeline. See spec §6.
type Options struct {
	JSONEolStyle EOLStyle `json:"jsonEolStyle" yaml:"jsonEolStyle"`

	MaxTotalLineLength     int `json:"maxTotalLineLength" yaml:"maxTotalLineLength"`
	MaxInlineComplexity    int `json:"maxInlineComplexity" yaml:"maxInlineComplexity"`
	MaxCompactArrayComplex int `json:"maxCompactArrayComplexity" yaml:"maxCompactArrayComplexity"`
	MaxTableRowComplexity  int `json:"maxTableRowComplexity" yaml:"maxTableRowComplexity"`
	MaxPropNamePadding     int `json:"maxPropNamePadding" yaml:"maxPropNamePadding"`
	MinCompactArrayItems   int `json:"minCompactArrayRowItems" yaml:"minCompactArrayRowItems"`
	AlwaysExpandDepth      int `json:"alwaysExpandDepth" yaml:"alwaysExpandDepth"`

	IndentSpaces  int  `json:"indentSpaces" yaml:"indentSpaces"`
	UseTabIndent  bool `json:"useTabToIndent" yaml:"useTabToIndent"`
	PrefixString  string `json:"prefixString" yaml:"prefixString"`

	NestedBracketPadding      bool `json:"nestedBracketPadding" yaml:"nestedBracketPadding"`
	SimpleBracketPadding      bool `json:"simpleBracketPadding" yaml:"simpleBracketPadding"`
	ColonPadding              bool `json:"colonPadding" yaml:"colonPadding"`
	CommaPadding              bool `json:"commaPadding" yaml:"commaPadding"`
	CommentPadding            bool `json:"commentPadding" yaml:"commentPadding"`
	ColonBeforePropNamePadding bool `json:"colonBeforePropNamePadding" yaml:"colonBeforePropNamePadding"`

	TableCommaPlacement CommaPlacement  `json:"tableCommaPlacement" yaml:"tableCommaPlacement"`
	NumberListAlignment NumberAlignment `json:"numberListAlignment" yaml:"numberListAlignment"`

	CommentPolicy      CommentPolicy `json:"commentPolicy" yaml:"commentPolicy"`
	PreserveBlankLines bool          `json:"preserveBlankLines" yaml:"preserveBlankLines"`
	AllowTrailingCommas bool         `json:"allowTrailingCommas" yaml:"allowTrailingCommas"`

	// RecursionLimit bounds Serialize's depth when walking a native value.
	// Zero means the documented default of 100.
	RecursionLimit int `json:"recursionLimit" yaml:"recursionLimit"`

	// StringLength is the pluggable width hook. Nil means CodePointWidth.
	StringLength StringLengthFunc `json:"-" yaml:"-"`
}

// Default mirrors the documented defaults from spec §6.
var Default = Options{
	JSONEolStyle: EOLLf,

	MaxTotalLineLength:     120,
	MaxInlineComplexity:    2,
	MaxCompactArrayComplex: 2,
	MaxTableRowComplexity:  2,
	MaxPropNamePadding:     16,
	MinCompactArrayItems:   3,
	AlwaysExpandDepth:      -1,

	IndentSpaces: 4,
	UseTabIndent: false,
	PrefixString: "",

	NestedBracketPadding:       true,
	SimpleBracketPadding:       true,
	ColonPadding:               true,
	CommaPadding:               true,
	CommentPadding:             true,
	ColonBeforePropNamePadding: false,

	TableCommaPlacement: CommaBeforePaddingExceptNumbers,
	NumberListAlignment: AlignNumberLeft,

	CommentPolicy:       CommentTreatAsError,
	PreserveBlankLines:  false,
	AllowTrailingCommas: false,
	RecursionLimit:      100,

	StringLength: nil,
}

// lengthFunc returns the effective StringLength hook, defaulting to
// CodePointWidth.
func (o Options) lengthFunc() StringLengthFunc {
	if o.StringLength != nil {
		return o.StringLength
	}
	return CodePointWidth
}

// recursionLimitOrDefault returns the effective recursion limit for
// Serialize, defaulting to 100 when unset.
func (o Options) recursionLimitOrDefault() int {
	if o.RecursionLimit > 0 {
		return o.RecursionLimit
	}
	return 100
}

// eol returns the configured end-of-line byte sequence.
func (o Options) eol() string {
	if o.JSONEolStyle == EOLCrlf {
		return "\r\n"
	}
	return "\n"
}
