package printer

// ListFormat is the bitmask vocabulary describing how a child sequence is
// rendered: delimiter, brackets, indentation, and line-break policy.
type ListFormat uint32

const (
	// Line-break policy. Exactly one of the three modes is in effect;
	// SingleLine is the zero default.
	SingleLine ListFormat = 0
	// MultiLine forces a break before the first child, between every pair
	// of children, and before the closing bracket.
	MultiLine ListFormat = 1 << iota
	// PreserveLines breaks where the original source broke; synthesized
	// children consult their StartsOnNewLine hint, defaulting to
	// PreferNewLine.
	PreserveLines
	// PreferNewLine is the default layout for synthesized children without
	// an explicit hint under PreserveLines.
	PreferNewLine

	// Delimiters written between siblings.
	CommaDelimited
	BarDelimited

	// Brackets around the sequence.
	Parenthesis
	Braces
	Brackets

	// Indented indents the sequence body one level.
	Indented
	// OptionalIfEmpty omits the brackets entirely for an empty sequence.
	OptionalIfEmpty
	// SpaceBetweenBraces pads the brackets with one space on each side.
	SpaceBetweenBraces
	// NoSpaceIfEmpty suppresses the brace padding for an empty sequence.
	NoSpaceIfEmpty
	// NoTrailingNewLine suppresses the break before the closing bracket.
	NoTrailingNewLine
	// AllowTrailingComma re-emits a source trailing separator.
	AllowTrailingComma
	// ForcedSingleLine flattens the sequence unconditionally, ignoring even
	// explicit StartsOnNewLine hints. Set when a single-line directive
	// overrides the default format; never part of a plain preset.
	ForcedSingleLine

	LinesMask      = MultiLine | PreserveLines
	DelimitersMask = CommaDelimited | BarDelimited
	BracketsMask   = Parenthesis | Braces | Brackets
)

func (f ListFormat) has(bit ListFormat) bool { return f&bit != 0 }

func (f ListFormat) openBracket() string {
	switch {
	case f.has(Parenthesis):
		return "("
	case f.has(Braces):
		return "{"
	case f.has(Brackets):
		return "["
	}
	return ""
}

func (f ListFormat) closeBracket() string {
	switch {
	case f.has(Parenthesis):
		return ")"
	case f.has(Braces):
		return "}"
	case f.has(Brackets):
		return "]"
	}
	return ""
}

func (f ListFormat) delimiter() string {
	switch {
	case f.has(CommaDelimited):
		return ","
	case f.has(BarDelimited):
		return " |"
	}
	return ""
}

// Format presets, one per syntactic context.
const (
	ArgumentList         = CommaDelimited | SingleLine | Parenthesis
	Parameters           = CommaDelimited | SingleLine | Parenthesis
	VariableDeclarations = CommaDelimited | SingleLine
	ObjectProperties     = CommaDelimited | PreserveLines | Braces | Indented |
		SpaceBetweenBraces | NoSpaceIfEmpty | AllowTrailingComma
	ArrayElements      = CommaDelimited | PreserveLines | Brackets | Indented | AllowTrailingComma
	ClassMembers       = MultiLine | Braces | Indented
	EnumMembers        = CommaDelimited | MultiLine | Braces | Indented | AllowTrailingComma
	BlockStatements    = MultiLine | Braces | Indented
	SingleLineBlock    = SingleLine | ForcedSingleLine | Braces | SpaceBetweenBraces
	CaseBlockClauses   = MultiLine | Braces | Indented
	CaseClauseBody     = MultiLine | Indented
	NamedImports       = CommaDelimited | SingleLine | Braces | SpaceBetweenBraces
	HeritageClause     = SingleLine
	SourceFileBody     = MultiLine | NoTrailingNewLine
	ModuleBody         = MultiLine | Braces | Indented
	TemplateSpans      = SingleLine
)
