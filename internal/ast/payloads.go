package ast

import (
	"scribe/internal/source"
)

// GenKind tags a generated identifier with its name-generation strategy.
// GenNone means the identifier carries literal source text.
type GenKind uint8

const (
	GenNone GenKind = iota
	// GenAuto draws from the temp-name sequence _a.._z, _0, _1, ...
	GenAuto
	// GenLoop prefers _i, then _n, then the auto sequence.
	GenLoop
	// GenUnique appends a numeric suffix to a caller-supplied base name.
	GenUnique
	// GenNode derives a name from the declaration referenced by Link.
	GenNode
)

// Ident is the payload for KindIdent. Generated identifiers carry a
// strategy in Gen; Text then holds the base name (GenUnique) or is empty.
type Ident struct {
	Text string
	Gen  GenKind
	Link NodeID // GenNode: the declaration to derive a name from
}

// Lit is the payload for literal kinds; Text is the exact token text.
type Lit struct {
	Text string
}

// Wrap is the payload for kinds with a single optional operand:
// paren, spread, expression statement, return, throw, break/continue
// (operand is the label), export assignment.
type Wrap struct {
	Expr NodeID
}

// Pair is the payload for name/value shapes: property assignments, var
// declarators, enum members, labeled statements, switch (expr/case block),
// module declarations, import/export specifiers, class property
// declarations.
type Pair struct {
	Name  NodeID
	Value NodeID
}

// Access is the payload for property and element access. Arg holds the
// member identifier for KindPropertyAccess and the index expression for
// KindElementAccess.
type Access struct {
	Expr NodeID
	Arg  NodeID
}

// Call is the payload for call and new expressions.
type Call struct {
	Expr NodeID
	Args ListID
}

// Unary is the payload for prefix and postfix unary expressions.
type Unary struct {
	Op      string
	Operand NodeID
}

// Binary is the payload for binary expressions, including assignments and
// comma sequences. Parenthesization is never derived from Op precedence;
// the tree carries explicit KindParen nodes.
type Binary struct {
	Left  NodeID
	Op    string
	Right NodeID
}

// Branch is the payload for conditional shapes: ternaries, if statements,
// while and do loops (Alt unused there).
type Branch struct {
	Cond NodeID
	Cons NodeID
	Alt  NodeID
}

// For is the payload for classic three-clause loops.
type For struct {
	Init NodeID
	Cond NodeID
	Incr NodeID
	Body NodeID
}

// ForIn is the payload for for-in and for-of loops.
type ForIn struct {
	Init NodeID
	Expr NodeID
	Body NodeID
}

// Try is the payload for try statements. CatchVar and Finally are optional.
type Try struct {
	Block    NodeID
	CatchVar NodeID
	Catch    NodeID
	Finally  NodeID
}

// Func is the payload for every function-like kind: declarations,
// expressions, arrows, methods, constructors, accessors.
type Func struct {
	Name   NodeID
	Params ListID
	Body   NodeID
}

// Class is the payload for class declarations and expressions. Heritage is
// the extends expression, if any.
type Class struct {
	Name     NodeID
	Heritage NodeID
	Members  ListID
}

// Seq is the payload for kinds that are a bare child sequence: blocks,
// module blocks, case blocks, object and array literals.
type Seq struct {
	Elems ListID
}

// VarList is the payload for variable declaration lists.
type VarList struct {
	Keyword string // var, let, const
	Decls   ListID
}

// Case is the payload for case and default clauses (Expr is 0 for default).
type Case struct {
	Expr  NodeID
	Stmts ListID
}

// Enum is the payload for enum declarations.
type Enum struct {
	Name    NodeID
	Members ListID
}

// Import is the payload for import and export declarations. Name is the
// default binding (imports only), Bindings the specifier list, Module the
// module string literal.
type Import struct {
	Name     NodeID
	Bindings ListID
	Module   NodeID
}

// File is the payload for KindSourceFile.
type File struct {
	Source source.FileID
	Stmts  ListID
}
