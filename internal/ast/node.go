package ast

import (
	"scribe/internal/source"
)

// Node is the header shared by every syntax element. Kind-specific data
// lives in per-kind payload arenas addressed by Payload.
//
// Original is a weak back-reference to the node this one was synthesized
// from; it is followed for name provenance only and never emitted.
type Node struct {
	Kind     NodeKind
	Flags    NodeFlags
	Span     source.Span
	Original NodeID
	Payload  PayloadID
}

// Nodes owns the node arena and every payload arena.
type Nodes struct {
	Arena *Arena[Node]

	Idents   *Arena[Ident]
	Lits     *Arena[Lit]
	Wraps    *Arena[Wrap]
	Pairs    *Arena[Pair]
	Accesses *Arena[Access]
	Calls    *Arena[Call]
	Unaries  *Arena[Unary]
	Binaries *Arena[Binary]
	Branches *Arena[Branch]
	Fors     *Arena[For]
	ForIns   *Arena[ForIn]
	Tries    *Arena[Try]
	Funcs    *Arena[Func]
	Classes  *Arena[Class]
	Seqs     *Arena[Seq]
	VarLists *Arena[VarList]
	Cases    *Arena[Case]
	Enums    *Arena[Enum]
	Imports  *Arena[Import]
	Files    *Arena[File]
}

// NewNodes creates a *Nodes with all arenas initialized to capHint.
// If capHint is 0 a default of 1<<8 is used.
func NewNodes(capHint uint) *Nodes {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Nodes{
		Arena:    NewArena[Node](capHint),
		Idents:   NewArena[Ident](capHint),
		Lits:     NewArena[Lit](capHint),
		Wraps:    NewArena[Wrap](capHint),
		Pairs:    NewArena[Pair](capHint),
		Accesses: NewArena[Access](capHint),
		Calls:    NewArena[Call](capHint),
		Unaries:  NewArena[Unary](capHint),
		Binaries: NewArena[Binary](capHint),
		Branches: NewArena[Branch](capHint),
		Fors:     NewArena[For](capHint),
		ForIns:   NewArena[ForIn](capHint),
		Tries:    NewArena[Try](capHint),
		Funcs:    NewArena[Func](capHint),
		Classes:  NewArena[Class](capHint),
		Seqs:     NewArena[Seq](capHint),
		VarLists: NewArena[VarList](capHint),
		Cases:    NewArena[Case](capHint),
		Enums:    NewArena[Enum](capHint),
		Imports:  NewArena[Import](capHint),
		Files:    NewArena[File](capHint),
	}
}

func (n *Nodes) New(kind NodeKind, span source.Span, payload PayloadID) NodeID {
	return NodeID(n.Arena.Allocate(Node{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (n *Nodes) Get(id NodeID) *Node {
	return n.Arena.Get(uint32(id))
}

// Len returns the number of allocated nodes; NodeIDs are 1..Len.
func (n *Nodes) Len() uint32 {
	return n.Arena.Len()
}

func (n *Nodes) Ident(id NodeID) (*Ident, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != KindIdent || !node.Payload.IsValid() {
		return nil, false
	}
	return n.Idents.Get(uint32(node.Payload)), true
}

func (n *Nodes) Lit(id NodeID) (*Lit, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	switch node.Kind {
	case KindNumberLit, KindStringLit, KindRegexLit, KindTemplateLit:
		return n.Lits.Get(uint32(node.Payload)), true
	}
	return nil, false
}

func (n *Nodes) Wrap(id NodeID) (*Wrap, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	switch node.Kind {
	case KindParen, KindSpread, KindExprStatement, KindVarStatement,
		KindReturn, KindThrow, KindBreak, KindContinue, KindExportAssign:
		return n.Wraps.Get(uint32(node.Payload)), true
	}
	return nil, false
}

func (n *Nodes) Pair(id NodeID) (*Pair, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	switch node.Kind {
	case KindPropertyAssign, KindShorthandProperty, KindVarDecl,
		KindEnumMember, KindLabeled, KindSwitch, KindModuleDecl,
		KindImportSpecifier, KindExportSpecifier, KindPropertyDecl:
		return n.Pairs.Get(uint32(node.Payload)), true
	}
	return nil, false
}

func (n *Nodes) Access(id NodeID) (*Access, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	if node.Kind != KindPropertyAccess && node.Kind != KindElementAccess {
		return nil, false
	}
	return n.Accesses.Get(uint32(node.Payload)), true
}

func (n *Nodes) Call(id NodeID) (*Call, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	if node.Kind != KindCall && node.Kind != KindNew {
		return nil, false
	}
	return n.Calls.Get(uint32(node.Payload)), true
}

func (n *Nodes) Unary(id NodeID) (*Unary, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	if node.Kind != KindPrefixUnary && node.Kind != KindPostfixUnary {
		return nil, false
	}
	return n.Unaries.Get(uint32(node.Payload)), true
}

func (n *Nodes) Binary(id NodeID) (*Binary, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != KindBinary || !node.Payload.IsValid() {
		return nil, false
	}
	return n.Binaries.Get(uint32(node.Payload)), true
}

func (n *Nodes) Branch(id NodeID) (*Branch, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	switch node.Kind {
	case KindConditional, KindIf, KindWhile, KindDo:
		return n.Branches.Get(uint32(node.Payload)), true
	}
	return nil, false
}

func (n *Nodes) For(id NodeID) (*For, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != KindFor || !node.Payload.IsValid() {
		return nil, false
	}
	return n.Fors.Get(uint32(node.Payload)), true
}

func (n *Nodes) ForIn(id NodeID) (*ForIn, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	if node.Kind != KindForIn && node.Kind != KindForOf {
		return nil, false
	}
	return n.ForIns.Get(uint32(node.Payload)), true
}

func (n *Nodes) Try(id NodeID) (*Try, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != KindTry || !node.Payload.IsValid() {
		return nil, false
	}
	return n.Tries.Get(uint32(node.Payload)), true
}

func (n *Nodes) Func(id NodeID) (*Func, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	switch node.Kind {
	case KindFunctionExpr, KindArrowFunction, KindFunctionDecl, KindMethod,
		KindConstructor, KindGetAccessor, KindSetAccessor:
		return n.Funcs.Get(uint32(node.Payload)), true
	}
	return nil, false
}

func (n *Nodes) Class(id NodeID) (*Class, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	if node.Kind != KindClassDecl && node.Kind != KindClassExpr {
		return nil, false
	}
	return n.Classes.Get(uint32(node.Payload)), true
}

func (n *Nodes) Seq(id NodeID) (*Seq, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	switch node.Kind {
	case KindObjectLit, KindArrayLit, KindBlock, KindModuleBlock, KindCaseBlock:
		return n.Seqs.Get(uint32(node.Payload)), true
	}
	return nil, false
}

func (n *Nodes) VarList(id NodeID) (*VarList, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != KindVarDeclList || !node.Payload.IsValid() {
		return nil, false
	}
	return n.VarLists.Get(uint32(node.Payload)), true
}

func (n *Nodes) Case(id NodeID) (*Case, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	if node.Kind != KindCaseClause && node.Kind != KindDefaultClause {
		return nil, false
	}
	return n.Cases.Get(uint32(node.Payload)), true
}

func (n *Nodes) Enum(id NodeID) (*Enum, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != KindEnumDecl || !node.Payload.IsValid() {
		return nil, false
	}
	return n.Enums.Get(uint32(node.Payload)), true
}

func (n *Nodes) Import(id NodeID) (*Import, bool) {
	node := n.Get(id)
	if node == nil || !node.Payload.IsValid() {
		return nil, false
	}
	if node.Kind != KindImportDecl && node.Kind != KindExportDecl {
		return nil, false
	}
	return n.Imports.Get(uint32(node.Payload)), true
}

func (n *Nodes) File(id NodeID) (*File, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != KindSourceFile || !node.Payload.IsValid() {
		return nil, false
	}
	return n.Files.Get(uint32(node.Payload)), true
}
