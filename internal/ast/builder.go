package ast

import (
	"scribe/internal/source"
)

type Hints struct{ Nodes, Lists uint }

// Builder owns all node and list storage for one tree. Trees are built by
// an upstream transform pipeline and are immutable during printing.
type Builder struct {
	Nodes *Nodes
	Lists *Lists
}

func NewBuilder(hints Hints) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	if hints.Lists == 0 {
		hints.Lists = 1 << 6
	}
	return &Builder{
		Nodes: NewNodes(hints.Nodes),
		Lists: NewLists(hints.Lists),
	}
}

func (b *Builder) NewList(nodes []NodeID) ListID {
	return b.Lists.New(nodes)
}

func (b *Builder) NewIdent(sp source.Span, text string) NodeID {
	p := b.Nodes.Idents.Allocate(Ident{Text: text})
	return b.Nodes.New(KindIdent, sp, PayloadID(p))
}

// NewGenerated allocates a generated identifier. base is used by GenUnique;
// link by GenNode. Generated identifiers are always synthesized.
func (b *Builder) NewGenerated(gen GenKind, base string, link NodeID) NodeID {
	p := b.Nodes.Idents.Allocate(Ident{Text: base, Gen: gen, Link: link})
	id := b.Nodes.New(KindIdent, source.Span{}, PayloadID(p))
	b.Nodes.Get(id).Flags |= FlagSynthesized
	return id
}

func (b *Builder) NewLit(kind NodeKind, sp source.Span, text string) NodeID {
	p := b.Nodes.Lits.Allocate(Lit{Text: text})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

// NewKeyword allocates a payload-free node: true/false/null, this, super,
// empty statement, debugger, and marker kinds.
func (b *Builder) NewKeyword(kind NodeKind, sp source.Span) NodeID {
	return b.Nodes.New(kind, sp, NoPayloadID)
}

func (b *Builder) NewWrapped(kind NodeKind, sp source.Span, expr NodeID) NodeID {
	p := b.Nodes.Wraps.Allocate(Wrap{Expr: expr})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewPair(kind NodeKind, sp source.Span, name, value NodeID) NodeID {
	p := b.Nodes.Pairs.Allocate(Pair{Name: name, Value: value})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewAccess(kind NodeKind, sp source.Span, expr, arg NodeID) NodeID {
	p := b.Nodes.Accesses.Allocate(Access{Expr: expr, Arg: arg})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewCall(kind NodeKind, sp source.Span, expr NodeID, args ListID) NodeID {
	p := b.Nodes.Calls.Allocate(Call{Expr: expr, Args: args})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewUnary(kind NodeKind, sp source.Span, op string, operand NodeID) NodeID {
	p := b.Nodes.Unaries.Allocate(Unary{Op: op, Operand: operand})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewBinary(sp source.Span, left NodeID, op string, right NodeID) NodeID {
	p := b.Nodes.Binaries.Allocate(Binary{Left: left, Op: op, Right: right})
	return b.Nodes.New(KindBinary, sp, PayloadID(p))
}

func (b *Builder) NewBranch(kind NodeKind, sp source.Span, cond, cons, alt NodeID) NodeID {
	p := b.Nodes.Branches.Allocate(Branch{Cond: cond, Cons: cons, Alt: alt})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewFor(sp source.Span, init, cond, incr, body NodeID) NodeID {
	p := b.Nodes.Fors.Allocate(For{Init: init, Cond: cond, Incr: incr, Body: body})
	return b.Nodes.New(KindFor, sp, PayloadID(p))
}

func (b *Builder) NewForIn(kind NodeKind, sp source.Span, init, expr, body NodeID) NodeID {
	p := b.Nodes.ForIns.Allocate(ForIn{Init: init, Expr: expr, Body: body})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewTry(sp source.Span, block, catchVar, catch, finally NodeID) NodeID {
	p := b.Nodes.Tries.Allocate(Try{Block: block, CatchVar: catchVar, Catch: catch, Finally: finally})
	return b.Nodes.New(KindTry, sp, PayloadID(p))
}

func (b *Builder) NewFunc(kind NodeKind, sp source.Span, name NodeID, params ListID, body NodeID) NodeID {
	p := b.Nodes.Funcs.Allocate(Func{Name: name, Params: params, Body: body})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewClass(kind NodeKind, sp source.Span, name, heritage NodeID, members ListID) NodeID {
	p := b.Nodes.Classes.Allocate(Class{Name: name, Heritage: heritage, Members: members})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewSeq(kind NodeKind, sp source.Span, elems ListID) NodeID {
	p := b.Nodes.Seqs.Allocate(Seq{Elems: elems})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewVarList(sp source.Span, keyword string, decls ListID) NodeID {
	p := b.Nodes.VarLists.Allocate(VarList{Keyword: keyword, Decls: decls})
	return b.Nodes.New(KindVarDeclList, sp, PayloadID(p))
}

func (b *Builder) NewCase(kind NodeKind, sp source.Span, expr NodeID, stmts ListID) NodeID {
	p := b.Nodes.Cases.Allocate(Case{Expr: expr, Stmts: stmts})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewEnum(sp source.Span, name NodeID, members ListID) NodeID {
	p := b.Nodes.Enums.Allocate(Enum{Name: name, Members: members})
	return b.Nodes.New(KindEnumDecl, sp, PayloadID(p))
}

func (b *Builder) NewImport(kind NodeKind, sp source.Span, name NodeID, bindings ListID, module NodeID) NodeID {
	p := b.Nodes.Imports.Allocate(Import{Name: name, Bindings: bindings, Module: module})
	return b.Nodes.New(kind, sp, PayloadID(p))
}

func (b *Builder) NewSourceFile(sp source.Span, src source.FileID, stmts ListID) NodeID {
	p := b.Nodes.Files.Allocate(File{Source: src, Stmts: stmts})
	return b.Nodes.New(KindSourceFile, sp, PayloadID(p))
}

// AddFlags sets extra flag bits on an existing node.
func (b *Builder) AddFlags(id NodeID, flags NodeFlags) {
	if node := b.Nodes.Get(id); node != nil {
		node.Flags |= flags
	}
}

// SetOriginal records the provenance back-reference on a synthesized node.
func (b *Builder) SetOriginal(id, original NodeID) {
	if node := b.Nodes.Get(id); node != nil {
		node.Original = original
	}
}

// Clone allocates a synthesized shallow copy of id sharing its payload,
// with Original pointing back at the source node. If id already has an
// Original the chain is preserved, not collapsed.
func (b *Builder) Clone(id NodeID) NodeID {
	node := b.Nodes.Get(id)
	if node == nil {
		return NoNodeID
	}
	copied := *node
	copied.Flags |= FlagSynthesized
	copied.Original = id
	return NodeID(b.Nodes.Arena.Allocate(copied))
}
