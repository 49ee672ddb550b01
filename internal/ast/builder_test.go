package ast

import (
	"bytes"
	"testing"

	"scribe/internal/source"
)

func TestBuilderAllocatesOneBased(t *testing.T) {
	b := NewBuilder(Hints{})

	id := b.NewIdent(source.Span{}, "x")
	if id != 1 {
		t.Fatalf("first NodeID = %d, want 1", id)
	}
	if NoNodeID.IsValid() {
		t.Fatal("NoNodeID must be invalid")
	}
	node := b.Nodes.Get(id)
	if node == nil || node.Kind != KindIdent {
		t.Fatalf("Get(%d) = %+v, want KindIdent", id, node)
	}
	ident, ok := b.Nodes.Ident(id)
	if !ok || ident.Text != "x" {
		t.Fatalf("Ident(%d) = %+v, %v", id, ident, ok)
	}
}

func TestPayloadAccessorsRejectWrongKind(t *testing.T) {
	b := NewBuilder(Hints{})
	id := b.NewLit(KindNumberLit, source.Span{}, "42")

	if _, ok := b.Nodes.Ident(id); ok {
		t.Error("Ident() accepted a number literal")
	}
	if _, ok := b.Nodes.Binary(id); ok {
		t.Error("Binary() accepted a number literal")
	}
	if lit, ok := b.Nodes.Lit(id); !ok || lit.Text != "42" {
		t.Errorf("Lit() = %+v, %v", lit, ok)
	}
}

func TestCloneKeepsProvenance(t *testing.T) {
	b := NewBuilder(Hints{})
	orig := b.NewIdent(source.Span{Start: 5, End: 6}, "v")

	clone := b.Clone(orig)
	node := b.Nodes.Get(clone)
	if node.Original != orig {
		t.Errorf("clone Original = %d, want %d", node.Original, orig)
	}
	if !node.Flags.Has(FlagSynthesized) {
		t.Error("clone must be synthesized")
	}

	// Cloning a clone keeps the chain one step at a time.
	second := b.Clone(clone)
	if got := b.Nodes.Get(second).Original; got != clone {
		t.Errorf("second clone Original = %d, want %d", got, clone)
	}
	// Payload is shared.
	ident, ok := b.Nodes.Ident(second)
	if !ok || ident.Text != "v" {
		t.Fatalf("cloned ident = %+v, %v", ident, ok)
	}
}

func TestTreeCodecRoundTrip(t *testing.T) {
	b := NewBuilder(Hints{})
	left := b.NewIdent(source.Span{Start: 0, End: 1}, "a")
	right := b.NewLit(KindNumberLit, source.Span{Start: 4, End: 5}, "1")
	sum := b.NewBinary(source.Span{Start: 0, End: 5}, left, "+", right)
	stmt := b.NewWrapped(KindExprStatement, source.Span{Start: 0, End: 6}, sum)
	root := b.NewSourceFile(source.Span{Start: 0, End: 6}, 0, b.NewList([]NodeID{stmt}))

	var buf bytes.Buffer
	if err := EncodeTree(&buf, b, []NodeID{root}); err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}

	b2, roots, err := DecodeTree(&buf)
	if err != nil {
		t.Fatalf("DecodeTree: %v", err)
	}
	if len(roots) != 1 || roots[0] != root {
		t.Fatalf("roots = %v, want [%d]", roots, root)
	}
	if b2.Nodes.Len() != b.Nodes.Len() {
		t.Fatalf("node count = %d, want %d", b2.Nodes.Len(), b.Nodes.Len())
	}
	bin, ok := b2.Nodes.Binary(sum)
	if !ok || bin.Op != "+" || bin.Left != left || bin.Right != right {
		t.Fatalf("binary after round trip = %+v, %v", bin, ok)
	}
	file, ok := b2.Nodes.File(root)
	if !ok {
		t.Fatal("missing file payload after round trip")
	}
	if got := b2.Lists.Nodes(file.Stmts); len(got) != 1 || got[0] != stmt {
		t.Fatalf("file statements = %v, want [%d]", got, stmt)
	}
}
