package ast

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"scribe/internal/source"
)

// Current schema version - increment when treePayload format changes.
const codecSchemaVersion uint16 = 1

// treePayload is the serialized form of one Builder plus its root nodes.
// Transform pipelines hand trees to the emitter as msgpack artifacts.
type treePayload struct {
	Schema uint16

	Nodes    []Node
	Idents   []Ident
	Lits     []Lit
	Wraps    []Wrap
	Pairs    []Pair
	Accesses []Access
	Calls    []Call
	Unaries  []Unary
	Binaries []Binary
	Branches []Branch
	Fors     []For
	ForIns   []ForIn
	Tries    []Try
	Funcs    []Func
	Classes  []Class
	Seqs     []Seq
	VarLists []VarList
	Cases    []Case
	Enums    []Enum
	Imports  []Import
	Files    []File
	Lists    []NodeList

	Roots []NodeID
}

// EncodeTree serializes a builder and its root source-file nodes.
func EncodeTree(w io.Writer, b *Builder, roots []NodeID) error {
	if b == nil {
		return fmt.Errorf("ast: encode nil builder")
	}
	payload := &treePayload{
		Schema:   codecSchemaVersion,
		Nodes:    b.Nodes.Arena.Slice(),
		Idents:   b.Nodes.Idents.Slice(),
		Lits:     b.Nodes.Lits.Slice(),
		Wraps:    b.Nodes.Wraps.Slice(),
		Pairs:    b.Nodes.Pairs.Slice(),
		Accesses: b.Nodes.Accesses.Slice(),
		Calls:    b.Nodes.Calls.Slice(),
		Unaries:  b.Nodes.Unaries.Slice(),
		Binaries: b.Nodes.Binaries.Slice(),
		Branches: b.Nodes.Branches.Slice(),
		Fors:     b.Nodes.Fors.Slice(),
		ForIns:   b.Nodes.ForIns.Slice(),
		Tries:    b.Nodes.Tries.Slice(),
		Funcs:    b.Nodes.Funcs.Slice(),
		Classes:  b.Nodes.Classes.Slice(),
		Seqs:     b.Nodes.Seqs.Slice(),
		VarLists: b.Nodes.VarLists.Slice(),
		Cases:    b.Nodes.Cases.Slice(),
		Enums:    b.Nodes.Enums.Slice(),
		Imports:  b.Nodes.Imports.Slice(),
		Files:    b.Nodes.Files.Slice(),
		Lists:    b.Lists.Arena.Slice(),
		Roots:    roots,
	}
	return msgpack.NewEncoder(w).Encode(payload)
}

// DecodeTree deserializes a builder previously written by EncodeTree.
func DecodeTree(r io.Reader) (*Builder, []NodeID, error) {
	var payload treePayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("ast: decode tree: %w", err)
	}
	if payload.Schema != codecSchemaVersion {
		return nil, nil, fmt.Errorf("ast: tree schema %d, want %d", payload.Schema, codecSchemaVersion)
	}
	b := &Builder{
		Nodes: &Nodes{
			Arena:    &Arena[Node]{data: payload.Nodes},
			Idents:   &Arena[Ident]{data: payload.Idents},
			Lits:     &Arena[Lit]{data: payload.Lits},
			Wraps:    &Arena[Wrap]{data: payload.Wraps},
			Pairs:    &Arena[Pair]{data: payload.Pairs},
			Accesses: &Arena[Access]{data: payload.Accesses},
			Calls:    &Arena[Call]{data: payload.Calls},
			Unaries:  &Arena[Unary]{data: payload.Unaries},
			Binaries: &Arena[Binary]{data: payload.Binaries},
			Branches: &Arena[Branch]{data: payload.Branches},
			Fors:     &Arena[For]{data: payload.Fors},
			ForIns:   &Arena[ForIn]{data: payload.ForIns},
			Tries:    &Arena[Try]{data: payload.Tries},
			Funcs:    &Arena[Func]{data: payload.Funcs},
			Classes:  &Arena[Class]{data: payload.Classes},
			Seqs:     &Arena[Seq]{data: payload.Seqs},
			VarLists: &Arena[VarList]{data: payload.VarLists},
			Cases:    &Arena[Case]{data: payload.Cases},
			Enums:    &Arena[Enum]{data: payload.Enums},
			Imports:  &Arena[Import]{data: payload.Imports},
			Files:    &Arena[File]{data: payload.Files},
		},
		Lists: &Lists{Arena: &Arena[NodeList]{data: payload.Lists}},
	}
	return b, payload.Roots, nil
}

// RetargetFile points every node span at the given file. Decoded trees
// carry the file numbering of the pipeline that produced them, which
// rarely matches the file set the consumer loaded sources into.
func RetargetFile(b *Builder, id source.FileID) {
	nodes := b.Nodes.Arena.Slice()
	for i := range nodes {
		nodes[i].Span.File = id
	}
	files := b.Nodes.Files.Slice()
	for i := range files {
		files[i].Source = id
	}
}
