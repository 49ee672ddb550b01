// Package transform carries the per-pass state the transform pipeline
// hands to the printer: out-of-band emit directives, substitution and
// notification hooks, and lexical environments for hoisting.
package transform

import (
	"scribe/internal/ast"
)

// Directives are out-of-band per-node emit instructions. They live in an
// identity-keyed side table rather than on the node, since nodes are
// immutable during printing and may be revisited across passes.
type Directives uint16

const (
	// DirectiveIndent requests an extra indentation level around the node.
	DirectiveIndent Directives = 1 << iota
	// DirectiveNoComments suppresses leading/trailing comment emission.
	DirectiveNoComments
	// DirectiveNoSourceMap suppresses the paired position marks.
	DirectiveNoSourceMap
	// DirectiveSingleLine forces single-line rendering of the node's lists.
	DirectiveSingleLine
	// DirectiveNoSubstitution forbids substitution hooks on the node. The
	// printer sets it on every node a hook returns, preventing cycles.
	DirectiveNoSubstitution

	// Helper-emission triggers, recorded by upstream transforms on the
	// constructs that need a runtime shim.
	DirectiveEmitExtends
	DirectiveEmitDecorate
	DirectiveEmitMetadata
	DirectiveEmitParam
	DirectiveEmitAwaiter
	DirectiveEmitExportStar
)

func (d Directives) Has(bit Directives) bool { return d&bit != 0 }

// HelperMask covers every helper-emission trigger bit.
const HelperMask = DirectiveEmitExtends | DirectiveEmitDecorate |
	DirectiveEmitMetadata | DirectiveEmitParam | DirectiveEmitAwaiter |
	DirectiveEmitExportStar

type directiveTable struct {
	byNode map[ast.NodeID]Directives
}

func newDirectiveTable() *directiveTable {
	return &directiveTable{byNode: make(map[ast.NodeID]Directives)}
}

func (t *directiveTable) get(id ast.NodeID) Directives {
	return t.byNode[id]
}

func (t *directiveTable) add(id ast.NodeID, d Directives) {
	t.byNode[id] |= d
}
