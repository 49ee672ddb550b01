package printer

import (
	"scribe/internal/ast"
	"scribe/internal/helpers"
	"scribe/internal/transform"
)

// emitFunctionBody renders a function-like body as its own lexical
// environment: declarations hoisted inside it surface as one synthesized
// var statement after the explicit statements, and temp-name counters
// nest so sibling bodies restart the sequence.
func (pr *printer) emitFunctionBody(body ast.NodeID) {
	seq, ok := pr.b.Nodes.Seq(body)
	if !ok {
		pr.emit(body)
		return
	}
	pr.out.Space()
	format := BlockStatements
	if pr.ctx.GetDirectives(body).Has(transform.DirectiveSingleLine) {
		format = SingleLineBlock
	}
	pr.ctx.StartLexicalEnvironment()
	pr.session.pushTempScope()
	pr.emitListItems(body, seq.Elems, format, pr.emit, pr.ctx.EndLexicalEnvironment)
	pr.session.popTempScope()
}

// helperBit maps a helper ID to its request directive. The trigger bits
// are declared in the same order as the helper IDs.
func helperBit(id helpers.ID) transform.Directives {
	return transform.DirectiveEmitExtends << id
}

// emitHelpers writes the runtime shims requested anywhere in the tree
// before the first statement of the file, in registry priority order, each
// at most once per file pass.
func (pr *printer) emitHelpers() {
	mask := pr.ctx.HelperDirectives()
	if mask == 0 {
		return
	}
	var due []helpers.ID
	for id := helpers.Extends; id <= helpers.ExportStar; id++ {
		if mask.Has(helperBit(id)) && !pr.session.helpersEmitted[id] {
			due = append(due, id)
		}
	}
	for _, h := range pr.reg.Ordered(due) {
		pr.session.helpersEmitted[h.ID] = true
		pr.out.RawWrite(h.Body)
	}
}
