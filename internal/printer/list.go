package printer

import (
	"scribe/internal/ast"
)

type emitFn func(ast.NodeID)

// emitList renders a child sequence under the given format, dispatching
// children through the general entry point.
func (pr *printer) emitList(parent ast.NodeID, listID ast.ListID, format ListFormat) {
	pr.emitListItems(parent, listID, format, pr.emit, nil)
}

// emitExpressionList renders a child sequence whose children occupy
// expression positions.
func (pr *printer) emitExpressionList(parent ast.NodeID, listID ast.ListID, format ListFormat) {
	pr.emitListItems(parent, listID, format, pr.emitExpression, nil)
}

// emitListItems is the sequence algorithm: optional opening bracket,
// children separated by the descriptor's delimiter and one space or a line
// break, optional trailing separator, indentation around the body, optional
// closing bracket. tail, when non-nil, is invoked after the explicit
// children and returns extra nodes to append under the same layout (used
// for lexical-environment hoisting).
func (pr *printer) emitListItems(parent ast.NodeID, listID ast.ListID, format ListFormat, emit emitFn, tail func() []ast.NodeID) {
	var items []ast.NodeID
	trailingSep := false
	if list := pr.b.Lists.Get(listID); list != nil {
		items = list.Nodes
		trailingSep = list.HasTrailingSep
		if list.MultiLine {
			format |= PreferNewLine
		}
	}
	isEmpty := len(items) == 0

	// Emptiness suppression is decided before any bracket text.
	if isEmpty && format.has(OptionalIfEmpty) && tail == nil {
		return
	}

	if open := format.openBracket(); open != "" {
		pr.out.Write(open)
	}

	if isEmpty && tail == nil {
		if format.has(MultiLine) {
			pr.out.WriteLine()
		} else if format.has(SpaceBetweenBraces) && !format.has(NoSpaceIfEmpty) {
			pr.out.Space()
		}
		if close := format.closeBracket(); close != "" {
			pr.out.Write(close)
		}
		return
	}

	if format.has(Indented) {
		pr.out.IncreaseIndent()
	}

	delimiter := format.delimiter()
	wroteBreak := false
	var previous ast.NodeID

	for i, child := range items {
		if i > 0 {
			pr.out.Write(delimiter)
		}
		var breakHere bool
		if i == 0 {
			breakHere = pr.shouldBreakBeforeFirst(parent, child, format)
		} else {
			breakHere = pr.shouldBreakBetween(previous, child, format)
		}
		switch {
		case breakHere:
			if !pr.out.AtLineStart() {
				pr.out.WriteLine()
			}
			wroteBreak = true
		case i == 0:
			if format.has(SpaceBetweenBraces) {
				pr.out.Space()
			}
		default:
			pr.out.Space()
		}
		emit(child)
		previous = child
	}

	if trailingSep && format.has(AllowTrailingComma) {
		pr.out.Write(delimiter)
	}

	if tail != nil {
		multiLine := wroteBreak || format.has(MultiLine)
		for _, extra := range tail() {
			if multiLine {
				if !pr.out.AtLineStart() {
					pr.out.WriteLine()
				}
			} else {
				pr.out.Space()
			}
			emit(extra)
		}
	}

	if format.has(Indented) {
		pr.out.DecreaseIndent()
	}
	if pr.shouldBreakBeforeClose(parent, previous, format, wroteBreak) {
		if !pr.out.AtLineStart() {
			pr.out.WriteLine()
		}
	} else if !isEmpty && format.has(SpaceBetweenBraces) {
		pr.out.Space()
	}
	if close := format.closeBracket(); close != "" {
		pr.out.Write(close)
	}
}

// shouldBreakBeforeFirst decides the break between the opening bracket and
// the first child. Single-line lists still yield to an explicit
// StartsOnNewLine hint; only a forced flattening ignores it.
func (pr *printer) shouldBreakBeforeFirst(parent, first ast.NodeID, format ListFormat) bool {
	if format.has(MultiLine) {
		return true
	}
	if !format.has(PreserveLines) {
		return !format.has(ForcedSingleLine) && pr.startsOnNewLine(first)
	}
	firstNode := pr.b.Nodes.Get(first)
	parentNode := pr.b.Nodes.Get(parent)
	if pr.originalPositionsUsable(parentNode, firstNode) {
		return pr.linesBetween(parentNode.Span.Start, firstNode.Span.Start) > 0
	}
	if firstNode.Flags.Has(ast.FlagStartsOnNewLine) {
		return true
	}
	return format.has(PreferNewLine)
}

// shouldBreakBetween decides the break for one sibling transition, in
// priority order: forced multi-line, line-preserving positions, synthesized
// hints, the list-wide preference. Single-line lists consult only the
// explicit per-node hint, and a forced flattening not even that.
func (pr *printer) shouldBreakBetween(previous, next ast.NodeID, format ListFormat) bool {
	if format.has(MultiLine) {
		return true
	}
	if !format.has(PreserveLines) {
		return !format.has(ForcedSingleLine) && pr.startsOnNewLine(next)
	}
	nextNode := pr.b.Nodes.Get(next)
	previousNode := pr.b.Nodes.Get(previous)
	if pr.originalPositionsUsable(previousNode, nextNode) {
		return pr.linesBetween(previousNode.Span.End, nextNode.Span.Start) > 0
	}
	if nextNode.Flags.Has(ast.FlagStartsOnNewLine) {
		return true
	}
	return format.has(PreferNewLine)
}

// shouldBreakBeforeClose decides the break between the last child and the
// closing bracket. When source positions are unusable the closing break
// mirrors whether any break was written among the children.
func (pr *printer) shouldBreakBeforeClose(parent, last ast.NodeID, format ListFormat, wroteBreak bool) bool {
	if format.has(NoTrailingNewLine) {
		return false
	}
	if format.has(MultiLine) {
		return true
	}
	if !format.has(PreserveLines) {
		return false
	}
	if last.IsValid() {
		parentNode := pr.b.Nodes.Get(parent)
		lastNode := pr.b.Nodes.Get(last)
		if pr.originalPositionsUsable(lastNode, parentNode) {
			return pr.linesBetween(lastNode.Span.End, parentNode.Span.End) > 0
		}
	}
	return wroteBreak || format.has(PreferNewLine)
}

func (pr *printer) startsOnNewLine(id ast.NodeID) bool {
	node := pr.b.Nodes.Get(id)
	return node != nil && node.Flags.Has(ast.FlagStartsOnNewLine)
}

// originalPositionsUsable reports whether both nodes carry real source
// positions in the current file, so line preservation can consult them.
func (pr *printer) originalPositionsUsable(a, b *ast.Node) bool {
	if pr.sf == nil || a == nil || b == nil {
		return false
	}
	if a.Flags.Has(ast.FlagSynthesized) || b.Flags.Has(ast.FlagSynthesized) {
		return false
	}
	return a.Span.File == pr.sf.ID && b.Span.File == pr.sf.ID
}

func (pr *printer) linesBetween(a, b uint32) uint32 {
	la := pr.sf.LineOf(a)
	lb := pr.sf.LineOf(b)
	if lb < la {
		return 0
	}
	return lb - la
}
