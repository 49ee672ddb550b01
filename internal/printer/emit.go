package printer

import (
	"scribe/internal/ast"
	"scribe/internal/transform"
)

// emit is the general entry point for statements, declarations, and any
// node reached outside an expression position.
func (pr *printer) emit(id ast.NodeID) {
	pr.emitWorker(id, false)
}

// emitExpression is the expression entry point; it additionally consults
// the substitution hooks before dispatch.
func (pr *printer) emitExpression(id ast.NodeID) {
	pr.emitWorker(id, true)
}

func (pr *printer) emitWorker(id ast.NodeID, expression bool) {
	if !id.IsValid() {
		return
	}
	id = pr.substitute(id, expression)
	node := pr.b.Nodes.Get(id)
	if node == nil {
		return
	}

	// The notifier may wrap the default emission in arbitrary before/after
	// behavior; the pipeline below stays identical either way.
	if n := pr.ctx.Notifier(); n != nil && n.Enabled(id) {
		n.Emit(id, func(wrapped ast.NodeID) {
			pr.emitWithContext(wrapped)
		})
		return
	}
	pr.emitWithContext(id)
}

// substitute runs the identifier or expression hook. A replacement node is
// tagged to forbid re-substitution, preventing cycles; the original is not
// emitted.
func (pr *printer) substitute(id ast.NodeID, expression bool) ast.NodeID {
	node := pr.b.Nodes.Get(id)
	if node == nil {
		return id
	}
	if pr.ctx.GetDirectives(id).Has(transform.DirectiveNoSubstitution) {
		return id
	}

	var sub ast.NodeID
	switch {
	case node.Kind == ast.KindIdent:
		sub = pr.ctx.SubstituteIdentifier(id)
	case expression && node.Kind.IsExpression():
		sub = pr.ctx.SubstituteExpression(id)
	default:
		return id
	}
	if sub != id && sub.IsValid() {
		pr.ctx.AddDirectives(sub, transform.DirectiveNoSubstitution)
		return sub
	}
	return id
}

// emitWithContext wraps kind dispatch with the uniform pipeline: leading
// comments, the paired position marks, the optional indentation request,
// trailing comments. Every kind goes through the same wrapping.
func (pr *printer) emitWithContext(id ast.NodeID) {
	node := pr.b.Nodes.Get(id)
	if node == nil {
		return
	}
	directives := pr.ctx.GetDirectives(id)
	synthesized := node.Flags.Has(ast.FlagSynthesized)

	emitComments := !pr.opts.RemoveComments &&
		!directives.Has(transform.DirectiveNoComments) &&
		!synthesized && pr.sf != nil
	emitSourceMap := !directives.Has(transform.DirectiveNoSourceMap) &&
		!synthesized

	if emitComments {
		pr.cw.EmitLeading(node.Span.Start)
	}

	if emitSourceMap {
		pr.sm.EmitStart(node.Span)
	}
	if directives.Has(transform.DirectiveIndent) {
		pr.out.IncreaseIndent()
	}

	pr.emitNode(id, node, directives)

	if directives.Has(transform.DirectiveIndent) {
		pr.out.DecreaseIndent()
	}
	if emitSourceMap {
		pr.sm.EmitEnd(node.Span)
	}

	if emitComments {
		pr.cw.EmitTrailing(node.Span.End)
	}
}

// emitNode dispatches to the kind-specific emitter. Kinds with no emitter
// produce nothing; that is deliberate for decorative and marker kinds.
func (pr *printer) emitNode(id ast.NodeID, node *ast.Node, directives transform.Directives) {
	switch node.Kind {
	// Names and literals.
	case ast.KindIdent:
		pr.emitIdent(id)
	case ast.KindNumberLit, ast.KindStringLit, ast.KindRegexLit, ast.KindTemplateLit:
		pr.emitLiteral(id)
	case ast.KindTrueLit:
		pr.out.Write("true")
	case ast.KindFalseLit:
		pr.out.Write("false")
	case ast.KindNullLit:
		pr.out.Write("null")
	case ast.KindThis:
		pr.out.Write("this")
	case ast.KindSuper:
		pr.out.Write("super")

	// Expressions.
	case ast.KindParen:
		pr.emitParen(id)
	case ast.KindSpread:
		pr.emitSpread(id)
	case ast.KindPropertyAccess:
		pr.emitPropertyAccess(id)
	case ast.KindElementAccess:
		pr.emitElementAccess(id)
	case ast.KindCall:
		pr.emitCall(id)
	case ast.KindNew:
		pr.emitNew(id)
	case ast.KindPrefixUnary:
		pr.emitPrefixUnary(id)
	case ast.KindPostfixUnary:
		pr.emitPostfixUnary(id)
	case ast.KindBinary:
		pr.emitBinary(id)
	case ast.KindConditional:
		pr.emitConditional(id)
	case ast.KindFunctionExpr:
		pr.emitFunction(id, "function")
	case ast.KindArrowFunction:
		pr.emitArrowFunction(id)
	case ast.KindClassExpr:
		pr.emitClass(id)
	case ast.KindObjectLit:
		pr.emitObjectLiteral(id, directives)
	case ast.KindArrayLit:
		pr.emitArrayLiteral(id, directives)
	case ast.KindPropertyAssign:
		pr.emitPropertyAssignment(id)
	case ast.KindShorthandProperty:
		pr.emitShorthandProperty(id)

	// Statements and declarations.
	case ast.KindSourceFile:
		pr.emitSourceFile(id)
	case ast.KindBlock:
		pr.emitBlock(id, directives)
	case ast.KindModuleBlock:
		pr.emitModuleBlock(id)
	case ast.KindVarStatement:
		pr.emitVarStatement(id)
	case ast.KindVarDeclList:
		pr.emitVarDeclList(id)
	case ast.KindVarDecl:
		pr.emitVarDecl(id)
	case ast.KindExprStatement:
		pr.emitExprStatement(id)
	case ast.KindEmptyStatement:
		pr.out.Write(";")
	case ast.KindIf:
		pr.emitIf(id)
	case ast.KindDo:
		pr.emitDo(id)
	case ast.KindWhile:
		pr.emitWhile(id)
	case ast.KindFor:
		pr.emitFor(id)
	case ast.KindForIn:
		pr.emitForIn(id, "in")
	case ast.KindForOf:
		pr.emitForIn(id, "of")
	case ast.KindReturn:
		pr.emitKeywordWrap(id, "return")
	case ast.KindThrow:
		pr.emitKeywordWrap(id, "throw")
	case ast.KindBreak:
		pr.emitKeywordWrap(id, "break")
	case ast.KindContinue:
		pr.emitKeywordWrap(id, "continue")
	case ast.KindLabeled:
		pr.emitLabeled(id)
	case ast.KindTry:
		pr.emitTry(id)
	case ast.KindSwitch:
		pr.emitSwitch(id)
	case ast.KindCaseBlock:
		pr.emitCaseBlock(id)
	case ast.KindCaseClause:
		pr.emitCaseClause(id)
	case ast.KindDefaultClause:
		pr.emitDefaultClause(id)
	case ast.KindDebugger:
		pr.out.Write("debugger;")
	case ast.KindFunctionDecl:
		pr.emitFunctionDecl(id)
	case ast.KindClassDecl:
		pr.emitClassDecl(id)
	case ast.KindMethod:
		pr.emitMethod(id)
	case ast.KindConstructor:
		pr.emitConstructor(id)
	case ast.KindGetAccessor:
		pr.emitAccessor(id, "get")
	case ast.KindSetAccessor:
		pr.emitAccessor(id, "set")
	case ast.KindPropertyDecl:
		pr.emitPropertyDecl(id)
	case ast.KindEnumDecl:
		pr.emitEnumDecl(id)
	case ast.KindEnumMember:
		pr.emitEnumMember(id)
	case ast.KindModuleDecl:
		pr.emitModuleDecl(id)
	case ast.KindImportDecl:
		pr.emitImportDecl(id)
	case ast.KindImportSpecifier, ast.KindExportSpecifier:
		pr.emitImportSpecifier(id)
	case ast.KindExportDecl:
		pr.emitExportDecl(id)
	case ast.KindExportAssign:
		pr.emitExportAssign(id)
	}
}
