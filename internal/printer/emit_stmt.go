package printer

import (
	"scribe/internal/ast"
	"scribe/internal/transform"
)

func (pr *printer) emitSourceFile(id ast.NodeID) {
	file, ok := pr.b.Nodes.File(id)
	if !ok {
		return
	}
	pr.emitHelpers()
	pr.ctx.StartLexicalEnvironment()
	pr.session.pushTempScope()
	pr.emitListItems(id, file.Stmts, SourceFileBody, pr.emit, pr.ctx.EndLexicalEnvironment)
	pr.session.popTempScope()
	if !pr.out.AtLineStart() {
		pr.out.WriteLine()
	}
}

func (pr *printer) emitBlock(id ast.NodeID, directives transform.Directives) {
	seq, ok := pr.b.Nodes.Seq(id)
	if !ok {
		return
	}
	format := BlockStatements
	if directives.Has(transform.DirectiveSingleLine) {
		format = SingleLineBlock
	}
	pr.emitList(id, seq.Elems, format)
}

func (pr *printer) emitModuleBlock(id ast.NodeID) {
	seq, ok := pr.b.Nodes.Seq(id)
	if !ok {
		return
	}
	pr.ctx.StartLexicalEnvironment()
	pr.session.pushTempScope()
	pr.emitListItems(id, seq.Elems, ModuleBody, pr.emit, pr.ctx.EndLexicalEnvironment)
	pr.session.popTempScope()
}

func (pr *printer) emitVarStatement(id ast.NodeID) {
	w, ok := pr.b.Nodes.Wrap(id)
	if !ok {
		return
	}
	pr.emitModifiers(id)
	pr.emit(w.Expr)
	pr.out.Write(";")
}

func (pr *printer) emitVarDeclList(id ast.NodeID) {
	list, ok := pr.b.Nodes.VarList(id)
	if !ok {
		return
	}
	pr.out.Write(list.Keyword)
	pr.out.Space()
	pr.emitListItems(id, list.Decls, VariableDeclarations, pr.emit, nil)
}

func (pr *printer) emitVarDecl(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.emit(p.Name)
	if p.Value.IsValid() {
		pr.out.Write(" = ")
		pr.emitExpression(p.Value)
	}
}

func (pr *printer) emitExprStatement(id ast.NodeID) {
	w, ok := pr.b.Nodes.Wrap(id)
	if !ok {
		return
	}
	pr.emitExpression(w.Expr)
	pr.out.Write(";")
}

func (pr *printer) emitIf(id ast.NodeID) {
	br, ok := pr.b.Nodes.Branch(id)
	if !ok {
		return
	}
	pr.out.Write("if (")
	pr.emitExpression(br.Cond)
	pr.out.Write(")")
	pr.emitEmbeddedStatement(br.Cons)
	if !br.Alt.IsValid() {
		return
	}
	if !pr.out.AtLineStart() {
		pr.out.WriteLine()
	}
	pr.out.Write("else")
	if node := pr.b.Nodes.Get(br.Alt); node != nil && node.Kind == ast.KindIf {
		pr.out.Space()
		pr.emit(br.Alt)
		return
	}
	pr.emitEmbeddedStatement(br.Alt)
}

func (pr *printer) emitDo(id ast.NodeID) {
	br, ok := pr.b.Nodes.Branch(id)
	if !ok {
		return
	}
	pr.out.Write("do")
	pr.emitEmbeddedStatement(br.Cons)
	if node := pr.b.Nodes.Get(br.Cons); node != nil && node.Kind == ast.KindBlock {
		pr.out.Space()
	} else if !pr.out.AtLineStart() {
		pr.out.WriteLine()
	}
	pr.out.Write("while (")
	pr.emitExpression(br.Cond)
	pr.out.Write(");")
}

func (pr *printer) emitWhile(id ast.NodeID) {
	br, ok := pr.b.Nodes.Branch(id)
	if !ok {
		return
	}
	pr.out.Write("while (")
	pr.emitExpression(br.Cond)
	pr.out.Write(")")
	pr.emitEmbeddedStatement(br.Cons)
}

func (pr *printer) emitFor(id ast.NodeID) {
	f, ok := pr.b.Nodes.For(id)
	if !ok {
		return
	}
	pr.out.Write("for (")
	pr.emitForInit(f.Init)
	pr.out.Write(";")
	if f.Cond.IsValid() {
		pr.out.Space()
		pr.emitExpression(f.Cond)
	}
	pr.out.Write(";")
	if f.Incr.IsValid() {
		pr.out.Space()
		pr.emitExpression(f.Incr)
	}
	pr.out.Write(")")
	pr.emitEmbeddedStatement(f.Body)
}

func (pr *printer) emitForIn(id ast.NodeID, keyword string) {
	f, ok := pr.b.Nodes.ForIn(id)
	if !ok {
		return
	}
	pr.out.Write("for (")
	pr.emitForInit(f.Init)
	pr.out.Space()
	pr.out.Write(keyword)
	pr.out.Space()
	pr.emitExpression(f.Expr)
	pr.out.Write(")")
	pr.emitEmbeddedStatement(f.Body)
}

// emitForInit handles the loop head slot, which holds either a declaration
// list or a plain expression.
func (pr *printer) emitForInit(init ast.NodeID) {
	if !init.IsValid() {
		return
	}
	if node := pr.b.Nodes.Get(init); node != nil && node.Kind == ast.KindVarDeclList {
		pr.emit(init)
		return
	}
	pr.emitExpression(init)
}

// emitKeywordWrap renders return, throw, break, and continue: the keyword,
// an optional operand, a terminating semicolon.
func (pr *printer) emitKeywordWrap(id ast.NodeID, keyword string) {
	w, ok := pr.b.Nodes.Wrap(id)
	if !ok {
		return
	}
	pr.out.Write(keyword)
	if w.Expr.IsValid() {
		pr.out.Space()
		pr.emitExpression(w.Expr)
	}
	pr.out.Write(";")
}

func (pr *printer) emitLabeled(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.emit(p.Name)
	pr.out.Write(": ")
	pr.emit(p.Value)
}

func (pr *printer) emitTry(id ast.NodeID) {
	t, ok := pr.b.Nodes.Try(id)
	if !ok {
		return
	}
	pr.out.Write("try")
	pr.out.Space()
	pr.emit(t.Block)
	if t.Catch.IsValid() {
		if !pr.out.AtLineStart() {
			pr.out.WriteLine()
		}
		pr.out.Write("catch")
		if t.CatchVar.IsValid() {
			pr.out.Write(" (")
			pr.emit(t.CatchVar)
			pr.out.Write(")")
		}
		pr.out.Space()
		pr.emit(t.Catch)
	}
	if t.Finally.IsValid() {
		if !pr.out.AtLineStart() {
			pr.out.WriteLine()
		}
		pr.out.Write("finally")
		pr.out.Space()
		pr.emit(t.Finally)
	}
}

func (pr *printer) emitSwitch(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.out.Write("switch (")
	pr.emitExpression(p.Name)
	pr.out.Write(")")
	pr.out.Space()
	pr.emit(p.Value)
}

func (pr *printer) emitCaseBlock(id ast.NodeID) {
	seq, ok := pr.b.Nodes.Seq(id)
	if !ok {
		return
	}
	pr.emitList(id, seq.Elems, CaseBlockClauses)
}

func (pr *printer) emitCaseClause(id ast.NodeID) {
	c, ok := pr.b.Nodes.Case(id)
	if !ok {
		return
	}
	pr.out.Write("case ")
	pr.emitExpression(c.Expr)
	pr.out.Write(":")
	pr.emitList(id, c.Stmts, CaseClauseBody|OptionalIfEmpty)
}

func (pr *printer) emitDefaultClause(id ast.NodeID) {
	c, ok := pr.b.Nodes.Case(id)
	if !ok {
		return
	}
	pr.out.Write("default:")
	pr.emitList(id, c.Stmts, CaseClauseBody|OptionalIfEmpty)
}

func (pr *printer) emitFunctionDecl(id ast.NodeID) {
	pr.emitModifiers(id)
	pr.emitFunction(id, "function")
}

func (pr *printer) emitClassDecl(id ast.NodeID) {
	pr.emitModifiers(id)
	pr.emitClass(id)
}

func (pr *printer) emitMethod(id ast.NodeID) {
	fn, ok := pr.b.Nodes.Func(id)
	if !ok {
		return
	}
	pr.emitModifiers(id)
	pr.emit(fn.Name)
	pr.emitListItems(id, fn.Params, Parameters, pr.emit, nil)
	pr.emitFunctionBody(fn.Body)
}

func (pr *printer) emitConstructor(id ast.NodeID) {
	fn, ok := pr.b.Nodes.Func(id)
	if !ok {
		return
	}
	pr.out.Write("constructor")
	pr.emitListItems(id, fn.Params, Parameters, pr.emit, nil)
	pr.emitFunctionBody(fn.Body)
}

func (pr *printer) emitAccessor(id ast.NodeID, keyword string) {
	fn, ok := pr.b.Nodes.Func(id)
	if !ok {
		return
	}
	pr.emitModifiers(id)
	pr.out.Write(keyword)
	pr.out.Space()
	pr.emit(fn.Name)
	pr.emitListItems(id, fn.Params, Parameters, pr.emit, nil)
	pr.emitFunctionBody(fn.Body)
}

func (pr *printer) emitPropertyDecl(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.emitModifiers(id)
	pr.emit(p.Name)
	if p.Value.IsValid() {
		pr.out.Write(" = ")
		pr.emitExpression(p.Value)
	}
	pr.out.Write(";")
}

func (pr *printer) emitEnumDecl(id ast.NodeID) {
	e, ok := pr.b.Nodes.Enum(id)
	if !ok {
		return
	}
	pr.emitModifiers(id)
	pr.out.Write("enum ")
	pr.emit(e.Name)
	pr.out.Space()
	pr.session.pushTempScope()
	pr.emitList(id, e.Members, EnumMembers)
	pr.session.popTempScope()
}

func (pr *printer) emitEnumMember(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.emit(p.Name)
	if p.Value.IsValid() {
		pr.out.Write(" = ")
		pr.emitExpression(p.Value)
	}
}

func (pr *printer) emitModuleDecl(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.emitModifiers(id)
	pr.out.Write("namespace ")
	pr.emit(p.Name)
	pr.out.Space()
	pr.emit(p.Value)
}

func (pr *printer) emitImportDecl(id ast.NodeID) {
	imp, ok := pr.b.Nodes.Import(id)
	if !ok {
		return
	}
	pr.out.Write("import ")
	bound := false
	if imp.Name.IsValid() {
		pr.emit(imp.Name)
		bound = true
	}
	if imp.Bindings.IsValid() {
		if bound {
			pr.out.Write(", ")
		}
		pr.emitListItems(id, imp.Bindings, NamedImports, pr.emit, nil)
		bound = true
	}
	if bound {
		pr.out.Write(" from ")
	}
	pr.emit(imp.Module)
	pr.out.Write(";")
}

func (pr *printer) emitImportSpecifier(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.emit(p.Name)
	if p.Value.IsValid() {
		pr.out.Write(" as ")
		pr.emit(p.Value)
	}
}

func (pr *printer) emitExportDecl(id ast.NodeID) {
	imp, ok := pr.b.Nodes.Import(id)
	if !ok {
		return
	}
	node := pr.b.Nodes.Get(id)
	if node.Flags.Has(ast.FlagExportStar) {
		pr.out.Write("export *")
		if imp.Module.IsValid() {
			pr.out.Write(" from ")
			pr.emit(imp.Module)
		}
		pr.out.Write(";")
		return
	}
	pr.out.Write("export ")
	pr.emitListItems(id, imp.Bindings, NamedImports, pr.emit, nil)
	if imp.Module.IsValid() {
		pr.out.Write(" from ")
		pr.emit(imp.Module)
	}
	pr.out.Write(";")
}

func (pr *printer) emitExportAssign(id ast.NodeID) {
	w, ok := pr.b.Nodes.Wrap(id)
	if !ok {
		return
	}
	pr.out.Write("export default ")
	pr.emitExpression(w.Expr)
	pr.out.Write(";")
}

// emitModifiers writes the flag-carried prefixes of a declaration.
func (pr *printer) emitModifiers(id ast.NodeID) {
	node := pr.b.Nodes.Get(id)
	if node == nil {
		return
	}
	if node.Flags.Has(ast.FlagExported) {
		pr.out.Write("export ")
		if node.Flags.Has(ast.FlagDefault) {
			pr.out.Write("default ")
		}
	}
	if node.Flags.Has(ast.FlagStatic) {
		pr.out.Write("static ")
	}
}

// emitEmbeddedStatement renders a loop or branch body: blocks sit on the
// same line after one space, anything else moves to an indented next line.
func (pr *printer) emitEmbeddedStatement(stmt ast.NodeID) {
	if node := pr.b.Nodes.Get(stmt); node != nil && node.Kind == ast.KindBlock {
		pr.out.Space()
		pr.emit(stmt)
		return
	}
	pr.out.WriteLine()
	pr.out.IncreaseIndent()
	pr.emit(stmt)
	pr.out.DecreaseIndent()
}
