package printer

import (
	"strings"

	"scribe/internal/ast"
	"scribe/internal/transform"
)

func (pr *printer) emitIdent(id ast.NodeID) {
	ident, ok := pr.b.Nodes.Ident(id)
	if !ok {
		return
	}
	pr.out.Write(pr.resolveName(id, ident))
}

func (pr *printer) emitLiteral(id ast.NodeID) {
	lit, ok := pr.b.Nodes.Lit(id)
	if !ok {
		return
	}
	pr.out.Write(lit.Text)
}

func (pr *printer) emitParen(id ast.NodeID) {
	w, ok := pr.b.Nodes.Wrap(id)
	if !ok {
		return
	}
	pr.out.Write("(")
	pr.emitExpression(w.Expr)
	pr.out.Write(")")
}

func (pr *printer) emitSpread(id ast.NodeID) {
	w, ok := pr.b.Nodes.Wrap(id)
	if !ok {
		return
	}
	pr.out.Write("...")
	pr.emitExpression(w.Expr)
}

func (pr *printer) emitPropertyAccess(id ast.NodeID) {
	if pr.tryConstantFold(id) {
		return
	}
	acc, ok := pr.b.Nodes.Access(id)
	if !ok {
		return
	}
	pr.emitExpression(acc.Expr)
	if pr.needsDotDot(acc.Expr) {
		pr.out.Write(".")
	}
	pr.out.Write(".")
	pr.emit(acc.Arg)
}

func (pr *printer) emitElementAccess(id ast.NodeID) {
	if pr.tryConstantFold(id) {
		return
	}
	acc, ok := pr.b.Nodes.Access(id)
	if !ok {
		return
	}
	pr.emitExpression(acc.Expr)
	pr.out.Write("[")
	pr.emitExpression(acc.Arg)
	pr.out.Write("]")
}

func (pr *printer) emitCall(id ast.NodeID) {
	call, ok := pr.b.Nodes.Call(id)
	if !ok {
		return
	}
	pr.emitExpression(call.Expr)
	pr.emitExpressionList(id, call.Args, ArgumentList)
}

func (pr *printer) emitNew(id ast.NodeID) {
	call, ok := pr.b.Nodes.Call(id)
	if !ok {
		return
	}
	pr.out.Write("new ")
	pr.emitExpression(call.Expr)
	pr.emitExpressionList(id, call.Args, ArgumentList)
}

func (pr *printer) emitPrefixUnary(id ast.NodeID) {
	u, ok := pr.b.Nodes.Unary(id)
	if !ok {
		return
	}
	pr.out.Write(u.Op)
	if prefixNeedsSpace(u.Op) || pr.operandRepeatsSign(u.Op, u.Operand) {
		pr.out.Space()
	}
	pr.emitExpression(u.Operand)
}

func (pr *printer) emitPostfixUnary(id ast.NodeID) {
	u, ok := pr.b.Nodes.Unary(id)
	if !ok {
		return
	}
	pr.emitExpression(u.Operand)
	pr.out.Write(u.Op)
}

// prefixNeedsSpace reports whether the operator is a keyword that must be
// separated from its operand.
func prefixNeedsSpace(op string) bool {
	switch op {
	case "typeof", "void", "delete":
		return true
	}
	return false
}

// operandRepeatsSign guards against gluing -(-x) into --x and +(+x) into
// ++x, which parse as update operators.
func (pr *printer) operandRepeatsSign(op string, operand ast.NodeID) bool {
	if op != "+" && op != "-" {
		return false
	}
	node := pr.b.Nodes.Get(operand)
	if node == nil || node.Kind != ast.KindPrefixUnary {
		return false
	}
	inner, ok := pr.b.Nodes.Unary(operand)
	return ok && strings.HasPrefix(inner.Op, op)
}

func (pr *printer) emitBinary(id ast.NodeID) {
	bin, ok := pr.b.Nodes.Binary(id)
	if !ok {
		return
	}
	pr.emitExpression(bin.Left)
	if bin.Op == "," {
		pr.out.Write(", ")
	} else {
		pr.out.Space()
		pr.out.Write(bin.Op)
		pr.out.Space()
	}
	pr.emitExpression(bin.Right)
}

func (pr *printer) emitConditional(id ast.NodeID) {
	br, ok := pr.b.Nodes.Branch(id)
	if !ok {
		return
	}
	pr.emitExpression(br.Cond)
	pr.out.Write(" ? ")
	pr.emitExpression(br.Cons)
	pr.out.Write(" : ")
	pr.emitExpression(br.Alt)
}

// emitFunction renders function declarations and expressions. Anonymous
// functions keep a space before the parameter list.
func (pr *printer) emitFunction(id ast.NodeID, keyword string) {
	fn, ok := pr.b.Nodes.Func(id)
	if !ok {
		return
	}
	pr.out.Write(keyword)
	pr.out.Space()
	if fn.Name.IsValid() {
		pr.emit(fn.Name)
	}
	pr.emitListItems(id, fn.Params, Parameters, pr.emit, nil)
	pr.emitFunctionBody(fn.Body)
}

func (pr *printer) emitArrowFunction(id ast.NodeID) {
	fn, ok := pr.b.Nodes.Func(id)
	if !ok {
		return
	}
	pr.emitListItems(id, fn.Params, Parameters, pr.emit, nil)
	pr.out.Write(" =>")
	if node := pr.b.Nodes.Get(fn.Body); node != nil && node.Kind == ast.KindBlock {
		pr.emitFunctionBody(fn.Body)
		return
	}
	pr.out.Space()
	pr.emitExpression(fn.Body)
}

func (pr *printer) emitClass(id ast.NodeID) {
	cls, ok := pr.b.Nodes.Class(id)
	if !ok {
		return
	}
	pr.out.Write("class")
	if cls.Name.IsValid() {
		pr.out.Space()
		pr.emit(cls.Name)
	}
	if cls.Heritage.IsValid() {
		pr.out.Write(" extends ")
		pr.emitExpression(cls.Heritage)
	}
	pr.out.Space()
	pr.session.pushTempScope()
	pr.emitList(id, cls.Members, ClassMembers)
	pr.session.popTempScope()
}

func (pr *printer) emitObjectLiteral(id ast.NodeID, directives transform.Directives) {
	seq, ok := pr.b.Nodes.Seq(id)
	if !ok {
		return
	}
	format := ObjectProperties
	if directives.Has(transform.DirectiveSingleLine) {
		format = CommaDelimited | ForcedSingleLine | Braces | SpaceBetweenBraces | NoSpaceIfEmpty
	}
	pr.emitIndentedLiteral(id, seq.Elems, format)
}

func (pr *printer) emitArrayLiteral(id ast.NodeID, directives transform.Directives) {
	seq, ok := pr.b.Nodes.Seq(id)
	if !ok {
		return
	}
	format := ArrayElements
	if directives.Has(transform.DirectiveSingleLine) {
		format = CommaDelimited | ForcedSingleLine | Brackets
	}
	pr.emitIndentedLiteral(id, seq.Elems, format)
}

// emitIndentedLiteral renders an object or array body. An indented literal
// is its own temp-name scope; the flattened directive form is not.
func (pr *printer) emitIndentedLiteral(id ast.NodeID, elems ast.ListID, format ListFormat) {
	if !format.has(Indented) {
		pr.emitExpressionList(id, elems, format)
		return
	}
	pr.session.pushTempScope()
	pr.emitExpressionList(id, elems, format)
	pr.session.popTempScope()
}

func (pr *printer) emitPropertyAssignment(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.emit(p.Name)
	pr.out.Write(": ")
	pr.emitExpression(p.Value)
}

func (pr *printer) emitShorthandProperty(id ast.NodeID) {
	p, ok := pr.b.Nodes.Pair(id)
	if !ok {
		return
	}
	pr.emit(p.Name)
}
