package printer

import (
	"strconv"
	"strings"

	"scribe/internal/ast"
)

// tryConstantFold replaces a property or element access whose value the
// checker proved constant with the literal number, annotated with the
// source access text. Folding needs whole-program knowledge, so isolated
// module passes skip it.
func (pr *printer) tryConstantFold(id ast.NodeID) bool {
	if pr.opts.IsolatedModules || pr.res == nil {
		return false
	}
	value, ok := pr.res.ConstantValue(id)
	if !ok {
		return false
	}
	pr.out.Write(formatConstant(value))
	if !pr.opts.RemoveComments {
		if text := pr.accessText(id); text != "" {
			pr.out.Write(" /* " + text + " */")
		}
	}
	return true
}

// accessText rebuilds the dotted source text of an access chain for the
// fold annotation. Chains involving generated names or non-literal indices
// yield no annotation.
func (pr *printer) accessText(id ast.NodeID) string {
	node := pr.b.Nodes.Get(id)
	if node == nil {
		return ""
	}
	switch node.Kind {
	case ast.KindIdent:
		if ident, ok := pr.b.Nodes.Ident(id); ok && ident.Gen == ast.GenNone {
			return ident.Text
		}
	case ast.KindPropertyAccess:
		acc, ok := pr.b.Nodes.Access(id)
		if !ok {
			return ""
		}
		left := pr.accessText(acc.Expr)
		right := pr.accessText(acc.Arg)
		if left == "" || right == "" {
			return ""
		}
		return left + "." + right
	case ast.KindElementAccess:
		acc, ok := pr.b.Nodes.Access(id)
		if !ok {
			return ""
		}
		left := pr.accessText(acc.Expr)
		lit, okLit := pr.b.Nodes.Lit(acc.Arg)
		if left == "" || !okLit {
			return ""
		}
		return left + "[" + lit.Text + "]"
	}
	return ""
}

func formatConstant(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// needsDotDot reports whether target, as the object of a property access,
// would end in a bare integer and therefore needs the extra period:
// 1..toString() parses, 1.toString() does not. A fraction already contains
// a period, and the fold annotation comment also breaks adjacency.
func (pr *printer) needsDotDot(target ast.NodeID) bool {
	node := pr.b.Nodes.Get(target)
	if node == nil {
		return false
	}
	switch node.Kind {
	case ast.KindNumberLit:
		lit, ok := pr.b.Nodes.Lit(target)
		return ok && isBareInteger(lit.Text)
	case ast.KindPropertyAccess, ast.KindElementAccess:
		if pr.opts.IsolatedModules || pr.res == nil {
			return false
		}
		value, ok := pr.res.ConstantValue(target)
		if !ok {
			return false
		}
		if !pr.opts.RemoveComments && pr.accessText(target) != "" {
			return false
		}
		return isBareInteger(formatConstant(value))
	}
	return false
}

// isBareInteger reports whether a numeric token is plain digits, with no
// period, exponent, or radix prefix.
func isBareInteger(text string) bool {
	if text == "" {
		return false
	}
	return !strings.ContainsAny(text, ".eExXbBoO")
}
