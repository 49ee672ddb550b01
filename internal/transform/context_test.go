package transform

import (
	"testing"

	"scribe/internal/ast"
	"scribe/internal/source"
)

func TestDirectiveSideTable(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	ctx := NewContext(b, Options{})
	n := b.NewIdent(source.Span{}, "x")

	if got := ctx.GetDirectives(n); got != 0 {
		t.Fatalf("fresh node directives = %v, want 0", got)
	}
	ctx.AddDirectives(n, DirectiveNoComments)
	ctx.AddDirectives(n, DirectiveEmitExtends)
	got := ctx.GetDirectives(n)
	if !got.Has(DirectiveNoComments) || !got.Has(DirectiveEmitExtends) {
		t.Errorf("directives = %v, want merged bits", got)
	}
	if got.Has(DirectiveSingleLine) {
		t.Errorf("unexpected DirectiveSingleLine in %v", got)
	}
}

func TestLexicalEnvironmentHoisting(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	ctx := NewContext(b, Options{})

	ctx.StartLexicalEnvironment()
	ctx.StartLexicalEnvironment()
	ctx.HoistVariableDeclaration(b.NewIdent(source.Span{}, "_a"))
	ctx.HoistVariableDeclaration(b.NewIdent(source.Span{}, "_b"))

	inner := ctx.EndLexicalEnvironment()
	if len(inner) != 1 {
		t.Fatalf("inner hoisted statements = %d, want 1", len(inner))
	}
	stmt := b.Nodes.Get(inner[0])
	if stmt.Kind != ast.KindVarStatement || !stmt.Flags.Has(ast.FlagSynthesized) {
		t.Fatalf("hoisted statement = %+v", stmt)
	}
	wrap, _ := b.Nodes.Wrap(inner[0])
	varList, ok := b.Nodes.VarList(wrap.Expr)
	if !ok || varList.Keyword != "var" {
		t.Fatalf("hoisted decl list = %+v, %v", varList, ok)
	}
	if got := len(b.Lists.Nodes(varList.Decls)); got != 2 {
		t.Errorf("hoisted declarators = %d, want 2", got)
	}

	// The outer environment saw nothing.
	if outer := ctx.EndLexicalEnvironment(); outer != nil {
		t.Errorf("outer hoisted statements = %v, want nil", outer)
	}
	if ctx.EnvironmentDepth() != 0 {
		t.Errorf("environment depth = %d, want 0", ctx.EnvironmentDepth())
	}
}

func TestSubstitutionDefaultsToIdentity(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	n := b.NewIdent(source.Span{}, "x")

	ctx := NewContext(b, Options{})
	if got := ctx.SubstituteExpression(n); got != n {
		t.Errorf("identity substitution = %d, want %d", got, n)
	}

	repl := b.NewIdent(source.Span{}, "y")
	ctx = NewContext(b, Options{
		SubstituteExpression: func(node ast.NodeID) ast.NodeID {
			if node == n {
				return repl
			}
			return node
		},
	})
	if got := ctx.SubstituteExpression(n); got != repl {
		t.Errorf("substitution = %d, want %d", got, repl)
	}
}
