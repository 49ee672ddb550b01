package printer

import (
	"strings"
	"testing"

	"scribe/internal/ast"
	"scribe/internal/resolver"
	"scribe/internal/source"
	"scribe/internal/transform"
)

// fixture bundles the collaborators of one print run so tests can build a
// tree, tweak directives, and print it.
type fixture struct {
	fs   *source.FileSet
	file source.FileID
	b    *ast.Builder
	ctx  *transform.Context
}

func newFixture(content string, topts transform.Options) *fixture {
	fs := source.NewFileSet()
	file := fs.AddVirtual("main.src", []byte(content))
	b := ast.NewBuilder(ast.Hints{})
	return &fixture{
		fs:   fs,
		file: file,
		b:    b,
		ctx:  transform.NewContext(b, topts),
	}
}

func (f *fixture) sourceFile(stmts ...ast.NodeID) ast.NodeID {
	return f.b.NewSourceFile(source.Span{File: f.file}, f.file, f.b.NewList(stmts))
}

func (f *fixture) ident(text string) ast.NodeID {
	return f.b.NewIdent(source.Span{File: f.file}, text)
}

func (f *fixture) number(text string) ast.NodeID {
	return f.b.NewLit(ast.KindNumberLit, source.Span{File: f.file}, text)
}

func (f *fixture) exprStmt(expr ast.NodeID) ast.NodeID {
	return f.b.NewWrapped(ast.KindExprStatement, source.Span{File: f.file}, expr)
}

func (f *fixture) varStmt(name string, value ast.NodeID) ast.NodeID {
	decl := f.b.NewPair(ast.KindVarDecl, source.Span{File: f.file}, f.ident(name), value)
	list := f.b.NewVarList(source.Span{File: f.file}, "var", f.b.NewList([]ast.NodeID{decl}))
	return f.b.NewWrapped(ast.KindVarStatement, source.Span{File: f.file}, list)
}

func (f *fixture) block(stmts ...ast.NodeID) ast.NodeID {
	return f.b.NewSeq(ast.KindBlock, source.Span{File: f.file}, f.b.NewList(stmts))
}

func (f *fixture) call(callee ast.NodeID, args ...ast.NodeID) ast.NodeID {
	return f.b.NewCall(ast.KindCall, source.Span{File: f.file}, callee, f.b.NewList(args))
}

func (f *fixture) print(t *testing.T, opts Options, res resolver.Interface, root ast.NodeID) Result {
	t.Helper()
	result, err := New(opts, res, nil).PrintFile(f.ctx, f.fs.Get(f.file), root)
	if err != nil {
		t.Fatalf("PrintFile: %v", err)
	}
	return result
}

func TestPrintStatements(t *testing.T) {
	f := newFixture("", transform.Options{})
	root := f.sourceFile(
		f.varStmt("x", f.number("1")),
		f.exprStmt(f.call(f.ident("foo"), f.ident("x"), f.number("2"))),
	)
	got := f.print(t, Options{}, nil, root).Text
	want := "var x = 1;\nfoo(x, 2);\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintIfElseLayout(t *testing.T) {
	f := newFixture("", transform.Options{})
	cons := f.block(f.b.NewWrapped(ast.KindReturn, source.Span{File: f.file}, f.number("1")))
	alt := f.exprStmt(f.b.NewBinary(source.Span{File: f.file}, f.ident("y"), "=", f.number("2")))
	root := f.sourceFile(f.b.NewBranch(ast.KindIf, source.Span{File: f.file}, f.ident("x"), cons, alt))
	got := f.print(t, Options{}, nil, root).Text
	want := "if (x) {\n    return 1;\n}\nelse\n    y = 2;\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintNestedBinaryKeepsExplicitParens(t *testing.T) {
	f := newFixture("", transform.Options{})
	inner := f.b.NewWrapped(ast.KindParen, source.Span{File: f.file},
		f.b.NewBinary(source.Span{File: f.file}, f.ident("a"), "+", f.ident("b")))
	root := f.sourceFile(f.exprStmt(
		f.b.NewBinary(source.Span{File: f.file}, inner, "*", f.ident("c"))))
	got := f.print(t, Options{}, nil, root).Text
	if want := "(a + b) * c;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAutoNamesSkipReservedSlots(t *testing.T) {
	f := newFixture("", transform.Options{})
	var stmts []ast.NodeID
	for i := 0; i < 9; i++ {
		stmts = append(stmts, f.exprStmt(f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID)))
	}
	got := f.print(t, Options{}, nil, f.sourceFile(stmts...)).Text
	want := "_a;\n_b;\n_c;\n_d;\n_e;\n_f;\n_g;\n_h;\n_j;\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAutoNamesAvoidSourceIdentifiers(t *testing.T) {
	f := newFixture("var _a = _b;", transform.Options{})
	root := f.sourceFile(f.exprStmt(f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID)))
	got := f.print(t, Options{}, nil, root).Text
	if want := "_c;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGeneratedNameIsStablePerNode(t *testing.T) {
	f := newFixture("", transform.Options{})
	temp := f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID)
	root := f.sourceFile(f.exprStmt(temp), f.exprStmt(temp))
	got := f.print(t, Options{}, nil, root).Text
	if want := "_a;\n_a;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLoopNamePreference(t *testing.T) {
	f := newFixture("", transform.Options{})
	root := f.sourceFile(
		f.exprStmt(f.b.NewGenerated(ast.GenLoop, "", ast.NoNodeID)),
		f.exprStmt(f.b.NewGenerated(ast.GenLoop, "", ast.NoNodeID)),
		f.exprStmt(f.b.NewGenerated(ast.GenLoop, "", ast.NoNodeID)),
	)
	got := f.print(t, Options{}, nil, root).Text
	if want := "_i;\n_n;\n_a;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUniqueNameSuffix(t *testing.T) {
	f := newFixture("var tmp_1;", transform.Options{})
	root := f.sourceFile(
		f.exprStmt(f.b.NewGenerated(ast.GenUnique, "tmp", ast.NoNodeID)),
		f.exprStmt(f.b.NewGenerated(ast.GenUnique, "tmp", ast.NoNodeID)),
	)
	got := f.print(t, Options{}, nil, root).Text
	if want := "tmp_2;\ntmp_3;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNodeDerivedName(t *testing.T) {
	f := newFixture("function helper() {}", transform.Options{})
	fn := f.b.NewFunc(ast.KindFunctionDecl, source.Span{File: f.file},
		f.ident("helper"), f.b.NewList(nil), f.block())
	clone := f.b.Clone(fn)
	root := f.sourceFile(f.exprStmt(f.b.NewGenerated(ast.GenNode, "", clone)))
	got := f.print(t, Options{}, nil, root).Text
	if want := "helper_1;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSiblingBodiesRestartTempNames(t *testing.T) {
	f := newFixture("", transform.Options{})
	makeFn := func(name string) ast.NodeID {
		body := f.block(f.exprStmt(f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID)))
		return f.b.NewFunc(ast.KindFunctionDecl, source.Span{File: f.file},
			f.ident(name), f.b.NewList(nil), body)
	}
	got := f.print(t, Options{}, nil, f.sourceFile(makeFn("one"), makeFn("two"))).Text
	if strings.Count(got, "_a;") != 2 {
		t.Fatalf("sibling bodies should both use _a, got %q", got)
	}
}

// hoistNotifier hoists a declaration right before its trigger node emits,
// the way a lowering transform would.
type hoistNotifier struct {
	ctx     *transform.Context
	trigger ast.NodeID
	name    func() ast.NodeID
}

func (h *hoistNotifier) Enabled(node ast.NodeID) bool { return node == h.trigger }

func (h *hoistNotifier) Emit(node ast.NodeID, emitFn func(ast.NodeID)) {
	h.ctx.HoistVariableDeclaration(h.name())
	emitFn(node)
}

func TestHoistedDeclarationsSurfaceInBody(t *testing.T) {
	n := &hoistNotifier{}
	f := newFixture("", transform.Options{Notifier: n})
	n.ctx = f.ctx
	n.name = func() ast.NodeID { return f.ident("tmp") }

	use := f.exprStmt(f.call(f.ident("use"), f.ident("tmp")))
	n.trigger = use
	fn := f.b.NewFunc(ast.KindFunctionDecl, source.Span{File: f.file},
		f.ident("f"), f.b.NewList(nil), f.block(use))
	got := f.print(t, Options{}, nil, f.sourceFile(fn)).Text
	want := "function f() {\n    use(tmp);\n    var tmp;\n}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHoistAtFileScope(t *testing.T) {
	n := &hoistNotifier{}
	f := newFixture("", transform.Options{Notifier: n})
	n.ctx = f.ctx
	n.name = func() ast.NodeID { return f.ident("shared") }

	use := f.exprStmt(f.ident("shared"))
	n.trigger = use
	got := f.print(t, Options{}, nil, f.sourceFile(use)).Text
	want := "shared;\nvar shared;\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHelpersEmittedInPriorityOrder(t *testing.T) {
	f := newFixture("", transform.Options{})
	stmt := f.exprStmt(f.ident("x"))
	root := f.sourceFile(stmt)
	f.ctx.AddDirectives(stmt, transform.DirectiveEmitAwaiter|transform.DirectiveEmitExtends)

	got := f.print(t, Options{}, nil, root).Text
	extends := strings.Index(got, "var __extends")
	awaiter := strings.Index(got, "var __awaiter")
	if extends < 0 || awaiter < 0 {
		t.Fatalf("missing helper in output:\n%s", got)
	}
	if extends > awaiter {
		t.Fatalf("__extends must precede __awaiter:\n%s", got)
	}
	if !strings.HasSuffix(got, "x;\n") {
		t.Fatalf("statements must follow helpers, got %q", got)
	}
}

func TestMetadataHelperNeedsDecorate(t *testing.T) {
	f := newFixture("", transform.Options{})
	stmt := f.exprStmt(f.ident("x"))
	root := f.sourceFile(stmt)
	f.ctx.AddDirectives(stmt, transform.DirectiveEmitMetadata)

	got := f.print(t, Options{}, nil, root).Text
	if strings.Contains(got, "__metadata") {
		t.Fatalf("companion helper emitted without its primary:\n%s", got)
	}

	f2 := newFixture("", transform.Options{})
	stmt2 := f2.exprStmt(f2.ident("x"))
	root2 := f2.sourceFile(stmt2)
	f2.ctx.AddDirectives(stmt2, transform.DirectiveEmitMetadata|transform.DirectiveEmitDecorate)
	got2 := f2.print(t, Options{}, nil, root2).Text
	if !strings.Contains(got2, "__metadata") || !strings.Contains(got2, "__decorate") {
		t.Fatalf("primary and companion both expected:\n%s", got2)
	}
}

func TestConstantFoldWithAnnotation(t *testing.T) {
	f := newFixture("", transform.Options{})
	access := f.b.NewAccess(ast.KindPropertyAccess, source.Span{File: f.file},
		f.ident("Color"), f.ident("Red"))
	res := resolver.NewTable()
	res.SetConstantValue(access, 0)

	got := f.print(t, Options{}, res, f.sourceFile(f.exprStmt(access))).Text
	if want := "0 /* Color.Red */;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConstantFoldDisabledForIsolatedModules(t *testing.T) {
	f := newFixture("", transform.Options{})
	access := f.b.NewAccess(ast.KindPropertyAccess, source.Span{File: f.file},
		f.ident("Color"), f.ident("Red"))
	res := resolver.NewTable()
	res.SetConstantValue(access, 0)

	got := f.print(t, Options{IsolatedModules: true}, res, f.sourceFile(f.exprStmt(access))).Text
	if want := "Color.Red;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFoldedIntegerGetsExtraDot(t *testing.T) {
	f := newFixture("", transform.Options{})
	access := f.b.NewAccess(ast.KindPropertyAccess, source.Span{File: f.file},
		f.ident("Color"), f.ident("Red"))
	res := resolver.NewTable()
	res.SetConstantValue(access, 1)
	outer := f.b.NewAccess(ast.KindPropertyAccess, source.Span{File: f.file},
		access, f.ident("toString"))
	root := f.sourceFile(f.exprStmt(f.call(outer)))

	got := f.print(t, Options{RemoveComments: true}, res, root).Text
	if want := "1..toString();\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFoldedFractionNeedsNoExtraDot(t *testing.T) {
	f := newFixture("", transform.Options{})
	access := f.b.NewAccess(ast.KindPropertyAccess, source.Span{File: f.file},
		f.ident("Ratio"), f.ident("Half"))
	res := resolver.NewTable()
	res.SetConstantValue(access, 0.5)
	outer := f.b.NewAccess(ast.KindPropertyAccess, source.Span{File: f.file},
		access, f.ident("toFixed"))
	root := f.sourceFile(f.exprStmt(f.call(outer)))

	got := f.print(t, Options{RemoveComments: true}, res, root).Text
	if want := "0.5.toFixed();\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIdentifierSubstitution(t *testing.T) {
	f := newFixture("", transform.Options{})
	replacement := f.ident("b")
	f.ctx = transform.NewContext(f.b, transform.Options{
		SubstituteIdentifier: func(node ast.NodeID) ast.NodeID {
			if ident, ok := f.b.Nodes.Ident(node); ok && ident.Text == "a" {
				return replacement
			}
			return node
		},
	})
	got := f.print(t, Options{}, nil, f.sourceFile(f.exprStmt(f.ident("a")))).Text
	if want := "b;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSubstitutionDoesNotReenter(t *testing.T) {
	f := newFixture("", transform.Options{})
	calls := 0
	f.ctx = transform.NewContext(f.b, transform.Options{
		SubstituteExpression: func(node ast.NodeID) ast.NodeID {
			calls++
			if calls > 10 {
				t.Fatal("substitution loop")
			}
			// Always propose a fresh node; the no-substitution directive on
			// the result must stop the chain.
			return f.b.Clone(node)
		},
	})
	got := f.print(t, Options{}, nil, f.sourceFile(f.exprStmt(f.number("1")))).Text
	if want := "1;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCommentsPreserved(t *testing.T) {
	content := "// lead\nx; // tail\n"
	f := newFixture(content, transform.Options{})
	ident := f.b.NewIdent(source.Span{File: f.file, Start: 8, End: 9}, "x")
	stmt := f.b.NewWrapped(ast.KindExprStatement, source.Span{File: f.file, Start: 8, End: 10}, ident)
	got := f.print(t, Options{}, nil, f.sourceFile(stmt)).Text
	if want := "// lead\nx; // tail\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRemoveCommentsDropsAll(t *testing.T) {
	content := "// lead\nx; // tail\n"
	f := newFixture(content, transform.Options{})
	ident := f.b.NewIdent(source.Span{File: f.file, Start: 8, End: 9}, "x")
	stmt := f.b.NewWrapped(ast.KindExprStatement, source.Span{File: f.file, Start: 8, End: 10}, ident)
	got := f.print(t, Options{RemoveComments: true}, nil, f.sourceFile(stmt)).Text
	if want := "x;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMappingsRecorded(t *testing.T) {
	content := "x;\n"
	f := newFixture(content, transform.Options{})
	ident := f.b.NewIdent(source.Span{File: f.file, Start: 0, End: 1}, "x")
	stmt := f.b.NewWrapped(ast.KindExprStatement, source.Span{File: f.file, Start: 0, End: 2}, ident)
	res := f.print(t, Options{}, nil, f.sourceFile(stmt))
	if len(res.Mappings) == 0 {
		t.Fatal("expected position mappings")
	}
	first := res.Mappings[0]
	if first.GenLine != 1 || first.GenColumn != 1 {
		t.Fatalf("first mapping at %d:%d, want 1:1", first.GenLine, first.GenColumn)
	}
}

func TestSynthesizedNodesYieldNoMappings(t *testing.T) {
	f := newFixture("", transform.Options{})
	temp := f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID)
	stmt := f.exprStmt(temp)
	f.b.AddFlags(stmt, ast.FlagSynthesized)
	res := f.print(t, Options{}, nil, f.sourceFile(f.varStmt("x", ast.NoNodeID), stmt))
	for _, m := range res.Mappings {
		if m.GenLine == 2 {
			t.Fatalf("synthesized statement produced mapping %+v", m)
		}
	}
}

func TestObjectLiteralHonorsNewLineHints(t *testing.T) {
	f := newFixture("", transform.Options{})
	propA := f.b.NewPair(ast.KindPropertyAssign, source.Span{File: f.file}, f.ident("a"), f.number("1"))
	propB := f.b.NewPair(ast.KindPropertyAssign, source.Span{File: f.file}, f.ident("b"), f.number("2"))
	f.b.AddFlags(propA, ast.FlagSynthesized|ast.FlagStartsOnNewLine)
	f.b.AddFlags(propB, ast.FlagSynthesized|ast.FlagStartsOnNewLine)
	obj := f.b.NewSeq(ast.KindObjectLit, source.Span{File: f.file},
		f.b.NewList([]ast.NodeID{propA, propB}))
	root := f.sourceFile(f.varStmt("o", obj))
	got := f.print(t, Options{}, nil, root).Text
	want := "var o = {\n    a: 1,\n    b: 2\n};\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSingleLineDirectiveFlattensObject(t *testing.T) {
	f := newFixture("", transform.Options{})
	propA := f.b.NewPair(ast.KindPropertyAssign, source.Span{File: f.file}, f.ident("a"), f.number("1"))
	f.b.AddFlags(propA, ast.FlagSynthesized|ast.FlagStartsOnNewLine)
	obj := f.b.NewSeq(ast.KindObjectLit, source.Span{File: f.file},
		f.b.NewList([]ast.NodeID{propA}))
	f.ctx.AddDirectives(obj, transform.DirectiveSingleLine)
	root := f.sourceFile(f.varStmt("o", obj))
	got := f.print(t, Options{}, nil, root).Text
	if want := "var o = { a: 1 };\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExplicitHintBreaksSingleLineArguments(t *testing.T) {
	f := newFixture("", transform.Options{})
	a := f.ident("a")
	b := f.ident("b")
	f.b.AddFlags(b, ast.FlagSynthesized|ast.FlagStartsOnNewLine)
	root := f.sourceFile(f.exprStmt(f.call(f.ident("foo"), a, b)))
	got := f.print(t, Options{}, nil, root).Text
	if want := "foo(a,\nb);\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMemberListsOpenOwnTempScope(t *testing.T) {
	// Temps allocated inside a class member list or an enum body must not
	// consume the enclosing counter: the file-level temp that follows still
	// gets _a.
	f := newFixture("", transform.Options{})
	sp := source.Span{File: f.file}
	prop := f.b.NewPair(ast.KindPropertyDecl, sp, f.ident("p"),
		f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID))
	cls := f.b.NewClass(ast.KindClassDecl, sp, f.ident("C"), ast.NoNodeID,
		f.b.NewList([]ast.NodeID{prop}))
	member := f.b.NewPair(ast.KindEnumMember, sp, f.ident("M"),
		f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID))
	enum := f.b.NewEnum(sp, f.ident("E"), f.b.NewList([]ast.NodeID{member}))
	root := f.sourceFile(cls, enum, f.exprStmt(f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID)))

	got := f.print(t, Options{}, nil, root).Text
	want := "class C {\n    p = _a;\n}\nenum E {\n    M = _a\n}\n_a;\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmptyCaseClauseBodySuppressed(t *testing.T) {
	f := newFixture("", transform.Options{})
	sp := source.Span{File: f.file}
	empty := f.b.NewCase(ast.KindCaseClause, sp, f.number("1"), f.b.NewList(nil))
	full := f.b.NewCase(ast.KindCaseClause, sp, f.number("2"),
		f.b.NewList([]ast.NodeID{f.exprStmt(f.ident("y"))}))
	block := f.b.NewSeq(ast.KindCaseBlock, sp, f.b.NewList([]ast.NodeID{empty, full}))
	root := f.sourceFile(f.b.NewPair(ast.KindSwitch, sp, f.ident("x"), block))

	got := f.print(t, Options{}, nil, root).Text
	want := "switch (x) {\n    case 1:\n    case 2:\n        y;\n}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDerivedNameAvoidsLiveTemps(t *testing.T) {
	// A node-derived name whose base comes from a synthesized declaration
	// must not repeat a temp already handed out in the same scope.
	f := newFixture("", transform.Options{})
	temp := f.b.NewGenerated(ast.GenAuto, "", ast.NoNodeID)
	decl := f.b.NewFunc(ast.KindFunctionDecl, source.Span{File: f.file},
		f.ident("_a"), f.b.NewList(nil), f.block())
	derived := f.b.NewGenerated(ast.GenNode, "", decl)
	root := f.sourceFile(f.exprStmt(temp), f.exprStmt(derived))

	got := f.print(t, Options{}, nil, root).Text
	if want := "_a;\n_a_1;\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintFileRejectsNonFileRoot(t *testing.T) {
	f := newFixture("", transform.Options{})
	stmt := f.exprStmt(f.ident("x"))
	if _, err := New(Options{}, nil, nil).PrintFile(f.ctx, f.fs.Get(f.file), stmt); err == nil {
		t.Fatal("expected error for non-file root")
	}
}
