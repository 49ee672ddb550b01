// Package printer is the emission engine: it walks a fully transformed
// tree and produces output text, position mappings, and preserved
// comments, one file pass at a time.
package printer

import (
	"fmt"

	"scribe/internal/ast"
	"scribe/internal/comments"
	"scribe/internal/helpers"
	"scribe/internal/resolver"
	"scribe/internal/sink"
	"scribe/internal/source"
	"scribe/internal/srcmap"
	"scribe/internal/transform"
)

type Options struct {
	NewLine     string
	IndentWidth int
	UseTabs     bool
	// RemoveComments drops all comment emission, including the inline
	// comments written by constant folding.
	RemoveComments bool
	// IsolatedModules disables constant folding, which needs
	// whole-program knowledge.
	IsolatedModules bool
}

// Result is the outcome of one file pass.
type Result struct {
	Text     string
	Mappings []srcmap.Mapping
}

// Printer drives emission. It is stateless between files: all mutable
// pass state lives in a Session constructed per file.
type Printer struct {
	opts Options
	res  resolver.Interface
	reg  *helpers.Registry
}

func New(opts Options, res resolver.Interface, reg *helpers.Registry) *Printer {
	if reg == nil {
		reg = helpers.NewRegistry()
	}
	return &Printer{opts: opts, res: res, reg: reg}
}

// PrintFile runs one file pass over root, which must be a source-file
// node. Collaborator state and the session are created here and discarded
// before returning; nothing leaks into the next file.
func (p *Printer) PrintFile(ctx *transform.Context, sf *source.File, root ast.NodeID) (Result, error) {
	builder := ctx.Builder()
	node := builder.Nodes.Get(root)
	if node == nil || node.Kind != ast.KindSourceFile {
		return Result{}, fmt.Errorf("printer: root %d is not a source file", root)
	}

	out := sink.New(sink.Options{
		NewLine:     p.opts.NewLine,
		IndentWidth: p.opts.IndentWidth,
		UseTabs:     p.opts.UseTabs,
	})
	cw := comments.NewWriter(out)
	cw.SetSourceFile(sf)
	cw.SetDisabled(p.opts.RemoveComments)
	sm := srcmap.NewWriter(out)
	if sf != nil {
		sm.SetSourceFile(sf.ID)
	}

	pr := &printer{
		opts:    p.opts,
		res:     p.res,
		reg:     p.reg,
		b:       builder,
		ctx:     ctx,
		sf:      sf,
		out:     out,
		cw:      cw,
		sm:      sm,
		session: newSession(sf),
	}

	startDepth := ctx.EnvironmentDepth()
	pr.emit(root)

	if got := ctx.EnvironmentDepth(); got != startDepth {
		return Result{}, fmt.Errorf("printer: %d lexical environments left open", got-startDepth)
	}
	if open := sm.OpenMarks(); open != 0 {
		return Result{}, fmt.Errorf("printer: %d position marks left open", open)
	}
	return Result{Text: out.Text(), Mappings: sm.Mappings()}, nil
}

// printer is the per-file emission state bundle. Everything hanging off it
// is scoped to exactly one output file.
type printer struct {
	opts Options
	res  resolver.Interface
	reg  *helpers.Registry

	b   *ast.Builder
	ctx *transform.Context
	sf  *source.File
	out *sink.Writer
	cw  *comments.Writer
	sm  *srcmap.Writer

	session *Session
}

// Session is the mutable state of one file pass: temp-name counters with
// scope stacking, helper-emitted flags, and the generated-name memo.
type Session struct {
	file *source.File

	nameMemo       map[ast.NodeID]string
	generatedNames map[string]struct{}
	lexicalNames   map[string]struct{}
	tempScopes     []tempScope
	helpersEmitted [helpers.ExportStar + 1]bool
}

type tempScope struct {
	count      int
	loopTaken  bool
	countTaken bool
	// taken holds the temp names handed out in this scope. They stay
	// reserved until the scope pops, so a derived name resolved later in
	// the same scope cannot repeat one of them.
	taken map[string]struct{}
}

func (sc *tempScope) claim(name string) string {
	if sc.taken == nil {
		sc.taken = make(map[string]struct{})
	}
	sc.taken[name] = struct{}{}
	return name
}

func newSession(sf *source.File) *Session {
	s := &Session{
		file:           sf,
		nameMemo:       make(map[ast.NodeID]string),
		generatedNames: make(map[string]struct{}),
		tempScopes:     []tempScope{{}},
	}
	if sf != nil {
		s.lexicalNames = scanLexicalNames(sf.Content)
	} else {
		s.lexicalNames = make(map[string]struct{})
	}
	return s
}

// pushTempScope opens a nested temp-counter scope so names allocated
// inside do not perturb the enclosing counter.
func (s *Session) pushTempScope() {
	s.tempScopes = append(s.tempScopes, tempScope{})
}

func (s *Session) popTempScope() {
	if len(s.tempScopes) > 1 {
		s.tempScopes = s.tempScopes[:len(s.tempScopes)-1]
	}
}

func (s *Session) topTempScope() *tempScope {
	return &s.tempScopes[len(s.tempScopes)-1]
}
