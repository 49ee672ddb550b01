package transform

import (
	"scribe/internal/ast"
	"scribe/internal/source"
)

// Substitution maps a node about to be emitted to a replacement node.
// Returning the input (or NoNodeID) means "no substitution".
type Substitution func(node ast.NodeID) ast.NodeID

// Notifier may wrap the default emission of a node in arbitrary
// before/after behavior without per-kind overrides. Emit must invoke
// emitFn exactly once.
type Notifier interface {
	Enabled(node ast.NodeID) bool
	Emit(node ast.NodeID, emitFn func(ast.NodeID))
}

// Options wires the hooks once per context; there is no way to swap them
// mid-pass.
type Options struct {
	SubstituteExpression Substitution
	SubstituteIdentifier Substitution
	Notifier             Notifier
}

// Context is the transform-side collaborator of one print run: it owns the
// emit-directive side table, the substitution and notification hooks, and
// the lexical-environment stack used for hoisting.
type Context struct {
	builder *ast.Builder
	opts    Options

	directives *directiveTable
	envs       []lexicalEnv
}

type lexicalEnv struct {
	hoisted []ast.NodeID // variable declarator nodes, in hoist order
}

func NewContext(builder *ast.Builder, opts Options) *Context {
	return &Context{
		builder:    builder,
		opts:       opts,
		directives: newDirectiveTable(),
	}
}

func (c *Context) Builder() *ast.Builder { return c.builder }

// GetDirectives returns the emit directives recorded for node.
func (c *Context) GetDirectives(node ast.NodeID) Directives {
	return c.directives.get(node)
}

// AddDirectives merges extra directive bits for node.
func (c *Context) AddDirectives(node ast.NodeID, d Directives) {
	c.directives.add(node, d)
}

// SubstituteExpression runs the expression hook, if any.
func (c *Context) SubstituteExpression(node ast.NodeID) ast.NodeID {
	if c.opts.SubstituteExpression == nil {
		return node
	}
	if sub := c.opts.SubstituteExpression(node); sub.IsValid() {
		return sub
	}
	return node
}

// SubstituteIdentifier runs the identifier hook, if any.
func (c *Context) SubstituteIdentifier(node ast.NodeID) ast.NodeID {
	if c.opts.SubstituteIdentifier == nil {
		return node
	}
	if sub := c.opts.SubstituteIdentifier(node); sub.IsValid() {
		return sub
	}
	return node
}

// Notifier returns the emission interceptor, or nil.
func (c *Context) Notifier() Notifier { return c.opts.Notifier }

// StartLexicalEnvironment opens a scope-level staging area for hoisted
// declarations. Every function, module, and file body opens one before its
// statements and closes it after.
func (c *Context) StartLexicalEnvironment() {
	c.envs = append(c.envs, lexicalEnv{})
}

// HoistVariableDeclaration registers name (an identifier node) for hoisting
// into the innermost open environment.
func (c *Context) HoistVariableDeclaration(name ast.NodeID) {
	if len(c.envs) == 0 {
		return
	}
	env := &c.envs[len(c.envs)-1]
	decl := c.builder.NewPair(ast.KindVarDecl, source.Span{}, name, ast.NoNodeID)
	c.builder.AddFlags(decl, ast.FlagSynthesized)
	env.hoisted = append(env.hoisted, decl)
}

// EndLexicalEnvironment closes the innermost environment and returns the
// hoisted declaration statements to append after the explicit statements.
// The result is nil when nothing was hoisted.
func (c *Context) EndLexicalEnvironment() []ast.NodeID {
	if len(c.envs) == 0 {
		return nil
	}
	env := c.envs[len(c.envs)-1]
	c.envs = c.envs[:len(c.envs)-1]
	if len(env.hoisted) == 0 {
		return nil
	}
	list := c.builder.NewList(env.hoisted)
	declList := c.builder.NewVarList(source.Span{}, "var", list)
	c.builder.AddFlags(declList, ast.FlagSynthesized)
	stmt := c.builder.NewWrapped(ast.KindVarStatement, source.Span{}, declList)
	c.builder.AddFlags(stmt, ast.FlagSynthesized)
	return []ast.NodeID{stmt}
}

// EnvironmentDepth reports how many environments are open. The printer
// asserts it returns to its starting depth after each file.
func (c *Context) EnvironmentDepth() int {
	return len(c.envs)
}

// HelperDirectives returns the union of helper-request bits recorded
// anywhere in the directive table.
func (c *Context) HelperDirectives() Directives {
	var mask Directives
	for _, d := range c.directives.byNode {
		mask |= d & HelperMask
	}
	return mask
}
