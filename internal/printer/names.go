package printer

import (
	"strconv"

	"scribe/internal/ast"
)

// Positions of the reserved temp-name slots inside the auto alphabet:
// 'i' is held for loop counters, 'n' for the count-suffix name.
const (
	loopSlot  = 'i' - 'a'
	countSlot = 'n' - 'a'
)

// resolveName returns the output text for an identifier node, generating
// and memoizing a name when the node carries a generation strategy. Within
// one file pass the same node always resolves to the same text.
func (pr *printer) resolveName(id ast.NodeID, ident *ast.Ident) string {
	if ident.Gen == ast.GenNone {
		return ident.Text
	}
	if name, ok := pr.session.nameMemo[id]; ok {
		return name
	}
	var name string
	switch ident.Gen {
	case ast.GenAuto:
		name = pr.makeTempName()
	case ast.GenLoop:
		name = pr.makeLoopName()
	case ast.GenUnique:
		name = pr.makeUniqueName(ident.Text)
	case ast.GenNode:
		name = pr.makeNameForNode(ident.Link)
	}
	pr.session.nameMemo[id] = name
	return name
}

// isUniqueName checks a candidate against the resolver's global names, the
// identifiers lexically present in the source text, the names already
// generated in this pass, and the temp names live in the scope stack.
func (pr *printer) isUniqueName(name string) bool {
	if pr.res != nil && pr.res.HasGlobalName(name) {
		return false
	}
	if _, taken := pr.session.lexicalNames[name]; taken {
		return false
	}
	if _, taken := pr.session.generatedNames[name]; taken {
		return false
	}
	for i := range pr.session.tempScopes {
		if _, taken := pr.session.tempScopes[i].taken[name]; taken {
			return false
		}
	}
	return true
}

func (pr *printer) claimName(name string) string {
	pr.session.generatedNames[name] = struct{}{}
	return name
}

// makeTempName draws from the sequence _a, _b, ... _z, _0, _1, ...,
// skipping the two reserved slots. Temp names are claimed per scope, not
// file-wide, so sibling function bodies restart the sequence. The numeric
// tail is unbounded.
func (pr *printer) makeTempName() string {
	scope := pr.session.topTempScope()
	for {
		count := scope.count
		scope.count++
		if count == loopSlot || count == countSlot {
			continue
		}
		var name string
		if count < 26 {
			name = "_" + string(rune('a'+count))
		} else {
			name = "_" + strconv.Itoa(count-26)
		}
		if pr.isUniqueName(name) {
			return scope.claim(name)
		}
	}
}

// makeLoopName prefers the literal _i, falls back to the count-suffix name
// _n, then to the auto sequence.
func (pr *printer) makeLoopName() string {
	scope := pr.session.topTempScope()
	if !scope.loopTaken && pr.isUniqueName("_i") {
		scope.loopTaken = true
		return scope.claim("_i")
	}
	if !scope.countTaken && pr.isUniqueName("_n") {
		scope.countTaken = true
		return scope.claim("_n")
	}
	return pr.makeTempName()
}

// makeUniqueName appends an underscore (if the base does not already end in
// one) and an increasing integer suffix starting at 1 until a free name is
// found.
func (pr *printer) makeUniqueName(base string) string {
	if base == "" {
		return pr.makeTempName()
	}
	if base[len(base)-1] != '_' {
		base += "_"
	}
	for i := 1; ; i++ {
		name := base + strconv.Itoa(i)
		if pr.isUniqueName(name) {
			return pr.claimName(name)
		}
	}
}

// makeNameForNode derives a meaningful name from a referenced declaration,
// following the chain of original back-references through synthesized
// clones to the most meaningful source node.
func (pr *printer) makeNameForNode(link ast.NodeID) string {
	base := pr.nodeNameText(pr.deepestOriginal(link))
	if base == "" {
		return pr.makeTempName()
	}
	if pr.isUniqueName(base) {
		return pr.claimName(base)
	}
	return pr.makeUniqueName(base)
}

func (pr *printer) deepestOriginal(id ast.NodeID) ast.NodeID {
	for id.IsValid() {
		node := pr.b.Nodes.Get(id)
		if node == nil || !node.Original.IsValid() {
			break
		}
		id = node.Original
	}
	return id
}

// nodeNameText extracts the declared name text of a declaration-like node,
// or the text of a bare identifier.
func (pr *printer) nodeNameText(id ast.NodeID) string {
	node := pr.b.Nodes.Get(id)
	if node == nil {
		return ""
	}
	nameOf := func(nameID ast.NodeID) string {
		if ident, ok := pr.b.Nodes.Ident(nameID); ok {
			return ident.Text
		}
		return ""
	}
	switch node.Kind {
	case ast.KindIdent:
		if ident, ok := pr.b.Nodes.Ident(id); ok && ident.Gen == ast.GenNone {
			return ident.Text
		}
	case ast.KindFunctionDecl, ast.KindFunctionExpr, ast.KindMethod:
		if fn, ok := pr.b.Nodes.Func(id); ok {
			return nameOf(fn.Name)
		}
	case ast.KindClassDecl, ast.KindClassExpr:
		if cls, ok := pr.b.Nodes.Class(id); ok {
			return nameOf(cls.Name)
		}
	case ast.KindEnumDecl:
		if enum, ok := pr.b.Nodes.Enum(id); ok {
			return nameOf(enum.Name)
		}
	case ast.KindVarDecl, ast.KindModuleDecl:
		if pair, ok := pr.b.Nodes.Pair(id); ok {
			return nameOf(pair.Name)
		}
	}
	return ""
}

// scanLexicalNames collects every identifier-shaped token in the file so
// generated names can avoid colliding with names the source already uses.
// Strings and comments are skipped.
func scanLexicalNames(content []byte) map[string]struct{} {
	names := make(map[string]struct{})
	i := 0
	n := len(content)
	for i < n {
		c := content[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			i = skipQuoted(content, i)
		case c == '/' && i+1 < n && content[i+1] == '/':
			for i < n && content[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < n && content[i+1] == '*':
			i += 2
			for i+1 < n && !(content[i] == '*' && content[i+1] == '/') {
				i++
			}
			i += 2
		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(content[i]) {
				i++
			}
			names[string(content[start:i])] = struct{}{}
		default:
			i++
		}
	}
	return names
}

func skipQuoted(content []byte, i int) int {
	quote := content[i]
	i++
	n := len(content)
	for i < n {
		switch content[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			if quote != '`' {
				return i
			}
		}
		i++
	}
	return n
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
