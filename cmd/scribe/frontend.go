package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"scribe/internal/ast"
	"scribe/internal/driver"
	"scribe/internal/source"
)

// TreeExt is the extension of the lowered-tree artifact expected next to
// every input source.
const TreeExt = ".tree"

// treePath maps an input source path to its sibling tree artifact.
func treePath(input string) string {
	return strings.TrimSuffix(input, driver.SourceExt) + TreeExt
}

// treeFrontend loads the pre-lowered tree for one source file. The source
// itself is only read for comments and position mapping; the structure to
// print comes from the artifact an upstream pipeline encoded.
func treeFrontend(_ context.Context, b *ast.Builder, file *source.File) (ast.NodeID, error) {
	path := treePath(file.Path)
	// #nosec G304 -- path derives from a caller-provided input
	f, err := os.Open(path)
	if err != nil {
		return ast.NoNodeID, fmt.Errorf("missing tree artifact %q: %w", path, err)
	}
	defer f.Close()

	decoded, roots, err := ast.DecodeTree(f)
	if err != nil {
		return ast.NoNodeID, err
	}
	if len(roots) != 1 {
		return ast.NoNodeID, fmt.Errorf("%q holds %d roots, want exactly 1", path, len(roots))
	}
	*b = *decoded
	ast.RetargetFile(b, file.ID)
	return roots[0], nil
}
