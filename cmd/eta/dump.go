package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/xunicatt/eta/ast"
)

// dumpASTTree renders program's structure with go-spew. The AST types
// are already fully exported, so no hand-written tree printer is
// needed to see their shape.
func dumpASTTree(program *ast.Program) string {
	return spew.Sdump(program)
}
