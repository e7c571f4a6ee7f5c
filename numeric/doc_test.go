package numeric_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExportedFuncsDocumented keeps godoc complete for the public API.
func TestExportedFuncsDocumented(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "numeric.go", nil, parser.ParseComments)
	require.NoError(t, err)

	var checked int
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !fn.Name.IsExported() {
			continue
		}
		checked++
		assert.NotNil(t, fn.Doc, "%s has no doc comment", fn.Name.Name)
	}
	assert.Equal(t, 9, checked) // New, Get, Combine, String, With, Add, Sub, Mul, Div
}
