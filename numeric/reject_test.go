package numeric_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// Non-numeric types must be refused by the type checker. Each fixture under
// testdata/reject is a package that misuses the API; loading it has to
// produce a type error, while testdata/accept has to load cleanly.

func loadFixture(t *testing.T, dir string) *packages.Package {
	t.Helper()
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}

	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports,
		Dir:  ".",
	}
	pkgs, err := packages.Load(cfg, "./"+dir)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	return pkgs[0]
}

func errorText(pkg *packages.Package) string {
	msgs := make([]string, 0, len(pkg.Errors))
	for _, e := range pkg.Errors {
		msgs = append(msgs, e.Msg)
	}
	return strings.Join(msgs, "\n")
}

func TestRejectAtBuildTime(t *testing.T) {
	tests := []struct {
		fixture string
		want    string
	}{
		// string wrapped directly
		{"testdata/reject/newstring", "does not satisfy"},
		// string operand through With
		{"testdata/reject/combinestring", "does not satisfy"},
		// string operand through the Combine method
		{"testdata/reject/combinemethod", `cannot use "x"`},
		// Value instantiated with a string
		{"testdata/reject/valuestring", "does not satisfy"},
		// op whose result is not the first operand's kind
		{"testdata/reject/badop", "cannot use half"},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			pkg := loadFixture(t, tt.fixture)

			require.NotEmpty(t, pkg.Errors, "fixture must not type-check")
			assert.Contains(t, errorText(pkg), tt.want)
		})
	}
}

func TestAcceptAtBuildTime(t *testing.T) {
	pkg := loadFixture(t, "testdata/accept")

	assert.Empty(t, pkg.Errors, errorText(pkg))
	require.NotNil(t, pkg.Types)
	assert.Equal(t, "accept", pkg.Types.Name())
}
