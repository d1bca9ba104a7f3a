package main

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// thirdParty reports whether path comes from outside the standard library
// and this module.
func thirdParty(path string) bool {
	if strings.HasPrefix(path, "clementus360/") {
		return false
	}
	first, _, _ := strings.Cut(path, "/")
	return strings.Contains(first, ".")
}

// Imports keep one sorted group of standard library and module packages,
// then one sorted group of third-party packages.
func TestImportGrouping(t *testing.T) {
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		require.NoError(t, err, path)

		var groups [][]string
		lastLine := -1
		for _, imp := range f.Imports {
			p, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err, path)
			line := fset.Position(imp.Pos()).Line
			if lastLine < 0 || line != lastLine+1 {
				groups = append(groups, nil)
			}
			groups[len(groups)-1] = append(groups[len(groups)-1], p)
			lastLine = line
		}

		assert.LessOrEqual(t, len(groups), 2, "%s: too many import groups", path)
		for i, g := range groups {
			assert.True(t, sort.StringsAreSorted(g), "%s: group %d not sorted", path, i)
			for _, p := range g {
				wantThirdParty := len(groups) == 2 && i == 1 || len(groups) == 1 && thirdParty(g[0])
				assert.Equal(t, wantThirdParty, thirdParty(p), "%s: %s is in the wrong group", path, p)
			}
		}
		return nil
	})
	require.NoError(t, err)
}
