package combine

import (
	"os"
	"path/filepath"
	"testing"

	"concatlist/pkg/classify"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkTest(t *testing.T, fsys afero.Fs, skip map[string]bool) *Tree {
	t.Helper()
	c := classify.New(fsys, testRoot, testLogger())
	tree, err := Walk(fsys, testRoot, "", c, skip, testLogger())
	require.NoError(t, err)
	return tree
}

func entryPaths(entries []Entry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}

func TestWalk_PrunesExcludedDirectories(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"src/app.py":                   "print('hi')\n",
		"node_modules/pkg/index.js":    "module.exports = 1\n",
		"dist/bundle.min.js":           "var a=1;\n",
		"locales/en.json":              "{}\n",
		"src/vendor/lib/lib.go":        "package lib\n",
		"web/.git/HEAD":                "ref: refs/heads/main\n",
		"web/components/button.tsx":    "export {}\n",
		"web/components/button.min.js": "x\n",
	})

	tree := walkTest(t, fsys, nil)

	assert.ElementsMatch(t, []Entry{
		{Path: "src", Kind: KindDirectory},
		{Path: "src/app.py", Kind: KindFile},
		{Path: "locales", Kind: KindDirectory},
		{Path: "locales/en.json", Kind: KindFile},
		{Path: "web", Kind: KindDirectory},
		{Path: "web/components", Kind: KindDirectory},
		{Path: "web/components/button.tsx", Kind: KindFile},
		{Path: "web/components/button.min.js", Kind: KindFile},
	}, tree.Entries)

	for _, p := range entryPaths(tree.Entries) {
		assert.NotContains(t, p, "node_modules")
		assert.NotContains(t, p, "dist")
		assert.NotContains(t, p, "vendor")
		assert.NotContains(t, p, ".git")
	}
}

func TestWalk_GroupsIncludedFiles(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"main.go":         "package main\n",
		"README.md":       "# proj\n",
		"logo.png":        "\x89PNG",
		"src/app.py":      "print('hi')\n",
		"src/util.py":     "x = 1\n",
		"src/data.json":   "{}\n",
		"locales/en.json": "{}\n",
		"server.log":      "boot\n",
	})

	tree := walkTest(t, fsys, nil)

	assert.Equal(t, "proj", tree.ProjectName)
	assert.Equal(t, testRoot, tree.Root)
	assert.Equal(t, 4, tree.Included)
	assert.Equal(t, 4, tree.Excluded)

	require.Contains(t, tree.Groups, "proj")
	assert.ElementsMatch(t, []string{
		filepath.Join(testRoot, "main.go"),
		filepath.Join(testRoot, "README.md"),
	}, tree.Groups["proj"])
	assert.ElementsMatch(t, []string{
		filepath.Join(testRoot, "src", "app.py"),
		filepath.Join(testRoot, "src", "util.py"),
	}, tree.Groups["src"])
	assert.NotContains(t, tree.Groups, "locales")
}

func TestWalk_EveryFileRecordedOnce(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"a.go":           "package a\n",
		"b.bin":          "\x00\x01",
		"big.js":         bigContent(classify.MaxFileSize + 100),
		"docs/guide.md":  "# guide\n",
		"docs/img/x.svg": "<svg/>\n",
	})
	mustMkdir(t, fsys, "empty")

	tree := walkTest(t, fsys, nil)

	files := 0
	dirs := 0
	seen := make(map[string]int)
	for _, e := range tree.Entries {
		seen[e.Path]++
		if e.Kind == KindFile {
			files++
		} else {
			dirs++
		}
	}
	for p, n := range seen {
		assert.Equal(t, 1, n, "entry %s recorded more than once", p)
	}
	assert.Equal(t, 5, files)
	assert.Equal(t, 3, dirs)
	assert.Equal(t, files, tree.Included+tree.Excluded)
	assert.Equal(t, 2, tree.Included)
}

func TestWalk_SkipsListedPaths(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"proj.txt":            "previous output\n",
		"proj_estructura.csv": "Path,Type\n",
		"notes.txt":           "keep\n",
	})

	tree := walkTest(t, fsys, map[string]bool{"proj.txt": true, "proj_estructura.csv": true})

	assert.Equal(t, []string{"notes.txt"}, entryPaths(tree.Entries))
	assert.Equal(t, 1, tree.Included)
	assert.Equal(t, 0, tree.Excluded)
}

func TestWalk_MissingRootYieldsEmptyTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := classify.New(fsys, "/nowhere", testLogger())

	tree, err := Walk(fsys, "/nowhere", "nowhere", c, nil, testLogger())
	require.NoError(t, err)
	assert.Empty(t, tree.Entries)
	assert.Empty(t, tree.Groups)
}

// unlistableFs fails to open one directory, as a permission error would.
type unlistableFs struct {
	afero.Fs
	dir string
}

func (u unlistableFs) Open(name string) (afero.File, error) {
	if name == u.dir {
		return nil, os.ErrPermission
	}
	return u.Fs.Open(name)
}

func TestWalk_SkipsUnlistableDirectories(t *testing.T) {
	base := newTestFs(t, map[string]string{
		"main.go":           "package main\n",
		"secret/keys.go":    "package secret\n",
		"zeta/after.go":     "package zeta\n",
		"secret/inner/x.go": "package inner\n",
	})
	fsys := unlistableFs{Fs: base, dir: filepath.Join(testRoot, "secret")}

	tree := walkTest(t, fsys, nil)

	assert.ElementsMatch(t, []string{"main.go", "zeta", "zeta/after.go"}, entryPaths(tree.Entries))
	assert.Equal(t, 2, tree.Included)
}

func TestWalk_SkipsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "real"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "real", "a.go"), []byte("package real\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.go"), []byte("package root\n"), 0o644))
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "b.go"), filepath.Join(root, "c.go")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	fsys := afero.NewOsFs()
	c := classify.New(fsys, root, testLogger())
	tree, err := Walk(fsys, root, "", c, nil, testLogger())
	require.NoError(t, err)

	paths := entryPaths(tree.Entries)
	assert.ElementsMatch(t, []string{"b.go", "c.go", "real", "real/a.go"}, paths)
	assert.Equal(t, 3, tree.Included)
}
