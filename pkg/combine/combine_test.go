package combine

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testRoot = "/proj"

// newTestFs returns an in-memory filesystem holding files (relative path ->
// content) under testRoot.
func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(testRoot, 0o755))
	for rel, content := range files {
		writeTestFile(t, fsys, rel, content)
	}
	return fsys
}

func writeTestFile(t *testing.T, fsys afero.Fs, rel, content string) {
	t.Helper()
	full := filepath.Join(testRoot, filepath.FromSlash(rel))
	require.NoError(t, fsys.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, afero.WriteFile(fsys, full, []byte(content), 0o644))
}

func mustMkdir(t *testing.T, fsys afero.Fs, rel string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Join(testRoot, filepath.FromSlash(rel)), 0o755))
}

func readTestFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func bigContent(size int) string {
	return strings.Repeat("x\n", size/2)
}

var errCloseFailed = errors.New("close failed")

// closeFailingFs hands out files whose Close reports errCloseFailed after
// closing the underlying file, as a full disk would on the final flush.
type closeFailingFs struct {
	afero.Fs
}

func (c closeFailingFs) Create(name string) (afero.File, error) {
	f, err := c.Fs.Create(name)
	if err != nil {
		return nil, err
	}
	return closeFailingFile{File: f}, nil
}

type closeFailingFile struct {
	afero.File
}

func (f closeFailingFile) Close() error {
	_ = f.File.Close()
	return errCloseFailed
}
