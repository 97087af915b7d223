// File: pkg/combine/manifest.go
package combine

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// SortEntries orders entries by path, then by kind.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Kind < entries[j].Kind
	})
}

// WriteManifest writes every entry of tree, preceded by a header row and
// the project root row, to outputPath as CSV.
func WriteManifest(fsys afero.Fs, outputPath string, tree *Tree, logger *zap.Logger) (err error) {
	logger.Debug("Writing manifest", zap.String("manifest", outputPath), zap.Int("entries", len(tree.Entries)))

	outFile, err := fsys.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create manifest file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close manifest file", zap.String("file", outputPath), zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("failed to close manifest file: %w", closeErr)
			}
		}
	}()

	buffered := bufio.NewWriter(outFile)
	if err := writeManifest(buffered, tree); err != nil {
		logger.Error("Failed to write manifest", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush manifest: %w", err)
	}
	return nil
}

// writeManifest renders the manifest rows to w.
func writeManifest(w io.Writer, tree *Tree) error {
	entries := append([]Entry(nil), tree.Entries...)
	SortEntries(entries)

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write([]string{"Path", "Type"}); err != nil {
		return err
	}
	if err := cw.Write([]string{tree.ProjectName, KindDirectory.String()}); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := cw.Write([]string{entry.Path, entry.Kind.String()}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
