// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const bannerWidth = 60

var (
	headerRule    = "// " + strings.Repeat("=", 48)
	dirBanner     = strings.Repeat("=", bannerWidth)
	fileBanner    = strings.Repeat("─", bannerWidth)
	closingBanner = dirBanner
)

// WriteCombinedFile writes the header, every included file grouped by
// directory, and the closing banner to outputPath.
func WriteCombinedFile(fsys afero.Fs, outputPath string, tree *Tree, logger *zap.Logger) (err error) {
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outputPath))

	outFile, err := fsys.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	if err := writeCombined(writer, fsys, tree, logger); err != nil {
		logger.Error("Failed to write combined file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write content: %w", err)
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// writeCombined renders the aggregated document to w.
func writeCombined(w io.Writer, fsys afero.Fs, tree *Tree, logger *zap.Logger) error {
	if _, err := fmt.Fprintf(w, "// PROJECT: %s\n%s\n// Archivos incluidos: %d\n// Archivos excluidos: %d\n%s\n\n",
		tree.ProjectName, headerRule, tree.Included, tree.Excluded, headerRule); err != nil {
		return err
	}

	dirs := make([]string, 0, len(tree.Groups))
	for dir := range tree.Groups {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		files := append([]string(nil), tree.Groups[dir]...)
		if len(files) == 0 {
			continue
		}
		sort.Strings(files)

		if _, err := fmt.Fprintf(w, "\n\n%s\nDIR: %s\n%s\n\n", dirBanner, dir, dirBanner); err != nil {
			return err
		}

		for _, file := range files {
			content := ProcessSingleFile(fsys, file, tree.Root, logger)
			if _, err := fmt.Fprintf(w, "\n%s\nFILE: %s\n%s\n\n", fileBanner, content.Path, fileBanner); err != nil {
				return err
			}
			if _, err := io.WriteString(w, content.Content); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n\n%s\nEND OF PROJECT\n%s\n", closingBanner, closingBanner)
	return err
}
