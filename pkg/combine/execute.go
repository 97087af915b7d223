// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"concatlist/pkg/classify"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// RunCombine walks args.Directory, writes the aggregated text file and the
// manifest, and reports progress to out. Only failures to produce an output
// file are returned as errors.
func RunCombine(fsys afero.Fs, args Arguments, out io.Writer, logger *zap.Logger) (*Summary, error) {
	startTime := time.Now()

	root, err := filepath.Abs(args.Directory)
	if err != nil {
		logger.Error("Failed to resolve directory path", zap.Error(err))
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	if args.ProjectName == "" {
		args.ProjectName = filepath.Base(root)
	}
	logger.Info("Starting combination process", zap.String("directory", root), zap.String("project", args.ProjectName))

	fmt.Fprintln(out, "Scanning project...")
	fmt.Fprintf(out, "Project: %s\n\n", args.ProjectName)

	classifier := classify.New(fsys, root, logger)
	tree, err := Walk(fsys, root, args.ProjectName, classifier, outputsUnder(root, args.Output, args.Manifest), logger)
	if err != nil {
		logger.Error("Failed to walk project", zap.Error(err))
		return nil, fmt.Errorf("failed to walk project: %w", err)
	}

	fmt.Fprintln(out, "Writing text file with relevant code...")
	if err := WriteCombinedFile(fsys, args.Output, tree, logger); err != nil {
		return nil, fmt.Errorf("failed to write combined file: %w", err)
	}

	fmt.Fprintln(out, "Writing CSV with the full structure...")
	if err := WriteManifest(fsys, args.Manifest, tree, logger); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	summary := &Summary{
		ProjectName:  tree.ProjectName,
		Output:       args.Output,
		OutputSize:   fileSize(fsys, args.Output, logger),
		Manifest:     args.Manifest,
		ManifestSize: fileSize(fsys, args.Manifest, logger),
		Included:     tree.Included,
		Excluded:     tree.Excluded,
		Entries:      len(tree.Entries) + 1,
	}

	logger.Info("Combination process completed",
		zap.String("outputFile", args.Output),
		zap.String("manifestFile", args.Manifest),
		zap.Int("included", summary.Included),
		zap.Int("excluded", summary.Excluded),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}

// outputsUnder returns the root-relative paths of the outputs that live
// inside root, so the walk does not pick them up.
func outputsUnder(root string, outputs ...string) map[string]bool {
	skip := make(map[string]bool, len(outputs))
	for _, output := range outputs {
		abs, err := filepath.Abs(output)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
			continue
		}
		skip[rel] = true
	}
	return skip
}

// fileSize returns the size of path, or 0 if it cannot be stat'ed.
func fileSize(fsys afero.Fs, path string, logger *zap.Logger) int64 {
	info, err := fsys.Stat(path)
	if err != nil {
		logger.Warn("Failed to stat output file", zap.String("path", path), zap.Error(err))
		return 0
	}
	return info.Size()
}
