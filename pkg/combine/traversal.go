// File: pkg/combine/traversal.go
package combine

import (
	"os"
	"path/filepath"

	"concatlist/pkg/classify"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Walk traverses root and records every visited directory and file.
// Directories the classifier prunes are neither descended into nor recorded.
// Files are classified; included ones are grouped by their containing
// directory. Relative paths listed in skip are ignored entirely.
//
// Errors on individual entries are logged and skipped; Walk itself only
// fails if root cannot be made absolute.
func Walk(fsys afero.Fs, root, projectName string, c *classify.Classifier, skip map[string]bool, logger *zap.Logger) (*Tree, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if projectName == "" {
		projectName = filepath.Base(absRoot)
	}

	tree := &Tree{
		ProjectName: projectName,
		Root:        absRoot,
		Groups:      make(map[string][]string),
	}
	logger.Debug("Starting traversal", zap.String("root", absRoot))

	walkErr := afero.Walk(fsys, absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Debug("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			// A directory that cannot be listed was already recorded on the
			// first visit; it is the last entry since nothing below it was seen.
			if info != nil && info.IsDir() {
				if rel, relErr := filepath.Rel(absRoot, path); relErr == nil {
					rel = filepath.ToSlash(rel)
					if n := len(tree.Entries); n > 0 && tree.Entries[n-1].Path == rel && tree.Entries[n-1].Kind == KindDirectory {
						tree.Entries = tree.Entries[:n-1]
					}
				}
			}
			return nil
		}

		if path == absRoot {
			return nil
		}

		relPath, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			logger.Debug("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if skip[relPath] {
			return nil
		}

		if info.IsDir() {
			if c.IsExcludedDir(info.Name()) {
				logger.Debug("Skipping excluded directory", zap.String("directory", relPath))
				return filepath.SkipDir
			}
			tree.Entries = append(tree.Entries, Entry{Path: relPath, Kind: KindDirectory})
			return nil
		}

		// Symlinked directories are listed by the parent but never walked.
		if info.Mode()&os.ModeSymlink != 0 {
			if target, statErr := fsys.Stat(path); statErr == nil && target.IsDir() {
				logger.Debug("Skipping symlinked directory", zap.String("path", relPath))
				return nil
			}
		}

		tree.Entries = append(tree.Entries, Entry{Path: relPath, Kind: KindFile})

		if !c.Include(relPath) {
			tree.Excluded++
			return nil
		}

		dir := filepath.ToSlash(filepath.Dir(relPath))
		if dir == "." {
			dir = projectName
		}
		tree.Groups[dir] = append(tree.Groups[dir], path)
		tree.Included++
		logger.Debug("Added file to processing list", zap.String("file", relPath))
		return nil
	})
	if walkErr != nil {
		logger.Warn("Traversal stopped early", zap.Error(walkErr))
	}

	logger.Debug("Completed traversal",
		zap.Int("entries", len(tree.Entries)),
		zap.Int("included", tree.Included),
		zap.Int("excluded", tree.Excluded))
	return tree, nil
}
