// Package classify decides which project files are excluded from the
// aggregated output and which are worth including.
package classify

import (
	"path"
	"path/filepath"
	"strings"

	"concatlist/pkg/ignore"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Reason identifies the rule that excluded a path.
type Reason int

const (
	ReasonNone      Reason = iota // Not excluded.
	ReasonDirectory               // A path segment is an excluded directory.
	ReasonPattern                 // The path matches an excluded pattern.
	ReasonFilename                // The basename is an excluded file.
	ReasonSize                    // The file is too large.
	ReasonLocale                  // A JSON file under a localization directory.
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonDirectory:
		return "directory"
	case ReasonPattern:
		return "pattern"
	case ReasonFilename:
		return "filename"
	case ReasonSize:
		return "size"
	case ReasonLocale:
		return "locale"
	}
	return "unknown"
}

// stringSet is a helper type for constant-time membership checks.
type stringSet map[string]struct{}

func newStringSet(items []string) stringSet {
	s := make(stringSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s stringSet) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// Classifier holds the static classification lists for one project root.
// It is safe for concurrent use; nothing is mutated after New.
type Classifier struct {
	fs   afero.Fs
	root string

	excludedDirs   stringSet
	patterns       *ignore.PatternSet
	excludedFiles  stringSet
	importantFiles stringSet
	extensions     stringSet
	sizeExempt     stringSet
	buildMarkers   stringSet
	maxFileSize    int64

	logger *zap.Logger
}

// New returns a Classifier using the built-in lists. Sizes are looked up on
// fsys relative to root.
func New(fsys afero.Fs, root string, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		fs:             fsys,
		root:           root,
		excludedDirs:   newStringSet(ExcludedDirs),
		patterns:       ignore.Compile(logger, ExcludedPatterns...),
		excludedFiles:  newStringSet(ExcludedFiles),
		importantFiles: newStringSet(ImportantFiles),
		extensions:     newStringSet(SourceExtensions),
		sizeExempt:     newStringSet(SizeExemptExtensions),
		buildMarkers:   newStringSet(BuildMarkers),
		maxFileSize:    MaxFileSize,
		logger:         logger,
	}
}

// IsExcludedDir reports whether a directory with this name is pruned.
func (c *Classifier) IsExcludedDir(name string) bool {
	return c.excludedDirs.Contains(name)
}

// ShouldExclude reports whether relPath is kept out of the aggregated output.
func (c *Classifier) ShouldExclude(relPath string) bool {
	return c.Check(relPath) != ReasonNone
}

// Check evaluates the exclusion rules in order and returns the first one
// that applies. relPath is relative to the project root.
func (c *Classifier) Check(relPath string) Reason {
	slashed := filepath.ToSlash(relPath)
	name := path.Base(slashed)

	for _, segment := range strings.Split(slashed, "/") {
		if c.excludedDirs.Contains(segment) {
			return ReasonDirectory
		}
	}

	if ok, pattern := c.patterns.MatchesPathWithPattern(slashed); ok {
		c.logger.Debug("Path matches excluded pattern", zap.String("path", slashed), zap.String("pattern", pattern.Line), zap.Int("lineNo", pattern.LineNo))
		return ReasonPattern
	}

	if c.excludedFiles.Contains(name) {
		return ReasonFilename
	}

	// A failed stat never excludes.
	if info, err := c.fs.Stat(filepath.Join(c.root, filepath.FromSlash(slashed))); err == nil {
		if info.Size() > c.maxFileSize && !c.sizeExempt.Contains(strings.ToLower(path.Ext(name))) {
			return ReasonSize
		}
	} else {
		c.logger.Debug("Failed to stat file", zap.String("path", slashed), zap.Error(err))
	}

	lowerPath := "/" + strings.ToLower(slashed)
	for _, indicator := range LocaleIndicators {
		if strings.Contains(lowerPath, indicator) {
			if strings.HasSuffix(name, ".json") && !c.importantFiles.Contains(name) {
				return ReasonLocale
			}
			break
		}
	}

	return ReasonNone
}

// IsImportant reports whether a file named name at relPath is worth
// including: a known config file, a source extension, or a build marker.
func (c *Classifier) IsImportant(name, relPath string) bool {
	if c.importantFiles.Contains(name) {
		return true
	}

	ext := strings.ToLower(path.Ext(name))
	if ext != "" && c.extensions.Contains(ext) {
		return true
	}
	// Dotfiles such as ".env.example" are listed whole.
	if strings.HasPrefix(name, ".") && c.extensions.Contains(strings.ToLower(name)) {
		return true
	}

	if ext == "" && c.buildMarkers.Contains(name) {
		return true
	}

	return false
}

// Include reports whether the file at relPath goes into the aggregated
// output. Exclusion is checked first.
func (c *Classifier) Include(relPath string) bool {
	if reason := c.Check(relPath); reason != ReasonNone {
		c.logger.Debug("Excluded file", zap.String("path", relPath), zap.Stringer("reason", reason))
		return false
	}
	return c.IsImportant(path.Base(filepath.ToSlash(relPath)), relPath)
}
