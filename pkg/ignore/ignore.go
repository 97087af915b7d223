package ignore

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// IgnorePattern encapsulates a compiled shell-wildcard pattern and the
// line it was compiled from.
type IgnorePattern struct {
	Pattern glob.Glob // Compiled pattern; '*' also matches '/'.
	Line    string    // Original pattern line.
	LineNo  int       // Position in the source list (1-based), blank lines included.
}

// PatternSet represents a collection of exclusion patterns.
type PatternSet struct {
	Patterns []*IgnorePattern // List of compiled patterns, in source order.
	logger   *zap.Logger
}

// NewPatternSet initializes a PatternSet instance with an optional logger.
func NewPatternSet(logger *zap.Logger) *PatternSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatternSet{
		Patterns: []*IgnorePattern{},
		logger:   logger,
	}
}

// Compile builds a PatternSet from the given lines.
func Compile(logger *zap.Logger, lines ...string) *PatternSet {
	ps := NewPatternSet(logger)
	ps.CompileLines(lines...)
	return ps
}

// CompileLines compiles a set of pattern lines and adds them to the set.
// Empty lines and lines starting with '#' are skipped, as are patterns
// that fail to compile.
func (ps *PatternSet) CompileLines(lines ...string) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// No separators: wildcards cross path boundaries like fnmatch.
		g, err := glob.Compile(trimmed)
		if err != nil {
			ps.logger.Warn("Invalid pattern", zap.String("pattern", trimmed), zap.Int("lineNo", i+1), zap.Error(err))
			continue
		}

		ps.Patterns = append(ps.Patterns, &IgnorePattern{
			Pattern: g,
			Line:    trimmed,
			LineNo:  i + 1,
		})
	}
}

// MatchesPathWithPattern checks if a path matches any pattern and returns
// the first pattern that matched, or nil.
//
// The path is normalized to forward slashes and tried both as given and
// rooted with a leading '/', so "**/x" also matches "x" at the top level.
func (ps *PatternSet) MatchesPathWithPattern(path string) (bool, *IgnorePattern) {
	normalizedPath := normalizePath(path)
	rooted := "/" + strings.TrimPrefix(normalizedPath, "/")

	for _, pattern := range ps.Patterns {
		if pattern.Pattern.Match(normalizedPath) || pattern.Pattern.Match(rooted) {
			return true, pattern
		}
	}

	return false, nil
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}
