// Package combine walks a project, concatenates its relevant files into one
// text document and lists every entry it saw in a CSV manifest.
package combine

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Execute is the entry point for the combine package.
// It scans the current working directory and writes both outputs into it.
func Execute(logger *zap.Logger, out io.Writer) (*Summary, error) {
	if logger == nil {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Error("Failed to get current directory", zap.Error(err))
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	summary, err := RunCombine(afero.NewOsFs(), DefaultArguments(dir), out, logger)
	if err != nil {
		logger.Error("Failed to execute combine process", zap.Error(err))
		return nil, fmt.Errorf("combine execution failed: %w", err)
	}
	return summary, nil
}
