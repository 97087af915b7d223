// File: pkg/combine/config.go
package combine

import (
	"path/filepath"
)

// Output file name suffixes.
const (
	TextSuffix     = ".txt"
	ManifestSuffix = "_estructura.csv"
)

// Arguments holds the configuration for one run.
type Arguments struct {
	Directory   string // Project root to scan.
	ProjectName string // Name used in headers and output file names; defaults to the root's base name.
	Output      string // Destination path for the aggregated text file.
	Manifest    string // Destination path for the CSV manifest.
}

// DefaultArguments returns the arguments for scanning dir and writing both
// outputs into it.
func DefaultArguments(dir string) Arguments {
	name := filepath.Base(dir)
	return Arguments{
		Directory:   dir,
		ProjectName: name,
		Output:      filepath.Join(dir, name+TextSuffix),
		Manifest:    filepath.Join(dir, name+ManifestSuffix),
	}
}
