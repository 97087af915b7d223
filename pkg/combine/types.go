package combine

// Kind tags an Entry as a directory or a file.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// String returns the label used in the manifest.
func (k Kind) String() string {
	if k == KindDirectory {
		return "Directory"
	}
	return "File"
}

// Entry is one filesystem node seen during the walk.
type Entry struct {
	Path string // Relative to the project root, forward slashes.
	Kind Kind
}

// Tree is the result of walking a project.
type Tree struct {
	ProjectName string
	Root        string              // Absolute project root.
	Entries     []Entry             // Every visited node except the root, unfiltered.
	Groups      map[string][]string // Directory relative path -> included absolute file paths.
	Included    int
	Excluded    int
}

// Status describes how a file's content was obtained.
type Status int

const (
	StatusOK       Status = iota // Decoded as UTF-8.
	StatusFallback               // Decoded as ISO-8859-1.
	StatusMinified               // Replaced with the minified placeholder.
	StatusError                  // Replaced with the read-error placeholder.
)

// FileContent holds the content of a file after processing.
type FileContent struct {
	Path    string // Relative path, forward slashes.
	Content string // Body to emit; always ends in a newline.
	Status  Status
}

// Summary reports what a run produced.
type Summary struct {
	ProjectName  string
	Output       string
	OutputSize   int64
	Manifest     string
	ManifestSize int64
	Included     int
	Excluded     int
	Entries      int // Manifest rows, root included.
}
