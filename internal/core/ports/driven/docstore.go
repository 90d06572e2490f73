package driven

import "context"

// DocumentStore reads and writes markdown documents.
// Backed by the local filesystem.
type DocumentStore interface {
	// ListMarkdown returns the *.md files directly inside dir, sorted
	// by name. When recursive is set it descends into subdirectories.
	ListMarkdown(ctx context.Context, dir string, recursive bool) ([]string, error)

	// Read returns the full content of the file at path.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the content of the file at path.
	Write(ctx context.Context, path string, content []byte) error

	// EnsureDir creates dir and any missing parents.
	EnsureDir(ctx context.Context, dir string) error

	// Exists reports whether path names an existing file or directory.
	Exists(path string) bool

	// IsDir reports whether path names an existing directory.
	IsDir(path string) bool
}
