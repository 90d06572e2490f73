package driven

import "context"

// FileWatcher streams markdown file paths as they change on disk.
type FileWatcher interface {
	// Watch emits the path of every visible markdown file created or
	// written under dirs until ctx is cancelled. Directories created
	// during the watch are picked up as well. The channel closes when
	// watching stops.
	Watch(ctx context.Context, dirs []string) (<-chan string, error)
}
