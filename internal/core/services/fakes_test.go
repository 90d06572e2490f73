package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/prompt-insights/docprep-cli/internal/core/domain"
	"github.com/prompt-insights/docprep-cli/internal/core/ports/driven"
)

// fakeDocStore is an in-memory DocumentStore for service tests.
// Paths behave like slash-joined relative paths; parent directories
// spring into existence on write, mirroring the fs adapter.
type fakeDocStore struct {
	mu       sync.Mutex
	files    map[string][]byte
	dirs     map[string]bool
	readErr  map[string]error
	writeErr map[string]error
	writes   int
}

var _ driven.DocumentStore = (*fakeDocStore)(nil)

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{
		files:    make(map[string][]byte),
		dirs:     make(map[string]bool),
		readErr:  make(map[string]error),
		writeErr: make(map[string]error),
	}
}

// addFile seeds a file and its parent directories.
func (f *fakeDocStore) addFile(path, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = []byte(content)
	f.addDirLocked(filepath.Dir(path))
}

// addDir seeds an empty directory.
func (f *fakeDocStore) addDir(dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addDirLocked(dir)
}

func (f *fakeDocStore) addDirLocked(dir string) {
	for dir != "." && dir != "/" && dir != "" {
		f.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

// content returns a stored file as a string for assertions.
func (f *fakeDocStore) content(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.files[path])
}

func (f *fakeDocStore) ListMarkdown(_ context.Context, dir string, recursive bool) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.dirs[dir] {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, dir)
	}

	prefix := dir + string(filepath.Separator)
	var paths []string
	for path := range f.files {
		if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, ".md") {
			continue
		}
		if !recursive && strings.ContainsRune(path[len(prefix):], filepath.Separator) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

func (f *fakeDocStore) Read(_ context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.readErr[path]; err != nil {
		return nil, err
	}
	content, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	return content, nil
}

func (f *fakeDocStore) Write(_ context.Context, path string, content []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.writeErr[path]; err != nil {
		return err
	}
	f.writes++
	f.files[path] = content
	f.addDirLocked(filepath.Dir(path))
	return nil
}

// writeCount returns how many writes landed, for no-write assertions.
func (f *fakeDocStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *fakeDocStore) EnsureDir(_ context.Context, dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addDirLocked(dir)
	return nil
}

func (f *fakeDocStore) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, isFile := f.files[path]
	return isFile || f.dirs[path]
}

func (f *fakeDocStore) IsDir(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirs[path]
}

// fakeFileWatcher feeds a prepared channel of paths to the watch
// service.
type fakeFileWatcher struct {
	paths chan string
	err   error

	mu         sync.Mutex
	watchedDir []string
}

var _ driven.FileWatcher = (*fakeFileWatcher)(nil)

func newFakeFileWatcher() *fakeFileWatcher {
	return &fakeFileWatcher{paths: make(chan string, 16)}
}

func (f *fakeFileWatcher) Watch(_ context.Context, dirs []string) (<-chan string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	f.watchedDir = append(f.watchedDir, dirs...)
	f.mu.Unlock()
	return f.paths, nil
}

func (f *fakeFileWatcher) watched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.watchedDir...)
}
