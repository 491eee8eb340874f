package system

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// maxSymlinkHops matches the usual kernel limit on link resolution.
const maxSymlinkHops = 40

var (
	errTooManyLinks = errors.New("too many levels of symbolic links")
	errNotALink     = errors.New("not a symbolic link")
)

// MockFS implements FileSystem for testing.
// Paths are cleaned before lookup; relative paths are taken relative to Cwd.
type MockFS struct {
	mu    sync.RWMutex
	files map[string]*mockFile
	dirs  map[string]bool
	links map[string]string

	// Cwd is returned by Getwd.
	Cwd string

	// Error injection
	ReadFileErr  error
	WriteFileErr error
	StatErr      error
	ReadDirErr   error
	GetwdErr     error
}

type mockFile struct {
	data []byte
	mode fs.FileMode
}

// NewMockFS creates a new MockFS with an empty filesystem rooted at "/".
func NewMockFS() *MockFS {
	return &MockFS{
		files: make(map[string]*mockFile),
		dirs:  map[string]bool{"/": true},
		links: make(map[string]string),
		Cwd:   "/",
	}
}

// AddFile adds a file to the mock filesystem.
func (m *MockFS) AddFile(path string, data []byte, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = m.abs(path)
	m.files[path] = &mockFile{data: data, mode: mode}
	m.addParents(path)
}

// AddDir adds a directory, and its parents, to the mock filesystem.
func (m *MockFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = m.abs(path)
	m.dirs[path] = true
	m.addParents(path)
}

// AddSymlink adds a symbolic link at path pointing to target.
// A relative target is resolved against the link's directory.
func (m *MockFS) AddSymlink(path, target string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = m.abs(path)
	m.links[path] = target
	m.addParents(path)
}

// GetFile returns the contents of a file in the mock filesystem.
func (m *MockFS) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resolved, err := m.resolve(m.abs(path))
	if err != nil {
		return nil, false
	}
	f, ok := m.files[resolved]
	if !ok {
		return nil, false
	}
	return f.data, true
}

func (m *MockFS) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.GetFile(path)
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MockFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if m.WriteFileErr != nil {
		return m.WriteFileErr
	}
	m.AddFile(path, data, perm)
	return nil
}

func (m *MockFS) Stat(path string) (fs.FileInfo, error) {
	if m.StatErr != nil {
		return nil, m.StatErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved, err := m.resolve(m.abs(path))
	if err != nil {
		return nil, err
	}
	return m.info(resolved, filepath.Base(path))
}

func (m *MockFS) Lstat(path string) (fs.FileInfo, error) {
	if m.StatErr != nil {
		return nil, m.StatErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = m.abs(path)
	dir, err := m.resolve(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	full := filepath.Join(dir, filepath.Base(path))
	if _, ok := m.links[full]; ok {
		return &mockFileInfo{name: filepath.Base(path), mode: fs.ModeSymlink | 0777}, nil
	}
	return m.info(full, filepath.Base(path))
}

func (m *MockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if m.ReadDirErr != nil {
		return nil, m.ReadDirErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir, err := m.resolve(m.abs(path))
	if err != nil {
		return nil, err
	}
	if !m.dirs[dir] {
		if _, ok := m.files[dir]; ok {
			return nil, errors.New("not a directory")
		}
		return nil, fs.ErrNotExist
	}

	entries := make(map[string]fs.DirEntry)
	for p, f := range m.files {
		if filepath.Dir(p) == dir && p != dir {
			name := filepath.Base(p)
			entries[name] = &mockDirEntry{name: name, mode: f.mode}
		}
	}
	for p := range m.dirs {
		if filepath.Dir(p) == dir && p != dir {
			name := filepath.Base(p)
			entries[name] = &mockDirEntry{name: name, isDir: true, mode: fs.ModeDir | 0755}
		}
	}
	for p := range m.links {
		if filepath.Dir(p) == dir {
			name := filepath.Base(p)
			entries[name] = &mockDirEntry{name: name, mode: fs.ModeSymlink | 0777}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

func (m *MockFS) EvalSymlinks(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resolved, err := m.resolve(m.abs(path))
	if err != nil {
		return "", err
	}
	if !m.exists(resolved) {
		return "", fs.ErrNotExist
	}
	return resolved, nil
}

func (m *MockFS) Readlink(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = m.abs(path)
	dir, err := m.resolve(filepath.Dir(path))
	if err != nil {
		return "", err
	}
	full := filepath.Join(dir, filepath.Base(path))
	if target, ok := m.links[full]; ok {
		return target, nil
	}
	if !m.exists(full) {
		return "", &fs.PathError{Op: "readlink", Path: path, Err: fs.ErrNotExist}
	}
	return "", &fs.PathError{Op: "readlink", Path: path, Err: errNotALink}
}

func (m *MockFS) Getwd() (string, error) {
	if m.GetwdErr != nil {
		return "", m.GetwdErr
	}
	return m.Cwd, nil
}

func (m *MockFS) IsDir(path string) bool {
	info, err := m.Stat(path)
	return err == nil && info.IsDir()
}

func (m *MockFS) abs(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.Cwd, path)
	}
	return filepath.Clean(path)
}

func (m *MockFS) addParents(path string) {
	dir := filepath.Dir(path)
	for {
		m.dirs[dir] = true
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

func (m *MockFS) exists(path string) bool {
	_, isFile := m.files[path]
	return isFile || m.dirs[path]
}

func (m *MockFS) info(path, name string) (fs.FileInfo, error) {
	if f, ok := m.files[path]; ok {
		return &mockFileInfo{name: name, size: int64(len(f.data)), mode: f.mode}, nil
	}
	if m.dirs[path] {
		return &mockFileInfo{name: name, isDir: true, mode: fs.ModeDir | 0755}, nil
	}
	return nil, fs.ErrNotExist
}

// resolve replaces symlinked components of an absolute, clean path until
// none remain.
func (m *MockFS) resolve(path string) (string, error) {
	for hops := 0; hops <= maxSymlinkHops; hops++ {
		next, changed := m.resolveOnce(path)
		if !changed {
			return next, nil
		}
		path = next
	}
	return "", errTooManyLinks
}

func (m *MockFS) resolveOnce(path string) (string, bool) {
	parts := strings.Split(strings.TrimPrefix(path, string(filepath.Separator)), string(filepath.Separator))
	cur := string(filepath.Separator)
	for i, part := range parts {
		if part == "" {
			continue
		}
		next := filepath.Join(cur, part)
		if target, ok := m.links[next]; ok {
			if !filepath.IsAbs(target) {
				target = filepath.Join(cur, target)
			}
			rest := append([]string{target}, parts[i+1:]...)
			return filepath.Clean(filepath.Join(rest...)), true
		}
		cur = next
	}
	return path, false
}

// mockFileInfo implements fs.FileInfo for testing.
type mockFileInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Now() }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements fs.DirEntry for testing.
type mockDirEntry struct {
	name  string
	mode  fs.FileMode
	isDir bool
}

func (m *mockDirEntry) Name() string      { return m.name }
func (m *mockDirEntry) IsDir() bool       { return m.isDir }
func (m *mockDirEntry) Type() fs.FileMode { return m.mode.Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) {
	return &mockFileInfo{name: m.name, mode: m.mode, isDir: m.isDir}, nil
}

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records all executed commands for verification.
	Commands []MockCommand

	// Responses maps command patterns to responses.
	// Key format: "command arg1" or just "command".
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching response is found.
	DefaultResponse MockResponse
}

// MockCommand records an executed command.
type MockCommand struct {
	Name string
	Args []string
}

// MockResponse defines the response for a command.
type MockResponse struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Err      error

	// Hang blocks Capture until the context is done, then returns its error.
	Hang bool
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  make([]MockCommand, 0),
		Responses: make(map[string]MockResponse),
	}
}

// AddResponse adds a response for a specific command pattern.
func (m *MockExecutor) AddResponse(pattern string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = resp
}

func (m *MockExecutor) Capture(ctx context.Context, name string, args ...string) (*Output, error) {
	resp := m.record(name, args)

	if resp.Hang {
		<-ctx.Done()
		return &Output{ExitCode: -1}, ctx.Err()
	}
	if resp.Err != nil {
		return &Output{}, resp.Err
	}
	return &Output{Stdout: resp.Stdout, Stderr: resp.Stderr, ExitCode: resp.ExitCode}, nil
}

func (m *MockExecutor) record(name string, args []string) MockResponse {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, MockCommand{Name: name, Args: args})

	key := name
	if len(args) > 0 {
		key = name + " " + args[0]
	}

	if resp, ok := m.Responses[key]; ok {
		return resp
	}
	if resp, ok := m.Responses[name]; ok {
		return resp
	}
	return m.DefaultResponse
}

// LastCommand returns the most recently executed command.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return MockCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}

// Count returns the number of recorded commands.
func (m *MockExecutor) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Commands)
}

// Reset clears all recorded commands.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = make([]MockCommand, 0)
}
