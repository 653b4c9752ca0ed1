package filesystem

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files.
type memoryFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f *memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements Provider over an in-memory file map.
// Paths use forward slashes. Directories exist implicitly: any path
// segment that prefixes a file path is a directory.
type MemoryFileSystem struct {
	files map[string][]byte
}

// NewMemoryFileSystem creates a MemoryFileSystem from path -> content.
func NewMemoryFileSystem(files map[string][]byte) *MemoryFileSystem {
	normalized := make(map[string][]byte, len(files))
	for p, content := range files {
		normalized[path.Clean(p)] = content
	}
	return &MemoryFileSystem{files: normalized}
}

// ReadDir reads the immediate entries of dir. Subdirectories appear as
// directory entries; nested files do not.
func (m *MemoryFileSystem) ReadDir(dir string) ([]FileInfo, error) {
	dir = path.Clean(dir)

	seen := make(map[string]bool)
	var infos []FileInfo
	found := false

	for p, content := range m.files {
		if !strings.HasPrefix(p, dir+"/") {
			continue
		}
		found = true
		rest := strings.TrimPrefix(p, dir+"/")

		if i := strings.IndexByte(rest, '/'); i >= 0 {
			// Nested file: surface its first path segment as a directory.
			name := rest[:i]
			if !seen[name] {
				seen[name] = true
				infos = append(infos, &memoryFileInfo{name: name, isDir: true})
			}
			continue
		}

		infos = append(infos, &memoryFileInfo{name: rest, size: int64(len(content))})
	}

	if !found {
		return nil, &fs.PathError{Op: "readdir", Path: dir, Err: fs.ErrNotExist}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	return infos, nil
}

// ReadFile reads a specific file at the given path.
func (m *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	content, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), content...), nil
}

// Stat returns file information for the given path. A path that
// prefixes stored files stats as a directory.
func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	p = path.Clean(p)

	if content, ok := m.files[p]; ok {
		return &memoryFileInfo{name: path.Base(p), size: int64(len(content))}, nil
	}

	for stored := range m.files {
		if strings.HasPrefix(stored, p+"/") {
			return &memoryFileInfo{name: path.Base(p), isDir: true}, nil
		}
	}

	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}
