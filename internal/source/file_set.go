package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every file of one compilation. IDs are dense and never reused:
// adding the same path again yields a new version with a new ID.
type FileSet struct {
	files   []*File
	baseDir string
}

func NewFileSet() *FileSet {
	return &FileSet{}
}

// SetBaseDir sets the directory relative paths are computed from.
func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

// BaseDir returns the base directory, or the working directory when none is set.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	wd, _ := os.Getwd()
	return wd
}

func (fs *FileSet) add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("%s: file too large: %w", path, err))
	}
	f := &File{
		ID:      FileID(n),
		Path:    filepath.ToSlash(filepath.Clean(path)),
		Content: content,
		Flags:   flags,
		starts:  lineStarts(content),
	}
	fs.files = append(fs.files, f)
	return f.ID
}

// Load reads path from disk and normalizes it.
func (fs *FileSet) Load(path string) (FileID, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- путь задаёт пользователь
	if err != nil {
		return 0, err
	}
	content, flags := Normalize(raw)
	return fs.add(path, content, flags), nil
}

// AddVirtual registers in-memory text (stdin, repl, tests) under name.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	content, flags := Normalize(content)
	return fs.add(name, content, flags|FileVirtual)
}

func (fs *FileSet) Get(id FileID) *File { return fs.files[id] }

func (fs *FileSet) Len() int { return len(fs.files) }

// Resolve converts both ends of span to line and column.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return f.Position(span.Start), f.Position(span.End)
}
