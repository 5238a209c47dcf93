package source

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileID индексирует файл внутри FileSet.
type FileID uint32

// FileFlags описывает, что сделала нормализация с исходным текстом.
type FileFlags uint8

const (
	FileVirtual FileFlags = 1 << iota // не с диска: stdin, repl, тесты
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// LineCol is a 1-based position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// File is one compiled module. Content is already normalized.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Flags   FileFlags

	starts []uint32 // смещения начала каждой строки, starts[0] == 0
}

func lineStarts(content []byte) []uint32 {
	starts := make([]uint32, 1, len(content)/40+1)
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, uint32(i+1)) // #nosec G115 -- размер проверен в FileSet.add
		}
	}
	return starts
}

// Lines returns the number of lines; a trailing newline opens an empty last line.
func (f *File) Lines() uint32 {
	return uint32(len(f.starts)) // #nosec G115
}

// Position converts a byte offset to line and column.
func (f *File) Position(off uint32) LineCol {
	i, found := slices.BinarySearch(f.starts, off)
	if !found {
		i--
	}
	return LineCol{Line: uint32(i + 1), Col: off - f.starts[i] + 1} // #nosec G115
}

// LineStart returns the offset of the first byte of line; past the end it is len(Content).
func (f *File) LineStart(line uint32) uint32 {
	if line == 0 {
		return 0
	}
	if line > f.Lines() {
		return uint32(len(f.Content)) // #nosec G115
	}
	return f.starts[line-1]
}

// LineEnd returns the offset just past the line including its newline.
func (f *File) LineEnd(line uint32) uint32 {
	return f.LineStart(line + 1)
}

// GetLine returns line text without the newline, "" for lines out of range.
func (f *File) GetLine(line uint32) string {
	if line == 0 || line > f.Lines() {
		return ""
	}
	text := f.Content[f.LineStart(line):f.LineEnd(line)]
	return strings.TrimSuffix(string(text), "\n")
}

// FormatPath renders Path for diagnostics. mode is one of
// "absolute", "relative", "basename" or "auto"; baseDir matters only for "relative".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		if rel, ok := relativeTo(f.Path, baseDir); ok {
			return rel
		}
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		// короткие и относительные пути читаются и так
		if len(f.Path) >= 40 && filepath.IsAbs(f.Path) {
			return filepath.Base(f.Path)
		}
	}
	return f.Path
}

// relativeTo gives p relative to base; paths outside base stay absolute.
func relativeTo(p, base string) (string, bool) {
	absP, err := filepath.Abs(p)
	if err != nil {
		return "", false
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absBase, absP)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(absP), true
	}
	return filepath.ToSlash(rel), true
}
