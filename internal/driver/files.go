package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirs are never descended into while collecting inputs.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// ListFiles возвращает отсортированный список файлов с нужными расширениями.
// Аргумент может быть файлом (берётся как есть) или директорией.
func ListFiles(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if hasExt(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func hasExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// OutputPath maps an input under baseDir to its .js file under outDir.
func OutputPath(input, baseDir, outDir string) (string, error) {
	rel, err := filepath.Rel(baseDir, input)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(input)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".js"
	return filepath.Join(outDir, rel), nil
}
