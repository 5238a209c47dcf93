package buildpipeline

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DisplayName is the name a file is shown under in progress output:
// relative to baseDir when inside it, slash separated.
func DisplayName(file, baseDir string) string {
	path := filepath.Clean(file)
	base := strings.TrimSpace(baseDir)
	if base != "" {
		if abs, err := filepath.Abs(base); err == nil {
			base = abs
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if rel, err := filepath.Rel(base, path); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}

// NormalizeProgressFiles maps files to display names, drops duplicates
// and sorts them.
func NormalizeProgressFiles(files []string, baseDir string) []string {
	if len(files) == 0 {
		return files
	}
	normalized := make([]string, 0, len(files))
	seen := make(map[string]struct{}, len(files))
	for _, file := range files {
		if file == "" {
			continue
		}
		path := DisplayName(file, baseDir)
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		normalized = append(normalized, path)
	}
	sort.Strings(normalized)
	return normalized
}

func emitQueued(sink ProgressSink, files []string) {
	if sink == nil {
		return
	}
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: StageCompile, Status: StatusQueued})
	}
}

func emitStage(sink ProgressSink, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
