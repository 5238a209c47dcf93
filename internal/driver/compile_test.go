package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/observ"
	"jsxc/internal/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.jsx"), "")
	writeFile(t, filepath.Join(dir, "a", "c.JSX"), "")
	writeFile(t, filepath.Join(dir, "a", "d.js"), "")
	writeFile(t, filepath.Join(dir, "node_modules", "x.jsx"), "")
	writeFile(t, filepath.Join(dir, ".hidden", "y.jsx"), "")

	files, err := ListFiles(dir, []string{".jsx"})
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{filepath.Join(dir, "a", "c.JSX"), filepath.Join(dir, "b.jsx")}
	if strings.Join(files, "|") != strings.Join(want, "|") {
		t.Fatalf("files = %v, want %v", files, want)
	}

	single := filepath.Join(dir, "a", "d.js")
	files, err = ListFiles(single, []string{".jsx"})
	if err != nil || len(files) != 1 || files[0] != single {
		t.Fatalf("single file: %v, %v", files, err)
	}
}

func TestOutputPath(t *testing.T) {
	got, err := OutputPath(filepath.Join("src", "ui", "App.jsx"), "src", "dist")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("dist", "ui", "App.js"); got != want {
		t.Fatalf("OutputPath = %s, want %s", got, want)
	}
}

func TestCompileFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.jsx")
	bad := filepath.Join(dir, "bad.jsx")
	missing := filepath.Join(dir, "missing.jsx")
	writeFile(t, good, "export default () => <div>{msg}</div>\n")
	writeFile(t, bad, "export default <div v-else/>\n")

	var mu sync.Mutex
	statuses := make(map[string][]FileStatus)
	opts := Options{
		Config: project.Default(),
		Jobs:   2,
		Observer: func(ev FileEvent) {
			mu.Lock()
			statuses[ev.File] = append(statuses[ev.File], ev.Status)
			mu.Unlock()
		},
	}
	results, err := CompileFiles(context.Background(), []string{good, bad, missing}, opts)
	if err != nil {
		t.Fatalf("CompileFiles: %v", err)
	}
	if len(results) != 3 || results[0].Path != good || results[2].Path != missing {
		t.Fatalf("results out of order: %+v", results)
	}
	if results[0].HasErrors() || !strings.Contains(results[0].Code, "_setNodes") {
		t.Errorf("good: %+v", results[0])
	}
	if !results[1].HasErrors() || results[1].Diagnostics[0].Code != diag.TplVElseNoAdjacentIf {
		t.Errorf("bad: %+v", results[1].Diagnostics)
	}
	if results[2].Diagnostics[0].Code != diag.IOLoadFileError {
		t.Errorf("missing: %+v", results[2].Diagnostics)
	}
	if got := statuses[good]; len(got) != 2 || got[1] != FileCompiled {
		t.Errorf("good statuses = %v", got)
	}
	if got := statuses[bad]; len(got) != 2 || got[1] != FileFailed {
		t.Errorf("bad statuses = %v", got)
	}
	if len(results[0].Timing.Phases) == 0 {
		t.Error("no timings recorded")
	}
}

func TestCompileFilesCache(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.jsx")
	writeFile(t, file, "export const A = <p>hi</p>\n")
	cache, err := OpenDiskCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Config: project.Default(), Cache: cache}

	first, err := CompileFiles(context.Background(), []string{file}, opts)
	if err != nil || first[0].Cached {
		t.Fatalf("first compile: cached=%v err=%v", first[0].Cached, err)
	}
	second, err := CompileFiles(context.Background(), []string{file}, opts)
	if err != nil || !second[0].Cached {
		t.Fatalf("second compile: cached=%v err=%v", second[0].Cached, err)
	}
	if second[0].Code != first[0].Code {
		t.Fatalf("cached code differs:\n%s\n---\n%s", second[0].Code, first[0].Code)
	}

	other := opts
	other.Config.Compiler.Runtime = "vue/vapor"
	third, _ := CompileFiles(context.Background(), []string{file}, other)
	if third[0].Cached {
		t.Fatal("cache ignored option change")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	fourth, _ := CompileFiles(context.Background(), []string{file}, opts)
	if fourth[0].Cached {
		t.Fatal("cache survived DropAll")
	}
}

func TestCompileFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.jsx")
	writeFile(t, file, "<p/>\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CompileFiles(ctx, []string{file}, Options{Config: project.Default()}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestSumTimings(t *testing.T) {
	results := []FileResult{
		{Timing: reportOf("parse", 1, "codegen", 2)},
		{Timing: reportOf("parse", 3)},
		{Cached: true},
	}
	sum := SumTimings(results)
	if len(sum.Phases) != 2 || sum.Phases[0].DurationMS != 4 || sum.Phases[1].Name != "codegen" {
		t.Fatalf("sum = %+v", sum)
	}
	d := TimingDiagnostic("", sum)
	if d.Code != diag.ObsTimings || !strings.Contains(d.Message, "pipeline") || len(d.Notes) != 1 {
		t.Fatalf("diagnostic = %+v", d)
	}
}

func reportOf(kv ...any) observ.Report {
	var r observ.Report
	for i := 0; i < len(kv); i += 2 {
		ms := float64(kv[i+1].(int))
		r.Phases = append(r.Phases, observ.PhaseReport{Name: kv[i].(string), DurationMS: ms})
		r.TotalMS += ms
	}
	return r
}
