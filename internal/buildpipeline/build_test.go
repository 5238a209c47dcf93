package buildpipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

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

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) last(file string) Event {
	var out Event
	for _, ev := range r.events {
		if ev.File == file {
			out = ev
		}
	}
	return out
}

func TestBuild(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(src, "App.jsx"), "export default () => <div>app</div>\n")
	writeFile(t, filepath.Join(src, "ui", "Button.jsx"), "export const Button = <button onClick={go}>ok</button>\n")
	writeFile(t, filepath.Join(src, "Broken.jsx"), "export default <div v-else/>\n")
	writeFile(t, filepath.Join(src, "notes.txt"), "skip me")

	rec := &recorder{}
	res, err := Build(context.Background(), &BuildRequest{
		Inputs:   []string{src},
		OutDir:   out,
		Config:   project.Default(),
		Progress: rec,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(res.Files) != 3 || res.Failed != 1 {
		t.Fatalf("files = %d, failed = %d", len(res.Files), res.Failed)
	}

	data, err := os.ReadFile(filepath.Join(out, "ui", "Button.js"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if !strings.Contains(string(data), `_delegateEvents("click")`) {
		t.Errorf("output:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(out, "Broken.js")); !os.IsNotExist(err) {
		t.Errorf("broken file was written: %v", err)
	}

	if ev := rec.last("ui/Button.jsx"); ev.Stage != StageWrite || ev.Status != StatusDone {
		t.Errorf("last Button event = %+v", ev)
	}
	if ev := rec.last("Broken.jsx"); ev.Status != StatusError {
		t.Errorf("last Broken event = %+v", ev)
	}
	for _, stage := range []Stage{StageDiscover, StageCompile, StageWrite} {
		if !res.Timings.Has(stage) {
			t.Errorf("no timing for %s", stage)
		}
	}
}

func TestBuildMissingInput(t *testing.T) {
	_, err := Build(context.Background(), &BuildRequest{
		Inputs: []string{filepath.Join(t.TempDir(), "nope")},
		Config: project.Default(),
	})
	if err == nil || !strings.Contains(err.Error(), "discover") {
		t.Fatalf("err = %v", err)
	}
}

func TestNormalizeProgressFiles(t *testing.T) {
	base := filepath.Join("proj", "src")
	files := []string{
		filepath.Join(base, "b.jsx"),
		filepath.Join(base, "a", "c.jsx"),
		filepath.Join(base, "b.jsx"),
		"",
	}
	got := NormalizeProgressFiles(files, base)
	if strings.Join(got, ",") != "a/c.jsx,b.jsx" {
		t.Fatalf("got %v", got)
	}
}

func TestTimingsSum(t *testing.T) {
	var tm Timings
	if tm.Has(StageCompile) || tm.Sum(StageCompile) != 0 {
		t.Fatal("zero Timings must be empty")
	}
	tm.Set(StageCompile, 2*time.Millisecond)
	tm.Set(StageWrite, time.Millisecond)
	if tm.Sum(StageCompile, StageWrite) != 3*time.Millisecond {
		t.Fatalf("sum = %v", tm.Sum(StageCompile, StageWrite))
	}
	if got := tm.Stages(); len(got) != 2 || got[0] != StageCompile || got[1] != StageWrite {
		t.Fatalf("stages = %v", got)
	}
}

func TestEventLabel(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Stage: StageDiscover, Status: StatusWorking}, "discovering"},
		{Event{Stage: StageCompile, Status: StatusWorking}, "compiling"},
		{Event{Stage: StageCompile, Status: StatusDone}, "done"},
		{Event{Stage: StageWrite, Status: StatusDone}, "written"},
		{Event{Stage: StageCompile, Status: StatusCached}, "cached"},
		{Event{Stage: StageWrite, Status: StatusError}, "error"},
		{Event{Status: StatusQueued}, "queued"},
	}
	for _, tt := range tests {
		if got := tt.ev.Label(); got != tt.want {
			t.Errorf("%s/%d: Label = %q, want %q", tt.ev.Stage, tt.ev.Status, got, tt.want)
		}
	}
}
