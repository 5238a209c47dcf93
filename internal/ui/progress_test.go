package ui

import (
	"strings"
	"testing"

	"jsxc/internal/buildpipeline"
)

func TestApplyEvent(t *testing.T) {
	m := NewProgressModel("build", []string{"a.jsx", "b.jsx"}, nil).(*progressModel)

	m.applyEvent(buildpipeline.Event{File: "a.jsx", Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusWorking})
	if m.rows[0].last.Label() != "compiling" {
		t.Fatalf("status = %q", m.rows[0].last.Label())
	}
	m.applyEvent(buildpipeline.Event{File: "a.jsx", Stage: buildpipeline.StageWrite, Status: buildpipeline.StatusDone})
	m.applyEvent(buildpipeline.Event{File: "b.jsx", Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusError})
	m.applyEvent(buildpipeline.Event{File: "late.jsx", Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusCached})

	if len(m.rows) != 3 || m.failed != 1 || m.cached != 1 {
		t.Fatalf("items = %+v, failed = %d, cached = %d", m.rows, m.failed, m.cached)
	}
	if got := m.percent(); got != 1.0 {
		t.Fatalf("percent = %v", got)
	}

	m.applyEvent(buildpipeline.Event{Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusWorking})
	m.done = true
	view := m.View()
	for _, want := range []string{"done: build (compiling), 1 failed, 1 cached", "written", "late.jsx"} {
		if !strings.Contains(view, want) {
			t.Errorf("missing %q in view:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.jsx", 20, "short.jsx"},
		{"components/VeryLongName.jsx", 10, "compone..."},
		{"компоненты.jsx", 6, "ком..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
