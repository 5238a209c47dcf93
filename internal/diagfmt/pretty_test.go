package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

func setup() (*source.FileSet, source.FileID) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("/home/user/project/src/App.jsx", []byte("const a = 1\nconst b = <div v-else/>\n"))
	fs.SetBaseDir("/home/user/project")
	return fs, id
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs, id := setup()
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.TplVElseNoAdjacentIf, source.Span{File: id, Start: 27, End: 33}, "v-else has no adjacent v-if"))

	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/App.jsx:2:16"},
		{"relative", PathModeRelative, "src/App.jsx:2:16"},
		{"basename", PathModeBasename, "App.jsx:2:16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()
			for _, want := range []string{tt.want, "ERROR", "TPL3002", "v-else has no adjacent v-if"} {
				if !strings.Contains(out, want) {
					t.Errorf("missing %q in:\n%s", want, out)
				}
			}
		})
	}
}

func TestPrettyContextAndCarets(t *testing.T) {
	fs, id := setup()
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.TplVElseNoAdjacentIf, source.Span{File: id, Start: 27, End: 33}, "bad"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 4 {
		t.Fatalf("output:\n%s", buf.String())
	}
	if lines[1] != "1 | const a = 1" || lines[2] != "2 | const b = <div v-else/>" {
		t.Fatalf("context lines = %q", lines[1:3])
	}
	if lines[3] != "  |                ^~~~~~" {
		t.Fatalf("caret line = %q", lines[3])
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs, id := setup()
	d := diag.NewError(diag.TplVElseNoAdjacentIf, source.Span{File: id, Start: 27, End: 34}, "v-else has no adjacent v-if").
		WithNote(source.Span{File: id, Start: 0, End: 5}, "previous sibling is here").
		WithFix("drop v-else", diag.FixEdit{Span: source.Span{File: id, Start: 26, End: 33}, NewText: ""})
	bag := diag.NewBag(0)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true, ShowPreview: true})
	out := buf.String()
	for _, want := range []string{
		"note: App.jsx:1:1: previous sibling is here",
		"fix #1: drop v-else",
		`apply=""`,
		"preview:",
		"- const b = <div v-else/>",
		"+ const b = <div/>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") || strings.Contains(buf.String(), "fix #") {
		t.Errorf("notes and fixes must be opt-in:\n%s", buf.String())
	}
}

func TestPrettyWithoutFile(t *testing.T) {
	fs, _ := setup()
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: 42}, "cache is read-only"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 2})
	if got := buf.String(); !strings.HasPrefix(got, "WARNING IO") || strings.Contains(got, "|") {
		t.Fatalf("output = %q", got)
	}
}

func TestPrettyColor(t *testing.T) {
	fs, id := setup()
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.TplVElseNoAdjacentIf, source.Span{File: id, Start: 27, End: 33}, "bad"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escapes: %q", colored.String())
	}
}

func TestJSON(t *testing.T) {
	fs, id := setup()
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.TplVElseNoAdjacentIf, source.Span{File: id, Start: 27, End: 33}, "bad").
		WithFix("drop", diag.FixEdit{Span: source.Span{File: id, Start: 26, End: 33}}))
	bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: 9}, "no cache"))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeFixes: true, IncludePreviews: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if out.Count != 2 {
		t.Fatalf("count = %d", out.Count)
	}
	first := out.Diagnostics[0]
	if first.Code != "TPL3002" || first.Severity != "ERROR" || first.Location.File != "App.jsx" {
		t.Errorf("first = %+v", first)
	}
	if first.Location.StartLine != 2 || first.Location.StartCol != 16 {
		t.Errorf("position = %d:%d", first.Location.StartLine, first.Location.StartCol)
	}
	if len(first.Fixes) != 1 || first.Fixes[0].Edits[0].OldText != " v-else" {
		t.Errorf("fixes = %+v", first.Fixes)
	}
	if got := first.Fixes[0].Edits[0].AfterLines; len(got) != 1 || got[0] != "const b = <div/>" {
		t.Errorf("after = %q", got)
	}
	if out.Diagnostics[1].Location.File != "" {
		t.Errorf("fileless location = %+v", out.Diagnostics[1].Location)
	}

	buf.Reset()
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"count": 1`) {
		t.Errorf("Max ignored:\n%s", buf.String())
	}
}
