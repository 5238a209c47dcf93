package diagfmt

import (
	"bytes"
	"testing"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

func TestShort(t *testing.T) {
	fs, id := setup()
	items := []diag.Diagnostic{
		diag.NewError(diag.TplVElseNoAdjacentIf, source.Span{File: id, Start: 27, End: 33}, "v-else has no adjacent v-if\nsecond line"),
		diag.New(diag.SevWarning, diag.TplVModelUnnecessaryValue, source.Span{File: id, Start: 6, End: 7}, "unused").
			WithNote(source.Span{File: id, Start: 0, End: 5}, "here"),
		diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: 7}, "cache off"),
	}

	var buf bytes.Buffer
	if err := Short(&buf, items, fs, PathModeBasename, true); err != nil {
		t.Fatal(err)
	}
	want := "WARNING IO4003 - cache off\n" +
		"WARNING TPL3012 App.jsx:1:7 unused\n" +
		"  note App.jsx:1:1 here\n" +
		"ERROR TPL3002 App.jsx:2:16 v-else has no adjacent v-if\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}
