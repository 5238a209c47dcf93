package diagfmt

import (
	"errors"
	"strings"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

type fixEditPreview struct {
	before []string
	after  []string
}

var errNoPreview = errors.New("edit is outside its file")

// buildFixEditPreview применяет правку к затронутым строкам целиком
// и возвращает их до и после.
func buildFixEditPreview(fs *source.FileSet, edit diag.FixEdit) (fixEditPreview, error) {
	if !knownFile(edit.Span, fs) {
		return fixEditPreview{}, errNoPreview
	}
	f := fs.Get(edit.Span.File)
	start, end := fs.Resolve(edit.Span)

	from := f.LineStart(start.Line)
	to := f.LineEnd(max(end.Line, start.Line))
	if edit.Span.Start < from || edit.Span.End > to || edit.Span.Start > edit.Span.End {
		return fixEditPreview{}, errNoPreview
	}

	block := string(f.Content[from:to])
	relStart, relEnd := int(edit.Span.Start-from), int(edit.Span.End-from)
	patched := block[:relStart] + edit.NewText + block[relEnd:]

	return fixEditPreview{
		before: previewLines(block),
		after:  previewLines(patched),
	}, nil
}

func previewLines(block string) []string {
	block = strings.TrimRight(block, "\n")
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}
