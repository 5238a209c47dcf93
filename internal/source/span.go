package source

import "fmt"

// Span is a half-open byte range [Start, End) in one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover widens s to include other. Spans of different files leave s as is.
func (s Span) Cover(other Span) Span {
	if s.File == other.File {
		s.Start = min(s.Start, other.Start)
		s.End = max(s.End, other.End)
	}
	return s
}

func (s Span) Contains(other Span) bool {
	return s.File == other.File && s.Start <= other.Start && other.End <= s.End
}

// Text slices the span out of content, clamped to its bounds.
func (s Span) Text(content []byte) string {
	end := min(int(s.End), len(content))
	return string(content[min(int(s.Start), end):end])
}
