package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Format is the encoding of written events.
type Format uint8

const (
	FormatAuto   Format = iota // по расширению файла
	FormatText                 // one line per event
	FormatNDJSON               // one JSON object per line
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format %q (want auto|text|ndjson)", s)
}

// resolve turns FormatAuto into a concrete format: .json and .ndjson files
// get NDJSON, everything else text.
func (f Format) resolve(path string) Format {
	if f != FormatAuto {
		return f
	}
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".json") {
		return FormatNDJSON
	}
	return FormatText
}

// FormatEvent encodes ev as one newline-terminated record.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return appendJSON(nil, ev)
	}
	return appendText(nil, ev)
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id"`
	ParentID uint64            `json:"parent_id,omitempty"`
	GID      uint64            `json:"gid,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func appendJSON(dst []byte, ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:     ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		GID:      ev.GID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Extra:    ev.Extra,
	})
	if err != nil {
		// строки и числа всегда сериализуются
		return dst
	}
	return append(append(dst, data...), '\n')
}

var kindMarks = [...]string{KindSpanBegin: "→", KindSpanEnd: "←", KindPoint: "•", KindHeartbeat: "♡"}

// appendText пишет `[15:04:05.000 #12]   ← transform (ok) {templates=2}`.
func appendText(dst []byte, ev *Event) []byte {
	dst = append(dst, '[')
	dst = ev.Time.AppendFormat(dst, "15:04:05.000")
	dst = append(dst, " #"...)
	dst = strconv.AppendUint(dst, ev.Seq, 10)
	dst = append(dst, "] "...)
	if ev.ParentID != 0 {
		dst = append(dst, "  "...)
	}
	if int(ev.Kind) < len(kindMarks) && kindMarks[ev.Kind] != "" {
		dst = append(dst, kindMarks[ev.Kind]...)
		dst = append(dst, ' ')
	}
	dst = append(dst, ev.Name...)
	if ev.Detail != "" {
		dst = append(dst, " ("...)
		dst = append(dst, ev.Detail...)
		dst = append(dst, ')')
	}
	if len(ev.Extra) > 0 {
		dst = append(dst, " {"...)
		for i, k := range slices.Sorted(maps.Keys(ev.Extra)) {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = append(dst, k...)
			dst = append(dst, '=')
			dst = append(dst, ev.Extra[k]...)
		}
		dst = append(dst, '}')
	}
	return append(dst, '\n')
}
