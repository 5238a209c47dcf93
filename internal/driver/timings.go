package driver

import (
	"encoding/json"
	"fmt"

	"jsxc/internal/diag"
	"jsxc/internal/observ"
	"jsxc/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// TimingDiagnostic packs a timing report into an info diagnostic whose
// note carries the JSON payload.
func TimingDiagnostic(path string, report observ.Report) diag.Diagnostic {
	payload := timingPayload{Kind: "module", Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	if path == "" {
		payload.Kind = "pipeline"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if path != "" {
		msg = fmt.Sprintf("%s, %s", msg, path)
	}
	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, msg)
	if data, err := json.Marshal(payload); err == nil {
		d = d.WithNote(source.Span{}, string(data))
	}
	return d
}

// SumTimings adds up the phases of all compiled files by name. Cached
// files contribute nothing.
func SumTimings(results []FileResult) observ.Report {
	var out observ.Report
	for i := range results {
		out.Add(results[i].Timing)
	}
	return out
}
