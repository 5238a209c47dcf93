package observ

import "testing"

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	stopParse := tm.Track("parse")
	stopCodegen := tm.Track("codegen")
	stopCodegen("")
	stopParse("1 root")
	stopParse("twice")

	report := tm.Report()
	if len(report.Phases) != 2 || report.Phases[0].Name != "parse" || report.Phases[0].Note != "1 root" {
		t.Fatalf("report = %+v", report)
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Errorf("total %v below phase %v", report.TotalMS, report.Phases[0].DurationMS)
	}
	if NewTimer().Report().Phases != nil {
		t.Error("empty timer must produce empty report")
	}
}

func TestReportAdd(t *testing.T) {
	var sum Report
	sum.Add(Report{TotalMS: 3, Phases: []PhaseReport{{Name: "parse", DurationMS: 1, Note: "a"}, {Name: "codegen", DurationMS: 2}}})
	sum.Add(Report{TotalMS: 5, Phases: []PhaseReport{{Name: "codegen", DurationMS: 4}, {Name: "assemble", DurationMS: 1}}})

	want := []PhaseReport{{Name: "parse", DurationMS: 1}, {Name: "codegen", DurationMS: 6}, {Name: "assemble", DurationMS: 1}}
	if sum.TotalMS != 8 || len(sum.Phases) != len(want) {
		t.Fatalf("sum = %+v", sum)
	}
	for i := range want {
		if sum.Phases[i] != want[i] {
			t.Errorf("phase %d = %+v, want %+v", i, sum.Phases[i], want[i])
		}
	}
}
