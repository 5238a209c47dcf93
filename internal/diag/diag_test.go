package diag

import (
	"testing"

	"jsxc/internal/source"
)

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(3)
	bag.Add(New(SevWarning, TplVModelUnnecessaryValue, source.Span{Start: 10, End: 12}, "b"))
	bag.Add(NewError(TplVElseNoAdjacentIf, source.Span{Start: 10, End: 12}, "a"))
	bag.Add(New(SevInfo, ObsTimings, source.Span{Start: 1, End: 2}, "c"))
	if bag.Add(NewError(SynNoTemplate, source.Span{}, "over")) {
		t.Fatal("limit ignored")
	}
	if !bag.HasErrors() || bag.Len() != 3 {
		t.Fatalf("len = %d", bag.Len())
	}
	bag.Sort()
	got := ""
	for _, d := range bag.Items() {
		got += d.Message
	}
	if got != "cab" {
		t.Fatalf("order = %q", got)
	}
}

func TestReporters(t *testing.T) {
	bag := NewBag(0)
	var calls []Code
	rep := NewDedupReporter(MultiReporter{
		BagReporter{Bag: bag},
		nil,
		FuncReporter(func(code Code, _ source.Span) { calls = append(calls, code) }),
	})
	sp := source.Span{Start: 3, End: 7}
	for range 2 {
		ReportError(rep, TplVIfNoExpression, sp, "v-if needs an expression").
			WithNote(source.Span{Start: 0, End: 1}, "element").
			Emit()
	}
	ReportError(rep, TplVIfNoExpression, sp, "other message").Emit()

	if bag.Len() != 2 || len(calls) != 2 {
		t.Fatalf("bag = %d, calls = %v", bag.Len(), calls)
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("notes = %+v", bag.Items()[0].Notes)
	}

	p := ReportError(BagReporter{Bag: bag}, SynNoTemplate, sp, "x")
	p.Emit()
	p.Emit()
	if bag.Len() != 3 {
		t.Fatalf("Pending emitted twice: %d", bag.Len())
	}
}

func TestWithDoesNotAlias(t *testing.T) {
	base := NewError(SynNoTemplate, source.Span{}, "m").WithNote(source.Span{}, "one")
	a := base.WithNote(source.Span{}, "a")
	b := base.WithNote(source.Span{}, "b")
	if a.Notes[1].Msg != "a" || b.Notes[1].Msg != "b" || len(base.Notes) != 1 {
		t.Fatalf("a=%+v b=%+v", a.Notes, b.Notes)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnterminatedString, "LEX1002"},
		{SynJSXUnclosedElement, "SYN2011"},
		{TplSSRUnsupported, "TPL3023"},
		{IOCacheError, "IO4003"},
		{ProjBadConfig, "PRJ5001"},
		{ObsTimings, "OBS6001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %s, want %s", tt.code, got, tt.want)
		}
	}
	if SevWarning.String() != "WARNING" || Severity(9).String() != "UNKNOWN" {
		t.Error("severity names")
	}
}
