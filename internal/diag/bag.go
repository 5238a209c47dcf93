package diag

import (
	"cmp"
	"slices"
)

// Bag collects the diagnostics of one compile.
type Bag struct {
	items []Diagnostic
	limit int
}

// NewBag creates a bag that keeps at most limit diagnostics; limit <= 0 means unlimited.
func NewBag(limit int) *Bag {
	return &Bag{limit: limit}
}

// Add добавляет диагностику; false, если лимит уже исчерпан.
func (b *Bag) Add(d Diagnostic) bool {
	if b.limit > 0 && len(b.items) >= b.limit {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns the stored diagnostics. The slice aliases the bag.
func (b *Bag) Items() []Diagnostic { return b.items }

// Sort orders by file and position; at one position errors come first.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
