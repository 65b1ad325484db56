package diag

import "sort"

// Bag collects one fatal Error per file across a multi-file driver run. The
// core parser itself never sees a Bag — it returns its single Error
// directly; Bag exists only at the batch-reporting boundary so that one
// file's failure does not stop its siblings from being attempted.
type Bag struct {
	items []*Error
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add records err, which may be nil (a no-op) for callers that always call
// Add after a fallible step.
func (b *Bag) Add(err *Error) {
	if err == nil {
		return
	}
	b.items = append(b.items, err)
}

// Len reports how many errors have been recorded.
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any error was recorded.
func (b *Bag) HasErrors() bool { return len(b.items) > 0 }

// Items returns the recorded errors, sorted by file then position for
// deterministic reporting.
func (b *Bag) Items() []*Error {
	sorted := make([]*Error, len(b.items))
	copy(sorted, b.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, c := sorted[i], sorted[j]
		if a.File != c.File {
			return a.File < c.File
		}
		if a.Line != c.Line {
			return a.Line < c.Line
		}
		return a.Column < c.Column
	})
	return sorted
}
