// Package score aligns and scores named-entity taggings against a gold
// standard.
package score

import (
	"slices"

	"github.com/samber/lo"
)

// Counts holds the raw counts for one entity type, or for all of them.
type Counts struct {
	Correct       int
	FalsePositive int
	Missing       int
	TypeError     int
	Gold          int
	System        int
}

func (c Counts) add(o Counts) Counts {
	return Counts{
		Correct:       c.Correct + o.Correct,
		FalsePositive: c.FalsePositive + o.FalsePositive,
		Missing:       c.Missing + o.Missing,
		TypeError:     c.TypeError + o.TypeError,
		Gold:          c.Gold + o.Gold,
		System:        c.System + o.System,
	}
}

// Tally accumulates counts over any number of documents. It only grows.
// The zero Tally is ready to use.
type Tally struct {
	Docs   int
	Total  Counts
	byType map[string]Counts
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{byType: make(map[string]Counts)}
}

func (t *Tally) bump(typ string, delta Counts) {
	if t.byType == nil {
		t.byType = make(map[string]Counts)
	}
	t.byType[typ] = t.byType[typ].add(delta)
	t.Total = t.Total.add(delta)
}

// AddDocument counts one scored document.
func (t *Tally) AddDocument() { t.Docs++ }

// AddGold counts one gold entity of type typ.
func (t *Tally) AddGold(typ string) { t.bump(typ, Counts{Gold: 1}) }

// AddSystem counts one system entity of type typ.
func (t *Tally) AddSystem(typ string) { t.bump(typ, Counts{System: 1}) }

// AddCorrect counts one correct system entity of type typ.
func (t *Tally) AddCorrect(typ string) { t.bump(typ, Counts{Correct: 1}) }

// AddTypeError counts one system entity of type typ that covers a gold
// entity of another type.
func (t *Tally) AddTypeError(typ string) { t.bump(typ, Counts{TypeError: 1}) }

// AddFalsePositive counts n spurious system entities of type typ.
func (t *Tally) AddFalsePositive(typ string, n int) {
	if n > 0 {
		t.bump(typ, Counts{FalsePositive: n})
	}
}

// AddMissing counts n gold entities of type typ the system did not find.
func (t *Tally) AddMissing(typ string, n int) {
	if n > 0 {
		t.bump(typ, Counts{Missing: n})
	}
}

// Merge adds every count of o into t.
func (t *Tally) Merge(o *Tally) {
	if o == nil {
		return
	}
	t.Docs += o.Docs
	for typ, c := range o.byType {
		t.bump(typ, c)
	}
}

// ForType returns the counts for typ; absent types read as zero.
func (t *Tally) ForType(typ string) Counts {
	return t.byType[typ]
}

// SystemTypes returns, sorted, the types the system proposed at least once.
func (t *Tally) SystemTypes() []string {
	return t.typesWhere(func(c Counts) bool { return c.System > 0 })
}

// GoldTypes returns, sorted, the types present in the gold standard.
func (t *Tally) GoldTypes() []string {
	return t.typesWhere(func(c Counts) bool { return c.Gold > 0 })
}

// Types returns, sorted, every type seen on either side.
func (t *Tally) Types() []string {
	types := lo.Union(t.SystemTypes(), t.GoldTypes())
	slices.Sort(types)
	return types
}

func (t *Tally) typesWhere(keep func(Counts) bool) []string {
	types := lo.Filter(lo.Keys(t.byType), func(typ string, _ int) bool {
		return keep(t.byType[typ])
	})
	slices.Sort(types)
	return types
}
