package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		counts        Counts
		wantPrecision float64
		wantRecall    float64
		wantF1        float64
	}{
		{
			name:          "perfect",
			counts:        Counts{Correct: 3, Gold: 3, System: 3},
			wantPrecision: 1,
			wantRecall:    1,
			wantF1:        1,
		},
		{
			name:          "half precision",
			counts:        Counts{Correct: 2, Gold: 2, System: 4},
			wantPrecision: 0.5,
			wantRecall:    1,
			wantF1:        2 * 0.5 / 1.5,
		},
		{
			name:   "no system entities",
			counts: Counts{Gold: 4},
		},
		{
			name:   "no gold entities",
			counts: Counts{System: 2},
		},
		{
			name:   "empty",
			counts: Counts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.counts)
			for _, v := range []float64{got.Precision, got.Recall, got.F1} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite metric in %+v", got)
			}
			assert.InDelta(t, tt.wantPrecision, got.Precision, 1e-9)
			assert.InDelta(t, tt.wantRecall, got.Recall, 1e-9)
			assert.InDelta(t, tt.wantF1, got.F1, 1e-9)
			assert.Equal(t, tt.counts.Correct, got.Correct)
		})
	}
}

func TestTally_ZeroValue(t *testing.T) {
	var tally Tally
	assert.Equal(t, Counts{}, tally.ForType("PER"))
	assert.Empty(t, tally.SystemTypes())

	tally.AddSystem("PER")
	tally.AddCorrect("PER")
	tally.AddGold("PER")
	assert.Equal(t, Counts{Correct: 1, Gold: 1, System: 1}, tally.ForType("PER"))
	assert.Equal(t, tally.ForType("PER"), tally.Total)
}

func TestTally_IgnoresNonPositiveBulkCounts(t *testing.T) {
	tally := NewTally()
	tally.AddMissing("LOC", 0)
	tally.AddMissing("LOC", -2)
	tally.AddFalsePositive("LOC", -1)
	assert.Equal(t, Counts{}, tally.Total)
	assert.Empty(t, tally.Types())
}

func TestTally_Merge(t *testing.T) {
	docA := decode(t, obamaParis)
	docB := decode(t, "Rome B-LOC\nand O\nFIFA B-ORG\n")
	sysB := decode(t, "Rome B-LOC\nand O\nFIFA B-LOC\n")

	a := NewTally()
	EvaluateDocument(docA, docA, DefaultMatcher(), a)
	b := NewTally()
	EvaluateDocument(docB, sysB, DefaultMatcher(), b)

	combined := NewTally()
	EvaluateDocument(docA, docA, DefaultMatcher(), combined)
	EvaluateDocument(docB, sysB, DefaultMatcher(), combined)

	merged := NewTally()
	merged.Merge(a)
	merged.Merge(b)
	merged.Merge(nil)

	assert.Equal(t, combined.Docs, merged.Docs)
	assert.Equal(t, combined.Total, merged.Total)
	assert.Equal(t, combined.Types(), merged.Types())
	for _, typ := range combined.Types() {
		assert.Equal(t, combined.ForType(typ), merged.ForType(typ), typ)
		assert.Equal(t, a.ForType(typ).Correct+b.ForType(typ).Correct, merged.ForType(typ).Correct, typ)
	}
}
