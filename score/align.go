package score

import "github.com/jamesainslie/go-nerscore/tagging"

// Pair is a gold entity aligned with a system entity.
type Pair struct {
	Gold   tagging.Entity
	System tagging.Entity
}

// Align pairs every system entity with the first gold entity whose
// character span overlaps it. Spans are measured as cumulative character
// offsets, so the two sides may segment the same text into entities
// differently.
//
// Both sentences are expected to cover the same character length. If the
// gold side runs out first, the remaining system entities are left
// unpaired.
func Align(gold, system tagging.Sentence) []Pair {
	if len(gold) == 0 || len(system) == 0 {
		return nil
	}

	pairs := make([]Pair, 0, len(system))
	g := 0
	goldOff := 0
	sysOff := 0

	for _, sys := range system {
		sysLen := sys.Len()
		for !overlaps(sysOff, sysLen, goldOff, gold[g].Len()) {
			goldOff += gold[g].Len()
			g++
			if g == len(gold) {
				return pairs
			}
		}
		pairs = append(pairs, Pair{Gold: gold[g], System: sys})
		sysOff += sysLen
	}
	return pairs
}

// overlaps reports whether [sysOff, sysOff+sysLen) intersects
// [goldOff, goldOff+goldLen). Two empty spans always match so that the
// gold cursor never runs away on empty entities.
func overlaps(sysOff, sysLen, goldOff, goldLen int) bool {
	if sysLen == 0 && goldLen == 0 {
		return true
	}
	return sysOff < goldOff+goldLen && goldOff < sysOff+sysLen
}
