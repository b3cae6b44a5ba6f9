package score

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-nerscore/tagging"
)

// Outcome classifies an aligned pair.
type Outcome int

const (
	// OutcomeIgnored covers pairs whose system entity is a non-entity unit.
	OutcomeIgnored Outcome = iota
	// OutcomeCorrect means the system entity matches its gold partner.
	OutcomeCorrect
	// OutcomeTypeError means both sides cover the same tokens with
	// different entity types.
	OutcomeTypeError
	// OutcomeWrong covers every other proposed entity.
	OutcomeWrong
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeTypeError:
		return "type-error"
	case OutcomeWrong:
		return "wrong"
	default:
		return "ignored"
	}
}

// Matcher decides whether an aligned pair counts as correct.
type Matcher struct {
	// IgnoreDeterminer lets "the United States" match "United States"
	// when the types agree.
	IgnoreDeterminer bool
	// Determiners are the leading words dropped under IgnoreDeterminer,
	// compared case-insensitively.
	Determiners []string
}

// DefaultMatcher ignores a leading "the".
func DefaultMatcher() Matcher {
	return Matcher{
		IgnoreDeterminer: true,
		Determiners:      []string{"the"},
	}
}

// Match reports whether system is a correct answer for gold: the same
// entity type (other than None) over the same tokens, possibly after
// dropping a leading determiner from either side.
func (m Matcher) Match(gold, system tagging.Entity) bool {
	if gold.IsNone() || gold.Type != system.Type {
		return false
	}
	return m.sameSpan(gold, system)
}

// Judge classifies an aligned pair.
func (m Matcher) Judge(p Pair) Outcome {
	switch {
	case p.System.IsNone():
		return OutcomeIgnored
	case m.Match(p.Gold, p.System):
		return OutcomeCorrect
	case !p.Gold.IsNone() && p.Gold.Type != p.System.Type && m.sameSpan(p.Gold, p.System):
		return OutcomeTypeError
	default:
		return OutcomeWrong
	}
}

func (m Matcher) sameSpan(a, b tagging.Entity) bool {
	if slices.Equal(a.Tokens, b.Tokens) {
		return true
	}
	if !m.IgnoreDeterminer {
		return false
	}
	return m.stripDeterminer(a.Tokens) == m.stripDeterminer(b.Tokens)
}

// stripDeterminer drops a leading determiner and joins the remaining
// tokens with single spaces.
func (m Matcher) stripDeterminer(tokens []string) string {
	if len(tokens) > 0 && m.isDeterminer(tokens[0]) {
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}

func (m Matcher) isDeterminer(word string) bool {
	return lo.ContainsBy(m.Determiners, func(d string) bool {
		return strings.EqualFold(d, word)
	})
}
