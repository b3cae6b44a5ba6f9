package score

import "github.com/jamesainslie/go-nerscore/tagging"

// EvaluateDocument scores system against gold and folds the result into t.
//
// Gold and system totals come from scanning each document's entities;
// alignment only decides which system entities are correct. Sentences are
// paired by position. A system document with fewer sentences is treated as
// having empty ones.
func EvaluateDocument(gold, system tagging.Document, m Matcher, t *Tally) {
	t.AddDocument()

	goldByType := make(map[string]int)
	for _, e := range gold.Entities() {
		t.AddGold(e.Type)
		goldByType[e.Type]++
	}
	sysByType := make(map[string]int)
	for _, e := range system.Entities() {
		t.AddSystem(e.Type)
		sysByType[e.Type]++
	}

	correct := make(map[string]int)
	typeErrs := make(map[string]int)
	for i, goldSent := range gold {
		var sysSent tagging.Sentence
		if i < len(system) {
			sysSent = system[i]
		}
		for _, p := range Align(goldSent, sysSent) {
			switch m.Judge(p) {
			case OutcomeCorrect:
				t.AddCorrect(p.Gold.Type)
				correct[p.Gold.Type]++
			case OutcomeTypeError:
				t.AddTypeError(p.System.Type)
				typeErrs[p.System.Type]++
			}
		}
	}

	for typ, n := range sysByType {
		t.AddFalsePositive(typ, n-correct[typ]-typeErrs[typ])
	}
	for typ, n := range goldByType {
		t.AddMissing(typ, n-correct[typ])
	}
}
