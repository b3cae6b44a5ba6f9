package score

// Metrics holds precision, recall and F1 with the counts they came from.
type Metrics struct {
	Correct   int
	Gold      int
	System    int
	Precision float64
	Recall    float64
	F1        float64
}

// Compute derives precision, recall and F1 from c. Every ratio with a zero
// denominator is 0.
func Compute(c Counts) Metrics {
	m := Metrics{
		Correct: c.Correct,
		Gold:    c.Gold,
		System:  c.System,
	}
	if c.System > 0 {
		m.Precision = float64(c.Correct) / float64(c.System)
	}
	if c.Gold > 0 {
		m.Recall = float64(c.Correct) / float64(c.Gold)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// Overall returns the metrics over all entity types.
func (t *Tally) Overall() Metrics {
	return Compute(t.Total)
}

// ByType returns the metrics restricted to typ.
func (t *Tally) ByType(typ string) Metrics {
	return Compute(t.ForType(typ))
}
