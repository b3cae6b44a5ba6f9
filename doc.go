// Package nerscore scores named-entity tagging output against a gold
// standard.
//
// # Quick Start
//
//	scorer := nerscore.New()
//	tally, err := scorer.ScoreDir(ctx, "output/", "gold/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := tally.Overall()
//	fmt.Printf("P=%.4f R=%.4f F1=%.4f\n", m.Precision, m.Recall, m.F1)
//
// # Input Format
//
// Files hold one token per line, whitespace-separated, with the BIO label
// in the last field. Blank lines separate sentences. See package tagging.
//
// # Matching
//
// System and gold entities are aligned by character offset, so the two
// sides may segment the same text differently. A system entity is correct
// when its type and tokens equal its gold partner's; by default a leading
// "the" on either side is ignored. Totals for precision and recall come
// from the full entity lists, not from the alignment.
//
// # Directories
//
// ScoreDir walks the system directory tree and pairs every file with the
// gold file of the same base name directly under the gold directory.
package nerscore
