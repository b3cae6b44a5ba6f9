//go:build ignore

// Split CoNLL-2003 files into one tagged file per document, the layout
// ner-score expects for both gold standard and system output directories.
// Each output line keeps only the token and its entity label.
// Usage: go run ./scripts/split-conll.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const docStart = "-DOCSTART-"

func main() {
	inDir := "testdata/conll2003"

	splits := []string{"train", "dev", "test"}

	for _, split := range splits {
		inFile := filepath.Join(inDir, split+".txt")
		outDir := filepath.Join(inDir, split)

		fmt.Printf("Processing %s...\n", split)
		docs, err := splitCoNLL(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		if err := writeDocs(outDir, split, docs); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outDir, err)
			continue
		}

		fmt.Printf("  -> %s (%d documents)\n", outDir, len(docs))
	}

	fmt.Println("\nDone! Document files created under testdata/conll2003/")
}

// splitCoNLL returns the documents of a CoNLL file, each as the lines of
// its "token label" pairs with blank lines between sentences.
func splitCoNLL(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var (
		docs    [][]string
		current []string
	)
	flush := func() {
		// Drop trailing blank lines left by the previous sentence
		for len(current) > 0 && current[len(current)-1] == "" {
			current = current[:len(current)-1]
		}
		if len(current) > 0 {
			docs = append(docs, current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			if len(current) > 0 && current[len(current)-1] != "" {
				current = append(current, "")
			}
			continue
		}

		if fields[0] == docStart {
			flush()
			continue
		}

		current = append(current, fields[0]+" "+fields[len(fields)-1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	// Last document has no closing marker
	flush()
	return docs, nil
}

func writeDocs(dir, prefix string, docs [][]string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	for i, lines := range docs {
		name := filepath.Join(dir, fmt.Sprintf("%s-%04d", prefix, i+1))
		data := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(name, []byte(data), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}
