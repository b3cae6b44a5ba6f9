// Package corpus walks directories of tagged files and pairs system output
// with its gold standard.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory indicates a corpus root that is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// WalkFunc is called for every regular file found by Walk. Returning an
// error stops the walk.
type WalkFunc func(path string) error

// Walk visits every non-hidden regular file under root, depth first, using
// an explicit stack. The entries of a directory are pushed in lexical order
// and therefore visited in reverse lexical order; a subdirectory is
// expanded when it is popped. Hidden files and directories (name starting
// with ".") are skipped.
func Walk(root string, fn WalkFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat corpus root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	stack, err := children(root)
	if err != nil {
		return err
	}

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		switch {
		case info.IsDir():
			sub, err := children(path)
			if err != nil {
				return err
			}
			stack = append(stack, sub...)
		case info.Mode().IsRegular():
			if err := fn(path); err != nil {
				return err
			}
		}
	}
	return nil
}

// children lists the non-hidden entries of dir in lexical order.
func children(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isHidden(entry) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

func isHidden(entry fs.DirEntry) bool {
	return strings.HasPrefix(entry.Name(), ".")
}

// GoldPath returns the gold file for a system file: the file with the same
// base name directly under goldRoot. The system file's subdirectory is not
// mirrored, so nested system trees share one flat gold namespace.
func GoldPath(goldRoot, systemPath string) string {
	return filepath.Join(goldRoot, filepath.Base(systemPath))
}
