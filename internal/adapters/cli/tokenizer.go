package cli

import (
	"fmt"

	"github.com/google/shlex"
)

// Tokenize splits a shell line into words with POSIX shell quoting, so
// "Furniture Factory" or 'Downtown Mall' stay one word. A # at the start of
// a word begins a comment.
func Tokenize(line string) ([]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("cannot split %q: %w", line, err)
	}
	return words, nil
}
