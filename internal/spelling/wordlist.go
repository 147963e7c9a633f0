package spelling

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WordList is a Checker backed by a plain word list, one word per line.
// Lines starting with # are comments.
type WordList struct {
	words map[string]struct{}
}

// ReadWordList reads a word list from r.
func ReadWordList(r io.Reader) (*WordList, error) {
	l := &WordList{words: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.words[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return l, nil
}

// LoadWordList reads a word list file such as /usr/share/dict/words.
func LoadWordList(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadWordList(f)
}

// Len returns the number of distinct words.
func (l *WordList) Len() int { return len(l.words) }

// Unknown implements Checker.
func (l *WordList) Unknown(word string) bool {
	_, ok := l.words[strings.ToLower(word)]
	return !ok
}
