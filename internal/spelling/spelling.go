// Package spelling holds the pieces of spell checking the document owns: the
// per-document ignore list and the rules for which words are worth checking.
// The dictionary itself is supplied by the host through the Checker interface.
package spelling

import (
	"sort"
	"strings"
	"unicode"
)

// Checker is the host's dictionary.
type Checker interface {
	// Unknown reports whether word (lowercase) is missing from the dictionary.
	Unknown(word string) bool
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(word string) bool

// Unknown calls f.
func (f CheckerFunc) Unknown(word string) bool { return f(word) }

// IgnoreList is the set of words the user chose to ignore everywhere in a document.
type IgnoreList struct {
	words map[string]struct{}
}

// NewIgnoreList builds an ignore list from stored words.
func NewIgnoreList(words []string) *IgnoreList {
	l := &IgnoreList{words: make(map[string]struct{})}
	for _, w := range words {
		l.Add(w)
	}
	return l
}

// Add ignores word from now on. Blank words are dropped.
func (l *IgnoreList) Add(word string) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return
	}
	l.words[w] = struct{}{}
}

// Remove stops ignoring word.
func (l *IgnoreList) Remove(word string) {
	delete(l.words, strings.ToLower(strings.TrimSpace(word)))
}

// Contains reports whether word is ignored, case-insensitively.
func (l *IgnoreList) Contains(word string) bool {
	_, ok := l.words[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// Words returns the ignored words sorted, the form they are saved in.
func (l *IgnoreList) Words() []string {
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// NormalizeIgnoreList lowercases, trims, deduplicates and sorts stored words.
func NormalizeIgnoreList(words []string) []string {
	return NewIgnoreList(words).Words()
}

// NormalizeWord trims surrounding punctuation from a token.
func NormalizeWord(w string) string {
	return strings.TrimSpace(strings.Trim(w, "'\"-–—()[]{}.,;:!?/\\"))
}

// IsCandidate reports whether a normalized word should be checked at all.
// Emails, URLs, words with digits and short all-caps acronyms are skipped.
func IsCandidate(w string) bool {
	if w == "" {
		return false
	}
	if strings.Contains(w, "@") {
		return false
	}
	if strings.HasPrefix(w, "http") || strings.HasPrefix(w, "www") {
		return false
	}
	hasLetter, hasLower := false, false
	letters := 0
	for _, r := range w {
		if unicode.IsDigit(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
			letters++
			if unicode.IsLower(r) {
				hasLower = true
			}
		}
	}
	if hasLetter && !hasLower && len([]rune(w)) <= 4 {
		return false
	}
	return hasLetter
}

// Misspelled reports whether word should be flagged.
func Misspelled(c Checker, ignore *IgnoreList, word string) bool {
	if c == nil {
		return false
	}
	w := NormalizeWord(word)
	if !IsCandidate(w) {
		return false
	}
	if ignore != nil && ignore.Contains(w) {
		return false
	}
	return c.Unknown(strings.ToLower(w))
}

// Misspellings returns the distinct flagged words of text in order of first use.
func Misspellings(c Checker, ignore *IgnoreList, text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tok := range strings.Fields(text) {
		w := NormalizeWord(tok)
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		if Misspelled(c, ignore, w) {
			out = append(out, w)
		}
	}
	return out
}
