package rewrite

import "strings"

// Pair is a single literal substitution: every occurrence of Old
// becomes New.
type Pair struct {
	Old string
	New string
}

// Rewrite applies pairs to text in order. Each pair is applied
// exhaustively before the next pair runs, so a later pair may match
// text produced by an earlier one.
//
// A Pair with an empty Old is skipped: interleaving the replacement
// between every rune (the strings.ReplaceAll behavior for an empty
// pattern) is never the intended semantics here.
func Rewrite(text string, pairs []Pair) string {
	for _, p := range pairs {
		if p.Old == "" {
			continue
		}
		text = strings.ReplaceAll(text, p.Old, p.New)
	}

	return text
}
