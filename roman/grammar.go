package roman

import "strings"

// GroupSpec describes one decimal digit position of the strict grammar.
//
// A group consumes, in order of preference:
//   - Unit+Next — the nine-form (IX, XC, CM),
//   - Unit+Five — the four-form (IV, XL, CD),
//   - an optional Five followed by at most MaxRepeat Units.
//
// The top (thousands) group has no Five/Next and consumes plain Unit
// repeats only.
type GroupSpec struct {
	Unit      string
	Five      string
	Next      string
	MaxRepeat int
}

// Grammar is an ordered list of digit groups, highest magnitude first.
// It replaces a regular-expression check with an explicit matcher; the
// zero symbol and signs are outside its scope by construction.
type Grammar []GroupSpec

// DefaultGrammar accepts exactly the canonical subtractive forms of
// 1..3999: M{0,3} (CM|CD|D?C{0,3}) (XC|XL|L?X{0,3}) (IX|IV|V?I{0,3}),
// with at least one symbol overall.
var DefaultGrammar = Grammar{
	{Unit: "M", MaxRepeat: 3},
	{Unit: "C", Five: "D", Next: "M", MaxRepeat: 3},
	{Unit: "X", Five: "L", Next: "C", MaxRepeat: 3},
	{Unit: "I", Five: "V", Next: "X", MaxRepeat: 3},
}

// Match reports whether text is fully consumed by the groups in order.
// Empty text never matches.
func (g Grammar) Match(text string) bool {
	if text == "" {
		return false
	}
	rest := text
	for _, grp := range g {
		rest = grp.consume(rest)
	}

	return rest == ""
}

// consume eats this group's contribution off the front of s, which may
// be nothing: every group is optional on its own.
func (grp GroupSpec) consume(s string) string {
	if grp.Next != "" && strings.HasPrefix(s, grp.Unit+grp.Next) {
		return s[len(grp.Unit)+len(grp.Next):]
	}
	if grp.Five != "" {
		if strings.HasPrefix(s, grp.Unit+grp.Five) {
			return s[len(grp.Unit)+len(grp.Five):]
		}
		if strings.HasPrefix(s, grp.Five) {
			s = s[len(grp.Five):]
		}
	}
	for i := 0; i < grp.MaxRepeat && strings.HasPrefix(s, grp.Unit); i++ {
		s = s[len(grp.Unit):]
	}

	return s
}
