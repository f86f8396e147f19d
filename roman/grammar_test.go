package roman_test

import (
	"testing"

	"github.com/katalvlaran/numeral/roman"
	"github.com/stretchr/testify/assert"
)

// TestDefaultGrammar_Canonical accepts every shape class of the
// canonical 1..3999 forms.
func TestDefaultGrammar_Canonical(t *testing.T) {
	pass := []string{
		"I", "II", "III", "IV", "V", "VIII", "IX",
		"X", "XIV", "XL", "XLIX", "XC", "XCIX",
		"C", "CD", "CDXLIV", "CM", "CMXCIX",
		"M", "MMM", "MCMXCIV", "MMMCMXCIX", "D", "L", "DLV",
	}
	for _, s := range pass {
		assert.True(t, roman.DefaultGrammar.Match(s), "Match(%q)", s)
	}
}

// TestDefaultGrammar_Rejects covers over-repeats, misordered pairs and
// the lenient-only forms.
func TestDefaultGrammar_Rejects(t *testing.T) {
	fail := []string{
		"", "IIII", "VV", "VX", "IL", "IC", "IIM", "VL",
		"XXXX", "LL", "DD", "XM", "MMMM", "CCCC", "IXI", "XCX",
	}
	for _, s := range fail {
		assert.False(t, roman.DefaultGrammar.Match(s), "Match(%q)", s)
	}
}

// TestGrammar_GroupIndependence: each group consumes at most one
// construct, so a second contribution of the same magnitude fails.
func TestGrammar_GroupIndependence(t *testing.T) {
	assert.False(t, roman.DefaultGrammar.Match("IVI"), "four-form exhausts the units group")
	assert.False(t, roman.DefaultGrammar.Match("CMCD"), "nine-form exhausts the hundreds group")
	assert.True(t, roman.DefaultGrammar.Match("DCCCLXXXVIII"), "888 uses every additive slot")
}
