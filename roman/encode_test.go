package roman_test

import (
	"testing"

	"github.com/katalvlaran/numeral/rewrite"
	"github.com/katalvlaran/numeral/roman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeDefault is a test shorthand over DefaultEncodeOptions.
func encodeDefault(t *testing.T, n int64) string {
	t.Helper()
	s, err := roman.Encode(n, nil)
	require.NoError(t, err, "Encode(%d)", n)

	return s
}

// TestEncode_ZeroThroughTwelve covers the single-glyph range including
// the zero symbol and the Ⅺ/Ⅻ ligature merges.
func TestEncode_ZeroThroughTwelve(t *testing.T) {
	want := []string{"N", "Ⅰ", "Ⅱ", "Ⅲ", "Ⅳ", "Ⅴ", "Ⅵ", "Ⅶ", "Ⅷ", "Ⅸ", "Ⅹ", "Ⅺ", "Ⅻ"}
	for n, w := range want {
		assert.Equal(t, w, encodeDefault(t, int64(n)), "Encode(%d)", n)
	}
}

// TestEncode_Teens covers 13..22, where the ligature merge applies
// mid-string (21 is ⅩⅪ, 22 is ⅩⅫ).
func TestEncode_Teens(t *testing.T) {
	want := []string{"ⅩⅢ", "ⅩⅣ", "ⅩⅤ", "ⅩⅥ", "ⅩⅦ", "ⅩⅧ", "ⅩⅨ", "ⅩⅩ", "ⅩⅪ", "ⅩⅫ"}
	for i, w := range want {
		assert.Equal(t, w, encodeDefault(t, int64(13+i)), "Encode(%d)", 13+i)
	}
}

// TestEncode_SubtractiveBacktracking covers the run-replacement forms
// the table scan produces (note ⅬⅩⅬ for 90, not ⅩⅭ — the scan folds
// runs against the previous symbol it passed).
func TestEncode_SubtractiveBacktracking(t *testing.T) {
	cases := map[int64]string{
		44: "ⅩⅬⅣ",
		51: "ⅬⅠ",
		62: "ⅬⅫ",
		73: "ⅬⅩⅩⅢ",
		84: "ⅬⅩⅩⅩⅣ",
		95: "ⅬⅩⅬⅤ",
		99: "ⅬⅩⅬⅨ",
	}
	for n, w := range cases {
		assert.Equal(t, w, encodeDefault(t, n), "Encode(%d)", n)
	}
}

// TestEncode_Thousands walks 1666..3999 in steps of 517.
func TestEncode_Thousands(t *testing.T) {
	cases := map[int64]string{
		1666: "ⅯⅮⅭⅬⅩⅥ",
		2183: "ⅯⅯⅭⅬⅩⅩⅩⅢ",
		2700: "ⅯⅯⅮⅭⅭ",
		3217: "ⅯⅯⅯⅭⅭⅩⅦ",
		3734: "ⅯⅯⅯⅮⅭⅭⅩⅩⅩⅣ",
	}
	for n, w := range cases {
		assert.Equal(t, w, encodeDefault(t, n), "Encode(%d)", n)
	}
}

// TestEncode_ClaudianPowersOfTwo covers extended-range Claudian blocks
// mixed with standard tails.
func TestEncode_ClaudianPowersOfTwo(t *testing.T) {
	cases := map[int64]string{
		16384: "ⅭↀↃⅮↃⅯⅭⅭⅭⅬⅩⅩⅩⅣ",
		32768: "ⅭↀↃⅭↀↃⅭↀↃⅯⅯⅮⅭⅭⅬⅩⅧ",
		65536: "ⅮↃↃⅭↀↃⅮↃⅮⅩⅩⅩⅥ",
	}
	for n, w := range cases {
		assert.Equal(t, w, encodeDefault(t, n), "Encode(%d)", n)
	}
}

// TestEncode_ClaudianMagnitudes covers the pure magnitude blocks,
// including the subtractive fold of 4000 and 40000.
func TestEncode_ClaudianMagnitudes(t *testing.T) {
	cases := map[int64]string{
		4000:   "MⅮↃ",
		40000:  "ⅭↀↃⅮↃↃ",
		5000:   "ⅮↃ",
		10000:  "ⅭↀↃ",
		50000:  "ⅮↃↃ",
		100000: "ⅭⅭↀↃↃ",
	}
	for n, w := range cases {
		assert.Equal(t, w, encodeDefault(t, n), "Encode(%d)", n)
	}
}

// TestEncode_Apostrophus renders large magnitudes with the dedicated
// glyphs instead of enclosures.
func TestEncode_Apostrophus(t *testing.T) {
	opts := roman.DefaultEncodeOptions()
	opts.Claudian = false
	cases := map[int64]string{
		1000:  "Ⅿ",
		4000:  "ↀↁ",
		5000:  "ↁ",
		10000: "ↂ",
		16384: "ↂↁⅯⅭⅭⅭⅬⅩⅩⅩⅣ",
		50000: "ↇ",
	}
	for n, w := range cases {
		s, err := roman.Encode(n, &opts)
		require.NoError(t, err, "Encode(%d)", n)
		assert.Equal(t, w, s, "Encode(%d)", n)
	}
}

// TestEncode_Archaic substitutes the archaic ligatures for 6 and 50.
func TestEncode_Archaic(t *testing.T) {
	opts := roman.DefaultEncodeOptions()
	opts.Archaic = true
	cases := map[int64]string{
		26: "ⅩⅩↅ",
		27: "ⅩⅩⅦ",
		55: "ↆⅤ",
		56: "ↆↅ",
		59: "ↆⅨ",
	}
	for n, w := range cases {
		s, err := roman.Encode(n, &opts)
		require.NoError(t, err, "Encode(%d)", n)
		assert.Equal(t, w, s, "Encode(%d)", n)
	}
}

// TestEncode_ASCII transliterates onto the seven-letter set, with O
// standing in for the enclosure.
func TestEncode_ASCII(t *testing.T) {
	opts := roman.DefaultEncodeOptions()
	opts.OnlyASCII = true
	cases := map[int64]string{
		1666:  "MDCLXVI",
		3999:  "MMMDCDLXLIX",
		4000:  "MDO",
		16384: "CCDODOMCCCLXXXIV",
	}
	for n, w := range cases {
		s, err := roman.Encode(n, &opts)
		require.NoError(t, err, "Encode(%d)", n)
		assert.Equal(t, w, s, "Encode(%d)", n)
	}
}

// TestEncode_AdditiveOnly forbids subtractive pairs: four repeats
// replace the four-forms, and the 4/9 compound glyphs split.
func TestEncode_AdditiveOnly(t *testing.T) {
	ascii := roman.DefaultEncodeOptions()
	ascii.OnlyAdditive = true
	ascii.OnlyASCII = true
	cases := map[int64]string{
		4:  "IIII",
		9:  "VIIII",
		14: "XIIII",
		40: "XXXX",
		90: "LXXXX",
	}
	for n, w := range cases {
		s, err := roman.Encode(n, &ascii)
		require.NoError(t, err, "Encode(%d)", n)
		assert.Equal(t, w, s, "Encode(%d)", n)
	}

	uni := roman.DefaultEncodeOptions()
	uni.OnlyAdditive = true
	s, err := roman.Encode(4, &uni)
	require.NoError(t, err)
	assert.Equal(t, "ⅡⅡ", s, "Unicode additive four stays compound-glyph based")
}

// TestEncode_Lowercase folds case, converting Claudian blocks to their
// apostrophus equivalents first (the enclosure has no lowercase).
func TestEncode_Lowercase(t *testing.T) {
	opts := roman.DefaultEncodeOptions()
	opts.Uppercase = false
	cases := map[int64]string{
		0:     "n",
		1666:  "ⅿⅾⅽⅼⅹⅵ",
		4000:  "mↁ",
		10000: "ↂ",
	}
	for n, w := range cases {
		s, err := roman.Encode(n, &opts)
		require.NoError(t, err, "Encode(%d)", n)
		assert.Equal(t, w, s, "Encode(%d)", n)
	}
}

// TestEncode_Signed prefixes the sign and encodes the magnitude.
func TestEncode_Signed(t *testing.T) {
	assert.Equal(t, "-ⅩⅣ", encodeDefault(t, -14))

	opts := roman.DefaultEncodeOptions()
	opts.NegativeSign = "~"
	s, err := roman.Encode(-5, &opts)
	require.NoError(t, err)
	assert.Equal(t, "~Ⅴ", s)
}

// TestEncode_Alternatives applies caller-supplied glyph substitutions
// after the built-in passes.
func TestEncode_Alternatives(t *testing.T) {
	opts := roman.DefaultEncodeOptions()
	opts.Alternatives = []rewrite.Pair{{Old: "Ⅿ", New: "Ⓜ"}}
	s, err := roman.Encode(2001, &opts)
	require.NoError(t, err)
	assert.Equal(t, "ⓂⓂⅠ", s)
}

// TestEncode_ConfigurationErrors covers the option/value mismatches.
func TestEncode_ConfigurationErrors(t *testing.T) {
	unsigned := roman.DefaultEncodeOptions()
	unsigned.Signed = false
	_, err := roman.Encode(-5, &unsigned)
	assert.ErrorIs(t, err, roman.ErrNeedsSigned)
	assert.ErrorIs(t, err, roman.ErrConfiguration)

	standard := roman.DefaultEncodeOptions()
	standard.Extended = false
	_, err = roman.Encode(0, &standard)
	assert.ErrorIs(t, err, roman.ErrNeedsExtended)

	_, err = roman.Encode(4000, &standard)
	assert.ErrorIs(t, err, roman.ErrNeedsExtended)

	apostrophus := roman.DefaultEncodeOptions()
	apostrophus.Claudian = false
	_, err = roman.Encode(400000, &apostrophus)
	assert.ErrorIs(t, err, roman.ErrNeedsClaudian)
}
