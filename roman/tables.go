package roman

import "github.com/katalvlaran/numeral/rewrite"

// symbol is one row of the Roman symbol table.
type symbol struct {
	glyph string
	value int64
	// ligature marks the compound glyphs for 11 and 12. They are never
	// emitted by the additive/subtractive scan; the post-processing
	// merge pass produces them instead.
	ligature bool
}

// symbols lists the Unicode Roman numerals from highest to lowest
// value. The order is load-bearing: the encoder scan walks it top-down,
// and subtractive backtracking substitutes the previous non-ligature
// entry passed during the walk.
var symbols = []symbol{
	{glyph: "Ⅿ", value: 1000},
	{glyph: "Ⅾ", value: 500},
	{glyph: "Ⅽ", value: 100},
	{glyph: "Ⅼ", value: 50},
	{glyph: "Ⅻ", value: 12, ligature: true},
	{glyph: "Ⅺ", value: 11, ligature: true},
	{glyph: "Ⅹ", value: 10},
	{glyph: "Ⅸ", value: 9},
	{glyph: "Ⅷ", value: 8},
	{glyph: "Ⅶ", value: 7},
	{glyph: "Ⅵ", value: 6},
	{glyph: "Ⅴ", value: 5},
	{glyph: "Ⅳ", value: 4},
	{glyph: "Ⅲ", value: 3},
	{glyph: "Ⅱ", value: 2},
	{glyph: "Ⅰ", value: 1},
}

const (
	// zeroGlyph is the dedicated symbol for zero (extended notation).
	zeroGlyph = "N"

	// Claudian building blocks: nested enclosures around the thousand
	// glyph encode magnitude, e.g. ⅭↀↃ = 10000, ⅭⅭↀↃↃ = 100000.
	enclosureGlyph = "Ↄ"
	thousandGlyph  = "ↀ"
	hundredGlyph   = "Ⅽ"
	halfGlyph      = "Ⅾ"

	// asciiThousand is emitted for the subtractive-folded thousand in
	// extended blocks (e.g. 4000 renders as M before ⅮↃ).
	asciiThousand = "M"

	// asciiEnclosure is the fixed ASCII stand-in for the enclosure
	// glyph. Its presence after decoder normalization signals
	// large-number notation.
	asciiEnclosure = byte('O')

	// maxStandardValue is the largest plain symbol value; the standard
	// scan covers magnitudes below maxStandardValue·(maxRun+1).
	maxStandardValue = int64(1000)

	// maxApostrophus is the largest tabulated apostrophus magnitude.
	maxApostrophus = int64(100000)
)

// apostrophus maps tabulated large magnitudes to their dedicated
// glyphs; magnitudes beyond this table require Claudian rendering.
var apostrophus = map[int64]string{
	1000:   "ↀ",
	5000:   "ↁ",
	10000:  "ↂ",
	50000:  "ↇ",
	100000: "ↈ",
}

// ligatureMerge folds the two-glyph sequences worth 11 and 12 into
// their compact ligatures. Always applied, even outside archaic mode.
var ligatureMerge = []rewrite.Pair{
	{Old: "ⅩⅠ", New: "Ⅺ"},
	{Old: "ⅩⅡ", New: "Ⅻ"},
}

// additiveSplit rewrites the 9- and 4-valued compound glyphs into
// purely additive pairs (Ⅸ → ⅤⅡⅡ via the cascade, Ⅳ → ⅡⅡ), keeping
// OnlyAdditive output free of subtractive-looking forms.
var additiveSplit = []rewrite.Pair{
	{Old: "Ⅸ", New: "ⅤⅣ"},
	{Old: "Ⅳ", New: "ⅡⅡ"},
}

// archaicGlyphs substitutes the archaic ligatures for 6 and 50.
var archaicGlyphs = []rewrite.Pair{
	{Old: "Ⅵ", New: "ↅ"},
	{Old: "Ⅼ", New: "ↆ"},
}

// toASCII transliterates every Unicode numeral — compound glyphs,
// ligatures, archaic forms, apostrophus and Claudian marks — onto the
// seven-letter ASCII set plus the O enclosure stand-in. The decoder
// uses the same table as its normalization pass.
var toASCII = []rewrite.Pair{
	{Old: "Ⅰ", New: "I"},
	{Old: "Ⅱ", New: "II"},
	{Old: "Ⅲ", New: "III"},
	{Old: "Ⅳ", New: "IV"},
	{Old: "Ⅴ", New: "V"},
	{Old: "Ⅵ", New: "VI"},
	{Old: "Ⅶ", New: "VII"},
	{Old: "Ⅷ", New: "VIII"},
	{Old: "Ⅸ", New: "IX"},
	{Old: "Ⅹ", New: "X"},
	{Old: "Ⅺ", New: "XI"},
	{Old: "Ⅻ", New: "XII"},
	{Old: "Ⅼ", New: "L"},
	{Old: "Ⅽ", New: "C"},
	{Old: "Ⅾ", New: "D"},
	{Old: "Ⅿ", New: "M"},
	{Old: "ↅ", New: "VI"},
	{Old: "ↀ", New: "CD"},
	{Old: "ↆ", New: "L"},
	{Old: "Ↄ", New: "O"},
	{Old: "ↁ", New: "DO"},
	{Old: "ↂ", New: "CCDO"},
	{Old: "ↇ", New: "DOO"},
	{Old: "ↈ", New: "CCCDOO"},
}

// claudianToApostrophus converts enclosure constructions to their
// single-glyph equivalents; longest patterns first so the nested forms
// win. Applied before lowercasing, since the Claudian marks have no
// lowercase forms.
var claudianToApostrophus = []rewrite.Pair{
	{Old: "ⅭⅭↀↃↃ", New: "ↈ"},
	{Old: "ⅮↃↃ", New: "ↇ"},
	{Old: "ⅭↀↃ", New: "ↂ"},
	{Old: "ⅮↃ", New: "ↁ"},
}

// asciiValues is the decoder's by-symbol value view after
// normalization. The zero glyph and the enclosure stand-in are handled
// before the arithmetic scan and deliberately absent here.
var asciiValues = map[byte]int64{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}
