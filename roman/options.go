package roman

import "github.com/katalvlaran/numeral/rewrite"

// DefaultNegativeSign is the sign prefix used when options carry "".
const DefaultNegativeSign = "-"

// EncodeOptions configures Encode.
//
// Fields:
//   - OnlyASCII    — transliterate the result onto I V X L C D M (plus
//     N for zero and O standing in for the Claudian enclosure).
//   - OnlyAdditive — forbid subtractive pairs; up to four repeats of a
//     symbol are allowed instead (IIII rather than IV).
//   - Extended     — allow zero and magnitudes beyond the standard
//     1..3999 range (Claudian/apostrophus notation).
//   - Uppercase    — uppercase output (default); false folds to
//     lowercase, converting Claudian blocks to apostrophus glyphs
//     first since the enclosure marks have no lowercase.
//   - Claudian     — render large magnitudes as nested enclosures
//     (default); false selects the dedicated apostrophus glyphs, valid
//     only for tabulated magnitudes.
//   - Archaic      — substitute the archaic ligatures ↅ (6) and ↆ (50).
//   - Alternatives — caller-supplied glyph substitutions, applied after
//     the built-in rewrite passes.
//   - Signed       — permit negative input, rendered with NegativeSign.
//   - NegativeSign — sign prefix; "" means DefaultNegativeSign.
type EncodeOptions struct {
	OnlyASCII    bool
	OnlyAdditive bool
	Extended     bool
	Uppercase    bool
	Claudian     bool
	Archaic      bool
	Alternatives []rewrite.Pair
	Signed       bool
	NegativeSign string
}

// DefaultEncodeOptions returns the documented defaults: extended,
// uppercase, Claudian, signed.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Extended:     true,
		Uppercase:    true,
		Claudian:     true,
		Signed:       true,
		NegativeSign: DefaultNegativeSign,
	}
}

// DecodeOptions configures Decode.
//
// Fields:
//   - Strict       — validate the normalized text against Grammar
//     before the arithmetic scan; mismatch yields ErrFormat.
//   - Grammar      — grammar used in strict mode; nil means
//     DefaultGrammar (canonical 1..3999 forms).
//   - NegativeSign — sign prefix; "" means DefaultNegativeSign.
type DecodeOptions struct {
	Strict       bool
	Grammar      Grammar
	NegativeSign string
}

// DefaultDecodeOptions returns the lenient defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{NegativeSign: DefaultNegativeSign}
}
