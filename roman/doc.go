// Package roman converts integers to and from Roman numerals, well
// beyond the classical 1..3999 range.
//
// 🚀 What does it cover?
//
//	Signed values, a dedicated zero symbol, standard subtractive and
//	additive-only notation, the Unicode number-form glyphs (Ⅰ…Ⅿ plus
//	the Ⅺ/Ⅻ ligatures), archaic ligatures, and two equivalent
//	large-number systems: apostrophus (ↀ ↁ ↂ ↇ ↈ) and Claudian
//	nested-enclosure notation (ⅭↀↃ, ⅮↃↃ, …).
//
// ✨ Key features:
//   - Encode with per-call EncodeOptions: ASCII-only, additive-only,
//     extended range, case, Claudian vs apostrophus, archaic glyphs,
//     caller-supplied alternative glyphs, signed values
//   - Decode with lenient greedy-lookahead arithmetic (IC = 99,
//     VL = 45 — the documented permissiveness) or strict canonical
//     grammar validation via a pluggable Grammar
//   - sentinel errors in four classes: ErrConfiguration,
//     ErrInvalidInput, ErrFormat, ErrUnsupported
//   - immutable package-level tables; every call is a pure function,
//     safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numeral/roman"
//
//	opts := roman.DefaultEncodeOptions()
//	opts.OnlyASCII = true
//	s, err := roman.Encode(1666, &opts) // "MDCLXVI"
//
//	n, err := roman.Decode("MDCLXVI", nil) // 1666
//
// Large-number notation is encode-only: decoding input that contains
// the Claudian enclosure (or its ASCII stand-in O) returns
// ErrLargeNotation, a deliberate, permanently signaled limitation
// rather than a format error.
//
// Complexity: O(digits) per call; every operation allocates only its
// output.
package roman
