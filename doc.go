// Package numeral converts integers to and from symbolic numeral
// systems — spreadsheet-style letter numbering, arbitrary bijective
// base-k token alphabets, and an extended Roman numeral system.
//
// 🚀 What is numeral?
//
//	A small, pure-computation library bringing together:
//		• Bijective base-k codecs over any ordered token alphabet
//		  (a, b, …, z, aa, ab, … — no zero digit, no ambiguity)
//		• Letter numbering over the 26-letter Latin alphabet
//		• Roman numerals with signed values, a zero symbol, additive or
//		  subtractive notation, and apostrophus/Claudian large numbers
//		• A cascading literal string rewriter underpinning the
//		  normalization and transliteration passes
//
// ✨ Why choose numeral?
//
//   - Pure functions – no I/O, no shared mutable state, safe for
//     concurrent use without synchronization
//   - Faithful arithmetic – carry-with-decrement bijective numeration
//     and greedy-lookahead Roman decoding, with every edge documented
//   - Sentinel errors – configuration, input, format and unsupported
//     conditions are distinct classes, matchable with errors.Is
//
// Everything is organized under three subpackages plus a CLI:
//
//	bijective/  — integer ↔ token-sequence codecs + letter numbering
//	rewrite/    — ordered literal substitution primitive
//	roman/      — Roman numeral encoder/decoder, standard and extended
//	cmd/numeral — command-line front-end and showcase
//
// Quick taste:
//
//	s, _ := bijective.EncodeLetters(1983, "", "") // "bxh"
//	r, _ := roman.Encode(1666, nil)               // "ⅯⅮⅭⅬⅩⅥ"
//	n, _ := roman.Decode("MDCLXVI", nil)          // 1666
//
//	go get github.com/katalvlaran/numeral
package numeral
