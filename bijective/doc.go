// Package bijective converts integers to and from token sequences in
// bijective base-k numeration.
//
// 🚀 What is bijective base-k?
//
//	A positional system over k non-zero digit symbols and no symbol for
//	zero. Every non-negative integer has exactly one finite
//	representation, with no leading-zero ambiguity. It is the scheme
//	behind spreadsheet column names: a, b, …, z, aa, ab, …
//
// Algorithm Outline:
//  1. Encode: while num ≥ 0, prepend tokens[num mod k], then set
//     num = num/k − 1. The −1 step is what removes the zero digit.
//  2. Decode: scan the text from the end; at each position take the
//     first token (in token-list order) that is a suffix of the
//     remaining text, remove it, and accumulate
//     (index + offset)·k^i, where offset is 0 for the rightmost digit
//     and 1 for every other digit — undoing the encoder's −1 step.
//  3. Negative values carry a configurable sign prefix; the sign
//     symbol must not overlap the token set.
//
// ✨ Key features:
//   - arbitrary ordered token alphabets, from bits to multi-rune tokens
//   - letter specialization over the 26-letter Latin alphabet
//     (EncodeLetters / DecodeLetters)
//   - signed values via a configurable sign symbol
//   - call-time validation, sentinel errors, no shared mutable state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numeral/bijective"
//
//	s, err := bijective.EncodeLetters(1983, "", "")  // "bxh"
//	n, err := bijective.DecodeLetters("bxh", "", "") // 1983
//
// Complexity: O(log_k num) per call; decode is O(|text|·k) worst case.
package bijective
