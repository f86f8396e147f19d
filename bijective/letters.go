package bijective

// DefaultAlphabet is the token alphabet used by the letter
// specialization when the caller passes "": the 26 lowercase Latin
// letters, giving the familiar spreadsheet-column numbering
// a, b, …, z, aa, ab, …
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// EncodeLetters renders num using single-rune tokens drawn from
// alphabet (DefaultAlphabet when empty). It is Encode over the split
// alphabet: EncodeLetters(23) == "x", EncodeLetters(26) == "aa".
func EncodeLetters(num int64, alphabet, negativeSign string) (string, error) {
	return Encode(num, splitAlphabet(alphabet), negativeSign)
}

// DecodeLetters inverts EncodeLetters over the same alphabet.
func DecodeLetters(text string, alphabet, negativeSign string) (int64, error) {
	return Decode(text, splitAlphabet(alphabet), negativeSign)
}

// splitAlphabet turns an alphabet string into one token per rune.
func splitAlphabet(alphabet string) []string {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	tokens := make([]string, 0, len(alphabet))
	for _, r := range alphabet {
		tokens = append(tokens, string(r))
	}

	return tokens
}
