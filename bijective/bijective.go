package bijective

import (
	"math"
	"strings"
)

// DefaultNegativeSign is the sign prefix used when the caller passes "".
const DefaultNegativeSign = "-"

// Encode renders num in bijective base-k over the given ordered token
// set. k is len(tokens); tokens act as the digits 1..k of a system with
// no zero digit, so every non-empty token sequence denotes a distinct
// non-negative integer. Negative values are rendered as the sign symbol
// followed by the encoding of the absolute value.
//
// An empty negativeSign selects DefaultNegativeSign. The token set is
// validated on every call: it must be non-empty, duplicate-free, and
// disjoint from the sign symbol.
//
// Example: tokens ("po","ta") encode 0..5 as
// po, ta, popo, pota, tapo, tata.
func Encode(num int64, tokens []string, negativeSign string) (string, error) {
	sign, err := validate(tokens, negativeSign)
	if err != nil {
		return "", err
	}

	var neg bool
	if num < 0 {
		if num == math.MinInt64 {
			return "", ErrNotNegatable
		}
		neg = true
		num = -num
	}

	// Bijective base-k: digit = num mod k, then num = num/k − 1.
	// The −1 step removes the need for a zero digit; the loop always
	// terminates because num strictly decreases and goes below 0.
	k := int64(len(tokens))
	digits := make([]string, 0, 8)
	for num >= 0 {
		digits = append(digits, tokens[num%k])
		num = num/k - 1
	}

	var b strings.Builder
	if neg {
		b.WriteString(sign)
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(digits[i])
	}

	return b.String(), nil
}

// Decode inverts Encode: it segments text into tokens from the end and
// accumulates (index+offset)·k^i, where offset is 0 for the rightmost
// digit and 1 for every other digit (undoing the encoder's −1 step).
//
// The token set must be suffix-unambiguous for the result to be
// deterministic; when more than one token matches, the first in
// token-list order wins.
func Decode(text string, tokens []string, negativeSign string) (int64, error) {
	sign, err := validate(tokens, negativeSign)
	if err != nil {
		return 0, err
	}

	var neg bool
	if strings.HasPrefix(text, sign) {
		neg = true
		text = text[len(sign):]
	}
	if strings.Contains(text, sign) {
		return 0, ErrMisplacedSign
	}
	if text == "" {
		return 0, ErrEmptyText
	}

	// Reject runes outside the token alphabet up front, so the suffix
	// scan below only ever fails on token composition.
	known := make(map[rune]struct{})
	for _, tok := range tokens {
		for _, r := range tok {
			known[r] = struct{}{}
		}
	}
	for _, r := range text {
		if _, ok := known[r]; !ok {
			return 0, ErrUnknownSymbol
		}
	}

	k := int64(len(tokens))
	var num int64
	place := int64(1) // k^i
	first := true
	for text != "" {
		matched := false
		for j, tok := range tokens {
			if !strings.HasSuffix(text, tok) {
				continue
			}
			offset := int64(1)
			if first {
				offset = 0
			}
			num += (int64(j) + offset) * place
			place *= k
			text = text[:len(text)-len(tok)]
			first = false
			matched = true

			break
		}
		if !matched {
			return 0, ErrTokenMismatch
		}
	}

	if neg {
		num = -num
	}

	return num, nil
}

// validate checks the token set and resolves the sign symbol.
func validate(tokens []string, negativeSign string) (string, error) {
	if len(tokens) == 0 {
		return "", ErrNoTokens
	}
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			return "", ErrDuplicateToken
		}
		seen[tok] = struct{}{}
	}

	sign := negativeSign
	if sign == "" {
		sign = DefaultNegativeSign
	}
	for _, tok := range tokens {
		if strings.Contains(tok, sign) || strings.Contains(sign, tok) {
			return "", ErrSignCollision
		}
	}

	return sign, nil
}
