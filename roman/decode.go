package roman

import (
	"strings"

	"github.com/katalvlaran/numeral/rewrite"
)

// Decode parses a Roman numeral back into an integer.
//
// Algorithm Outline:
//  1. Trim and uppercase; strip one leading sign (a sign anywhere else
//     is ErrMisplacedSign).
//  2. Normalize onto the ASCII symbol set: compound glyphs, ligatures,
//     archaic and apostrophus forms all reduce through the same
//     transliteration table the encoder uses.
//  3. Screen the result: unknown characters are ErrUnknownSymbol; the
//     zero symbol must stand alone; the enclosure stand-in O marks
//     well-formed large-number notation and is ErrLargeNotation
//     (unsupported, not malformed).
//  4. Strict mode matches the text against the grammar (ErrFormat on
//     mismatch) before any arithmetic.
//  5. Arithmetic scan, lenient by design: a symbol is subtracted when
//     any later symbol has a strictly greater value, otherwise added.
//     This greedy lookahead accepts formally loose forms on purpose:
//     IC is 99, IIM is 998, VL is 45.
//
// A nil opts means DefaultDecodeOptions.
func Decode(text string, opts *DecodeOptions) (int64, error) {
	o := DefaultDecodeOptions()
	if opts != nil {
		o = *opts
	}
	sign := o.NegativeSign
	if sign == "" {
		sign = DefaultNegativeSign
	}

	text = strings.ToUpper(strings.TrimSpace(text))
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

	text = rewrite.Rewrite(text, toASCII)

	var hasZero, hasEnclosure bool
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == zeroGlyph[0]:
			hasZero = true
		case c == asciiEnclosure:
			hasEnclosure = true
		default:
			if _, ok := asciiValues[c]; !ok {
				return 0, ErrUnknownSymbol
			}
		}
	}
	if hasZero {
		if len(text) > 1 {
			return 0, ErrZeroNotAlone
		}

		return 0, nil
	}
	if hasEnclosure {
		return 0, ErrLargeNotation
	}

	if o.Strict {
		g := o.Grammar
		if g == nil {
			g = DefaultGrammar
		}
		if !g.Match(text) {
			return 0, ErrFormat
		}
	}

	// Greedy lookahead arithmetic: scanning right to left, maxSeen is
	// the largest value to the right of the current symbol.
	var total, maxSeen int64
	for i := len(text) - 1; i >= 0; i-- {
		v := asciiValues[text[i]]
		if v < maxSeen {
			total -= v
		} else {
			total += v
			maxSeen = v
		}
	}
	if neg {
		total = -total
	}

	return total, nil
}
