package roman

import (
	"math"
	"strings"

	"github.com/katalvlaran/numeral/rewrite"
)

// Encode renders num as a Roman numeral.
//
// Algorithm Outline:
//  1. Sign and zero: negative values need Signed and emit the sign
//     prefix; zero needs Extended and emits the dedicated zero symbol.
//  2. Standard range (num below 1000·(maxRun+1), maxRun 3 subtractive /
//     4 additive): walk the symbol table from highest to lowest value,
//     skipping the 11/12 ligature entries. A run tracker counts
//     consecutive emissions of the same glyph; a fit that would reach
//     maxRun repeats instead drops the trailing maxRun−1 repeats and
//     substitutes the previous larger symbol passed during the walk —
//     the subtractive form (ⅩⅩⅩ+Ⅹ becomes ⅩⅬ).
//  3. Extended range: render the dominant power-of-ten magnitude as a
//     Claudian enclosure block (or an apostrophus glyph), with a
//     double-unit fold when four or more repeats of the block would be
//     needed — the extended analogue of the subtractive form. Repeat
//     until the remainder falls back into the standard range.
//  4. Post-processing rewrite passes: ligature merge, additive split,
//     archaic glyphs, caller alternatives, ASCII transliteration, case
//     fold.
//
// A nil opts means DefaultEncodeOptions.
//
// Errors: ErrNeedsSigned, ErrNeedsExtended, ErrNeedsClaudian,
// ErrNotNegatable (all wrapping ErrConfiguration).
func Encode(num int64, opts *EncodeOptions) (string, error) {
	o := DefaultEncodeOptions()
	if opts != nil {
		o = *opts
	}
	sign := o.NegativeSign
	if sign == "" {
		sign = DefaultNegativeSign
	}
	maxRun := 3
	if o.OnlyAdditive {
		maxRun = 4
	}

	var prefix string
	if num < 0 {
		if !o.Signed {
			return "", ErrNeedsSigned
		}
		if num == math.MinInt64 {
			return "", ErrNotNegatable
		}
		prefix = sign
		num = -num
	}

	if num == 0 {
		if !o.Extended {
			return "", ErrNeedsExtended
		}

		return finish(zeroGlyph, o), nil
	}

	// Output buffer is a glyph slice: subtractive backtracking drops
	// trailing elements, never slices through multi-byte runes.
	glyphs := make([]string, 0, 16)
	var lastGlyph, prevGlyph string
	run := 0

	for num > 0 {
		switch {
		case num < maxStandardValue*int64(maxRun+1):
			// One standard step: find the largest fitting symbol.
			for _, sym := range symbols {
				if sym.ligature {
					continue
				}
				if num-sym.value < 0 {
					prevGlyph = sym.glyph

					continue
				}
				if sym.glyph == lastGlyph {
					run++
				} else {
					run = 0
				}
				if run < maxRun {
					glyphs = append(glyphs, sym.glyph)
					lastGlyph = sym.glyph
				} else {
					// ReplaceRun: drop the trailing maxRun−1 repeats
					// and substitute the previous larger symbol.
					glyphs = append(glyphs[:len(glyphs)-(maxRun-1)], prevGlyph)
				}
				num -= sym.value

				break
			}
		case o.Extended:
			block, delta, err := extendedBlock(num, maxRun, o.Claudian)
			if err != nil {
				return "", err
			}
			glyphs = append(glyphs, block)
			num -= delta
		default:
			return "", ErrNeedsExtended
		}
	}

	return finish(prefix+strings.Join(glyphs, ""), o), nil
}

// extendedBlock renders the dominant magnitude of num as one Claudian
// or apostrophus block and reports the amount to subtract. The delta is
// negative when the block is a subtractive fold into the next higher
// magnitude (e.g. the M of 4000 = MⅮↃ).
func extendedBlock(num int64, maxRun int, claudian bool) (string, int64, error) {
	ord := intLog10(num)
	unit := pow10(ord)
	half := num >= 5*unit
	repeat := ord - 3
	if half {
		repeat++
		unit *= 5
	}

	delta := unit
	if num/unit >= int64(maxRun+1) {
		// Four or more repeats of this block would be needed: fold into
		// the next magnitude step instead (subtract twice the unit).
		delta = -unit
	}

	if claudian {
		switch {
		case half:
			return halfGlyph + strings.Repeat(enclosureGlyph, repeat), delta, nil
		case repeat > 0:
			return strings.Repeat(hundredGlyph, repeat) + thousandGlyph +
				strings.Repeat(enclosureGlyph, repeat), delta, nil
		default:
			return asciiThousand, delta, nil
		}
	}

	if num/maxApostrophus >= int64(maxRun+1) {
		return "", 0, ErrNeedsClaudian
	}
	glyph, ok := apostrophus[unit]
	if !ok {
		return "", 0, ErrNeedsClaudian
	}

	return glyph, delta, nil
}

// finish applies the post-processing rewrite passes, in order.
func finish(text string, o EncodeOptions) string {
	text = rewrite.Rewrite(text, ligatureMerge)
	if o.OnlyAdditive {
		text = rewrite.Rewrite(text, additiveSplit)
	}
	if o.Archaic {
		text = rewrite.Rewrite(text, archaicGlyphs)
	}
	if len(o.Alternatives) > 0 {
		text = rewrite.Rewrite(text, o.Alternatives)
	}
	if o.OnlyASCII {
		text = rewrite.Rewrite(text, toASCII)
	}
	if o.Uppercase {
		return strings.ToUpper(text)
	}
	// The Claudian marks have no lowercase; swap enclosure blocks for
	// apostrophus glyphs before folding.
	text = rewrite.Rewrite(text, claudianToApostrophus)

	return strings.ToLower(text)
}

// intLog10 returns ⌊log10 n⌋ for n ≥ 1 using integer division only,
// avoiding float rounding at exact powers of ten.
func intLog10(n int64) int {
	ord := 0
	for n >= 10 {
		n /= 10
		ord++
	}

	return ord
}

// pow10 returns 10^ord as int64.
func pow10(ord int) int64 {
	p := int64(1)
	for i := 0; i < ord; i++ {
		p *= 10
	}

	return p
}
