package roman

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Specific sentinels wrap one of these, so callers may
// match either the precise condition or the whole class via errors.Is.
var (
	// ErrConfiguration marks an option combination that cannot express
	// the requested value.
	ErrConfiguration = errors.New("roman: configuration error")

	// ErrInvalidInput marks text outside the accepted symbol set or a
	// misplaced sign.
	ErrInvalidInput = errors.New("roman: invalid input")

	// ErrFormat is returned when strict-mode grammar validation fails.
	ErrFormat = errors.New("roman: text does not match the strict grammar")

	// ErrUnsupported marks well-formed input the decoder cannot
	// resolve, as opposed to malformed input.
	ErrUnsupported = errors.New("roman: unsupported notation")
)

var (
	// ErrNeedsSigned is returned for a negative value without Signed.
	ErrNeedsSigned = fmt.Errorf("%w: negative value requires the Signed option", ErrConfiguration)

	// ErrNeedsExtended is returned for zero or a large magnitude
	// without Extended.
	ErrNeedsExtended = fmt.Errorf("%w: value requires the Extended option", ErrConfiguration)

	// ErrNeedsClaudian is returned when apostrophus rendering is
	// requested for a magnitude beyond the apostrophus table.
	ErrNeedsClaudian = fmt.Errorf("%w: magnitude requires the Claudian option", ErrConfiguration)

	// ErrNotNegatable is returned for the one value whose magnitude
	// exceeds the representable range (math.MinInt64).
	ErrNotNegatable = fmt.Errorf("%w: value magnitude not representable", ErrConfiguration)

	// ErrEmptyText is returned when there is nothing to decode.
	ErrEmptyText = fmt.Errorf("%w: empty text", ErrInvalidInput)

	// ErrMisplacedSign is returned when the sign symbol appears
	// anywhere but as the leading prefix.
	ErrMisplacedSign = fmt.Errorf("%w: sign symbol allowed only as a leading prefix", ErrInvalidInput)

	// ErrUnknownSymbol is returned for characters outside the Roman
	// symbol set.
	ErrUnknownSymbol = fmt.Errorf("%w: symbol outside the Roman set", ErrInvalidInput)

	// ErrZeroNotAlone is returned when the zero symbol co-occurs with
	// any other symbol.
	ErrZeroNotAlone = fmt.Errorf("%w: zero symbol must stand alone", ErrInvalidInput)

	// ErrLargeNotation is returned for Claudian/apostrophus input:
	// well-formed large-number notation that decoding does not support.
	ErrLargeNotation = fmt.Errorf("%w: Claudian/apostrophus large numbers cannot be decoded", ErrUnsupported)
)
