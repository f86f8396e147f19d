package bijective

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Specific sentinels below wrap one of these, so
// callers may match either the precise condition or the whole class
// via errors.Is.
var (
	// ErrConfiguration marks a token-set/sign combination that cannot
	// express the request.
	ErrConfiguration = errors.New("bijective: configuration error")

	// ErrInvalidInput marks text that is not a valid token sequence.
	ErrInvalidInput = errors.New("bijective: invalid input")
)

var (
	// ErrNoTokens is returned when the token set is empty.
	ErrNoTokens = fmt.Errorf("%w: token set must contain at least one token", ErrConfiguration)

	// ErrDuplicateToken is returned when the token set repeats a token.
	ErrDuplicateToken = fmt.Errorf("%w: duplicate token in token set", ErrConfiguration)

	// ErrSignCollision is returned when the sign symbol equals or
	// overlaps a token (either contains the other).
	ErrSignCollision = fmt.Errorf("%w: sign symbol overlaps the token set", ErrConfiguration)

	// ErrNotNegatable is returned for the one value whose magnitude
	// exceeds the representable range (math.MinInt64).
	ErrNotNegatable = fmt.Errorf("%w: value magnitude not representable", ErrConfiguration)

	// ErrEmptyText is returned when there is nothing to decode.
	ErrEmptyText = fmt.Errorf("%w: empty text", ErrInvalidInput)

	// ErrUnknownSymbol is returned when text contains a rune outside
	// the token alphabet.
	ErrUnknownSymbol = fmt.Errorf("%w: symbol outside the token alphabet", ErrInvalidInput)

	// ErrMisplacedSign is returned when the sign symbol appears
	// anywhere but as the leading prefix.
	ErrMisplacedSign = fmt.Errorf("%w: sign symbol allowed only as a leading prefix", ErrInvalidInput)

	// ErrTokenMismatch is returned when the text cannot be tiled by the
	// token set (every rune is known, but no token matches a suffix).
	ErrTokenMismatch = fmt.Errorf("%w: text cannot be segmented into tokens", ErrInvalidInput)
)
