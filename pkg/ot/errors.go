package ot

import "errors"

// Sentinel errors returned by the algebra. The length-mismatch errors report
// inputs whose lengths do not fit together. ErrBaseExhausted and the
// "stream" errors are never produced by an Operation built exclusively
// through Retain/Insert/Delete; they are defensive checks against a
// corrupted Operation value.
var (
	// ErrBaseLengthMismatch is returned by Apply and Invert when the
	// supplied base string's rune count differs from the operation's
	// BaseLength.
	ErrBaseLengthMismatch = errors.New("ot: base string length does not match operation's base length")

	// ErrBaseExhausted is returned by Apply when a retain or delete would
	// advance past the end of the base string.
	ErrBaseExhausted = errors.New("ot: operation retains or deletes past the end of the base string")

	// ErrComposeLengthMismatch is returned by Compose when the first
	// operation's TargetLength does not equal the second's BaseLength.
	ErrComposeLengthMismatch = errors.New("ot: second operation's base length must equal the first operation's target length")

	// ErrTransformBaseMismatch is returned by Transform when the two
	// operations do not share the same BaseLength.
	ErrTransformBaseMismatch = errors.New("ot: both operations must share the same base length")

	// ErrStreamTooShort is returned when one operand's atom stream ends
	// before the other still expects base characters.
	ErrStreamTooShort = errors.New("ot: operation ended before the other was fully consumed")

	// ErrStreamTooLong is returned when one operand's atom stream still has
	// base-consuming atoms after the other has been fully consumed.
	ErrStreamTooLong = errors.New("ot: operation continues after the other was fully consumed")
)
