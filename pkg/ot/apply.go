package ot

import "strings"

// Apply runs this operation against base and returns the transformed
// string. base is traversed by Unicode scalar value, never by byte index,
// so multi-byte and supplementary-plane characters are handled correctly.
//
// Apply returns ErrBaseLengthMismatch if base's rune count does not equal
// BaseLength, and ErrBaseExhausted if a retain or delete would run past the
// end of base (a defensive check; an Operation built through
// Retain/Insert/Delete can never trigger it).
func (op *Operation) Apply(base string) (string, error) {
	runes := []rune(base)
	if len(runes) != op.baseLength {
		return "", ErrBaseLengthMismatch
	}

	var result strings.Builder
	result.Grow(op.targetLength)
	cursor := 0

	for _, a := range op.ops {
		switch v := a.(type) {
		case RetainOp:
			n := int(v)
			if cursor+n > len(runes) {
				return "", ErrBaseExhausted
			}
			for _, r := range runes[cursor : cursor+n] {
				result.WriteRune(r)
			}
			cursor += n

		case InsertOp:
			result.WriteString(string(v))

		case DeleteOp:
			n := v.Length()
			if cursor+n > len(runes) {
				return "", ErrBaseExhausted
			}
			cursor += n
		}
	}

	return result.String(), nil
}
