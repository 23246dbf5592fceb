package ot

// These predicates classify a pair of operations to help an external
// history manager decide whether to squash them into one undo step. They
// look only at each operation's leading retain (its "cursor") and its one
// significant atom, if it has exactly one.

// firstCursor returns the length of op's leading retain, or 0 if op does
// not start with one.
func firstCursor(op *Operation) int {
	if len(op.ops) > 0 {
		if r, ok := op.ops[0].(RetainOp); ok {
			return int(r)
		}
	}
	return 0
}

// simpleOp returns the single significant (non-retain) atom of op if its
// shape is one of [a], [Retain,a], [a,Retain] or [Retain,a,Retain]. It
// returns nil for any other shape.
func simpleOp(op *Operation) Op {
	switch len(op.ops) {
	case 1:
		return op.ops[0]
	case 2:
		if IsRetain(op.ops[0]) {
			return op.ops[1]
		}
		if IsRetain(op.ops[1]) {
			return op.ops[0]
		}
	case 3:
		if IsRetain(op.ops[0]) && IsRetain(op.ops[2]) {
			return op.ops[1]
		}
	}
	return nil
}

// ShouldBeComposedWith reports whether op, followed by other, looks like a
// single continuous user action (typing a run of characters, or deleting
// one) that a history manager should merge into one undo step.
func (op *Operation) ShouldBeComposedWith(other *Operation) bool {
	if op.IsNoop() || other.IsNoop() {
		return true
	}

	a, b := simpleOp(op), simpleOp(other)
	if a == nil || b == nil {
		return false
	}
	cursorA, cursorB := firstCursor(op), firstCursor(other)

	if IsInsert(a) && IsInsert(b) {
		return cursorA+a.Length() == cursorB
	}
	if IsDelete(a) && IsDelete(b) {
		// Backspace (deleting leftward from the same evolving cursor) or
		// forward-delete (repeatedly deleting at a fixed position).
		return cursorB+b.Length() == cursorA || cursorA == cursorB
	}
	return false
}

// ShouldBeComposedWithInverted reports whether the *inverses* of op and
// other should be composed — equivalently, whether op and other are
// adjacent entries on an undo stack that a redo-composition should merge.
//
// It is derived from, and satisfies, the duality
//
//	op.ShouldBeComposedWith(other) == other.Invert(...).ShouldBeComposedWithInverted(op.Invert(...))
//
// for any bases admissible to op and other. In particular the Delete branch
// below uses first_cursor(B) + dB == first_cursor(A): the natural reading
// of the duality, not the "minus" variant that breaks it for runs of typed
// inserts (whose inverses are the deletes this branch sees).
func (op *Operation) ShouldBeComposedWithInverted(other *Operation) bool {
	if op.IsNoop() || other.IsNoop() {
		return true
	}

	a, b := simpleOp(op), simpleOp(other)
	if a == nil || b == nil {
		return false
	}
	cursorA, cursorB := firstCursor(op), firstCursor(other)

	if IsInsert(a) && IsInsert(b) {
		return cursorA+a.Length() == cursorB || cursorA == cursorB
	}
	if IsDelete(a) && IsDelete(b) {
		return cursorB+b.Length() == cursorA
	}
	return false
}
