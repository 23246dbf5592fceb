package ot

// Transform rebases two concurrent operations A (this) and B (other), both
// built against the same base, producing A' and B' such that
//
//	aPrime, bPrime, _ := a.Transform(b)
//	left, _ := a.Compose(bPrime)
//	right, _ := b.Compose(aPrime)
//	// left and right are structurally equal, and applying either to the
//	// shared base yields the same string.
//
// When A and B both insert at the same base position, A's insert is placed
// first: A' carries the insert while B' retains past it, regardless of
// whether B also has a pending insert. Swapping the arguments swaps which
// side wins, so two clients applying the same rule converge.
//
// Transform returns ErrTransformBaseMismatch if a.BaseLength() does not
// equal b.BaseLength().
func (a *Operation) Transform(b *Operation) (*Operation, *Operation, error) {
	if a.baseLength != b.baseLength {
		return nil, nil, ErrTransformBaseMismatch
	}

	aPrime := NewOperation()
	bPrime := NewOperation()

	x := newOpStream(a.ops)
	y := newOpStream(b.ops)

	for x.peek() != nil || y.peek() != nil {
		if ins, ok := x.peek().(InsertOp); ok {
			aPrime.Insert(string(ins))
			bPrime.Retain(ins.Length())
			x.advance()
			continue
		}
		if ins, ok := y.peek().(InsertOp); ok {
			aPrime.Retain(ins.Length())
			bPrime.Insert(string(ins))
			y.advance()
			continue
		}

		if x.peek() == nil {
			return nil, nil, ErrStreamTooShort
		}
		if y.peek() == nil {
			return nil, nil, ErrStreamTooLong
		}

		xr, xIsRetain := x.peek().(RetainOp)
		yr, yIsRetain := y.peek().(RetainOp)
		xd, xIsDelete := x.peek().(DeleteOp)
		yd, yIsDelete := y.peek().(DeleteOp)

		switch {
		case xIsRetain && yIsRetain:
			m := min(int(xr), int(yr))
			aPrime.Retain(m)
			bPrime.Retain(m)
			x.takeRetain(m)
			y.takeRetain(m)

		case xIsDelete && yIsDelete:
			m := min(xd.Length(), yd.Length())
			// Both sides already delete this span; nothing to emit.
			x.takeDelete(m)
			y.takeDelete(m)

		case xIsDelete && yIsRetain:
			m := min(xd.Length(), int(yr))
			aPrime.Delete(m)
			x.takeDelete(m)
			y.takeRetain(m)

		case xIsRetain && yIsDelete:
			m := min(int(xr), yd.Length())
			bPrime.Delete(m)
			x.takeRetain(m)
			y.takeDelete(m)

		default:
			return nil, nil, ErrStreamTooLong
		}
	}

	return aPrime, bPrime, nil
}
