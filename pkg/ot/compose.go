package ot

// Compose combines two sequential operations A (this) and B (other) into a
// single operation C such that, for any base of length A.BaseLength():
//
//	c, _ := a.Compose(b)
//	viaC, _ := c.Apply(base)
//	viaAB, _ := a.Apply(base)
//	viaAB, _ = b.Apply(viaAB)
//	// viaC == viaAB
//
// Compose returns ErrComposeLengthMismatch if a.TargetLength() does not
// equal b.BaseLength().
func (a *Operation) Compose(b *Operation) (*Operation, error) {
	if a.targetLength != b.baseLength {
		return nil, ErrComposeLengthMismatch
	}

	result := NewOperation()
	x := newOpStream(a.ops)
	y := newOpStream(b.ops)

	for x.peek() != nil || y.peek() != nil {
		// A delete in A happens before anything B does to that span.
		if d, ok := x.peek().(DeleteOp); ok {
			result.Delete(d.Length())
			x.advance()
			continue
		}
		// An insert in B happens after anything A does.
		if ins, ok := y.peek().(InsertOp); ok {
			result.Insert(string(ins))
			y.advance()
			continue
		}

		if x.peek() == nil {
			return nil, ErrStreamTooShort
		}
		if y.peek() == nil {
			return nil, ErrStreamTooLong
		}

		xr, xIsRetain := x.peek().(RetainOp)
		yr, yIsRetain := y.peek().(RetainOp)
		xi, xIsInsert := x.peek().(InsertOp)
		yd, yIsDelete := y.peek().(DeleteOp)

		switch {
		case xIsRetain && yIsRetain:
			m := min(int(xr), int(yr))
			result.Retain(m)
			x.takeRetain(m)
			y.takeRetain(m)

		case xIsInsert && yIsDelete:
			m := min(xi.Length(), yd.Length())
			// The inserted text is immediately deleted; nothing survives.
			x.takeInsert(m)
			y.takeDelete(m)

		case xIsInsert:
			ret, ok := y.peek().(RetainOp)
			if !ok {
				return nil, ErrStreamTooLong
			}
			m := min(xi.Length(), int(ret))
			result.Insert(sliceRunes(string(xi), 0, m))
			x.takeInsert(m)
			y.takeRetain(m)

		case xIsRetain && yIsDelete:
			m := min(int(xr), yd.Length())
			result.Delete(m)
			x.takeRetain(m)
			y.takeDelete(m)

		default:
			return nil, ErrStreamTooLong
		}
	}

	return result, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
