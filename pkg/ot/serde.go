package ot

import "fmt"

// ToJSON converts op into the ot.js-compatible interchange format: a slice
// where a positive integer is a retain, a negative integer is a delete, and
// a string is an insert. For example Retain(2).Insert("hi").Delete(3)
// becomes []interface{}{2, "hi", -3}.
func (op *Operation) ToJSON() []interface{} {
	out := make([]interface{}, len(op.ops))
	for i, a := range op.ops {
		switch v := a.(type) {
		case RetainOp:
			out[i] = int(v)
		case InsertOp:
			out[i] = string(v)
		case DeleteOp:
			out[i] = int(v)
		}
	}
	return out
}

// FromJSON builds an Operation from the format produced by ToJSON.
func FromJSON(items []interface{}) (*Operation, error) {
	op := NewOperation()
	for _, item := range items {
		switch v := item.(type) {
		case string:
			op.Insert(v)
		case float64:
			applyJSONNumber(op, int(v))
		case int:
			applyJSONNumber(op, v)
		default:
			return nil, fmt.Errorf("ot: unsupported JSON atom type %T", item)
		}
	}
	return op, nil
}

func applyJSONNumber(op *Operation, n int) {
	switch {
	case n > 0:
		op.Retain(n)
	case n < 0:
		op.Delete(-n)
	}
}
