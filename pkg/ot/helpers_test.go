package ot_test

import (
	"math/rand"
	"time"

	"github.com/coreseekdev/ot/internal/alphabet"
	"github.com/coreseekdev/ot/pkg/ot"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// randomString returns a random string of n runes drawn from the
// alphabet's multi-byte/supplementary-plane rune table.
func randomString(n int) string {
	return alphabet.String(rng, n)
}

// randomOperation builds a random, valid Operation whose base is str. It
// mirrors ot.js's test/helpers.js randomOperation: it tracks the
// operation's own BaseLength rather than a cursor, since an Insert doesn't
// advance it, so the loop keeps going until every base rune is accounted
// for.
func randomOperation(str string) *ot.Operation {
	op := ot.NewOperation()
	total := runeLen(str)

	for op.BaseLength() < total {
		left := total - op.BaseLength()
		maxLen := left - 1
		if maxLen < 1 {
			maxLen = 1
		}
		if maxLen > 20 {
			maxLen = 20
		}
		l := 1 + rng.Intn(maxLen)

		switch r := rng.Float64(); {
		case r < 0.2:
			op.Insert(randomString(l))
		case r < 0.4:
			op.Delete(l)
		default:
			op.Retain(l)
		}
	}

	if rng.Float64() < 0.3 {
		op.Insert(randomString(1 + rng.Intn(10)))
	}

	return op
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
