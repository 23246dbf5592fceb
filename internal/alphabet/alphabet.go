// Package alphabet supplies the rune set the ot package's property-based
// tests draw from. Letting the fuzz alphabet include multi-byte and
// supplementary-plane code points, not just ASCII, is what actually
// exercises the rune-counting invariant spec examples like "中😂文" depend
// on rather than just asserting it on a single hand-written case.
package alphabet

import (
	"math/rand"
	"unicode"
)

// Table is a plain *unicode.RangeTable literal covering lowercase ASCII
// plus newline, Latin Extended-A, CJK Unified Ideographs, and the
// Emoticons block. Built by hand rather than through a table-merging
// library: nothing in the retrieval pack does custom-alphabet generation,
// and unicode.RangeTable's R16/R32 slices are already the right shape for
// a handful of disjoint, sorted ranges.
var Table = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x000A, Hi: 0x000A, Stride: 1}, // newline
		{Lo: 0x0061, Hi: 0x007A, Stride: 1}, // a-z
		{Lo: 0x0100, Hi: 0x017F, Stride: 1}, // Latin Extended-A
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK Unified Ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // Emoticons
	},
}

func tableSize(t *unicode.RangeTable) int {
	n := 0
	for _, r := range t.R16 {
		n += int((r.Hi-r.Lo)/r.Stride) + 1
	}
	for _, r := range t.R32 {
		n += int((r.Hi-r.Lo)/r.Stride) + 1
	}
	return n
}

// Rune returns a uniformly chosen rune from Table.
func Rune(rng *rand.Rand) rune {
	n := rng.Intn(tableSize(Table))
	for _, r := range Table.R16 {
		count := int((r.Hi-r.Lo)/r.Stride) + 1
		if n < count {
			return rune(int(r.Lo) + n*int(r.Stride))
		}
		n -= count
	}
	for _, r := range Table.R32 {
		count := int((r.Hi-r.Lo)/r.Stride) + 1
		if n < count {
			return rune(r.Lo + uint32(n)*r.Stride)
		}
		n -= count
	}
	return 'a'
}

// String returns a random string of n runes drawn from Table.
func String(rng *rand.Rand, n int) string {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = Rune(rng)
	}
	return string(rs)
}
