package ot

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// FromDiff builds the Operation that transforms base into target, computed
// from a Myers diff between the two strings.
//
// This is the common way a client reconciles two document snapshots it
// already knows about (for example after reconnecting with a document it
// edited offline) into the same Operation value the rest of this package
// works with, rather than requiring the caller to have recorded every
// intermediate edit.
func FromDiff(base, target string) *Operation {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(base, target, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	op := NewOperation()
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op.Retain(runeLen(d.Text))
		case diffmatchpatch.DiffInsert:
			op.Insert(d.Text)
		case diffmatchpatch.DiffDelete:
			op.Delete(runeLen(d.Text))
		}
	}
	return op
}
