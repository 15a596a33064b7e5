// Package diff reports textual differences between the canonical forms of
// netvent values. The canonical encoding is deterministic (objects are
// key-sorted), which makes it a sensible surface for diffing persisted
// documents.
//
// # Usage
//
//	fmt.Print(diff.Values(before, after))
//	patch := diff.PatchText(encode.MustString(before), encode.MustString(after))
package diff
