package diff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/netvent-format/go-netvent/encode"
	"github.com/netvent-format/go-netvent/ir"
)

// Values returns a human-readable diff of the canonical forms of from and
// to: deletions struck in red, insertions in green, common text as is.
// Two values with equal canonical forms produce that form unchanged.
func Values(from, to ir.Value) string {
	return Strings(encode.MustString(from), encode.MustString(to))
}

// Strings is Values on already-encoded text.
func Strings(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}

// Changed reports whether the canonical forms of from and to differ.
func Changed(from, to ir.Value) bool {
	return encode.MustString(from) != encode.MustString(to)
}

// PatchText returns the differences between two encoded documents in the
// patch text format, suitable for storing alongside the canonical form.
func PatchText(from, to string) string {
	diffCfg := diffpatch.New()
	patches := diffCfg.PatchMake(from, to)
	return diffCfg.PatchToText(patches)
}

// ApplyPatchText applies a patch produced by PatchText to from. The
// second result reports per-patch application success.
func ApplyPatchText(from, patch string) (string, []bool, error) {
	diffCfg := diffpatch.New()
	patches, err := diffCfg.PatchFromText(patch)
	if err != nil {
		return "", nil, err
	}
	res, applied := diffCfg.PatchApply(patches, from)
	return res, applied, nil
}
