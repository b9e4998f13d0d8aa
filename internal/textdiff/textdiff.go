// Package textdiff produces unified diffs for the snapshot harness.
package textdiff

import "github.com/pmezard/go-difflib/difflib"

// Unified returns a unified diff between a and b with three lines of
// context. The empty string means the inputs are identical.
func Unified(aLabel, bLabel, a, b string) (string, error) {
	if a == b {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: aLabel,
		ToFile:   bLabel,
		Context:  3,
	})
}
