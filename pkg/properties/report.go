package properties

import (
	"encoding/hex"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/zeebo/blake3"
)

// Checksum returns the hex BLAKE3-256 digest of content.
func Checksum(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// unifiedDiff renders the before/after content of path as a unified diff.
func unifiedDiff(path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path + " (before)",
		ToFile:   path + " (after)",
		Context:  3,
	})
}
