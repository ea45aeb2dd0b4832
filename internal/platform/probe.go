package platform

import (
	"os"
	"path/filepath"
)

// LinkKind identifies a way of materializing a target from a source.
type LinkKind string

const (
	// KindSymlink is a symbolic link, the preferred kind.
	KindSymlink LinkKind = "symlink"

	// KindHardlink is a hard link, used when symlinks are unavailable.
	KindHardlink LinkKind = "hardlink"

	// KindCopy is a full file copy, the universal fallback.
	KindCopy LinkKind = "copy"
)

// ValidKind reports whether k is a recognized link kind.
func ValidKind(k LinkKind) bool {
	switch k {
	case KindSymlink, KindHardlink, KindCopy:
		return true
	}
	return false
}

// ProbeLinkKinds empirically determines which link kinds work in dir by
// creating a scratch file and attempting each kind of link against it.
// Both files are removed afterward. A kind whose attempt fails for any
// reason is excluded. Copy always works, so the returned slice is never
// empty; kinds appear in preference order (symlink, hardlink, copy).
func ProbeLinkKinds(dir string) []LinkKind {
	kinds := make([]LinkKind, 0, 3)

	if probeLink(dir, "symlink", os.Symlink) {
		kinds = append(kinds, KindSymlink)
	}
	if probeLink(dir, "hardlink", os.Link) {
		kinds = append(kinds, KindHardlink)
	}
	kinds = append(kinds, KindCopy)

	return kinds
}

// BestKind returns the most preferred kind in kinds.
// An empty slice falls back to copy.
func BestKind(kinds []LinkKind) LinkKind {
	if len(kinds) == 0 {
		return KindCopy
	}
	return kinds[0]
}

// Supported reports whether kind is present in kinds.
func Supported(kinds []LinkKind, kind LinkKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// probeLink creates a scratch source file in dir, attempts linkFn against
// it, and cleans up both. Returns true only if every step succeeds.
func probeLink(dir, label string, linkFn func(oldname, newname string) error) bool {
	src := filepath.Join(dir, ".bridgectl-probe-"+label+"-src")
	dst := filepath.Join(dir, ".bridgectl-probe-"+label+"-dst")

	if err := os.WriteFile(src, []byte("probe"), 0o644); err != nil {
		return false
	}
	defer os.Remove(src)

	if err := linkFn(src, dst); err != nil {
		return false
	}
	os.Remove(dst)

	return true
}
