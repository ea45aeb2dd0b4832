package link

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/bridgectl/internal/platform"
)

// State describes a target path relative to its desired source.
// It is derived from the filesystem at call time and never persisted.
type State string

const (
	// StateUnlinked means the target is absent.
	StateUnlinked State = "unlinked"

	// StateLinked means the target exists and is correct for the strategy:
	// a symlink resolving to the source, a hard link sharing the source's
	// inode, or (copy strategy) a regular file.
	StateLinked State = "linked"

	// StateBroken means the target is a symlink whose destination no
	// longer exists.
	StateBroken State = "broken"

	// StateLinkedElsewhere means the target exists but does not correspond
	// to the source (a symlink to a different path, or a foreign file).
	StateLinkedElsewhere State = "linked-elsewhere"
)

// Inspect derives the state of target with respect to source under the
// given link kind. Both paths must already be absolute.
func Inspect(source, target string, kind platform.LinkKind) State {
	fi, err := os.Lstat(target)
	if err != nil {
		return StateUnlinked
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		dest, err := resolveSymlink(target)
		if err != nil {
			return StateBroken
		}
		if _, err := os.Stat(dest); err != nil {
			return StateBroken
		}
		if samePath(dest, source) {
			return StateLinked
		}
		return StateLinkedElsewhere
	}

	switch kind {
	case platform.KindCopy:
		// A materialized copy cannot be traced back to its source;
		// existence is the best available signal.
		return StateLinked
	case platform.KindHardlink:
		if sameInode(source, target) {
			return StateLinked
		}
	}

	return StateLinkedElsewhere
}

// dangling reports whether path is a symlink whose destination is gone.
func dangling(path string) bool {
	fi, err := os.Lstat(path)
	if err != nil || fi.Mode()&os.ModeSymlink == 0 {
		return false
	}
	dest, err := resolveSymlink(path)
	if err != nil {
		return true
	}
	_, err = os.Stat(dest)
	return err != nil
}

// resolveSymlink returns the absolute destination of the symlink at path
// without requiring the destination to exist.
func resolveSymlink(path string) (string, error) {
	dest, err := os.Readlink(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	return filepath.Clean(dest), nil
}

// samePath reports whether two absolute paths refer to the same file,
// tolerating symlink chains on either side.
func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ra, errA := filepath.EvalSymlinks(a)
	rb, errB := filepath.EvalSymlinks(b)
	if errA != nil || errB != nil {
		return false
	}
	return ra == rb
}

// sameInode reports whether two paths name the same underlying file.
func sameInode(a, b string) bool {
	ia, err := os.Stat(a)
	if err != nil {
		return false
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ia, ib)
}
