package link

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/bridgectl/internal/platform"
)

func TestInspect_Unlinked(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	target := filepath.Join(dir, "dst")

	if got := Inspect(source, target, platform.KindSymlink); got != StateUnlinked {
		t.Errorf("Inspect() = %q, want %q", got, StateUnlinked)
	}
}

func TestInspect_Linked(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	target := filepath.Join(dir, "dst")
	if err := os.WriteFile(source, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(source, target); err != nil {
		t.Fatal(err)
	}

	if got := Inspect(source, target, platform.KindSymlink); got != StateLinked {
		t.Errorf("Inspect() = %q, want %q", got, StateLinked)
	}
}

func TestInspect_Broken(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	target := filepath.Join(dir, "dst")
	if err := os.WriteFile(source, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(source, target); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(source); err != nil {
		t.Fatal(err)
	}

	if got := Inspect(source, target, platform.KindSymlink); got != StateBroken {
		t.Errorf("Inspect() = %q, want %q", got, StateBroken)
	}
}

func TestInspect_LinkedElsewhere(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	other := filepath.Join(dir, "other")
	target := filepath.Join(dir, "dst")
	for _, p := range []string{source, other} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Symlink(other, target); err != nil {
		t.Fatal(err)
	}

	if got := Inspect(source, target, platform.KindSymlink); got != StateLinkedElsewhere {
		t.Errorf("Inspect() = %q, want %q", got, StateLinkedElsewhere)
	}
}

func TestInspect_CopyStrategy(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	target := filepath.Join(dir, "dst")
	if err := os.WriteFile(source, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Under copy strategy a regular file at the target counts as linked;
	// existence is the only available signal.
	if got := Inspect(source, target, platform.KindCopy); got != StateLinked {
		t.Errorf("Inspect() = %q, want %q", got, StateLinked)
	}

	// Under symlink strategy the same file is a conflict.
	if got := Inspect(source, target, platform.KindSymlink); got != StateLinkedElsewhere {
		t.Errorf("Inspect() = %q, want %q", got, StateLinkedElsewhere)
	}
}

func TestInspect_HardlinkStrategy(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	target := filepath.Join(dir, "dst")
	foreign := filepath.Join(dir, "foreign")
	if err := os.WriteFile(source, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Link(source, target); err != nil {
		t.Skipf("hard links unsupported: %v", err)
	}
	if err := os.WriteFile(foreign, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := Inspect(source, target, platform.KindHardlink); got != StateLinked {
		t.Errorf("Inspect(hardlink to source) = %q, want %q", got, StateLinked)
	}
	if got := Inspect(source, foreign, platform.KindHardlink); got != StateLinkedElsewhere {
		t.Errorf("Inspect(separate file) = %q, want %q", got, StateLinkedElsewhere)
	}
}

func TestInspect_RelativeSymlink(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	target := filepath.Join(dir, "dst")
	if err := os.WriteFile(source, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("src", target); err != nil {
		t.Fatal(err)
	}

	if got := Inspect(source, target, platform.KindSymlink); got != StateLinked {
		t.Errorf("Inspect() = %q, want %q", got, StateLinked)
	}
}
