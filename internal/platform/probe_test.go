package platform

import (
	"os"
	"testing"
)

func TestProbeLinkKinds_NeverEmpty(t *testing.T) {
	kinds := ProbeLinkKinds(t.TempDir())
	if len(kinds) == 0 {
		t.Fatal("probe returned no kinds; copy must always be supported")
	}
	if kinds[len(kinds)-1] != KindCopy {
		t.Errorf("last kind = %q, want %q as universal fallback", kinds[len(kinds)-1], KindCopy)
	}
}

func TestProbeLinkKinds_CleansUp(t *testing.T) {
	dir := t.TempDir()
	ProbeLinkKinds(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe left %d scratch files behind", len(entries))
	}
}

func TestProbeLinkKinds_UnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	kinds := ProbeLinkKinds(dir)
	if len(kinds) != 1 || kinds[0] != KindCopy {
		t.Errorf("unwritable dir should only report copy, got %v", kinds)
	}
}

func TestBestKind(t *testing.T) {
	tests := []struct {
		name  string
		kinds []LinkKind
		want  LinkKind
	}{
		{"full chain", []LinkKind{KindSymlink, KindHardlink, KindCopy}, KindSymlink},
		{"no symlink", []LinkKind{KindHardlink, KindCopy}, KindHardlink},
		{"copy only", []LinkKind{KindCopy}, KindCopy},
		{"empty falls back to copy", nil, KindCopy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestKind(tt.kinds); got != tt.want {
				t.Errorf("BestKind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidKind(t *testing.T) {
	for _, k := range []LinkKind{KindSymlink, KindHardlink, KindCopy} {
		if !ValidKind(k) {
			t.Errorf("ValidKind(%q) = false", k)
		}
	}
	if ValidKind("junction") {
		t.Error(`ValidKind("junction") = true`)
	}
}
