package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	info, err := Detect()
	if err != nil {
		t.Skipf("no home directory in test environment: %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Home == "" {
		t.Error("Home is empty")
	}
	if runtime.GOOS != "windows" && !info.SupportsSymlinks {
		t.Error("symlinks should be supported on non-Windows hosts")
	}
}

func TestIsWSLKernel(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "microsoft marker",
			content: "Linux version 5.15.90.1-microsoft-standard-WSL2",
			want:    true,
		},
		{
			name:    "mixed case marker",
			content: "Linux version 4.4.0-19041-Microsoft (Microsoft@Microsoft.com)",
			want:    true,
		},
		{
			name:    "plain kernel",
			content: "Linux version 6.5.0-generic (buildd@lcy02)",
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "version")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := isWSLKernel(path); got != tt.want {
				t.Errorf("isWSLKernel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWSLKernel_MissingFile(t *testing.T) {
	if isWSLKernel(filepath.Join(t.TempDir(), "no-such-file")) {
		t.Error("missing marker file should not be detected as WSL")
	}
}
