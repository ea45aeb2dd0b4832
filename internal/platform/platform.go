package platform

import (
	"os"
	"runtime"
	"strings"

	"github.com/thoreinstein/bridgectl/internal/paths"
)

// Well-known markers for WSL detection.
const (
	// procVersionPath is the kernel version file checked for the
	// virtualization vendor marker.
	procVersionPath = "/proc/version"

	// wslMarker is the vendor substring present in WSL kernel versions.
	wslMarker = "microsoft"

	// wslDistroEnv is set by WSL for every process in a distribution.
	wslDistroEnv = "WSL_DISTRO_NAME"

	// wslMountPoint is where WSL mounts the Windows C drive.
	wslMountPoint = "/mnt/c"
)

// Info describes the host environment relevant to link creation.
// It is computed once per process invocation and threaded into every
// component constructor; it is never cached across runs because the host
// environment can change between invocations.
type Info struct {
	// OS is the host operating system tag (runtime.GOOS: linux, darwin, windows).
	OS string

	// IsWSL reports whether the process runs inside Windows Subsystem for Linux.
	IsWSL bool

	// SupportsSymlinks reports whether symbolic links are usable.
	// False only for native (non-WSL) Windows, where symlink creation
	// may require elevated privileges.
	SupportsSymlinks bool

	// Home is the resolved home directory.
	Home string
}

// Detect computes platform information for the current process.
// Detection never fails: WSL probes that error due to missing files or
// permissions are treated as "not detected". An unresolvable home
// directory is the only hard error.
func Detect() (Info, error) {
	home, err := paths.ResolveHome()
	if err != nil {
		return Info{}, err
	}

	osName := runtime.GOOS
	isWSL := detectWSL()

	return Info{
		OS:               osName,
		IsWSL:            isWSL,
		SupportsSymlinks: osName != "windows" || isWSL,
		Home:             home,
	}, nil
}

// detectWSL checks, in order, the kernel version marker file, the WSL
// environment variable, and the Windows drive mount point. The first
// positive probe wins; probe failures degrade to false.
func detectWSL() bool {
	if isWSLKernel(procVersionPath) {
		return true
	}
	if os.Getenv(wslDistroEnv) != "" {
		return true
	}
	if _, err := os.Stat(wslMountPoint); err == nil {
		return true
	}
	return false
}

// isWSLKernel reports whether the kernel version file at path contains
// the WSL vendor marker. Read errors count as "not WSL".
func isWSLKernel(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), wslMarker)
}
