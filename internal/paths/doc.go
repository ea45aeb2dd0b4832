// Package paths provides cross-platform path resolution utilities for
// bridgectl.
//
// Blueprint paths come in three shapes: absolute, home-relative (leading
// "~"), and project-relative. [Resolve] normalizes all three into absolute
// filesystem paths before any filesystem operation runs. The home directory
// is passed in explicitly rather than read from ambient state, so a single
// detection at process start governs the whole run.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance
// when locating the application's own config file.
package paths
