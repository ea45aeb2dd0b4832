// Package platform detects host environment capabilities for link creation.
//
// Two concerns live here. [Detect] computes an immutable [Info] snapshot
// (OS family, WSL, symlink support, home directory) once per process
// invocation; components receive it explicitly instead of reading ambient
// state mid-operation. [ProbeLinkKinds] empirically tests which link kinds
// actually work in a directory, because symlink support on paper (Info)
// and in practice (filesystem, permissions, network mounts) can differ.
//
// WSL detection degrades gracefully: each probe that fails due to a
// missing file or denied access counts as "not detected", never as an
// error. No network access and no privilege escalation are attempted.
package platform
