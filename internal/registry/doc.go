// Package registry tracks known AI CLI tool configs and answers
// status, validation and repair queries over their link state.
//
// A [Registry] is built either from a blueprint (the normal path) or
// from the fixed legacy per-tool mapping. Status and Validate are pure
// reads; Repair re-links broken entries best-effort.
package registry
