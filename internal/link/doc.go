// Package link implements the link-reconciliation engine.
//
// Given a blueprint of desired links, the [Reconciler] inspects the
// current filesystem state of each item, decides an action (create the
// source from default content, link, back up and overwrite, or skip),
// executes it, and aggregates a [Report]. Items are processed strictly
// sequentially in blueprint order; a failing item is recorded and never
// aborts the run.
//
// Every decision can be made in dry-run mode, which reports identically
// to a real run while withholding all filesystem mutations.
//
// The link kind (symlink, hardlink, copy) is chosen per run from the
// platform probe's capability set, with symlink preferred, unless the
// caller pins a kind explicitly.
package link
