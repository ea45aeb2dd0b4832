// Package backup manages timestamped backups of link targets.
//
// Before a reconciliation overwrites an existing target, the target is
// copied into a sibling ".aicli-backup" directory under a name of the form
//
//	<name>.backup_<timestamp>
//
// Backups are created on overwrite and consumed on restore (moved back
// over the original path); otherwise they accumulate until explicitly
// pruned. There is deliberately no expiry policy.
//
// If a backup cannot be created, the overwrite it protects must not
// proceed; callers treat backup failure as fatal for that item.
package backup
