package link

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/bridgectl/internal/backup"
	"github.com/thoreinstein/bridgectl/internal/blueprint"
	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
	"github.com/thoreinstein/bridgectl/internal/paths"
	"github.com/thoreinstein/bridgectl/internal/platform"
)

// ConflictPolicy decides what happens when a target exists but does not
// correspond to the source.
type ConflictPolicy string

const (
	// PolicyBackup moves the existing target into the backup store before
	// overwriting. This is the default.
	PolicyBackup ConflictPolicy = "backup"

	// PolicyOverwrite removes the existing target without backing it up.
	PolicyOverwrite ConflictPolicy = "overwrite"

	// PolicySkip leaves the conflicting item untouched.
	PolicySkip ConflictPolicy = "skip"
)

// ValidPolicy reports whether p is a recognized conflict policy.
func ValidPolicy(p ConflictPolicy) bool {
	switch p {
	case PolicyBackup, PolicyOverwrite, PolicySkip:
		return true
	}
	return false
}

// Options parameterize one reconciliation run.
type Options struct {
	// ProjectRoot anchors relative blueprint source paths.
	ProjectRoot string

	// DryRun makes every decision without mutating the filesystem.
	// The reported decisions are identical to a real run.
	DryRun bool

	// Policy resolves target conflicts. Zero value means PolicyBackup.
	Policy ConflictPolicy

	// PinKind forces a specific link kind instead of the best probed one.
	// If the pinned kind is not supported, the run falls back to the best
	// available kind with a warning.
	PinKind platform.LinkKind

	// SkipAll marks every item skipped without inspecting anything.
	// Used by tests and the CLI's --skip-all mode.
	SkipAll bool
}

// Reconciler converges link targets toward the blueprint's desired state.
// Items are processed strictly in blueprint order; one item's failure is
// recorded and never aborts the run.
type Reconciler struct {
	info   platform.Info
	store  *backup.Store
	logger *slog.Logger
}

// NewReconciler creates a Reconciler. A nil logger discards log output.
func NewReconciler(info platform.Info, store *backup.Store, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reconciler{
		info:   info,
		store:  store,
		logger: logger,
	}
}

// Reconcile processes every blueprint item and returns the aggregate report.
// The blueprint must already be loaded and validated; item-level failures
// are downgraded to report entries.
func (r *Reconciler) Reconcile(bp *blueprint.Blueprint, opts Options) *Report {
	if opts.Policy == "" {
		opts.Policy = PolicyBackup
	}

	kind := r.chooseKind(opts)
	r.logger.Info("reconciling links",
		"items", len(bp.Links),
		"kind", string(kind),
		"policy", string(opts.Policy),
		"dry_run", opts.DryRun,
	)

	report := &Report{DryRun: opts.DryRun}

	for _, item := range bp.Links {
		if opts.SkipAll {
			report.add(ItemResult{
				ID:     item.ID,
				Name:   item.Name,
				Action: ActionSkipped,
				Reason: "skip-all",
			})
			continue
		}

		res := r.processItem(item, kind, opts)
		if res.Action == ActionError {
			r.logger.Error("item failed", "id", item.ID, "error", res.Error)
		} else {
			r.logger.Debug("item processed", "id", item.ID, "action", string(res.Action))
		}
		report.add(res)
	}

	return report
}

// chooseKind selects the link kind for this run: the pinned kind when
// supported, otherwise the best kind the platform probe reports.
func (r *Reconciler) chooseKind(opts Options) platform.LinkKind {
	supported := platform.ProbeLinkKinds(opts.ProjectRoot)
	if !r.info.SupportsSymlinks {
		supported = withoutKind(supported, platform.KindSymlink)
	}

	if opts.PinKind != "" {
		if platform.Supported(supported, opts.PinKind) {
			return opts.PinKind
		}
		r.logger.Warn("pinned link kind not supported, falling back",
			"pinned", string(opts.PinKind),
			"fallback", string(platform.BestKind(supported)),
		)
	}

	return platform.BestKind(supported)
}

// processItem runs the per-item state machine. Every decision is made the
// same way in dry-run mode; mutations are gated on opts.DryRun.
func (r *Reconciler) processItem(item blueprint.Item, kind platform.LinkKind, opts Options) ItemResult {
	res := ItemResult{ID: item.ID, Name: item.Name, Kind: string(kind)}

	source, err := paths.Resolve(item.Source, opts.ProjectRoot, r.info.Home)
	if err != nil {
		return errored(res, err)
	}
	target, err := paths.Resolve(item.Target, opts.ProjectRoot, r.info.Home)
	if err != nil {
		return errored(res, err)
	}

	// Source must exist (or be created) before any target manipulation:
	// a target link with a dangling source is invalid.
	if _, err := os.Stat(source); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return errored(res, errors.Wrapf(err, "stat source %s", source))
		}
		if !item.CreateIfMissing {
			res.Action = ActionSkipped
			res.Reason = "source missing"
			return res
		}
		if !opts.DryRun {
			if err := createSource(item, source); err != nil {
				return errored(res, err)
			}
		}
		res.CreatedSource = true
	}

	if _, err := os.Lstat(target); err == nil {
		if r.alreadyLinked(source, target, kind, res.CreatedSource) {
			res.Action = ActionAlreadyLinked
			return res
		}

		// A dangling symlink holds no restorable data: treat the target
		// as absent and relink over it without consulting the policy.
		if !dangling(target) {
			switch opts.Policy {
			case PolicySkip:
				res.Action = ActionSkipped
				res.Reason = "target exists"
				return res
			case PolicyBackup:
				if !opts.DryRun {
					backupPath, err := r.store.Backup(target)
					if err != nil {
						// Without a backup the overwrite must not proceed.
						return errored(res, errors.Wrapf(bridgeerrors.ErrBackupFailed, "%s: %v", target, err))
					}
					res.BackupPath = backupPath
				}
			case PolicyOverwrite:
			}
		}

		if !opts.DryRun {
			if err := remove(target); err != nil {
				return errored(res, errors.Wrapf(err, "removing target %s", target))
			}
		}
	}

	if !opts.DryRun {
		if err := create(source, target, kind); err != nil {
			return errored(res, errors.Wrapf(bridgeerrors.ErrLinkCreationFailed, "%s -> %s: %v", target, source, err))
		}
	}

	res.Action = ActionLinked
	return res
}

// alreadyLinked reports whether target is already correct for kind: a
// symlink resolving exactly to source, a hard link sharing its inode, or
// a byte-identical copy. sourcePending marks a source this run decided to
// create; a dry run has not materialized it yet, so a link resolving to
// it still counts as correct.
func (r *Reconciler) alreadyLinked(source, target string, kind platform.LinkKind, sourcePending bool) bool {
	fi, err := os.Lstat(target)
	if err != nil {
		return false
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		dest, err := resolveSymlink(target)
		if err != nil {
			return false
		}
		if _, err := os.Stat(dest); err != nil {
			// Broken link: treat as unlinked and relink, unless it
			// points at the pending source.
			return sourcePending && samePath(dest, source)
		}
		return samePath(dest, source)
	}

	switch kind {
	case platform.KindHardlink:
		return sameInode(source, target)
	case platform.KindCopy:
		return filesEqual(source, target)
	}

	return false
}

// Unlink removes the link at target and restores the most recent backup
// if one exists. Returns whether a backup was restored.
func (r *Reconciler) Unlink(target string) (bool, error) {
	resolved, err := paths.Resolve(target, "", r.info.Home)
	if err != nil {
		return false, err
	}

	if _, err := os.Lstat(resolved); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %s", resolved)
	}

	if err := remove(resolved); err != nil {
		return false, errors.Wrapf(err, "removing %s", resolved)
	}

	restored, err := r.store.Restore(resolved)
	if err != nil {
		return false, err
	}

	r.logger.Info("unlinked", "target", resolved, "restored", restored)
	return restored, nil
}

// createSource materializes a missing source: files get the item's default
// content (or an empty file), directories are created empty.
func createSource(item blueprint.Item, source string) error {
	if err := os.MkdirAll(filepath.Dir(source), 0o755); err != nil {
		return errors.Wrap(err, "creating source directory")
	}

	if item.Kind == blueprint.KindDirectory {
		return errors.Wrap(os.MkdirAll(source, 0o755), "creating source")
	}
	return errors.Wrap(os.WriteFile(source, []byte(item.DefaultContent), 0o644), "creating source")
}

// errored finalizes a result with the error's text kept verbatim.
func errored(res ItemResult, err error) ItemResult {
	res.Action = ActionError
	res.Error = err.Error()
	return res
}

// withoutKind returns kinds with kind removed.
func withoutKind(kinds []platform.LinkKind, kind platform.LinkKind) []platform.LinkKind {
	out := kinds[:0:0]
	for _, k := range kinds {
		if k != kind {
			out = append(out, k)
		}
	}
	return out
}
