package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/bridgectl/internal/backup"
	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
	"github.com/thoreinstein/bridgectl/internal/link"
	"github.com/thoreinstein/bridgectl/internal/logging"
	"github.com/thoreinstein/bridgectl/internal/platform"
)

var (
	syncDryRun  bool
	syncPolicy  string
	syncKind    string
	syncSkipAll bool
)

func init() {
	syncCmd.Flags().BoolVarP(&syncDryRun, "dry-run", "n", false, "Report what would change without touching the filesystem")
	syncCmd.Flags().StringVar(&syncPolicy, "policy", "", "Conflict policy: backup, overwrite, skip (default: backup)")
	syncCmd.Flags().StringVar(&syncKind, "kind", "", "Force a link kind: symlink, hardlink, copy (default: best supported)")
	syncCmd.Flags().BoolVar(&syncSkipAll, "skip-all", false, "Mark every item skipped without mutating anything")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile blueprint links with the filesystem",
	Long: `Process every blueprint item in order: create missing sources from
their default content, back up conflicting targets, and create the links.

Already-correct links are left untouched, so sync is safe to run
repeatedly. A failing item is recorded and never stops the run.`,
	Example: `  # Preview changes
  bridgectl sync --dry-run

  # Sync, overwriting conflicts without backups
  bridgectl sync --policy overwrite

  # Force copies instead of symlinks
  bridgectl sync --kind copy

  See Also: bridgectl status, bridgectl unlink`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, _ []string) error {
	opts, err := syncOptions()
	if err != nil {
		return err
	}

	bp, err := loadBlueprint()
	if err != nil {
		return err
	}

	info, err := detectInfo(cmd)
	if err != nil {
		return err
	}

	rec := link.NewReconciler(info, backup.NewStore(), logging.FromContext(cmd.Context()))
	report := rec.Reconcile(bp, opts)

	printReport(cmd.OutOrStdout(), report)

	if report.HasErrors() {
		return bridgeerrors.NewExitError(nil, bridgeerrors.ExitSystem)
	}
	return nil
}

// syncOptions merges flags with app config defaults into link.Options.
func syncOptions() (link.Options, error) {
	policy := syncPolicy
	if policy == "" {
		policy = appConfig.ConflictPolicy
	}
	if policy != "" && !link.ValidPolicy(link.ConflictPolicy(policy)) {
		return link.Options{}, bridgeerrors.NewUserError(nil, "policy must be one of: backup, overwrite, skip")
	}

	kind := syncKind
	if kind == "" {
		kind = appConfig.LinkKind
	}
	if kind != "" && !platform.ValidKind(platform.LinkKind(kind)) {
		return link.Options{}, bridgeerrors.NewUserError(nil, "kind must be one of: symlink, hardlink, copy")
	}

	return link.Options{
		ProjectRoot: projectRoot,
		DryRun:      syncDryRun,
		Policy:      link.ConflictPolicy(policy),
		PinKind:     platform.LinkKind(kind),
		SkipAll:     syncSkipAll,
	}, nil
}
