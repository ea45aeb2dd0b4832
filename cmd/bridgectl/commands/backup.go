package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/bridgectl/internal/backup"
	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
	"github.com/thoreinstein/bridgectl/internal/paths"
)

var backupKeep int

func init() {
	backupPruneCmd.Flags().IntVar(&backupKeep, "keep", 0, "Number of newest backups to keep per item (default: config backup_keep)")
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupPruneCmd)
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Inspect and prune target backups",
	Long: `Backups are created next to each overwritten target, in a sibling
.aicli-backup directory, and restored automatically on unlink. These
subcommands list and prune them per blueprint item.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list [item-id...]",
	Short: "List backups for blueprint items",
	Example: `  # All backups
  bridgectl backup list

  # Backups for one item
  bridgectl backup list claude-settings`,
	RunE: runBackupList,
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune [item-id...]",
	Short: "Delete all but the newest backups",
	Example: `  # Keep the 3 newest backups of every item
  bridgectl backup prune --keep 3`,
	RunE: runBackupPrune,
}

// backupTarget pairs a blueprint item id with its resolved target path.
type backupTarget struct {
	id   string
	path string
}

// backupTargets resolves the absolute target path of each named item,
// defaulting to every blueprint item, in blueprint order.
func backupTargets(cmd *cobra.Command, args []string) ([]backupTarget, error) {
	bp, err := loadBlueprint()
	if err != nil {
		return nil, err
	}
	info, err := detectInfo(cmd)
	if err != nil {
		return nil, err
	}

	ids := args
	if len(ids) == 0 {
		for _, item := range bp.Links {
			ids = append(ids, item.ID)
		}
	}

	targets := make([]backupTarget, 0, len(ids))
	for _, id := range ids {
		item := bp.Find(id)
		if item == nil {
			return nil, bridgeerrors.NewUserError(fmt.Errorf("unknown item %q", id), "Run: bridgectl status")
		}
		resolved, err := paths.Resolve(item.Target, projectRoot, info.Home)
		if err != nil {
			return nil, err
		}
		targets = append(targets, backupTarget{id: id, path: resolved})
	}
	return targets, nil
}

func runBackupList(cmd *cobra.Command, args []string) error {
	targets, err := backupTargets(cmd, args)
	if err != nil {
		return err
	}

	store := backup.NewStore()
	total := 0
	for _, tgt := range targets {
		backups, err := store.List(tgt.path)
		if err != nil {
			return bridgeerrors.NewSystemError(err, "could not read backup directory")
		}
		if len(backups) == 0 {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", tgt.id)
		for _, b := range backups {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", b)
		}
		total += len(backups)
	}

	if total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No backups")
	}
	return nil
}

func runBackupPrune(cmd *cobra.Command, args []string) error {
	keep := backupKeep
	if keep == 0 {
		keep = appConfig.BackupKeep
	}
	if keep <= 0 {
		return bridgeerrors.NewUserError(nil, "pass --keep N (or set backup_keep in config)")
	}

	targets, err := backupTargets(cmd, args)
	if err != nil {
		return err
	}

	store := backup.NewStore()
	for _, tgt := range targets {
		removed, err := store.Prune(tgt.path, keep)
		if err != nil {
			return bridgeerrors.NewSystemError(err, "could not prune backups")
		}
		if removed > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: removed %d backup(s)\n", tgt.id, removed)
		}
	}
	return nil
}
