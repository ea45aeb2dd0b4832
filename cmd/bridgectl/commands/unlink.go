package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/bridgectl/internal/backup"
	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
	"github.com/thoreinstein/bridgectl/internal/link"
	"github.com/thoreinstein/bridgectl/internal/logging"
)

var unlinkAll bool

func init() {
	unlinkCmd.Flags().BoolVar(&unlinkAll, "all", false, "Unlink every blueprint item")
	rootCmd.AddCommand(unlinkCmd)
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink [item-id...]",
	Short: "Remove links and restore backed-up originals",
	Long: `Remove the target link of the named blueprint items. If a backup of
the original target exists, the most recent one is moved back into
place. Source files in the project are never touched.`,
	Example: `  # Unlink one item
  bridgectl unlink claude-settings

  # Unlink everything in the blueprint
  bridgectl unlink --all

  See Also: bridgectl sync, bridgectl backup`,
	RunE: runUnlink,
}

func runUnlink(cmd *cobra.Command, args []string) error {
	if !unlinkAll && len(args) == 0 {
		return bridgeerrors.NewUserError(nil, "name item ids to unlink, or pass --all")
	}

	bp, err := loadBlueprint()
	if err != nil {
		return err
	}

	ids := args
	if unlinkAll {
		ids = nil
		for _, item := range bp.Links {
			ids = append(ids, item.ID)
		}
	}

	info, err := detectInfo(cmd)
	if err != nil {
		return err
	}
	rec := link.NewReconciler(info, backup.NewStore(), logging.FromContext(cmd.Context()))

	var failed int
	for _, id := range ids {
		item := bp.Find(id)
		if item == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  unknown item %q\n", id)
			failed++
			continue
		}

		restored, err := rec.Unlink(item.Target)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", id, err)
			failed++
			continue
		}
		if restored {
			fmt.Fprintf(cmd.OutOrStdout(), "  unlinked %s (backup restored)\n", id)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  unlinked %s\n", id)
		}
	}

	if failed > 0 {
		err := fmt.Errorf("%d item(s) failed to unlink", failed)
		return bridgeerrors.NewExitError(err, bridgeerrors.ExitSystem)
	}
	return nil
}
