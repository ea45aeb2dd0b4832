package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/bridgectl/internal/backup"
)

func init() {
	repairCmd.Flags().BoolVar(&statusLegacy, "legacy", false, "Use the built-in tool mapping instead of the blueprint")
	rootCmd.AddCommand(repairCmd)
}

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Re-link configs whose links are broken",
	Long: `Find entries whose target is a dangling link and recreate the link.
Repair is best-effort: an entry that cannot be relinked is logged and
left as-is. Entries that are healthy, unlinked, or occupied by foreign
files are never touched; run "bridgectl sync" for those.`,
	Example: `  bridgectl repair

  See Also: bridgectl validate, bridgectl sync`,
	RunE: runRepair,
}

func runRepair(cmd *cobra.Command, _ []string) error {
	reg, err := buildRegistry(cmd)
	if err != nil {
		return err
	}

	repaired := reg.Repair(backup.NewStore())

	if len(repaired) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to repair")
		return nil
	}
	for _, id := range repaired {
		fmt.Fprintf(cmd.OutOrStdout(), "  repaired %s\n", id)
	}
	return nil
}
