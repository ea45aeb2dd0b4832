package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/bridgectl/internal/link"
	"github.com/thoreinstein/bridgectl/internal/logging"
	"github.com/thoreinstein/bridgectl/internal/registry"
)

var (
	statusJSON   bool
	statusLegacy bool
)

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output status as JSON")
	statusCmd.Flags().BoolVar(&statusLegacy, "legacy", false, "Use the built-in tool mapping instead of the blueprint")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the link state of every tracked config",
	Long: `Inspect each tracked config without changing anything: whether the
source and target exist, what occupies the target (symlink, hard link,
plain file, directory), and whether the target resolves to the source.`,
	Example: `  # Status of every blueprint item
  bridgectl status

  # Machine-readable output
  bridgectl status --json

  # Status of the built-in claude-code / gemini-cli mapping
  bridgectl status --legacy

  See Also: bridgectl validate, bridgectl repair`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	reg, err := buildRegistry(cmd)
	if err != nil {
		return err
	}

	statuses := reg.Status()

	if statusJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, st := range statuses {
		var mark, detail string
		switch st.State {
		case link.StateLinked:
			mark = green("✓")
			detail = fmt.Sprintf("linked (%s)", st.TargetKind)
		case link.StateBroken:
			mark = red("✗")
			detail = "broken link"
		case link.StateLinkedElsewhere:
			mark = yellow("!")
			detail = fmt.Sprintf("target occupied (%s)", st.TargetKind)
		default:
			mark = yellow("-")
			if st.SourceExists {
				detail = "not linked"
			} else {
				detail = "not linked, source missing"
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %-20s %s\n", mark, st.ID, detail)
	}

	return nil
}

// buildRegistry constructs the registry from the blueprint, or from the
// fixed tool mapping when --legacy is set or no blueprint exists.
func buildRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	info, err := detectInfo(cmd)
	if err != nil {
		return nil, err
	}
	logger := logging.FromContext(cmd.Context())

	if statusLegacy {
		return registry.Legacy(info, projectRoot, logger), nil
	}

	bp, err := loadBlueprint()
	if err != nil {
		return nil, err
	}
	return registry.FromBlueprint(bp, info, projectRoot, logger), nil
}
