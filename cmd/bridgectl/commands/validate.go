package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
)

func init() {
	validateCmd.Flags().BoolVar(&statusLegacy, "legacy", false, "Use the built-in tool mapping instead of the blueprint")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every tracked config is linked and plausibly in sync",
	Long: `An entry is valid when its link is in place and, for plain-file
targets, source and target sizes match. Size comparison is a cheap
proxy for content equality; it does not hash file contents.

Exits non-zero when any entry is invalid.`,
	Example: `  bridgectl validate

  See Also: bridgectl status, bridgectl repair`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	reg, err := buildRegistry(cmd)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	invalid := 0
	for _, v := range reg.Validate() {
		if v.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", green("✓"), v.ID)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", red("✗"), v.ID)
			invalid++
		}
	}

	if invalid > 0 {
		err := fmt.Errorf("%d invalid link(s)", invalid)
		return bridgeerrors.NewUserError(err, "Run: bridgectl repair")
	}
	return nil
}
