package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/bridgectl/internal/blueprint"
	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing blueprint")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default link blueprint",
	Long: `Create the project's link blueprint with the default set of items:
Claude Code settings, Gemini CLI settings, shared MCP server config,
the shared context document, and the Claude slash-command directory.

Source files themselves are not created here; "bridgectl sync" creates
any missing source marked create_if_missing from its default content.`,
	Example: `  # Write aicli-links.json in the current project
  bridgectl init

  # Overwrite an existing blueprint
  bridgectl init --force

  See Also: bridgectl sync`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := blueprintPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Blueprint already exists at %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "Use --force to overwrite")
		return nil
	}

	bp := blueprint.Default()
	if err := blueprint.Save(path, bp); err != nil {
		return bridgeerrors.NewSystemError(err, "could not write blueprint")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d link items\n", path, len(bp.Links))
	fmt.Fprintln(cmd.OutOrStdout(), "Run: bridgectl sync")
	return nil
}
