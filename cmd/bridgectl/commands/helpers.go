package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/bridgectl/internal/blueprint"
	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
	"github.com/thoreinstein/bridgectl/internal/link"
	"github.com/thoreinstein/bridgectl/internal/logging"
	"github.com/thoreinstein/bridgectl/internal/platform"
)

// blueprintPath resolves the blueprint file location from the --blueprint
// flag, the app config, and the project root, in that order of precedence.
func blueprintPath() string {
	if blueprintFile != "" {
		return blueprintFile
	}
	name := appConfig.BlueprintFile
	if name == "" {
		name = blueprint.DefaultFileName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(projectRoot, name)
}

// loadBlueprint loads and validates the project's blueprint.
func loadBlueprint() (*blueprint.Blueprint, error) {
	bp, err := blueprint.Load(blueprintPath())
	if err != nil {
		if errors.Is(err, bridgeerrors.ErrBlueprintNotFound) {
			return nil, bridgeerrors.NewBlueprintError(err)
		}
		return nil, bridgeerrors.NewExitError(err, bridgeerrors.ExitUser)
	}
	return bp, nil
}

// detectInfo runs platform detection once per command invocation.
func detectInfo(cmd *cobra.Command) (platform.Info, error) {
	info, err := platform.Detect()
	if err != nil {
		return platform.Info{}, bridgeerrors.NewSystemError(err, "could not determine home directory")
	}
	logging.FromContext(cmd.Context()).Debug("platform detected",
		"os", info.OS,
		"wsl", info.IsWSL,
		"symlinks", info.SupportsSymlinks,
	)
	return info, nil
}

// printReport renders a reconciliation report for humans.
func printReport(w io.Writer, report *link.Report) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	for _, item := range report.Items {
		switch item.Action {
		case link.ActionLinked:
			label := "linked"
			if item.CreatedSource {
				label = "created + linked"
			}
			fmt.Fprintf(w, "  %s %s\n", green("✓"), labelLine(item, label))
		case link.ActionAlreadyLinked:
			fmt.Fprintf(w, "  %s %s\n", gray("·"), labelLine(item, "already linked"))
		case link.ActionSkipped:
			fmt.Fprintf(w, "  %s %s (%s)\n", yellow("-"), labelLine(item, "skipped"), item.Reason)
		case link.ActionError:
			fmt.Fprintf(w, "  %s %s: %s\n", red("✗"), item.ID, item.Error)
		}
		if item.BackupPath != "" {
			fmt.Fprintf(w, "      backup: %s\n", item.BackupPath)
		}
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d linked, %d created, %d skipped, %d errored",
		report.Linked, report.Created, report.Skipped, report.Errored)
	if report.DryRun {
		summary += " (dry run)"
	}
	fmt.Fprintln(w, summary)
}

func labelLine(item link.ItemResult, label string) string {
	name := item.Name
	if name == "" {
		name = item.ID
	}
	return fmt.Sprintf("%s: %s", name, label)
}
