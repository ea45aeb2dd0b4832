package registry

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/bridgectl/internal/blueprint"
	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
)

// Tool identifies a supported AI CLI tool. The set is closed; every
// switch over Tool must be exhaustive.
type Tool string

const (
	// ToolClaudeCode is Anthropic's Claude Code CLI.
	ToolClaudeCode Tool = "claude-code"

	// ToolGeminiCLI is Google's Gemini CLI.
	ToolGeminiCLI Tool = "gemini-cli"
)

// KnownTools lists every supported tool in display order.
var KnownTools = []Tool{ToolClaudeCode, ToolGeminiCLI}

// ParseTool converts a tool identifier string into a Tool.
func ParseTool(s string) (Tool, error) {
	switch Tool(s) {
	case ToolClaudeCode:
		return ToolClaudeCode, nil
	case ToolGeminiCLI:
		return ToolGeminiCLI, nil
	}
	return "", errors.Wrapf(bridgeerrors.ErrUnknownTool, "%q", s)
}

// Entries returns the tool's fixed legacy path mapping: project-relative
// sources paired with home-relative targets.
func (t Tool) Entries() []Entry {
	switch t {
	case ToolClaudeCode:
		return []Entry{
			{
				ID:     "claude-code/settings",
				Tool:   t,
				Kind:   blueprint.KindFile,
				Source: "configs/claude-settings.json",
				Target: "~/.claude/settings.json",
			},
			{
				ID:     "claude-code/context",
				Tool:   t,
				Kind:   blueprint.KindFile,
				Source: "CLAUDE.md",
				Target: "~/CLAUDE.md",
			},
		}
	case ToolGeminiCLI:
		return []Entry{
			{
				ID:     "gemini-cli/settings",
				Tool:   t,
				Kind:   blueprint.KindFile,
				Source: "configs/gemini-settings.json",
				Target: "~/.gemini/settings.json",
			},
			{
				ID:     "gemini-cli/context",
				Tool:   t,
				Kind:   blueprint.KindFile,
				Source: "GEMINI.md",
				Target: "~/GEMINI.md",
			},
		}
	}
	return nil
}

// toolForItem maps a blueprint item back to a tool by its target path
// prefix. Items that belong to no known tool come back empty.
func toolForItem(item blueprint.Item) Tool {
	switch {
	case strings.HasPrefix(item.Target, "~/.claude/"), item.Target == "~/CLAUDE.md":
		return ToolClaudeCode
	case strings.HasPrefix(item.Target, "~/.gemini/"), item.Target == "~/GEMINI.md":
		return ToolGeminiCLI
	}
	return ""
}
