package blueprint

// Default content bodies for well-known configs. These seed source files
// when an item has create_if_missing set and the source does not exist.
const (
	defaultClaudeSettings = `{
  "model": "sonnet",
  "env": {
    "BASH_DEFAULT_TIMEOUT_MS": "900000"
  },
  "hooks": {},
  "permissions": {
    "allow": [],
    "deny": []
  },
  "mcpServers": {}
}
`

	defaultGeminiSettings = `{
  "theme": "auto",
  "selectedAuthType": "oauth-personal"
}
`

	defaultMCPServers = `{
  "mcpServers": {
    "filesystem": {
      "command": "npx",
      "args": [
        "-y",
        "@modelcontextprotocol/server-filesystem",
        "${HOME}/Documents",
        "${HOME}/Desktop"
      ]
    },
    "memory": {
      "command": "npx",
      "args": ["-y", "@modelcontextprotocol/server-memory"]
    },
    "fetch": {
      "command": "npx",
      "args": ["-y", "@modelcontextprotocol/server-fetch"]
    }
  }
}
`

	defaultContext = `# AI Operating Guidelines

This file provides guidance to AI CLI tools working in this project.

## Project Overview

[Describe the project here]

## Development Guidelines

[Describe conventions and rules for development here]
`
)

// Default returns the seed blueprint written by "bridgectl init".
// It covers the Claude Code and Gemini CLI settings files, the shared
// MCP server config, and the shared context document.
func Default() *Blueprint {
	return &Blueprint{
		Version:     SchemaVersion,
		Description: "AI CLI configuration links managed by bridgectl",
		Links: []Item{
			{
				ID:              "claude-settings",
				Name:            "Claude Code settings",
				Kind:            KindFile,
				Source:          "configs/claude-settings.json",
				Target:          "~/.claude/settings.json",
				CreateIfMissing: true,
				DefaultContent:  defaultClaudeSettings,
			},
			{
				ID:              "gemini-settings",
				Name:            "Gemini CLI settings",
				Kind:            KindFile,
				Source:          "configs/gemini-settings.json",
				Target:          "~/.gemini/settings.json",
				CreateIfMissing: true,
				DefaultContent:  defaultGeminiSettings,
			},
			{
				ID:              "mcp-servers",
				Name:            "Shared MCP server config",
				Kind:            KindFile,
				Source:          "configs/mcp-servers.json",
				Target:          "~/.claude/mcp-servers.json",
				CreateIfMissing: true,
				DefaultContent:  defaultMCPServers,
			},
			{
				ID:              "claude-context",
				Name:            "Shared context document",
				Kind:            KindFile,
				Source:          "CLAUDE.md",
				Target:          "~/CLAUDE.md",
				CreateIfMissing: true,
				DefaultContent:  defaultContext,
			},
			{
				ID:              "claude-commands",
				Name:            "Claude Code slash commands",
				Kind:            KindDirectory,
				Source:          "configs/claude-commands",
				Target:          "~/.claude/commands",
				CreateIfMissing: true,
			},
		},
	}
}
