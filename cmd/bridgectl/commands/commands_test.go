package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/bridgectl/internal/backup"
	"github.com/thoreinstein/bridgectl/internal/config"
	"github.com/thoreinstein/bridgectl/internal/logging"
	"github.com/thoreinstein/bridgectl/internal/registry"
)

// setupCommandTest isolates package-level command state and redirects
// the home directory into a temp dir.
func setupCommandTest(t *testing.T) (root, home string) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	home = t.TempDir()
	t.Setenv("HOME", home)
	root = t.TempDir()

	projectRoot = root
	blueprintFile = ""
	appConfig = config.Default()
	configLoadErr = nil

	initForce = false
	syncDryRun = false
	syncPolicy = ""
	syncKind = ""
	syncSkipAll = false
	statusJSON = false
	statusLegacy = false
	unlinkAll = false
	backupKeep = 0

	return root, home
}

// newTestCmd builds a command shell with captured output and a test logger.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))
	return cmd, out
}

func TestInitCommand(t *testing.T) {
	root, _ := setupCommandTest(t)
	cmd, out := newTestCmd(t)

	require.NoError(t, runInit(cmd, nil))

	path := filepath.Join(root, "aicli-links.json")
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"claude-settings"`)
	assert.Contains(t, string(data), `"0.2.0"`)
}

func TestInitCommand_ExistingWithoutForce(t *testing.T) {
	root, _ := setupCommandTest(t)
	cmd, out := newTestCmd(t)

	path := filepath.Join(root, "aicli-links.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"0.2.0","links":[]}`), 0o644))

	require.NoError(t, runInit(cmd, nil))
	assert.Contains(t, out.String(), "already exists")

	// File untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"version":"0.2.0","links":[]}`, string(data))
}

func TestSyncCommand(t *testing.T) {
	root, home := setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	require.NoError(t, runInit(cmd, nil))

	cmd, out := newTestCmd(t)
	require.NoError(t, runSync(cmd, nil))

	// Sources were created in the project...
	assert.FileExists(t, filepath.Join(root, "configs", "claude-settings.json"))
	assert.FileExists(t, filepath.Join(root, "CLAUDE.md"))

	// ...and the targets link back to them.
	linked, err := os.Readlink(filepath.Join(home, ".claude", "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "configs", "claude-settings.json"), linked)

	assert.Contains(t, out.String(), "0 errored")
}

func TestSyncCommand_DryRun(t *testing.T) {
	_, home := setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	require.NoError(t, runInit(cmd, nil))

	syncDryRun = true
	cmd, out := newTestCmd(t)
	require.NoError(t, runSync(cmd, nil))

	assert.NoFileExists(t, filepath.Join(home, ".claude", "settings.json"))
	assert.Contains(t, out.String(), "(dry run)")
}

func TestSyncCommand_InvalidPolicy(t *testing.T) {
	setupCommandTest(t)

	syncPolicy = "merge"
	cmd, _ := newTestCmd(t)
	assert.Error(t, runSync(cmd, nil))
}

func TestSyncCommand_MissingBlueprint(t *testing.T) {
	setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	err := runSync(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blueprint not found")
}

func TestStatusCommand_JSON(t *testing.T) {
	setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	require.NoError(t, runInit(cmd, nil))
	cmd, _ = newTestCmd(t)
	require.NoError(t, runSync(cmd, nil))

	statusJSON = true
	cmd, out := newTestCmd(t)
	require.NoError(t, runStatus(cmd, nil))

	var statuses []registry.Status
	require.NoError(t, json.Unmarshal(out.Bytes(), &statuses))
	require.Len(t, statuses, 5)
	for _, st := range statuses {
		assert.True(t, st.ResolvesCorrectly, "item %s should resolve", st.ID)
	}
}

func TestStatusCommand_Legacy(t *testing.T) {
	setupCommandTest(t)

	// No blueprint needed in legacy mode.
	statusLegacy = true
	statusJSON = true
	cmd, out := newTestCmd(t)
	require.NoError(t, runStatus(cmd, nil))

	var statuses []registry.Status
	require.NoError(t, json.Unmarshal(out.Bytes(), &statuses))
	assert.NotEmpty(t, statuses)
	for _, st := range statuses {
		assert.False(t, st.TargetExists)
	}
}

func TestValidateCommand_FailsWhenUnlinked(t *testing.T) {
	setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	require.NoError(t, runInit(cmd, nil))

	// Nothing synced yet: validate must fail.
	cmd, _ = newTestCmd(t)
	assert.Error(t, runValidate(cmd, nil))

	cmd, _ = newTestCmd(t)
	require.NoError(t, runSync(cmd, nil))

	cmd, _ = newTestCmd(t)
	assert.NoError(t, runValidate(cmd, nil))
}

func TestUnlinkCommand(t *testing.T) {
	_, home := setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	require.NoError(t, runInit(cmd, nil))
	cmd, _ = newTestCmd(t)
	require.NoError(t, runSync(cmd, nil))

	target := filepath.Join(home, "CLAUDE.md")
	require.FileExists(t, target)

	cmd, out := newTestCmd(t)
	require.NoError(t, runUnlink(cmd, []string{"claude-context"}))

	assert.NoFileExists(t, target)
	assert.Contains(t, out.String(), "unlinked claude-context")
}

func TestUnlinkCommand_RequiresIDs(t *testing.T) {
	setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	assert.Error(t, runUnlink(cmd, nil))
}

func TestBackupListAndPrune(t *testing.T) {
	_, home := setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	require.NoError(t, runInit(cmd, nil))

	// Pre-existing target forces a backup during sync.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".claude"), 0o755))
	target := filepath.Join(home, ".claude", "settings.json")
	require.NoError(t, os.WriteFile(target, []byte(`{"old":true}`), 0o644))

	cmd, _ = newTestCmd(t)
	require.NoError(t, runSync(cmd, nil))

	cmd, out := newTestCmd(t)
	require.NoError(t, runBackupList(cmd, []string{"claude-settings"}))
	assert.Contains(t, out.String(), backup.DirName)

	// keep=1 with a single backup removes nothing.
	backupKeep = 1
	cmd, out = newTestCmd(t)
	require.NoError(t, runBackupPrune(cmd, []string{"claude-settings"}))
	assert.NotContains(t, out.String(), "removed")

	store := backup.NewStore()
	backups, err := store.List(target)
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestBackupList_BlueprintOrder(t *testing.T) {
	_, home := setupCommandTest(t)

	cmd, _ := newTestCmd(t)
	require.NoError(t, runInit(cmd, nil))

	// Pre-existing targets for two items force backups during sync.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".claude"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".gemini"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".claude", "settings.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gemini", "settings.json"), []byte("{}"), 0o644))

	cmd, _ = newTestCmd(t)
	require.NoError(t, runSync(cmd, nil))

	// Listing follows blueprint order on every run.
	for range 3 {
		cmd, out := newTestCmd(t)
		require.NoError(t, runBackupList(cmd, nil))

		claudeIdx := strings.Index(out.String(), "claude-settings:")
		geminiIdx := strings.Index(out.String(), "gemini-settings:")
		require.GreaterOrEqual(t, claudeIdx, 0)
		require.GreaterOrEqual(t, geminiIdx, 0)
		assert.Less(t, claudeIdx, geminiIdx)
	}
}

func TestSyncOptions_ConfigDefaults(t *testing.T) {
	setupCommandTest(t)

	appConfig.ConflictPolicy = "skip"
	appConfig.LinkKind = "copy"

	opts, err := syncOptions()
	require.NoError(t, err)
	assert.Equal(t, "skip", string(opts.Policy))
	assert.Equal(t, "copy", string(opts.PinKind))

	// Flags win over config.
	syncPolicy = "overwrite"
	opts, err = syncOptions()
	require.NoError(t, err)
	assert.Equal(t, "overwrite", string(opts.Policy))
}
