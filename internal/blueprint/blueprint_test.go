package blueprint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
)

func writeBlueprint(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeBlueprint(t, `{
  "version": "0.2.0",
  "description": "test links",
  "links": [
    {
      "id": "ctx",
      "name": "Context file",
      "type": "file",
      "source": "CTX.md",
      "target": "~/CTX.md",
      "create_if_missing": true,
      "default_content": "# Hello"
    },
    {
      "id": "cmds",
      "name": "Command dir",
      "type": "directory",
      "source": "commands",
      "target": "~/.claude/commands",
      "create_if_missing": false
    }
  ]
}`)

	bp, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if bp.Version != "0.2.0" {
		t.Errorf("Version = %q", bp.Version)
	}
	if len(bp.Links) != 2 {
		t.Fatalf("len(Links) = %d, want 2", len(bp.Links))
	}

	ctx := bp.Find("ctx")
	if ctx == nil {
		t.Fatal("Find(ctx) returned nil")
	}
	if ctx.Kind != KindFile || !ctx.CreateIfMissing || ctx.DefaultContent != "# Hello" {
		t.Errorf("unexpected item: %+v", ctx)
	}

	// Order is preserved
	if bp.Links[0].ID != "ctx" || bp.Links[1].ID != "cmds" {
		t.Errorf("item order not preserved: %q, %q", bp.Links[0].ID, bp.Links[1].ID)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, bridgeerrors.ErrBlueprintNotFound) {
		t.Errorf("expected ErrBlueprintNotFound, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{not json`},
		{"missing id", `{"version":"0.2.0","links":[{"name":"x","type":"file","source":"a","target":"b"}]}`},
		{"duplicate id", `{"version":"0.2.0","links":[
			{"id":"x","type":"file","source":"a","target":"b"},
			{"id":"x","type":"file","source":"c","target":"d"}]}`},
		{"unknown kind", `{"version":"0.2.0","links":[{"id":"x","type":"socket","source":"a","target":"b"}]}`},
		{"missing target", `{"version":"0.2.0","links":[{"id":"x","type":"file","source":"a","target":""}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeBlueprint(t, tt.content)
			_, err := Load(path)
			if !errors.Is(err, bridgeerrors.ErrBlueprintMalformed) {
				t.Errorf("expected ErrBlueprintMalformed, got %v", err)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	bp, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	def := Default()
	if len(bp.Links) != len(def.Links) {
		t.Fatalf("len(Links) = %d, want %d", len(bp.Links), len(def.Links))
	}
	for i := range def.Links {
		if bp.Links[i] != def.Links[i] {
			t.Errorf("item %d differs after round trip:\n got %+v\nwant %+v", i, bp.Links[i], def.Links[i])
		}
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default blueprint invalid: %v", err)
	}
}
