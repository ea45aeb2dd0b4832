package blueprint

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	bridgeerrors "github.com/thoreinstein/bridgectl/internal/errors"
	"github.com/thoreinstein/bridgectl/pkg/fileutil"
)

// SchemaVersion is the blueprint schema version written by this release.
const SchemaVersion = "0.2.0"

// DefaultFileName is the blueprint file name looked up in the project root.
const DefaultFileName = "aicli-links.json"

// ItemKind is the kind of filesystem object a link item manages.
type ItemKind string

const (
	// KindFile links a single file.
	KindFile ItemKind = "file"

	// KindDirectory links a whole directory.
	KindDirectory ItemKind = "directory"
)

// Item is one desired link in a blueprint.
type Item struct {
	// ID uniquely identifies the item within a blueprint.
	ID string `json:"id"`

	// Name is a human-readable description.
	Name string `json:"name"`

	// Kind is "file" or "directory".
	Kind ItemKind `json:"type"`

	// Source is the link source, relative to the project root
	// (a leading "~" expands to the home directory).
	Source string `json:"source"`

	// Target is the link target, absolute or home-relative.
	Target string `json:"target"`

	// CreateIfMissing creates the source with DefaultContent when absent.
	CreateIfMissing bool `json:"create_if_missing"`

	// DefaultContent seeds the source file when CreateIfMissing applies.
	// Only meaningful for KindFile.
	DefaultContent string `json:"default_content,omitempty"`
}

// Blueprint is the declarative, versioned list of desired links.
// Item order is processing order; it is significant for reproducible
// dry-run output.
type Blueprint struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Links       []Item `json:"links"`
}

// Load reads and validates a blueprint file.
// A missing file returns ErrBlueprintNotFound; parse and validation
// failures return ErrBlueprintMalformed. Both are fatal to a
// reconciliation run.
func Load(path string) (*Blueprint, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(bridgeerrors.ErrBlueprintNotFound, "%s", path)
		}
		return nil, errors.Wrap(err, "reading blueprint")
	}

	var bp Blueprint
	if err := json.Unmarshal(data, &bp); err != nil {
		return nil, errors.Wrapf(bridgeerrors.ErrBlueprintMalformed, "parsing %s: %v", path, err)
	}

	if err := bp.Validate(); err != nil {
		return nil, errors.Wrapf(bridgeerrors.ErrBlueprintMalformed, "validating %s: %v", path, err)
	}

	return &bp, nil
}

// Save writes the blueprint to path atomically.
func Save(path string, bp *Blueprint) error {
	if err := bp.Validate(); err != nil {
		return err
	}
	return fileutil.AtomicWriteJSON(path, bp)
}

// Validate checks structural invariants: every item needs a non-empty id,
// source, and target, a recognized kind, and ids must be unique.
func (b *Blueprint) Validate() error {
	seen := make(map[string]struct{}, len(b.Links))

	for i, item := range b.Links {
		if item.ID == "" {
			return errors.Newf("link %d: id is required", i)
		}
		if _, dup := seen[item.ID]; dup {
			return errors.Newf("link %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = struct{}{}

		if item.Source == "" {
			return errors.Newf("link %q: source is required", item.ID)
		}
		if item.Target == "" {
			return errors.Newf("link %q: target is required", item.ID)
		}
		switch item.Kind {
		case KindFile, KindDirectory:
		default:
			return errors.Newf("link %q: unknown type %q", item.ID, item.Kind)
		}
	}

	return nil
}

// Find returns the item with the given id, or nil.
func (b *Blueprint) Find(id string) *Item {
	for i := range b.Links {
		if b.Links[i].ID == id {
			return &b.Links[i]
		}
	}
	return nil
}
