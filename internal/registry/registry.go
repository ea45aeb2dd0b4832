package registry

import (
	"log/slog"
	"os"

	"github.com/thoreinstein/bridgectl/internal/backup"
	"github.com/thoreinstein/bridgectl/internal/blueprint"
	"github.com/thoreinstein/bridgectl/internal/link"
	"github.com/thoreinstein/bridgectl/internal/paths"
	"github.com/thoreinstein/bridgectl/internal/platform"
)

// Entry is one tracked config: a project-relative source paired with a
// home-relative target.
type Entry struct {
	ID     string
	Tool   Tool
	Kind   blueprint.ItemKind
	Source string
	Target string
}

// TargetKind describes what currently occupies a target path.
type TargetKind string

const (
	TargetAbsent    TargetKind = "absent"
	TargetSymlink   TargetKind = "symlink"
	TargetHardlink  TargetKind = "hardlink"
	TargetFile      TargetKind = "file"
	TargetDirectory TargetKind = "directory"
)

// Status is the read-only state of one entry.
type Status struct {
	ID                string     `json:"id"`
	Tool              string     `json:"tool,omitempty"`
	SourceExists      bool       `json:"source_exists"`
	TargetExists      bool       `json:"target_exists"`
	TargetKind        TargetKind `json:"target_kind"`
	State             link.State `json:"state"`
	ResolvesCorrectly bool       `json:"resolves_correctly"`
}

// Validation is the per-entry result of Validate.
type Validation struct {
	ID    string `json:"id"`
	Valid bool   `json:"valid"`
}

// Registry tracks known tool configs and answers status, validation and
// repair queries. All methods except Repair are pure reads.
type Registry struct {
	entries     []Entry
	info        platform.Info
	projectRoot string
	logger      *slog.Logger
}

// New builds a Registry over an explicit entry list.
func New(entries []Entry, info platform.Info, projectRoot string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		entries:     entries,
		info:        info,
		projectRoot: projectRoot,
		logger:      logger,
	}
}

// FromBlueprint builds a Registry tracking every blueprint item, in
// blueprint order. Items are attributed to a tool by target path where
// possible.
func FromBlueprint(bp *blueprint.Blueprint, info platform.Info, projectRoot string, logger *slog.Logger) *Registry {
	entries := make([]Entry, 0, len(bp.Links))
	for _, item := range bp.Links {
		entries = append(entries, Entry{
			ID:     item.ID,
			Tool:   toolForItem(item),
			Kind:   item.Kind,
			Source: item.Source,
			Target: item.Target,
		})
	}
	return New(entries, info, projectRoot, logger)
}

// Legacy builds a Registry from the fixed per-tool path mapping,
// covering every known tool.
func Legacy(info platform.Info, projectRoot string, logger *slog.Logger) *Registry {
	var entries []Entry
	for _, tool := range KnownTools {
		entries = append(entries, tool.Entries()...)
	}
	return New(entries, info, projectRoot, logger)
}

// Status reports the current filesystem state of every entry. It never
// mutates anything.
func (r *Registry) Status() []Status {
	out := make([]Status, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, r.statusOf(e))
	}
	return out
}

func (r *Registry) statusOf(e Entry) Status {
	st := Status{ID: e.ID, Tool: string(e.Tool), TargetKind: TargetAbsent}

	source, err := paths.Resolve(e.Source, r.projectRoot, r.info.Home)
	if err != nil {
		return st
	}
	target, err := paths.Resolve(e.Target, r.projectRoot, r.info.Home)
	if err != nil {
		return st
	}

	if _, err := os.Stat(source); err == nil {
		st.SourceExists = true
	}

	st.TargetKind = targetKind(source, target)
	st.TargetExists = st.TargetKind != TargetAbsent

	st.State = link.Inspect(source, target, strategyFor(st.TargetKind))
	st.ResolvesCorrectly = st.State == link.StateLinked
	return st
}

// Validate reports, per entry, whether the link is in place and the
// contents plausibly match. When source and target are both regular
// files their sizes are compared as a cheap content proxy; equal sizes
// with different bytes pass. That trade-off is intentional.
func (r *Registry) Validate() []Validation {
	out := make([]Validation, 0, len(r.entries))
	for _, e := range r.entries {
		st := r.statusOf(e)
		valid := st.State == link.StateLinked

		if valid && st.TargetKind == TargetFile {
			source, errS := paths.Resolve(e.Source, r.projectRoot, r.info.Home)
			target, errT := paths.Resolve(e.Target, r.projectRoot, r.info.Home)
			if errS == nil && errT == nil {
				valid = sizesMatch(source, target)
			}
		}

		out = append(out, Validation{ID: e.ID, Valid: valid})
	}
	return out
}

// Repair re-links every entry currently in the broken state. Repair is
// best-effort: an entry that fails to relink is logged and skipped.
// Returns the ids that were repaired.
func (r *Registry) Repair(store *backup.Store) []string {
	rec := link.NewReconciler(r.info, store, r.logger)

	var repaired []string
	for _, e := range r.entries {
		st := r.statusOf(e)
		if st.State != link.StateBroken {
			continue
		}

		bp := &blueprint.Blueprint{
			Version: blueprint.SchemaVersion,
			Links: []blueprint.Item{{
				ID:     e.ID,
				Kind:   e.Kind,
				Source: e.Source,
				Target: e.Target,
			}},
		}

		report := rec.Reconcile(bp, link.Options{ProjectRoot: r.projectRoot})
		if report.HasErrors() {
			r.logger.Warn("repair failed", "id", e.ID, "error", report.Errors()[0].Message)
			continue
		}
		// Only a relinked item counts as repaired; a skipped one (for
		// example, its source is gone too) is left broken.
		if len(report.Items) == 0 || report.Items[0].Action != link.ActionLinked {
			continue
		}
		repaired = append(repaired, e.ID)
	}
	return repaired
}

// targetKind classifies what sits at target. A regular file sharing the
// source's inode counts as a hard link.
func targetKind(source, target string) TargetKind {
	fi, err := os.Lstat(target)
	if err != nil {
		return TargetAbsent
	}

	switch {
	case fi.Mode()&os.ModeSymlink != 0:
		return TargetSymlink
	case fi.IsDir():
		return TargetDirectory
	}

	si, err := os.Stat(source)
	if err == nil {
		if ti, err := os.Stat(target); err == nil && os.SameFile(si, ti) {
			return TargetHardlink
		}
	}
	return TargetFile
}

// strategyFor chooses the inspection strategy matching the observed
// target. Plain files are inspected under the copy strategy so that a
// materialized copy still reads as linked.
func strategyFor(kind TargetKind) platform.LinkKind {
	switch kind {
	case TargetHardlink:
		return platform.KindHardlink
	case TargetFile, TargetDirectory:
		return platform.KindCopy
	}
	return platform.KindSymlink
}

func sizesMatch(a, b string) bool {
	ia, err := os.Stat(a)
	if err != nil {
		return false
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false
	}
	if !ia.Mode().IsRegular() || !ib.Mode().IsRegular() {
		return true
	}
	return ia.Size() == ib.Size()
}
