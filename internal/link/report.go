package link

// Action is the outcome recorded for a single blueprint item.
type Action string

const (
	// ActionLinked means the target now links to the source.
	ActionLinked Action = "linked"

	// ActionAlreadyLinked means the target was already correct; no mutation.
	ActionAlreadyLinked Action = "already-linked"

	// ActionSkipped means the item was not processed (missing source,
	// skip policy, or skip-all mode).
	ActionSkipped Action = "skipped"

	// ActionError means the item failed; the error is recorded and
	// processing continued with the next item.
	ActionError Action = "error"
)

// ItemResult records every decision made for one blueprint item.
// Dry runs produce the same results as real runs; only the mutations
// are withheld.
type ItemResult struct {
	// ID is the blueprint item id.
	ID string `json:"id"`

	// Name is the item's human-readable name.
	Name string `json:"name"`

	// Action is the outcome for this item.
	Action Action `json:"action"`

	// Kind is the link kind chosen for this item.
	Kind string `json:"kind,omitempty"`

	// CreatedSource is true when the source was created from default content.
	CreatedSource bool `json:"created_source,omitempty"`

	// BackupPath is set when an existing target was backed up.
	BackupPath string `json:"backup_path,omitempty"`

	// Reason explains a skip.
	Reason string `json:"reason,omitempty"`

	// Error carries the underlying OS error text verbatim for errored items.
	Error string `json:"error,omitempty"`
}

// ItemError pairs an item id with its error message.
type ItemError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Report aggregates the outcome of one reconciliation run.
type Report struct {
	// DryRun records whether mutations were withheld.
	DryRun bool `json:"dry_run"`

	// Items holds per-item results in blueprint order.
	Items []ItemResult `json:"items"`

	// Created counts sources created from default content.
	Created int `json:"created"`

	// Linked counts items whose target was linked or already correct.
	Linked int `json:"linked"`

	// Skipped counts skipped items.
	Skipped int `json:"skipped"`

	// Errored counts failed items.
	Errored int `json:"errored"`
}

// add appends a result and updates the aggregate counts.
func (r *Report) add(res ItemResult) {
	r.Items = append(r.Items, res)

	switch res.Action {
	case ActionLinked, ActionAlreadyLinked:
		r.Linked++
	case ActionSkipped:
		r.Skipped++
	case ActionError:
		r.Errored++
	}
	if res.CreatedSource {
		r.Created++
	}
}

// Errors returns the (id, message) pairs for errored items.
func (r *Report) Errors() []ItemError {
	var errs []ItemError
	for _, item := range r.Items {
		if item.Action == ActionError {
			errs = append(errs, ItemError{ID: item.ID, Message: item.Error})
		}
	}
	return errs
}

// HasErrors reports whether any item failed.
func (r *Report) HasErrors() bool {
	return r.Errored > 0
}
