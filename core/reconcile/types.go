package reconcile

import "time"

// StoreRecord is one observation of an extension in one store.
type StoreRecord struct {
	// Store is the store identifier (e.g. "chrome", "firefox").
	Store string `json:"store"`

	// Name is the display name exactly as the store reports it.
	Name string `json:"name"`

	// Version is the published version string.
	Version string `json:"version"`

	// LastUpdated is when the store last published an update.
	// Nil when the store reported nothing parseable.
	LastUpdated *time.Time `json:"last_updated,omitempty"`

	// Users is the user or install count. Zero when unknown.
	Users int `json:"users"`

	// URL is the store listing.
	URL string `json:"url,omitempty"`

	// LastChecked is when this observation was fetched upstream.
	LastChecked *time.Time `json:"last_checked,omitempty"`
}

// LastUpdatedLabel returns the update date for display, or "Unknown".
func (r StoreRecord) LastUpdatedLabel() string {
	if r.LastUpdated == nil {
		return UnknownLabel
	}
	return r.LastUpdated.Format("2006-01-02")
}

// UnknownLabel is displayed for timestamps the store did not provide.
const UnknownLabel = "Unknown"

// ExtensionGroup is the reconciled unit of display: every store record that
// canonicalizes to the same extension name.
type ExtensionGroup struct {
	// Name is the canonical extension name.
	Name string `json:"name"`

	// Stores holds the records in discovery order.
	Stores []StoreRecord `json:"stores"`

	// LatestVersion is the highest version among Stores. Ties keep the first seen.
	LatestVersion string `json:"latest_version"`

	// IsConsistent is true when every store publishes the identical version string.
	IsConsistent bool `json:"is_consistent"`

	// SubmittedVersion is the latest version known to the submission registry.
	SubmittedVersion string `json:"submitted_version,omitempty"`

	// ReleaseDate is the registry's release or submission date.
	ReleaseDate string `json:"release_date,omitempty"`
}

// HasSubmission reports whether the registry tracks a submitted version for the group.
func (g ExtensionGroup) HasSubmission() bool {
	return g.SubmittedVersion != ""
}

// Status is the qualitative reconciliation state of a group.
type Status string

const (
	// StatusLive means the stores agree with the submission, or nothing contradicts them.
	StatusLive Status = "live"
	// StatusPending means lagging stores are exactly one release behind the submission.
	StatusPending Status = "pending"
	// StatusMismatch means at least one store has no sequential relationship to the submission.
	StatusMismatch Status = "mismatch"
)

// Group status messages.
const (
	MessageNoSubmission = "No submission data"
	MessageSynchronized = "All versions synchronized"
	MessageMismatch     = "Version mismatch detected"
	MessagePending      = "Updates pending approval"
)

// GroupStatus is the classification of a whole group.
type GroupStatus struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// RowLabel is the classification of a single store row.
type RowLabel string

const (
	RowLive     RowLabel = "LIVE"
	RowPending  RowLabel = "PENDING"
	RowMismatch RowLabel = "MISMATCH"
)

// Emphasis is a rendering hint paired with a RowLabel.
type Emphasis string

const (
	EmphasisSuccess Emphasis = "success"
	EmphasisWarning Emphasis = "warning"
	EmphasisDanger  Emphasis = "danger"
)

// RowStatus is the classification of a single store row.
type RowStatus struct {
	Label    RowLabel `json:"label"`
	Emphasis Emphasis `json:"emphasis"`
}

// ClassifiedRow is a store record with its row status.
type ClassifiedRow struct {
	StoreRecord
	Status RowStatus `json:"status"`
}

// ClassifiedGroup is an extension group enriched with its classification.
// Its Stores field shadows ExtensionGroup.Stores with the classified rows.
type ClassifiedGroup struct {
	ExtensionGroup
	Stores []ClassifiedRow `json:"stores"`
	Status GroupStatus     `json:"status"`
}

// Summary provides aggregate counts for a report.
type Summary struct {
	// Groups is the number of extension groups.
	Groups int `json:"groups"`

	// Stores is the number of store rows across all groups.
	Stores int `json:"stores"`

	// Live, Pending and Mismatch count groups per status.
	Live     int `json:"live"`
	Pending  int `json:"pending"`
	Mismatch int `json:"mismatch"`

	// RowsMismatch counts store rows labelled MISMATCH.
	RowsMismatch int `json:"rows_mismatch"`

	// RowsPending counts store rows labelled PENDING.
	RowsPending int `json:"rows_pending"`
}

// Report is the output of one reconciliation pass.
type Report struct {
	// Groups holds the classified groups in first-seen order.
	Groups []ClassifiedGroup `json:"groups"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// GeneratedAt is set by the caller that fetched the snapshot.
	GeneratedAt time.Time `json:"generated_at,omitzero"`
}
