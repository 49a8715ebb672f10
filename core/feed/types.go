package feed

// Entry is one top-level member of the upstream document.
// It is implemented only by StoreFeed and SubmissionFeed.
type Entry interface {
	// Key returns the top-level key the entry was read from.
	Key() string
	isEntry()
}

// RawRecord is a single extension record as reported by a store.
// Values are kept loosely typed because stores disagree on field types
// (users may be a number or a string like "10,000,000+").
type RawRecord map[string]any

// StoreFeed holds every record observed in one store.
type StoreFeed struct {
	Store   string
	Records []RawRecord
}

// Key returns the store identifier.
func (s StoreFeed) Key() string { return s.Store }

func (StoreFeed) isEntry() {}

// SubmissionRecord is the latest submission known to the registry for one extension.
type SubmissionRecord struct {
	Version     string `json:"version,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
}

// SubmissionFeed maps canonical-name slugs (e.g. "adblockplus") to submissions.
type SubmissionFeed struct {
	Registry    string
	Submissions map[string]SubmissionRecord
}

// Key returns the reserved registry key.
func (s SubmissionFeed) Key() string { return s.Registry }

func (SubmissionFeed) isEntry() {}

// Feed is the decoded upstream document in key order.
type Feed struct {
	Entries []Entry
}

// Stores returns the store entries in document order.
func (f Feed) Stores() []StoreFeed {
	var out []StoreFeed
	for _, e := range f.Entries {
		if s, ok := e.(StoreFeed); ok {
			out = append(out, s)
		}
	}
	return out
}

// Submissions returns the submission registry. When the document carries the
// reserved key more than once the later entries win per slug.
func (f Feed) Submissions() map[string]SubmissionRecord {
	out := make(map[string]SubmissionRecord)
	for _, e := range f.Entries {
		if s, ok := e.(SubmissionFeed); ok {
			for slug, rec := range s.Submissions {
				out[slug] = rec
			}
		}
	}
	return out
}
