// Package feed retrieves and decodes the upstream extension-store feed.
//
// The upstream document is a single JSON object keyed by store identifier
// (chrome, firefox, edge, opera, ...). Every store maps to a list of raw
// extension records. One reserved key holds the submission registry instead:
// a mapping from canonical-name slug to the most recently submitted version.
//
// # Feed Model
//
// Parse turns the document into a Feed, an ordered list of Entry values.
// Entry is a closed sum type with two variants:
//
//   - StoreFeed: the records observed in one store.
//   - SubmissionFeed: the submission registry.
//
// Object key order is preserved so that downstream grouping can honour
// discovery order. Parsing is lenient: a store whose value is not a list, or
// a list element that is not an object, is skipped rather than failing the
// whole document. Only a document that is not valid JSON is an error.
//
// # Client
//
// The Client interface abstracts the HTTP fetch so services can be tested with
// the testify mock in core/feed/mocks. The HTTP implementation sends a
// browser-like User-Agent, applies strict transport timeouts and rate limits
// outbound requests. Every failure it returns matches ErrUnavailable.
//
// # Usage
//
//	client, err := feed.NewClient(cfg.Feed)
//	body, err := client.Fetch(ctx)
//	f, err := feed.Parse(body, cfg.Feed.SubmissionsKey)
package feed
