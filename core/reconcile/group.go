package reconcile

import (
	"strings"
	"time"

	"extension-monitor/core/feed"
	"extension-monitor/core/utils"
	"extension-monitor/core/version"
)

// Canonical extension names.
const (
	NameAdBlock     = "AdBlock"
	NameAdblockPlus = "Adblock Plus"
)

// Submission registry slugs.
const (
	slugAdBlock     = "adblock"
	slugAdblockPlus = "adblockplus"
)

// timestampLayouts are tried in order when parsing store timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Canonicalize folds store-reported name variants into a canonical name.
// Matching is case-sensitive; "Adblock Plus" is checked first.
// Names matching neither pass through unchanged.
func Canonicalize(name string) string {
	switch {
	case strings.Contains(name, NameAdblockPlus):
		return NameAdblockPlus
	case strings.Contains(name, NameAdBlock):
		return NameAdBlock
	default:
		return name
	}
}

// Slug lowercases name and removes all whitespace.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

// Group partitions the store records of f into extension groups.
//
// Records without a name or extension field are dropped. Groups keep
// first-seen order and records keep discovery order across stores.
func Group(f feed.Feed) []ExtensionGroup {
	var order []string
	byName := make(map[string]*ExtensionGroup)

	for _, store := range f.Stores() {
		for _, raw := range store.Records {
			rec, ok := toStoreRecord(store.Store, raw)
			if !ok {
				continue
			}

			name := Canonicalize(rec.Name)
			g, exists := byName[name]
			if !exists {
				g = &ExtensionGroup{Name: name}
				byName[name] = g
				order = append(order, name)
			}
			g.Stores = append(g.Stores, rec)
		}
	}

	subs := f.Submissions()
	groups := make([]ExtensionGroup, 0, len(order))
	for _, name := range order {
		g := *byName[name]
		g.LatestVersion = latestVersion(g.Stores)
		g.IsConsistent = isConsistent(g.Stores)
		if sub, ok := submissionFor(g.Name, subs); ok {
			g.SubmittedVersion = sub.Version
			g.ReleaseDate = sub.ReleaseDate
		}
		groups = append(groups, g)
	}
	return groups
}

// toStoreRecord derives a StoreRecord from a raw record. It reports false when
// the record carries neither a name nor an extension field.
func toStoreRecord(store string, raw feed.RawRecord) (StoreRecord, bool) {
	name := utils.ToString(raw["name"])
	if name == "" {
		name = utils.ToString(raw["extension"])
	}
	if name == "" {
		return StoreRecord{}, false
	}

	return StoreRecord{
		Store:       store,
		Name:        name,
		Version:     utils.ToString(raw["version"]),
		LastUpdated: parseTimestamp(utils.ToString(raw["lastUpdated"])),
		Users:       utils.ToInt(raw["users"]),
		URL:         utils.ToString(raw["url"]),
		LastChecked: parseTimestamp(utils.ToString(raw["lastChecked"])),
	}, true
}

func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// latestVersion folds the records with Compare. Ties keep the earliest record.
func latestVersion(records []StoreRecord) string {
	if len(records) == 0 {
		return ""
	}
	latest := records[0].Version
	for _, r := range records[1:] {
		if version.Compare(r.Version, latest) > 0 {
			latest = r.Version
		}
	}
	return latest
}

func isConsistent(records []StoreRecord) bool {
	for _, r := range records {
		if r.Version != records[0].Version {
			return false
		}
	}
	return true
}

// submissionFor selects the registry entry for a canonical name by slug
// containment. "adblockplus" takes precedence over the looser "adblock".
func submissionFor(name string, subs map[string]feed.SubmissionRecord) (feed.SubmissionRecord, bool) {
	slug := Slug(name)

	var key string
	switch {
	case strings.Contains(slug, slugAdblockPlus):
		key = slugAdblockPlus
	case strings.Contains(slug, slugAdBlock):
		key = slugAdBlock
	default:
		return feed.SubmissionRecord{}, false
	}

	sub, ok := subs[key]
	return sub, ok
}
