package feed

import (
	"bytes"
	"encoding/json"
	"fmt"

	"extension-monitor/core/utils"
)

// Parse decodes the upstream document. submissionsKey names the reserved
// top-level key that holds the submission registry.
//
// A document that is valid JSON but not an object yields an empty Feed.
// Malformed store values and records are skipped.
func Parse(data []byte, submissionsKey string) (Feed, error) {
	if !json.Valid(data) {
		return Feed{}, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return Feed{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Feed{}, nil
	}

	var f Feed
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Feed{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Feed{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		if key == submissionsKey {
			if sub, ok := parseSubmissions(key, raw); ok {
				f.Entries = append(f.Entries, sub)
			}
			continue
		}
		if store, ok := parseStore(key, raw); ok {
			f.Entries = append(f.Entries, store)
		}
	}

	return f, nil
}

func parseStore(store string, raw json.RawMessage) (StoreFeed, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return StoreFeed{}, false
	}

	out := StoreFeed{Store: store, Records: make([]RawRecord, 0, len(items))}
	for _, item := range items {
		obj, ok := decodeObject(item)
		if !ok {
			continue
		}
		out.Records = append(out.Records, RawRecord(obj))
	}
	return out, true
}

func parseSubmissions(registry string, raw json.RawMessage) (SubmissionFeed, bool) {
	var items map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return SubmissionFeed{}, false
	}

	out := SubmissionFeed{Registry: registry, Submissions: make(map[string]SubmissionRecord, len(items))}
	for slug, item := range items {
		obj, ok := decodeObject(item)
		if !ok {
			continue
		}
		out.Submissions[slug] = SubmissionRecord{
			Version:     utils.ToString(obj["version"]),
			ReleaseDate: firstString(obj, "releaseDate", "release_date", "date"),
		}
	}
	return out, true
}

// decodeObject decodes raw as a JSON object, keeping numbers as json.Number
// so that version-like numbers such as 6.10 keep their text form.
func decodeObject(raw json.RawMessage) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func firstString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := utils.ToString(obj[k]); s != "" {
			return s
		}
	}
	return ""
}
