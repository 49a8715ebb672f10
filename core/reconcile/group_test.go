package reconcile

import (
	"testing"

	"extension-monitor/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeFeed(store string, records ...feed.RawRecord) feed.StoreFeed {
	return feed.StoreFeed{Store: store, Records: records}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AdBlock", NameAdBlock},
		{"AdBlock — Block Ads", NameAdBlock},
		{"AdBlock for Chrome", NameAdBlock},
		{"Adblock Plus", NameAdblockPlus},
		{"Adblock Plus Beta", NameAdblockPlus},
		{"Adblock Plus - free ad blocker", NameAdblockPlus},
		{"uBlock Origin", "uBlock Origin"},
		{"adblock", "adblock"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.in))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "adblockplus", Slug("Adblock Plus"))
	assert.Equal(t, "adblock", Slug(" AdBlock\t"))
	assert.Equal(t, "ublockorigin", Slug("uBlock  Origin"))
}

func TestGroup(t *testing.T) {
	f := feed.Feed{Entries: []feed.Entry{
		storeFeed("chrome",
			feed.RawRecord{"name": "AdBlock — Block Ads", "version": "6.1.0", "users": "10,000,000+"},
			feed.RawRecord{"name": "Adblock Plus", "version": "4.1"},
		),
		feed.SubmissionFeed{Registry: "submissions", Submissions: map[string]feed.SubmissionRecord{
			"adblock":     {Version: "6.2.0", ReleaseDate: "2024-05-01"},
			"adblockplus": {Version: "4.1"},
		}},
		storeFeed("firefox",
			feed.RawRecord{"extension": "Adblock Plus Beta", "version": "4.0"},
			feed.RawRecord{"name": "AdBlock", "version": "6.1.0", "lastUpdated": "2024-04-30T10:00:00Z"},
			feed.RawRecord{"version": "9.9"},
			feed.RawRecord{"name": "uBlock Origin", "version": "1.0"},
		),
	}}

	groups := Group(f)
	require.Len(t, groups, 3)

	t.Run("FirstSeenOrder", func(t *testing.T) {
		assert.Equal(t, NameAdBlock, groups[0].Name)
		assert.Equal(t, NameAdblockPlus, groups[1].Name)
		assert.Equal(t, "uBlock Origin", groups[2].Name)
	})

	t.Run("AdBlock", func(t *testing.T) {
		g := groups[0]
		require.Len(t, g.Stores, 2)
		assert.Equal(t, "chrome", g.Stores[0].Store)
		assert.Equal(t, "AdBlock — Block Ads", g.Stores[0].Name)
		assert.Equal(t, 10000000, g.Stores[0].Users)
		assert.Equal(t, UnknownLabel, g.Stores[0].LastUpdatedLabel())
		assert.Equal(t, "firefox", g.Stores[1].Store)
		assert.Equal(t, "2024-04-30", g.Stores[1].LastUpdatedLabel())
		assert.Equal(t, "6.1.0", g.LatestVersion)
		assert.True(t, g.IsConsistent)
		assert.Equal(t, "6.2.0", g.SubmittedVersion)
		assert.Equal(t, "2024-05-01", g.ReleaseDate)
	})

	t.Run("AdblockPlus", func(t *testing.T) {
		g := groups[1]
		require.Len(t, g.Stores, 2)
		assert.Equal(t, "4.1", g.LatestVersion)
		assert.False(t, g.IsConsistent)
		assert.Equal(t, "4.1", g.SubmittedVersion)
	})

	t.Run("UnrelatedNameHasNoSubmission", func(t *testing.T) {
		assert.False(t, groups[2].HasSubmission())
	})

	t.Run("NamelessRecordDropped", func(t *testing.T) {
		total := 0
		for _, g := range groups {
			total += len(g.Stores)
			for _, s := range g.Stores {
				assert.NotEqual(t, "9.9", s.Version)
			}
		}
		assert.Equal(t, 5, total)
	})
}

func TestGroup_LatestVersionKeepsFirstOnTie(t *testing.T) {
	f := feed.Feed{Entries: []feed.Entry{
		storeFeed("chrome", feed.RawRecord{"name": "AdBlock", "version": "1.2"}),
		storeFeed("edge", feed.RawRecord{"name": "AdBlock", "version": "1.2.0"}),
		storeFeed("opera", feed.RawRecord{"name": "AdBlock", "version": "1.1.9"}),
	}}

	groups := Group(f)
	require.Len(t, groups, 1)
	assert.Equal(t, "1.2", groups[0].LatestVersion)
	// Compare-equal but not string-equal versions are not consistent.
	assert.False(t, groups[0].IsConsistent)
}

func TestGroup_LatestVersionIsNumeric(t *testing.T) {
	f := feed.Feed{Entries: []feed.Entry{
		storeFeed("chrome",
			feed.RawRecord{"name": "AdBlock", "version": "1.9"},
			feed.RawRecord{"name": "AdBlock", "version": "1.10"},
			feed.RawRecord{"name": "AdBlock", "version": "1.2"},
		),
	}}

	assert.Equal(t, "1.10", Group(f)[0].LatestVersion)
}

func TestGroup_ParsedNumericUsers(t *testing.T) {
	f, err := feed.Parse([]byte(`{
		"chrome": [
			{"name": "AdBlock", "version": 6, "users": 1.2e7},
			{"name": "AdBlock", "version": "6", "users": 12345.0},
			{"name": "AdBlock", "version": "6", "users": 250000}
		]
	}`), "submissions")
	require.NoError(t, err)

	groups := Group(f)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Stores, 3)

	assert.Equal(t, 12000000, groups[0].Stores[0].Users)
	assert.Equal(t, 12345, groups[0].Stores[1].Users)
	assert.Equal(t, 250000, groups[0].Stores[2].Users)
	assert.Equal(t, "6", groups[0].Stores[0].Version)
	assert.True(t, groups[0].IsConsistent)
}

func TestGroup_SubmissionPrecedence(t *testing.T) {
	subs := map[string]feed.SubmissionRecord{
		"adblock":     {Version: "1.0"},
		"adblockplus": {Version: "2.0"},
	}

	sub, ok := submissionFor(NameAdblockPlus, subs)
	require.True(t, ok)
	assert.Equal(t, "2.0", sub.Version)

	sub, ok = submissionFor(NameAdBlock, subs)
	require.True(t, ok)
	assert.Equal(t, "1.0", sub.Version)

	_, ok = submissionFor(NameAdblockPlus, map[string]feed.SubmissionRecord{"adblock": {Version: "1.0"}})
	assert.False(t, ok, "plus must not fall back to the looser slug")

	_, ok = submissionFor("Ghostery", subs)
	assert.False(t, ok)
}

func TestGroup_EmptyFeed(t *testing.T) {
	assert.Empty(t, Group(feed.Feed{}))
}

func TestParseTimestamp(t *testing.T) {
	assert.NotNil(t, parseTimestamp("2024-01-02T03:04:05Z"))
	assert.NotNil(t, parseTimestamp("2024-01-02T03:04:05.123+02:00"))
	assert.NotNil(t, parseTimestamp("2024-01-02T03:04:05"))
	assert.NotNil(t, parseTimestamp("2024-01-02"))
	assert.Nil(t, parseTimestamp(""))
	assert.Nil(t, parseTimestamp("last tuesday"))
}
