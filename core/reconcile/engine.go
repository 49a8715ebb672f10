package reconcile

import (
	"extension-monitor/core/feed"
	"extension-monitor/core/version"
)

// Reconcile groups the feed and classifies every group in one pass.
// It is pure: identical feeds produce identical reports.
func Reconcile(f feed.Feed) Report {
	groups := Group(f)

	report := Report{Groups: make([]ClassifiedGroup, 0, len(groups))}
	for _, g := range groups {
		report.Groups = append(report.Groups, Classify(g))
	}
	report.Summary = Summarize(report.Groups)
	return report
}

// Summarize counts groups per status and rows per label.
func Summarize(groups []ClassifiedGroup) Summary {
	var s Summary
	for _, cg := range groups {
		s.add(cg)
	}
	return s
}

// Classify returns g with its group status and one row status per store.
func Classify(g ExtensionGroup) ClassifiedGroup {
	rows := make([]ClassifiedRow, 0, len(g.Stores))
	for _, r := range g.Stores {
		rows = append(rows, ClassifiedRow{StoreRecord: r, Status: ClassifyRow(r, g)})
	}
	return ClassifiedGroup{
		ExtensionGroup: g,
		Stores:         rows,
		Status:         ClassifyGroup(g),
	}
}

// ClassifyGroup derives the status of a whole group against its submitted version.
func ClassifyGroup(g ExtensionGroup) GroupStatus {
	if !g.HasSubmission() {
		return GroupStatus{Status: StatusLive, Message: MessageNoSubmission}
	}

	synced := true
	for _, r := range g.Stores {
		if version.Compare(r.Version, g.SubmittedVersion) != 0 {
			synced = false
			break
		}
	}
	if synced {
		return GroupStatus{Status: StatusLive, Message: MessageSynchronized}
	}

	for _, r := range g.Stores {
		if compareToSubmission(r.Version, g.SubmittedVersion) == RowMismatch {
			return GroupStatus{Status: StatusMismatch, Message: MessageMismatch}
		}
	}
	return GroupStatus{Status: StatusPending, Message: MessagePending}
}

// ClassifyRow derives the status of one store row against the group's submitted version.
func ClassifyRow(r StoreRecord, g ExtensionGroup) RowStatus {
	if !g.HasSubmission() {
		return rowStatus(RowLive)
	}
	return rowStatus(compareToSubmission(r.Version, g.SubmittedVersion))
}

// compareToSubmission is the primitive shared by group and row classification.
// A store ahead of the submission is a mismatch.
func compareToSubmission(storeVersion, submitted string) RowLabel {
	switch c := version.Compare(storeVersion, submitted); {
	case c == 0:
		return RowLive
	case c < 0 && version.IsSequentialUpdate(storeVersion, submitted):
		return RowPending
	default:
		return RowMismatch
	}
}

func rowStatus(label RowLabel) RowStatus {
	switch label {
	case RowPending:
		return RowStatus{Label: RowPending, Emphasis: EmphasisWarning}
	case RowMismatch:
		return RowStatus{Label: RowMismatch, Emphasis: EmphasisDanger}
	default:
		return RowStatus{Label: RowLive, Emphasis: EmphasisSuccess}
	}
}

func (s *Summary) add(cg ClassifiedGroup) {
	s.Groups++
	switch cg.Status.Status {
	case StatusLive:
		s.Live++
	case StatusPending:
		s.Pending++
	case StatusMismatch:
		s.Mismatch++
	}

	for _, row := range cg.Stores {
		s.Stores++
		switch row.Status.Label {
		case RowPending:
			s.RowsPending++
		case RowMismatch:
			s.RowsMismatch++
		}
	}
}

// Find returns the group whose canonical name or slug matches name.
func (r Report) Find(name string) (ClassifiedGroup, bool) {
	slug := Slug(name)
	for _, g := range r.Groups {
		if g.Name == name || Slug(g.Name) == slug {
			return g, true
		}
	}
	return ClassifiedGroup{}, false
}

// Only returns a copy of r narrowed to the group matching name,
// with the summary recounted for that group alone.
func (r Report) Only(name string) (Report, bool) {
	g, ok := r.Find(name)
	if !ok {
		return Report{}, false
	}
	groups := []ClassifiedGroup{g}
	return Report{
		Groups:      groups,
		Summary:     Summarize(groups),
		GeneratedAt: r.GeneratedAt,
	}, true
}
