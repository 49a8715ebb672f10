// Package reconcile turns a decoded store feed into classified extension groups.
//
// It cross-references the versions published by every browser extension store
// against the version most recently submitted for review, and buckets each
// store row and each extension group into a qualitative status.
//
// # Pipeline
//
// The pipeline is a pure function from feed to report and performs no I/O:
//
//  1. Group: partitions store records into ExtensionGroups. Name variants are
//     folded ("AdBlock for Chrome" becomes "AdBlock"), records without a name
//     are dropped, and each group gets its latest version, a consistency flag
//     and its submission registry entry.
//
//  2. ClassifyGroup: derives live, pending or mismatch for the group.
//
//  3. ClassifyRow: derives LIVE, PENDING or MISMATCH for each store row.
//
// # Classification
//
// Both levels use the same primitive against the submitted version:
//
//   - equal: LIVE
//   - behind by exactly one sequential bump: PENDING
//   - behind by more, or ahead of the submission: MISMATCH
//
// A group without submission data is live. A group whose stores all equal the
// submission is live with the "All versions synchronized" message. Otherwise
// one mismatching row makes the group a mismatch, else it is pending.
//
// # Usage Example
//
//	f, err := feed.Parse(body, cfg.Feed.SubmissionsKey)
//	if err != nil {
//	    return err
//	}
//	report := reconcile.Reconcile(f)
//	for _, g := range report.Groups {
//	    fmt.Println(g.Name, g.Status.Status, g.Status.Message)
//	}
package reconcile
