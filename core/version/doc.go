// Package version compares the dot-separated numeric version strings published
// by browser extension stores.
//
// It is intentionally not a semantic-versioning implementation: there is no
// pre-release or build-metadata handling. Every segment is read as a
// non-negative integer and a segment that does not parse is read as 0, so
// "x.y" compares equal to "0.0". Missing trailing segments also compare as 0,
// which makes "1.2" and "1.2.0" equal.
//
// # Operations
//
//   - Compare: three-way comparison with the sign of (a - b).
//   - IsSequentialUpdate: reports whether a target version is exactly one
//     conventional bump away from the current version.
//
// # Usage
//
//	if version.Compare(store, submitted) < 0 && !version.IsSequentialUpdate(store, submitted) {
//	    // the store lags behind by more than one release
//	}
package version
