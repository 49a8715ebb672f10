package version

import (
	"strconv"
	"strings"
)

// Segments splits v on "." and parses every segment as a non-negative integer.
// Segments that fail to parse are returned as 0.
func Segments(v string) []int {
	parts := strings.Split(v, ".")
	segs := make([]int, len(parts))
	for i, p := range parts {
		segs[i] = parseSegment(p)
	}
	return segs
}

func parseSegment(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Compare returns a negative number when a < b, zero when they are equal and a
// positive number when a > b. The shorter operand is padded with zeros.
func Compare(a, b string) int {
	sa, sb := Segments(a), Segments(b)

	n := max(len(sa), len(sb))
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(sa) {
			x = sa[i]
		}
		if i < len(sb) {
			y = sb[i]
		}
		if d := x - y; d != 0 {
			return d
		}
	}
	return 0
}

// IsSequentialUpdate reports whether target is reachable from current by
// incrementing exactly one segment and resetting every later segment to 0.
//
// The candidate is matched against target as a string, so both versions must
// have the same number of segments: "1.2" -> "1.3.0" is not sequential.
func IsSequentialUpdate(current, target string) bool {
	segs := Segments(current)
	for i := range segs {
		if render(bump(segs, i)) == target {
			return true
		}
	}
	return false
}

// bump returns a copy of segs with segs[i] incremented and the tail zeroed.
func bump(segs []int, i int) []int {
	out := make([]int, len(segs))
	copy(out, segs[:i])
	out[i] = segs[i] + 1
	return out
}

func render(segs []int) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ".")
}
