// Package natsort compares strings in natural order, where runs of decimal
// digits embedded in the strings are compared by numeric value rather than
// character by character, so "track2" sorts before "track10".
package natsort

import "strings"

// Compare returns -1, 0, or 1 ordering a against b.
//
// If both strings contain at least one digit run, only the digit runs decide
// the ordering: runs are compared pairwise by numeric value, and when one
// sequence of runs is a prefix of the other, the shorter sequence sorts
// first. If either string has no digits at all, the comparison falls back to
// plain lexicographic order of the full strings.
func Compare(a, b string) int {
	runsA, runsB := digitRuns(a), digitRuns(b)
	if len(runsA) == 0 || len(runsB) == 0 {
		return strings.Compare(a, b)
	}
	for i := 0; i < len(runsA) && i < len(runsB); i++ {
		if c := compareRun(runsA[i], runsB[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(runsA) < len(runsB):
		return -1
	case len(runsA) > len(runsB):
		return 1
	}
	return 0
}

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// StemCompare orders two file names by their stems, the extensions ignored,
// so "9.mp3" sorts before "10.ogg".
func StemCompare(a, b string) int {
	return Compare(stem(a), stem(b))
}

func stem(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// digitRuns returns the maximal runs of decimal digits in s, in order.
func digitRuns(s string) []string {
	var runs []string
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, s[start:])
	}
	return runs
}

// compareRun compares two digit runs numerically without parsing them into
// machine integers, so arbitrarily long runs cannot overflow. Leading zeros
// are insignificant: "010" equals "10".
func compareRun(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
