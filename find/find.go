// Package find implements the incremental Boyer–Moore finder: a per-
// keystroke rebuild of the bad-character/good-suffix tables followed by
// a scan of every line of the current file, abortable mid-scan when a
// new keystroke arrives.
//
// Grounded line-for-line on original_source/editor.c's
// make_find_lookup/find/find_in_file (spec.md §4.7).
package find

// Match is one located occurrence of the search pattern.
type Match struct {
	X, Y int
}

// Tables holds the precomputed Boyer–Moore shift tables for one pattern.
type Tables struct {
	pattern   []byte
	badChar   [256]int
	goodSuffix []int // indexed 1..len(pattern)-1; index 0 unused
}

// Build computes the bad-character and good-suffix tables for pattern,
// per spec.md §4.7:
//
//	bad_char[c] = m for all c; then bad_char[P[i]] = m-i-1 for 0<=i<m
//	(last occurrence wins).
//	For 1<=i<m: good_suffix[i] is the smallest positive i-j such that
//	P[j..j+(m-i)] == P[i..m] and either j==0 or P[j-1] != P[i-1],
//	defaulting to 1.
func Build(pattern []byte) *Tables {
	m := len(pattern)
	t := &Tables{pattern: append([]byte(nil), pattern...), goodSuffix: make([]int, m)}

	for c := range t.badChar {
		t.badChar[c] = m
	}
	for i := 0; i < m; i++ {
		t.badChar[pattern[i]] = m - i - 1
	}

	for i := m - 1; i > 0; i-- {
		shift := 0
		for j := i - 1; j >= 0; j-- {
			if hasPrefixMatch(pattern, j, i, m-i) {
				if (j != 0 && pattern[j] != pattern[i-1]) || shift == 0 {
					shift = i - j
				}
			}
		}
		if shift == 0 {
			shift = 1
		}
		t.goodSuffix[i] = shift
	}

	return t
}

func hasPrefixMatch(p []byte, j, i, n int) bool {
	if j+n > len(p) || i+n > len(p) {
		return false
	}
	for k := 0; k < n; k++ {
		if p[j+k] != p[i+k] {
			return false
		}
	}
	return true
}

// Find scans data for every (possibly overlapping-by-one) occurrence of
// the pattern t was built from, returning the starting column of each
// match in ascending order.
func (t *Tables) Find(data []byte) []int {
	m := len(t.pattern)
	if m == 0 || m > len(data) {
		return nil
	}

	var matches []int
	dataIndex := m - 1
	for dataIndex < len(data) {
		tmp := dataIndex
		wordIndex := m - 1
		matchCount := 0

		for wordIndex >= 0 && t.pattern[wordIndex] == data[dataIndex] {
			wordIndex--
			dataIndex--
			matchCount++
		}

		if wordIndex < 0 {
			matches = append(matches, dataIndex+1)
			dataIndex += m + 1
			continue
		}

		var skip int
		if matchCount > 0 {
			skip = t.goodSuffix[matchCount]
		} else {
			skip = t.badChar[data[dataIndex]]
		}
		dataIndex = tmp + skip
	}

	return matches
}

// Line is the minimal view over a buffer line the finder needs: its
// byte content. Satisfied by *buffer.Line.
type Line interface {
	Bytes() []byte
}

// PendingChecker reports whether a new keystroke has arrived, used to
// abort an in-progress scan (spec.md §4.7, §5).
type PendingChecker interface {
	Pending() bool
}

// InFile scans every line of lines for pattern, returning the full
// match list and whether the scan was aborted partway through (in which
// case the returned match list is always empty, matching the original's
// "can't render nothing" discard-on-abort behavior). pending may be nil
// to disable abort checking (e.g. in tests).
func InFile(pattern []byte, lines []Line, pending PendingChecker) (matches []Match, aborted bool) {
	if len(pattern) == 0 {
		return nil, false
	}

	t := Build(pattern)
	for y, line := range lines {
		cols := t.Find(line.Bytes())
		for _, x := range cols {
			matches = append(matches, Match{X: x, Y: y})
		}
		if pending != nil && pending.Pending() {
			return nil, true
		}
	}
	return matches, false
}

// ClosestMatchIndex returns the index of the first match whose line is
// at or past savedCursorY, or 0 if none qualifies (the whole list wraps
// back to the top), matching find_in_file's "closest match to the
// current cursor" selection. Returns -1 if matches is empty.
func ClosestMatchIndex(matches []Match, savedCursorY int) int {
	if len(matches) == 0 {
		return -1
	}
	for i, m := range matches {
		if m.Y >= savedCursorY {
			return i
		}
	}
	return 0
}

// Cycle moves index by delta, wrapping within [0, count), per spec.md
// §4.7's up/down match navigation.
func Cycle(index, delta, count int) int {
	if count == 0 {
		return 0
	}
	index = (index + delta) % count
	if index < 0 {
		index += count
	}
	return index
}

// SkipJump is the ctrl-down "many matches" jump distance, per spec.md
// §4.7: `1 + matches/50`.
func SkipJump(matchCount int) int {
	return 1 + matchCount/50
}
