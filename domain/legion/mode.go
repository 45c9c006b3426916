package legion

// modeOf returns the most frequent non-empty value. Ties go to the value seen
// first in input order, which keeps every mode in the pipeline deterministic.
// ok is false when no non-empty values exist.
func modeOf(values []string) (best string, ok bool) {
	type tally struct {
		count int
		first int
	}
	counts := map[string]*tally{}
	for i, v := range values {
		if v == "" {
			continue
		}
		if t, seen := counts[v]; seen {
			t.count++
		} else {
			counts[v] = &tally{count: 1, first: i}
		}
	}
	for v, t := range counts {
		if !ok ||
			t.count > counts[best].count ||
			(t.count == counts[best].count && t.first < counts[best].first) {
			best, ok = v, true
		}
	}
	return best, ok
}
