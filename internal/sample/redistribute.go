package sample

import "vigprep/internal/corpus"

// Redistribute tops a selection up toward the target total using records
// that were filtered in but not selected. This is an explicit policy the
// caller opts into; Select never does it on its own, because topping up
// changes the stratification ratios. The draw is uniform over the unused
// pool and reproducible for a given seed.
func Redistribute(all []corpus.Record, selection Selection, target int, seed int64) Selection {
	missing := target - len(selection.Records)
	if missing <= 0 {
		return selection
	}

	used := make(map[string]struct{}, len(selection.Records))
	for _, record := range selection.Records {
		used[record.ID] = struct{}{}
	}
	var unused []corpus.Record
	for _, record := range all {
		if _, ok := used[record.ID]; !ok {
			unused = append(unused, record)
		}
	}

	extra := drawWithoutReplacement(unused, missing, rngFor(seed, "redistribute"))
	out := Selection{
		Records:    append(append([]corpus.Record(nil), selection.Records...), extra...),
		Counts:     make(map[string]int, len(selection.Counts)),
		Shortfalls: selection.Shortfalls,
	}
	for category, count := range selection.Counts {
		out.Counts[category] = count
	}
	for _, record := range extra {
		out.Counts[record.Category]++
	}
	return out
}
