// Package sample draws the stratified selection from the filtered,
// categorized corpus. All randomness is driven by a caller-supplied seed
// so repeated runs over the same input produce identical selections.
package sample

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"vigprep/internal/corpus"
)

// Quota maps category names to target counts.
type Quota map[string]int

// Total returns the summed target across all categories.
func (q Quota) Total() int {
	total := 0
	for _, n := range q {
		total += n
	}
	return total
}

// Shortfall reports a category with fewer qualifying records than its
// quota. Shortfalls are surfaced, never silently redistributed.
type Shortfall struct {
	Category  string `json:"category"`
	Target    int    `json:"target"`
	Available int    `json:"available"`
}

// Selection is the result of a stratified draw.
type Selection struct {
	Records    []corpus.Record
	Counts     map[string]int
	Shortfalls []Shortfall
}

// Select samples min(quota[c], available[c]) records per category,
// uniformly without replacement. Categories are visited in sorted name
// order and each category draws from its own seed-derived RNG stream, so
// no category's draw depends on another's. When a category's quota equals
// or exceeds what is available, every record is taken and the RNG is not
// consulted, making the result seed-independent in that case.
func Select(records []corpus.Record, quota Quota, seed int64) (Selection, error) {
	if len(quota) == 0 {
		return Selection{}, errors.New("quota table is empty")
	}
	if len(records) == 0 {
		return Selection{}, errors.New("no records to select from")
	}

	byCategory := map[string][]corpus.Record{}
	for _, record := range records {
		byCategory[record.Category] = append(byCategory[record.Category], record)
	}

	categories := make([]string, 0, len(quota))
	for category := range quota {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	selection := Selection{Counts: map[string]int{}}
	for _, category := range categories {
		target := quota[category]
		available := byCategory[category]
		taken := drawWithoutReplacement(available, target, rngFor(seed, category))
		if len(available) < target {
			selection.Shortfalls = append(selection.Shortfalls, Shortfall{
				Category:  category,
				Target:    target,
				Available: len(available),
			})
		}
		selection.Records = append(selection.Records, taken...)
		selection.Counts[category] = len(taken)
	}

	// The final order is shuffled so categories do not arrive in blocks;
	// the shuffle stream is seed-derived and therefore reproducible.
	shuffle := rngFor(seed, "shuffle")
	shuffle.Shuffle(len(selection.Records), func(i, j int) {
		selection.Records[i], selection.Records[j] = selection.Records[j], selection.Records[i]
	})
	return selection, nil
}

// drawWithoutReplacement samples n records uniformly. Asking for at least
// as many records as exist returns them all in input order without
// touching the RNG.
func drawWithoutReplacement(records []corpus.Record, n int, rng *rand.Rand) []corpus.Record {
	if n <= 0 {
		return nil
	}
	if n >= len(records) {
		return append([]corpus.Record(nil), records...)
	}
	perm := rng.Perm(len(records))
	out := make([]corpus.Record, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, records[idx])
	}
	return out
}

// rngFor derives an independent RNG stream from the run seed and a label.
func rngFor(seed int64, label string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(label))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64())))
}

// AssignIDs returns new records with sequential dataset IDs. Inputs are
// never mutated.
func AssignIDs(records []corpus.Record, prefix string) []corpus.Record {
	out := make([]corpus.Record, 0, len(records))
	for i, record := range records {
		clone := record.Clone()
		clone.ID = fmt.Sprintf("%s-%04d", prefix, i+1)
		out = append(out, clone)
	}
	return out
}
