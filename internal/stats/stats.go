// Package stats holds the small descriptive-statistics helpers shared by
// the explore and quality stages.
package stats

import "sort"

// LengthSummary describes a distribution of stem lengths.
type LengthSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median int     `json:"median"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	P25    int     `json:"p25"`
	P75    int     `json:"p75"`
}

// Summarize computes the length summary for a set of values. Percentiles
// use the plain index convention sorted[len*p/100].
func Summarize(values []int) LengthSummary {
	if len(values) == 0 {
		return LengthSummary{}
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	total := 0
	for _, v := range sorted {
		total += v
	}
	return LengthSummary{
		Count:  len(sorted),
		Mean:   float64(total) / float64(len(sorted)),
		Median: sorted[len(sorted)/2],
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P25:    sorted[len(sorted)/4],
		P75:    sorted[3*len(sorted)/4],
	}
}
