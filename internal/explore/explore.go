// Package explore computes descriptive statistics over a raw corpus:
// length distribution, estimated vignette share, demographic mentions,
// category breakdown, and option shape. It never mutates records.
package explore

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"vigprep/internal/classify"
	"vigprep/internal/corpus"
	"vigprep/internal/stats"
)

// AgeSummary describes the ages extractable from the stems.
type AgeSummary struct {
	WithAge int            `json:"with_age"`
	Mean    float64        `json:"mean"`
	Min     int            `json:"min"`
	Max     int            `json:"max"`
	Buckets map[string]int `json:"buckets"`
}

// Summary is the full exploration result for one corpus.
type Summary struct {
	Total          int                 `json:"total"`
	Lengths        stats.LengthSummary `json:"lengths"`
	Vignettes      int                 `json:"vignettes"`
	MaleMentions   int                 `json:"male_mentions"`
	FemaleMentions int                 `json:"female_mentions"`
	Ages           AgeSummary          `json:"ages"`
	Categories     map[string]int      `json:"categories"`
	OptionCounts   map[int]int         `json:"option_counts"`
}

var (
	agePattern = regexp.MustCompile(`(\d+)-year-old`)

	// Loose vignette indicators for the estimate; the filter applies a
	// stricter weighted test.
	vignetteIndicators = []*regexp.Regexp{
		regexp.MustCompile(`\d+-year-old`),
		regexp.MustCompile(`\bpatient\b`),
		regexp.MustCompile(`\bpresents?\b`),
		regexp.MustCompile(`history of`),
		regexp.MustCompile(`physical examination`),
	}

	malePatterns   = compileAll(`\bman\b`, `\bmale\b`, `\bhe\b`, `\bhis\b`, `\bhim\b`)
	femalePatterns = compileAll(`\bwoman\b`, `\bfemale\b`, `\bshe\b`, `\bher\b`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		out = append(out, regexp.MustCompile(pattern))
	}
	return out
}

// Analyze summarizes records using the classifier for the category
// breakdown.
func Analyze(records []corpus.Record, classifier *classify.Classifier) Summary {
	summary := Summary{
		Total:        len(records),
		Categories:   map[string]int{},
		OptionCounts: map[int]int{},
	}
	summary.Ages.Buckets = map[string]int{}

	lengths := make([]int, 0, len(records))
	ageSum, ageCount := 0, 0
	for _, record := range records {
		lengths = append(lengths, utf8.RuneCountInString(record.Stem))
		lower := strings.ToLower(record.Stem)

		indicators := 0
		for _, re := range vignetteIndicators {
			if re.MatchString(lower) {
				indicators++
			}
		}
		if indicators >= 2 {
			summary.Vignettes++
		}

		if matchesAny(lower, malePatterns) {
			summary.MaleMentions++
		}
		if matchesAny(lower, femalePatterns) {
			summary.FemaleMentions++
		}

		if age, ok := extractAge(lower); ok {
			ageCount++
			ageSum += age
			if summary.Ages.WithAge == 0 || age < summary.Ages.Min {
				summary.Ages.Min = age
			}
			if age > summary.Ages.Max {
				summary.Ages.Max = age
			}
			summary.Ages.WithAge = ageCount
			summary.Ages.Buckets[ageBucket(age)]++
		}

		summary.Categories[classifier.Classify(record.Stem)]++
		summary.OptionCounts[len(record.Options)]++
	}
	summary.Lengths = stats.Summarize(lengths)
	if ageCount > 0 {
		summary.Ages.Mean = float64(ageSum) / float64(ageCount)
	}
	return summary
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func ageBucket(age int) string {
	switch {
	case age <= 18:
		return "pediatric"
	case age <= 40:
		return "young_adult"
	case age <= 65:
		return "middle_age"
	default:
		return "elderly"
	}
}

func extractAge(stem string) (int, bool) {
	match := agePattern.FindStringSubmatch(stem)
	if match == nil {
		return 0, false
	}
	age, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return age, true
}

// Render writes the summary as a plain-text report.
func Render(w io.Writer, summary Summary) {
	fmt.Fprintf(w, "Total records: %d\n", summary.Total)
	fmt.Fprintf(w, "Estimated clinical vignettes: %d (%s)\n",
		summary.Vignettes, percent(summary.Vignettes, summary.Total))

	fmt.Fprintf(w, "\nStem length (characters):\n")
	fmt.Fprintf(w, "  mean %.0f  median %d  min %d  max %d  p25 %d  p75 %d\n",
		summary.Lengths.Mean, summary.Lengths.Median,
		summary.Lengths.Min, summary.Lengths.Max,
		summary.Lengths.P25, summary.Lengths.P75)

	fmt.Fprintf(w, "\nGender mentions:\n")
	fmt.Fprintf(w, "  male indicators:   %d (%s)\n", summary.MaleMentions, percent(summary.MaleMentions, summary.Total))
	fmt.Fprintf(w, "  female indicators: %d (%s)\n", summary.FemaleMentions, percent(summary.FemaleMentions, summary.Total))

	if summary.Ages.WithAge > 0 {
		fmt.Fprintf(w, "\nAges:\n")
		fmt.Fprintf(w, "  records with age: %d (%s)\n", summary.Ages.WithAge, percent(summary.Ages.WithAge, summary.Total))
		fmt.Fprintf(w, "  mean %.1f  range %d-%d\n", summary.Ages.Mean, summary.Ages.Min, summary.Ages.Max)
		for _, bucket := range []string{"pediatric", "young_adult", "middle_age", "elderly"} {
			if count, ok := summary.Ages.Buckets[bucket]; ok {
				fmt.Fprintf(w, "  %-12s %d (%s)\n", bucket, count, percent(count, summary.Ages.WithAge))
			}
		}
	}

	fmt.Fprintf(w, "\nCategories:\n")
	for _, name := range sortedByCount(summary.Categories) {
		fmt.Fprintf(w, "  %-16s %d (%s)\n", name, summary.Categories[name], percent(summary.Categories[name], summary.Total))
	}

	fmt.Fprintf(w, "\nOption counts:\n")
	counts := make([]int, 0, len(summary.OptionCounts))
	for n := range summary.OptionCounts {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		fmt.Fprintf(w, "  %d options: %d records\n", n, summary.OptionCounts[n])
	}
}

// sortedByCount orders names by descending count, ties alphabetically.
func sortedByCount(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func percent(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}
