// Package quality runs the descriptive acceptance checks over a selected
// dataset. Evaluation is read-only: the only outputs are the report and
// the overall pass signal.
package quality

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"vigprep/internal/corpus"
	"vigprep/internal/sample"
	"vigprep/internal/stats"
)

// maxDetailLines caps the issue lines carried per check.
const maxDetailLines = 10

// Check is one named validation with its verdict.
type Check struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Details []string `json:"details,omitempty"`
}

// Report aggregates all checks plus the diagnostics that back them.
type Report struct {
	Total          int                 `json:"total"`
	Checks         []Check             `json:"checks"`
	Lengths        stats.LengthSummary `json:"lengths"`
	CategoryCounts map[string]int      `json:"category_counts"`
	AgeBuckets     map[string]int      `json:"age_buckets,omitempty"`
	Passed         bool                `json:"passed"`
}

// Params carries the expectations the checks are measured against.
type Params struct {
	MinStemLength int
	MaxStemLength int
	Quota         sample.Quota
	Shortfalls    []sample.Shortfall
}

var agePattern = regexp.MustCompile(`(\d+)-year-old`)

// Evaluate runs every check and returns the report. Checks are
// independent; one failing never stops the others.
func Evaluate(records []corpus.Record, params Params) Report {
	report := Report{
		Total:          len(records),
		CategoryCounts: countCategories(records),
	}
	report.Lengths = stats.Summarize(stemLengths(records))
	report.AgeBuckets = countAgeBuckets(records)

	report.Checks = []Check{
		checkCompleteness(records),
		checkLengths(records, params),
		checkCategories(report.CategoryCounts, params),
		checkDiversity(records),
		checkIDUniqueness(records),
		checkStructure(records),
	}

	report.Passed = true
	for _, check := range report.Checks {
		if !check.Passed {
			report.Passed = false
			break
		}
	}
	return report
}

// checkCompleteness verifies required fields: a stem, exactly four
// options, and an answer index pointing at one of them.
func checkCompleteness(records []corpus.Record) Check {
	check := Check{Name: "completeness", Passed: true}
	for _, record := range records {
		id := record.ID
		if id == "" {
			id = "UNKNOWN"
			check.fail(fmt.Sprintf("%s: missing id", id))
		}
		if strings.TrimSpace(record.Stem) == "" {
			check.fail(fmt.Sprintf("%s: empty question", id))
		}
		if len(record.Options) != 4 {
			check.fail(fmt.Sprintf("%s: not exactly 4 options (%d found)", id, len(record.Options)))
		}
		if record.AnswerIdx < 0 || record.AnswerIdx >= len(record.Options) {
			check.fail(fmt.Sprintf("%s: answer index %d out of range", id, record.AnswerIdx))
		}
	}
	return check
}

// checkLengths verifies every stem is within bounds. Lengths are
// counted in characters so multibyte units match the filter's arithmetic.
func checkLengths(records []corpus.Record, params Params) Check {
	check := Check{Name: "length_distribution", Passed: true}
	for _, record := range records {
		length := utf8.RuneCountInString(record.Stem)
		if length < params.MinStemLength {
			check.fail(fmt.Sprintf("%s: %d chars, below %d", record.ID, length, params.MinStemLength))
		} else if length > params.MaxStemLength {
			check.fail(fmt.Sprintf("%s: %d chars, above %d", record.ID, length, params.MaxStemLength))
		}
	}
	return check
}

// checkCategories compares observed per-category counts against the quota,
// discounted by the reported shortfalls. Counts above the expected floor
// are tolerated, since explicit redistribution tops categories up.
func checkCategories(observed map[string]int, params Params) Check {
	check := Check{Name: "category_distribution", Passed: true}
	if len(params.Quota) == 0 {
		return check
	}
	shortfallByCategory := map[string]int{}
	for _, shortfall := range params.Shortfalls {
		shortfallByCategory[shortfall.Category] = shortfall.Target - shortfall.Available
	}

	categories := make([]string, 0, len(params.Quota))
	for category := range params.Quota {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	total := 0
	for _, count := range observed {
		total += count
	}
	if total > params.Quota.Total() {
		check.fail(fmt.Sprintf("selection has %d records, above the %d target", total, params.Quota.Total()))
	}
	for _, category := range categories {
		expected := params.Quota[category] - shortfallByCategory[category]
		if observed[category] < expected {
			check.fail(fmt.Sprintf("%s: %d selected, expected %d", category, observed[category], expected))
		}
	}
	return check
}

// checkDiversity rejects duplicate stems and a selection whose extracted
// ages all fall into a single decade bucket.
func checkDiversity(records []corpus.Record) Check {
	check := Check{Name: "diversity", Passed: true}
	seen := map[string]string{}
	for _, record := range records {
		if prev, ok := seen[record.Stem]; ok {
			check.fail(fmt.Sprintf("%s: duplicate stem of %s", record.ID, prev))
			continue
		}
		seen[record.Stem] = record.ID
	}

	buckets := map[int]struct{}{}
	ages := 0
	for _, record := range records {
		age, ok := extractAge(record.Stem)
		if !ok {
			continue
		}
		ages++
		buckets[age/10] = struct{}{}
	}
	if ages >= 2 && len(buckets) < 2 {
		check.fail(fmt.Sprintf("all %d extractable ages fall into one decade bucket", ages))
	}
	return check
}

// checkIDUniqueness rejects duplicate record IDs.
func checkIDUniqueness(records []corpus.Record) Check {
	check := Check{Name: "id_uniqueness", Passed: true}
	seen := map[string]struct{}{}
	for _, record := range records {
		if _, ok := seen[record.ID]; ok {
			check.fail(fmt.Sprintf("duplicate id %q", record.ID))
			continue
		}
		seen[record.ID] = struct{}{}
	}
	return check
}

// structureElement is one expected vignette phrase family.
type structureElement struct {
	name string
	re   *regexp.Regexp
}

var structureElements = []structureElement{
	{"patient_mention", regexp.MustCompile(`\bpatient\b`)},
	{"age", agePattern},
	{"presentation", regexp.MustCompile(`\bpresents?\b|\bpresenting\b|\bcomes to\b`)},
	{"vital_signs", regexp.MustCompile(`temperature|blood pressure|pulse|heart rate|\bbp\b`)},
	{"physical_exam", regexp.MustCompile(`physical examination|examination shows|examination reveals|on examination`)},
}

// checkStructure measures how many records carry the usual vignette
// structure phrases. It is informational and always passes; low rates are
// reported in the details.
func checkStructure(records []corpus.Record) Check {
	check := Check{Name: "structure", Passed: true}
	if len(records) == 0 {
		return check
	}
	for _, element := range structureElements {
		count := 0
		for _, record := range records {
			if element.re.MatchString(strings.ToLower(record.Stem)) {
				count++
			}
		}
		rate := float64(count) / float64(len(records))
		if rate < 0.7 {
			check.Details = append(check.Details,
				fmt.Sprintf("%s present in %.1f%% of records", element.name, rate*100))
		}
	}
	return check
}

func (c *Check) fail(detail string) {
	c.Passed = false
	if len(c.Details) < maxDetailLines {
		c.Details = append(c.Details, detail)
	}
}

func countCategories(records []corpus.Record) map[string]int {
	counts := map[string]int{}
	for _, record := range records {
		counts[record.Category]++
	}
	return counts
}

func countAgeBuckets(records []corpus.Record) map[string]int {
	buckets := map[string]int{}
	for _, record := range records {
		age, ok := extractAge(record.Stem)
		if !ok {
			continue
		}
		switch {
		case age <= 18:
			buckets["pediatric"]++
		case age <= 40:
			buckets["young_adult"]++
		case age <= 65:
			buckets["middle_age"]++
		default:
			buckets["elderly"]++
		}
	}
	return buckets
}

func stemLengths(records []corpus.Record) []int {
	lengths := make([]int, 0, len(records))
	for _, record := range records {
		lengths = append(lengths, utf8.RuneCountInString(record.Stem))
	}
	return lengths
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
