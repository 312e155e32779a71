// Package filter keeps the corpus records that read like clinical
// vignettes: a patient presentation with exactly four answer options,
// demographically neutral wording, and a stem of sensible length.
package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"vigprep/internal/corpus"
)

// ErrEmptyCorpus is returned when the input collection has no records.
var ErrEmptyCorpus = errors.New("corpus is empty")

// requiredOptions is the option count every survivor must have.
const requiredOptions = 4

// signalThreshold is the minimum weighted vignette-signal score.
const signalThreshold = 4

// signalPattern is one weighted indicator of a patient presentation.
type signalPattern struct {
	re     *regexp.Regexp
	weight int
}

// vignetteSignals are the patient-presentation indicators. A stem must
// accumulate at least signalThreshold points to count as a vignette.
var vignetteSignals = []signalPattern{
	{regexp.MustCompile(`\d+-year-old`), 2},
	{regexp.MustCompile(`\bpatient\b`), 1},
	{regexp.MustCompile(`\bpresents?\b|\bpresenting\b`), 2},
	{regexp.MustCompile(`comes? to (the )?(clinic|emergency|hospital|office)`), 1},
	{regexp.MustCompile(`history of`), 1},
	{regexp.MustCompile(`physical examination|examination shows|examination reveals`), 1},
	{regexp.MustCompile(`vital signs?|temperature|blood pressure|pulse`), 1},
}

// Stats counts how records fared against each predicate. Counters are
// cumulative in predicate order, matching the reporting format of the
// filtering stage.
type Stats struct {
	Total              int `json:"total"`
	Incomplete         int `json:"incomplete"`
	ClinicalVignettes  int `json:"clinical_vignettes"`
	DemographicNeutral int `json:"demographic_neutral"`
	HasOptions         int `json:"has_options"`
	ReasonableLength   int `json:"reasonable_length"`
	Passed             int `json:"passed_all"`
}

// Options configures a Filter.
type Options struct {
	MinStemLength int
	MaxStemLength int
	// Exclusion holds the demographic block-list as regular expressions.
	Exclusion []string
}

// Filter applies the vignette predicates to record collections.
type Filter struct {
	minLen    int
	maxLen    int
	exclusion []*regexp.Regexp
}

// New compiles the block-list and validates the length bounds.
func New(opts Options) (*Filter, error) {
	if opts.MinStemLength <= 0 || opts.MaxStemLength < opts.MinStemLength {
		return nil, fmt.Errorf("invalid stem length bounds [%d, %d]", opts.MinStemLength, opts.MaxStemLength)
	}
	if len(opts.Exclusion) == 0 {
		return nil, errors.New("exclusion block-list is empty")
	}
	exclusion := make([]*regexp.Regexp, 0, len(opts.Exclusion))
	for _, pattern := range opts.Exclusion {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile exclusion pattern %q: %w", pattern, err)
		}
		exclusion = append(exclusion, re)
	}
	return &Filter{
		minLen:    opts.MinStemLength,
		maxLen:    opts.MaxStemLength,
		exclusion: exclusion,
	}, nil
}

// Apply returns the records that pass every predicate, in input order.
// Records with missing required fields are counted as incomplete and
// skipped; they never abort the run. An empty input is fatal.
func (f *Filter) Apply(records []corpus.Record) ([]corpus.Record, Stats, error) {
	if len(records) == 0 {
		return nil, Stats{}, ErrEmptyCorpus
	}
	stats := Stats{Total: len(records)}
	kept := make([]corpus.Record, 0, len(records))
	for _, record := range records {
		if !isComplete(record) {
			stats.Incomplete++
			continue
		}
		if !f.IsClinicalVignette(record.Stem) {
			continue
		}
		stats.ClinicalVignettes++
		if !f.IsDemographicNeutral(record.Stem) {
			continue
		}
		stats.DemographicNeutral++
		if !HasRequiredOptions(record) {
			continue
		}
		stats.HasOptions++
		if !f.StemLengthInRange(record.Stem) {
			continue
		}
		stats.ReasonableLength++
		kept = append(kept, record)
		stats.Passed++
	}
	return kept, stats, nil
}

// IsClinicalVignette reports whether a stem carries enough
// patient-presentation signal.
func (f *Filter) IsClinicalVignette(stem string) bool {
	lower := strings.ToLower(stem)
	score := 0
	for _, signal := range vignetteSignals {
		if signal.re.MatchString(lower) {
			score += signal.weight
		}
	}
	return score >= signalThreshold
}

// IsDemographicNeutral reports whether the stem avoids every block-list
// term. The block-list is fail-closed: it is a coarse textual filter, not
// a semantic classifier, and both over- and under-rejection are accepted.
func (f *Filter) IsDemographicNeutral(stem string) bool {
	lower := strings.ToLower(stem)
	for _, re := range f.exclusion {
		if re.MatchString(lower) {
			return false
		}
	}
	return true
}

// HasRequiredOptions reports whether the record has exactly four options.
func HasRequiredOptions(record corpus.Record) bool {
	return len(record.Options) == requiredOptions
}

// StemLengthInRange reports whether the stem length is within bounds,
// inclusive on both ends. Length is counted in characters, not bytes,
// so multibyte units like "°C" and "µg" count once.
func (f *Filter) StemLengthInRange(stem string) bool {
	length := utf8.RuneCountInString(stem)
	return length >= f.minLen && length <= f.maxLen
}

func isComplete(record corpus.Record) bool {
	return record.Stem != "" && len(record.Options) > 0
}
