package classify

import (
	"errors"
	"fmt"
	"strings"

	"vigprep/internal/corpus"
)

const (
	primaryWeight   = 3.0
	secondaryWeight = 0.5
)

// DiagnosisCategory scores a category from diagnostic terms. Primary terms
// are disease names and treatments that identify the category outright;
// secondary terms are symptoms consulted only when no primary term hits.
type DiagnosisCategory struct {
	Name      string
	Primary   []string
	Secondary []string
}

// DiagnosisClassifier categorizes a record from its answer (the diagnosis)
// combined with the stem. Table order is the tie-break priority.
type DiagnosisClassifier struct {
	categories []DiagnosisCategory
}

// NewDiagnosis validates the table and builds a diagnosis classifier.
func NewDiagnosis(categories []DiagnosisCategory) (*DiagnosisClassifier, error) {
	if len(categories) == 0 {
		return nil, errors.New("diagnosis table is empty")
	}
	seen := map[string]struct{}{}
	for i, category := range categories {
		if strings.TrimSpace(category.Name) == "" {
			return nil, fmt.Errorf("diagnosis[%d]: name is required", i)
		}
		if _, exists := seen[category.Name]; exists {
			return nil, fmt.Errorf("diagnosis[%d]: duplicate name %q", i, category.Name)
		}
		seen[category.Name] = struct{}{}
		if len(category.Primary) == 0 && len(category.Secondary) == 0 {
			return nil, fmt.Errorf("diagnosis[%d]: no terms configured", i)
		}
	}
	return &DiagnosisClassifier{categories: categories}, nil
}

// Classify returns the category for an answer/stem pair.
func (c *DiagnosisClassifier) Classify(answer, stem string) string {
	combined := strings.ToLower(answer + " " + stem)
	best := Other
	bestScore := 0.0
	for _, category := range c.categories {
		score := 0.0
		for _, term := range category.Primary {
			if strings.Contains(combined, term) {
				score += primaryWeight
			}
		}
		if score == 0 {
			for _, term := range category.Secondary {
				if strings.Contains(combined, term) {
					score += secondaryWeight
				}
			}
		}
		if score > bestScore {
			best = category.Name
			bestScore = score
		}
	}
	return best
}

// Reassign returns new records relabeled by diagnosis, plus the list of
// records whose category changed.
func (c *DiagnosisClassifier) Reassign(records []corpus.Record) ([]corpus.Record, []Change) {
	out := make([]corpus.Record, 0, len(records))
	var changes []Change
	for _, record := range records {
		clone := record.Clone()
		clone.Category = c.Classify(record.Answer, record.Stem)
		if clone.Category != record.Category {
			changes = append(changes, Change{
				ID:  record.ID,
				Old: record.Category,
				New: clone.Category,
			})
		}
		out = append(out, clone)
	}
	return out, changes
}

// Change records a single category relabeling.
type Change struct {
	ID  string `json:"id"`
	Old string `json:"old"`
	New string `json:"new"`
}
