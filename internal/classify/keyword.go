// Package classify assigns a disease category to each vignette. Two
// strategies exist: keyword matching over the stem, and diagnosis-based
// matching over the answer text with the stem as fallback context.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"vigprep/internal/corpus"
)

// Other is the bucket for records matching no configured category.
const Other = "other"

// Category is one keyword-scored disease category.
type Category struct {
	Name     string
	Weight   float64
	Keywords []string
}

// Classifier scores stems against an ordered category table. The order of
// the table is the tie-break priority: when two categories score equally,
// the one listed first wins. Classification depends only on the stem, so
// re-running it always yields the same label.
type Classifier struct {
	categories []Category
}

// NewKeyword validates the category table and builds a classifier.
func NewKeyword(categories []Category) (*Classifier, error) {
	if len(categories) == 0 {
		return nil, errors.New("category table is empty")
	}
	seen := map[string]struct{}{}
	for i, category := range categories {
		if strings.TrimSpace(category.Name) == "" {
			return nil, fmt.Errorf("categories[%d]: name is required", i)
		}
		if category.Name == Other {
			return nil, fmt.Errorf("categories[%d]: %q is reserved for unmatched records", i, Other)
		}
		if _, exists := seen[category.Name]; exists {
			return nil, fmt.Errorf("categories[%d]: duplicate name %q", i, category.Name)
		}
		seen[category.Name] = struct{}{}
		if len(category.Keywords) == 0 {
			return nil, fmt.Errorf("categories[%d]: keyword set is empty", i)
		}
		if category.Weight <= 0 {
			return nil, fmt.Errorf("categories[%d]: weight must be > 0", i)
		}
	}
	return &Classifier{categories: categories}, nil
}

// Classify returns the category label for a stem.
func (c *Classifier) Classify(stem string) string {
	lower := strings.ToLower(stem)
	best := Other
	bestScore := 0.0
	for _, category := range c.categories {
		matches := 0
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				matches++
			}
		}
		score := float64(matches) * category.Weight
		// Strictly greater: on a tie the earlier category keeps the slot.
		if score > bestScore {
			best = category.Name
			bestScore = score
		}
	}
	return best
}

// Assign returns new records with categories filled in; inputs are left
// untouched.
func (c *Classifier) Assign(records []corpus.Record) []corpus.Record {
	out := make([]corpus.Record, 0, len(records))
	for _, record := range records {
		clone := record.Clone()
		clone.Category = c.Classify(record.Stem)
		out = append(out, clone)
	}
	return out
}
