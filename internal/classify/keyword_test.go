package classify

import (
	"testing"

	"vigprep/internal/corpus"
)

func testCategories() []Category {
	return []Category{
		{Name: "infectious", Weight: 1.5, Keywords: []string{"fever", "infection", "pneumonia"}},
		{Name: "diabetes", Weight: 1.3, Keywords: []string{"diabetes", "glucose", "insulin"}},
		{Name: "cardiovascular", Weight: 1.2, Keywords: []string{"heart", "chest pain", "hypertension"}},
	}
}

// TestClassifyScoring verifies weighted scoring and the other bucket.
func TestClassifyScoring(t *testing.T) {
	c, err := NewKeyword(testCategories())
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	cases := []struct {
		name string
		stem string
		want string
	}{
		{"single match", "The patient has a fever.", "infectious"},
		{"case insensitive", "FEVER and chills", "infectious"},
		{"more matches win", "Glucose and insulin levels suggest diabetes despite the fever.", "diabetes"},
		{"no match", "Which enzyme catalyzes glycolysis?", Other},
		{"empty stem", "", Other},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Classify(tc.stem); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// TestClassifyTieBreak verifies that equal scores go to the category
// listed first, never to map order or the later entry.
func TestClassifyTieBreak(t *testing.T) {
	categories := []Category{
		{Name: "alpha", Weight: 1.0, Keywords: []string{"shared"}},
		{Name: "beta", Weight: 1.0, Keywords: []string{"shared"}},
	}
	c, err := NewKeyword(categories)
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	for i := 0; i < 50; i++ {
		if got := c.Classify("a shared keyword"); got != "alpha" {
			t.Fatalf("iteration %d: got %q, want alpha", i, got)
		}
	}
}

// TestClassifyDeterministic verifies repeated classification is stable.
func TestClassifyDeterministic(t *testing.T) {
	c, err := NewKeyword(testCategories())
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	stem := "A patient with fever, chest pain, and elevated glucose."
	first := c.Classify(stem)
	for i := 0; i < 20; i++ {
		if got := c.Classify(stem); got != first {
			t.Fatalf("classification changed from %q to %q", first, got)
		}
	}
}

// TestAssignDoesNotMutate verifies inputs are cloned, not relabeled.
func TestAssignDoesNotMutate(t *testing.T) {
	c, err := NewKeyword(testCategories())
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	input := []corpus.Record{{ID: "r1", Stem: "fever", Options: []string{"A"}}}
	out := c.Assign(input)
	if input[0].Category != "" {
		t.Fatalf("input was mutated: %q", input[0].Category)
	}
	if out[0].Category != "infectious" {
		t.Fatalf("unexpected category %q", out[0].Category)
	}
	out[0].Options[0] = "changed"
	if input[0].Options[0] != "A" {
		t.Fatalf("options alias the input")
	}
}

// TestNewKeywordValidation verifies the category table checks.
func TestNewKeywordValidation(t *testing.T) {
	cases := []struct {
		name       string
		categories []Category
	}{
		{"empty table", nil},
		{"blank name", []Category{{Name: " ", Weight: 1, Keywords: []string{"x"}}}},
		{"reserved other", []Category{{Name: Other, Weight: 1, Keywords: []string{"x"}}}},
		{"duplicate", []Category{
			{Name: "a", Weight: 1, Keywords: []string{"x"}},
			{Name: "a", Weight: 1, Keywords: []string{"y"}},
		}},
		{"no keywords", []Category{{Name: "a", Weight: 1}}},
		{"zero weight", []Category{{Name: "a", Weight: 0, Keywords: []string{"x"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewKeyword(tc.categories); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
