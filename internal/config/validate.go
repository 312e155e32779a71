package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"vigprep/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a config for correctness. Validation is fail-fast for
// the pipeline: a run never starts against a config that fails here.
func Validate(cfg *spec.Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		add("output_dir", "is required")
	}
	if cfg.TargetTotal <= 0 {
		add("target_total", "must be > 0")
	}
	if cfg.StemLength.Min <= 0 {
		add("stem_length.min", "must be > 0")
	}
	if cfg.StemLength.Max < cfg.StemLength.Min {
		add("stem_length.max", fmt.Sprintf("must be >= min (%d)", cfg.StemLength.Min))
	}

	if len(cfg.ExclusionKeywords) == 0 {
		add("exclusion_keywords", "must include at least one entry")
	}
	for i, pattern := range cfg.ExclusionKeywords {
		if strings.TrimSpace(pattern) == "" {
			add(fmt.Sprintf("exclusion_keywords[%d]", i), "is required")
			continue
		}
		if _, err := regexp.Compile(pattern); err != nil {
			add(fmt.Sprintf("exclusion_keywords[%d]", i), fmt.Sprintf("invalid pattern %q", pattern))
		}
	}

	categoryNames := map[string]struct{}{}
	if len(cfg.Categories) == 0 {
		add("categories", "at least one category is required")
	}
	for i, category := range cfg.Categories {
		fieldPrefix := fmt.Sprintf("categories[%d]", i)
		name := strings.TrimSpace(category.Name)
		if name == "" {
			add(fieldPrefix+".name", "is required")
		} else if name == "other" {
			add(fieldPrefix+".name", `"other" is reserved for unmatched records`)
		} else if _, exists := categoryNames[name]; exists {
			add("categories.name", fmt.Sprintf("duplicate name %q", name))
		} else {
			categoryNames[name] = struct{}{}
		}
		if category.Weight <= 0 {
			add(fieldPrefix+".weight", "must be > 0")
		}
		if len(category.Keywords) == 0 {
			add(fieldPrefix+".keywords", "must include at least one entry")
		}
		for keywordIndex, keyword := range category.Keywords {
			if strings.TrimSpace(keyword) == "" {
				add(fmt.Sprintf("%s.keywords[%d]", fieldPrefix, keywordIndex), "is required")
			}
		}
	}

	if len(cfg.Quotas) == 0 {
		add("quotas", "at least one quota is required")
	}
	quotaSum := 0
	quotaCategories := make([]string, 0, len(cfg.Quotas))
	for category := range cfg.Quotas {
		quotaCategories = append(quotaCategories, category)
	}
	sort.Strings(quotaCategories)
	for _, category := range quotaCategories {
		count := cfg.Quotas[category]
		if count <= 0 {
			add(fmt.Sprintf("quotas[%s]", category), "must be > 0")
		}
		if category != "other" {
			if _, ok := categoryNames[category]; !ok {
				add(fmt.Sprintf("quotas[%s]", category), "unknown category")
			}
		}
		quotaSum += count
	}
	if len(cfg.Quotas) > 0 && quotaSum != cfg.TargetTotal {
		add("quotas", fmt.Sprintf("sum %d does not match target_total %d", quotaSum, cfg.TargetTotal))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
