package config

import (
	"vigprep/internal/classify"
	"vigprep/internal/filter"
	"vigprep/internal/sample"
	"vigprep/internal/spec"
)

// FilterOptions maps a validated config onto the filter settings.
func FilterOptions(cfg spec.Config) filter.Options {
	return filter.Options{
		MinStemLength: cfg.StemLength.Min,
		MaxStemLength: cfg.StemLength.Max,
		Exclusion:     cfg.ExclusionKeywords,
	}
}

// Categories maps the config's ordered category table onto the classifier
// table, preserving priority order.
func Categories(cfg spec.Config) []classify.Category {
	out := make([]classify.Category, 0, len(cfg.Categories))
	for _, category := range cfg.Categories {
		out = append(out, classify.Category{
			Name:     category.Name,
			Weight:   category.Weight,
			Keywords: category.Keywords,
		})
	}
	return out
}

// Quota maps the config's quota table onto the selector's quota type.
func Quota(cfg spec.Config) sample.Quota {
	out := make(sample.Quota, len(cfg.Quotas))
	for category, count := range cfg.Quotas {
		out[category] = count
	}
	return out
}
