package config

import "vigprep/internal/spec"

// Normalize fills omitted sections with the built-in defaults. A config
// that sets none of the tuning sections gets the stock pipeline.
func Normalize(cfg *spec.Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if cfg.TargetTotal == 0 {
		cfg.TargetTotal = DefaultTargetTotal
	}
	if cfg.StemLength.Min == 0 && cfg.StemLength.Max == 0 {
		cfg.StemLength = spec.LengthBounds{Min: DefaultMinStemLength, Max: DefaultMaxStemLength}
	}
	if len(cfg.ExclusionKeywords) == 0 {
		cfg.ExclusionKeywords = DefaultExclusionKeywords()
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}
	if len(cfg.Quotas) == 0 {
		cfg.Quotas = DefaultQuotas()
	}
}
