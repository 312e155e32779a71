package config

import "vigprep/internal/spec"

// Default pipeline parameters, applied by Normalize for omitted sections.
const (
	DefaultSeed          = 42
	DefaultTargetTotal   = 500
	DefaultMinStemLength = 150
	DefaultMaxStemLength = 2000
)

// DefaultExclusionKeywords is the demographic block-list: sex- and
// pregnancy-specific clinical markers that disqualify a vignette. It is
// deliberately coarse; only the listed patterns are ever matched.
func DefaultExclusionKeywords() []string {
	return []string{
		`\bpregnancy\b`, `\bpregnant\b`, `\bmaternal\b`,
		`\bmenstruation\b`, `\bmenstrual\b`, `\bmenopause\b`,
		`\bprostate\b`, `\btesticular\b`, `\bspermatogenesis\b`,
		`\bovarian\b`, `\bovary\b`, `\buterine\b`, `\buterus\b`,
		`\bcervical cancer\b`, `\bcervix\b`, `\bvaginal\b`,
		`\blabor and delivery\b`, `\bchildbirth\b`,
		`\bobstetric\b`, `\bgynecolog`, `\bbreast feeding\b`,
		`\bamenorrhea\b`, `\bendometrio`,
	}
}

// DefaultCategories is the built-in keyword table. List order is the
// classifier's tie-break priority.
func DefaultCategories() []spec.CategoryConfig {
	return []spec.CategoryConfig{
		{
			Name:   "infectious",
			Weight: 1.5,
			Keywords: []string{
				"fever", "infection", "viral", "bacterial", "tuberculosis",
				"sepsis", "pneumonia", "meningitis", "dengue", "malaria",
				"hiv", "hepatitis", "abscess",
			},
		},
		{
			Name:   "diabetes",
			Weight: 1.3,
			Keywords: []string{
				"diabetes", "glucose", "insulin", "hyperglycemia",
				"hypoglycemia", "diabetic", "blood sugar", "hemoglobin a1c",
			},
		},
		{
			Name:   "cardiovascular",
			Weight: 1.2,
			Keywords: []string{
				"heart", "cardiac", "hypertension", "blood pressure",
				"myocardial", "arrhythmia", "chest pain", "angina",
				"coronary", "heart failure",
			},
		},
		{
			Name:   "respiratory",
			Weight: 1.2,
			Keywords: []string{
				"respiratory", "breathing", "dyspnea", "cough", "asthma",
				"copd", "pulmonary", "bronchitis", "lung",
			},
		},
	}
}

// DefaultQuotas is the per-category target table; it sums to
// DefaultTargetTotal and includes the explicit "other" bucket.
func DefaultQuotas() map[string]int {
	return map[string]int{
		"infectious":     150,
		"diabetes":       100,
		"cardiovascular": 100,
		"respiratory":    75,
		"other":          75,
	}
}
