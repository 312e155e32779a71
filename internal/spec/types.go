package spec

// Config is the pipeline configuration schema loaded from YAML.
type Config struct {
	Version           int              `yaml:"version"`
	OutputDir         string           `yaml:"output_dir"`
	Corpus            string           `yaml:"corpus"`
	Seed              int64            `yaml:"seed"`
	TargetTotal       int              `yaml:"target_total"`
	StemLength        LengthBounds     `yaml:"stem_length"`
	ExclusionKeywords []string         `yaml:"exclusion_keywords"`
	Categories        []CategoryConfig `yaml:"categories"`
	Quotas            map[string]int   `yaml:"quotas"`
}

// LengthBounds is the inclusive stem-length window survivors must fit.
type LengthBounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// CategoryConfig defines one disease category. The order of the
// categories list is the classifier's tie-break priority.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Weight   float64  `yaml:"weight"`
	Keywords []string `yaml:"keywords"`
}
