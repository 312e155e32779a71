package corpus

// Record is a single exam question. Records are read-only once loaded;
// every pipeline stage that changes anything returns new records.
type Record struct {
	ID        string   `json:"id" yaml:"id"`
	Stem      string   `json:"question" yaml:"question"`
	Options   []string `json:"options" yaml:"options"`
	Answer    string   `json:"answer,omitempty" yaml:"answer,omitempty"`
	AnswerIdx int      `json:"answer_idx" yaml:"answer_idx"`
	Category  string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// Dataset is the canonical on-disk form for filtered and selected sets.
type Dataset struct {
	Version int      `json:"version" yaml:"version"`
	Records []Record `json:"records" yaml:"records"`
}

// Clone returns a copy of the record with its own options slice.
func (r Record) Clone() Record {
	out := r
	if r.Options != nil {
		out.Options = append([]string(nil), r.Options...)
	}
	return out
}
