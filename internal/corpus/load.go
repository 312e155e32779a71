package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDataset reads, parses, and normalizes a canonical dataset file.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := parseDataset(data, path)
	if err != nil {
		return Dataset{}, err
	}
	return NormalizeDataset(ds)
}

func parseDataset(data []byte, path string) (Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONDataset(data)
	}
	return parseYAMLDataset(data)
}

func parseJSONDataset(data []byte) (Dataset, error) {
	var ds Dataset
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Dataset{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Dataset{}, fmt.Errorf("parse json: %w", err)
	}
	return ds, nil
}

func parseYAMLDataset(data []byte) (Dataset, error) {
	var ds Dataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Dataset{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Dataset{}, fmt.Errorf("parse yaml: %w", err)
	}
	return ds, nil
}

// LoadRaw reads an external question corpus. It accepts the layouts raw
// exports come in: a list of question objects, a column-oriented object of
// parallel arrays, or either of those wrapped in a split map with a "train"
// key. Option lists may be ordered arrays or letter-keyed maps.
func LoadRaw(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	records, err := parseRaw(data)
	if err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", filepath.Base(path), err)
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = fmt.Sprintf("SRC-%06d", i+1)
		}
	}
	return records, nil
}

func parseRaw(data []byte) ([]Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("corpus file is empty")
	}
	if trimmed[0] == '[' {
		return parseRawList(data)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	if train, ok := top["train"]; ok {
		return parseRaw(train)
	}
	if _, ok := top["question"]; ok {
		return parseRawColumns(top)
	}
	return nil, fmt.Errorf("unrecognized corpus layout")
}

type rawRecord struct {
	ID        string          `json:"id"`
	Question  string          `json:"question"`
	Options   json.RawMessage `json:"options"`
	Answer    string          `json:"answer"`
	AnswerIdx json.RawMessage `json:"answer_idx"`
}

func parseRawList(data []byte) ([]Record, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(raw))
	for i, item := range raw {
		record, err := item.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRawColumns(columns map[string]json.RawMessage) ([]Record, error) {
	var questions []string
	if err := json.Unmarshal(columns["question"], &questions); err != nil {
		return nil, fmt.Errorf("question column: %w", err)
	}

	options := make([]json.RawMessage, len(questions))
	if raw, ok := columns["options"]; ok {
		if err := json.Unmarshal(raw, &options); err != nil {
			return nil, fmt.Errorf("options column: %w", err)
		}
		if len(options) != len(questions) {
			return nil, fmt.Errorf("options column has %d entries, want %d", len(options), len(questions))
		}
	}
	answers := make([]string, len(questions))
	if raw, ok := columns["answer"]; ok {
		if err := json.Unmarshal(raw, &answers); err != nil {
			return nil, fmt.Errorf("answer column: %w", err)
		}
	}
	answerIdx := make([]json.RawMessage, len(questions))
	if raw, ok := columns["answer_idx"]; ok {
		if err := json.Unmarshal(raw, &answerIdx); err != nil {
			return nil, fmt.Errorf("answer_idx column: %w", err)
		}
	}

	records := make([]Record, 0, len(questions))
	for i := range questions {
		item := rawRecord{
			Question:  questions[i],
			Options:   options[i],
			Answer:    answers[i],
			AnswerIdx: answerIdx[i],
		}
		record, err := item.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (r rawRecord) toRecord() (Record, error) {
	opts, err := parseOptions(r.Options)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:        strings.TrimSpace(r.ID),
		Stem:      r.Question,
		Options:   opts,
		Answer:    r.Answer,
		AnswerIdx: resolveAnswerIdx(r.AnswerIdx, r.Answer, opts),
	}, nil
}

// parseOptions accepts both ordered lists and "A".."D" keyed maps; keyed
// maps are flattened in key order so option positions stay stable.
func parseOptions(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var keyed map[string]string
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, keyed[k])
	}
	return out, nil
}

// resolveAnswerIdx returns the position of the correct option, or -1 when
// it cannot be determined. Letter markers ("C"), numeric markers, and the
// answer text itself are all accepted.
func resolveAnswerIdx(raw json.RawMessage, answer string, options []string) int {
	if len(raw) > 0 && string(raw) != "null" {
		var letter string
		if err := json.Unmarshal(raw, &letter); err == nil {
			letter = strings.TrimSpace(strings.ToUpper(letter))
			if len(letter) == 1 && letter[0] >= 'A' && letter[0] <= 'Z' {
				idx := int(letter[0] - 'A')
				if idx < len(options) {
					return idx
				}
			}
		}
		var numeric int
		if err := json.Unmarshal(raw, &numeric); err == nil {
			if numeric >= 0 && numeric < len(options) {
				return numeric
			}
		}
	}
	if answer != "" {
		for i, option := range options {
			if strings.EqualFold(strings.TrimSpace(option), strings.TrimSpace(answer)) {
				return i
			}
		}
	}
	return -1
}
