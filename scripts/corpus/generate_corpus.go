// Command generate_corpus writes a synthetic raw question corpus for
// tests and demos. Stems are built from vignette templates across the
// configured disease categories so the filter and selector have
// realistic input shapes to chew on.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

type corpusConfig struct {
	Records int   `json:"records"`
	Seed    int64 `json:"seed"`
}

type rawRecord struct {
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	Answer    string   `json:"answer"`
	AnswerIdx int      `json:"answer_idx"`
}

type template struct {
	complaint string
	answers   []string
}

var templates = []template{
	{"fever and a productive cough for 5 days. Examination shows crackles over the right lower lobe and his temperature is 39.1°C", []string{"Pneumonia", "Bronchitis", "Tuberculosis", "Asthma"}},
	{"polyuria and polydipsia. Laboratory studies show a fasting glucose of 182 mg/dL and an elevated hemoglobin A1c", []string{"Type 2 diabetes mellitus", "Diabetes insipidus", "Hyperthyroidism", "Cushing syndrome"}},
	{"crushing chest pain radiating to the left arm. Blood pressure is 158/94 mm Hg and the ECG shows ST-segment elevation", []string{"Myocardial infarction", "Angina pectoris", "Pericarditis", "Aortic dissection"}},
	{"progressive dyspnea and wheezing. He has a 30 pack-year smoking history and pulmonary function tests show an obstructive pattern", []string{"COPD", "Asthma", "Pulmonary fibrosis", "Heart failure"}},
	{"colicky abdominal pain, nausea, and vomiting. Physical examination reveals rebound tenderness in the right lower quadrant", []string{"Appendicitis", "Cholecystitis", "Gastric ulcer", "Pancreatitis"}},
}

func main() {
	configPath := flag.String("config", "", "path to corpus config JSON")
	outPath := flag.String("out", "", "output corpus JSON path")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_corpus --config <path> --out <corpus.json>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	if err := writeCorpus(*outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate corpus: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (corpusConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return corpusConfig{}, err
	}
	var cfg corpusConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return corpusConfig{}, err
	}
	if cfg.Records <= 0 {
		cfg.Records = 100
	}
	return cfg, nil
}

func writeCorpus(path string, cfg corpusConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	records := make([]rawRecord, 0, cfg.Records)
	for i := 0; i < cfg.Records; i++ {
		records = append(records, makeRecord(rng))
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func makeRecord(rng *rand.Rand) rawRecord {
	tmpl := templates[rng.Intn(len(templates))]
	age := 20 + rng.Intn(60)
	stem := fmt.Sprintf(
		"A %d-year-old patient comes to the emergency department with %s. "+
			"The patient has a history of similar episodes. Physical examination "+
			"is otherwise unremarkable and vital signs include a pulse of %d/min. "+
			"Which of the following is the most likely diagnosis?",
		age, tmpl.complaint, 60+rng.Intn(50))
	// Pad short stems into the accepted length window, counting
	// characters the way the filter does.
	for utf8.RuneCountInString(stem) < 150 {
		stem += " Laboratory studies are pending."
	}
	options := append([]string(nil), tmpl.answers...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	answerIdx := indexOf(options, tmpl.answers[0])
	return rawRecord{
		Question:  stem,
		Options:   options,
		Answer:    tmpl.answers[0],
		AnswerIdx: answerIdx,
	}
}

func indexOf(options []string, answer string) int {
	for i, option := range options {
		if strings.EqualFold(option, answer) {
			return i
		}
	}
	return 0
}
