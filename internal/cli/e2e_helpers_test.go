package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vigprep/internal/config"
)

// testConfigYAML is a small pipeline configuration suited to the test
// corpus: low length floor, two categories, a quota of three.
const testConfigYAML = `version: 1
output_dir: outputs
seed: 42
target_total: 3
stem_length:
  min: 60
  max: 2000
exclusion_keywords:
  - \bpregnant\b
categories:
  - name: infectious
    weight: 1.5
    keywords: [fever, sepsis]
  - name: diabetes
    weight: 1.3
    keywords: [glucose, insulin]
quotas:
  infectious: 1
  diabetes: 1
  other: 1
`

// newProject lays out a project root with a config and raw corpus and
// returns the root plus both paths.
func newProject(t *testing.T) (root, configPath, corpusPath string) {
	t.Helper()
	root = t.TempDir()
	if err := os.MkdirAll(config.ConfigDir(root), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	configPath = config.ConfigPath(root)
	if err := os.WriteFile(configPath, []byte(testConfigYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	corpusPath = filepath.Join(root, "corpus.json")
	writeTestCorpus(t, corpusPath)
	return root, configPath, corpusPath
}

// writeTestCorpus writes six raw records: four filter survivors across
// three categories, one non-vignette, and one excluded by the block-list.
func writeTestCorpus(t *testing.T, path string) {
	t.Helper()
	records := []map[string]interface{}{
		{
			"question": "A 34-year-old patient presents with high fever and rigors that started two days after returning from travel.",
			"options":  []string{"Malaria", "Dengue", "Typhoid", "Influenza"},
			"answer":   "Malaria", "answer_idx": "A",
		},
		{
			"question": "A 41-year-old patient presents with spiking fever, productive cough, and pleuritic pain for the past week.",
			"options":  []string{"Pneumonia", "Bronchitis", "Tuberculosis", "Pleurisy"},
			"answer":   "Pneumonia", "answer_idx": "A",
		},
		{
			"question": "A 57-year-old patient presents with persistently elevated glucose readings and blurry vision over several weeks.",
			"options":  []string{"Type 2 diabetes", "Type 1 diabetes", "Cataract", "Glaucoma"},
			"answer":   "Type 2 diabetes", "answer_idx": "A",
		},
		{
			"question": "A 23-year-old patient presents after a minor fall with persistent wrist pain and swelling since yesterday evening.",
			"options":  []string{"Scaphoid fracture", "Sprain", "Dislocation", "Contusion"},
			"answer":   "Scaphoid fracture", "answer_idx": "A",
		},
		{
			"question": "Which enzyme catalyzes the rate-limiting step of glycolysis?",
			"options":  []string{"Hexokinase", "PFK-1", "Pyruvate kinase", "Aldolase"},
			"answer":   "PFK-1", "answer_idx": "B",
		},
		{
			"question": "A 29-year-old pregnant patient presents with fever and dysuria that have worsened over the past two days.",
			"options":  []string{"Pyelonephritis", "Cystitis", "Appendicitis", "Cholecystitis"},
			"answer":   "Pyelonephritis", "answer_idx": "A",
		},
	}
	payload, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal corpus: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
}

// runCLI runs a command and returns its exit code and both streams.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}
