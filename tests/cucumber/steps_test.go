package cucumber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"vigprep/internal/cli"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	projectDir  string
	configPath  string
	previousWD  string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project with a valid configuration$`, state.aProjectWithValidConfig)
	ctx.Step(`^a raw corpus with mixed records$`, state.aRawCorpusWithMixedRecords)
	ctx.Step(`^a filtered dataset at "([^"]+)"$`, state.aFilteredDatasetAt)
	ctx.Step(`^the quotas do not sum to the target total$`, state.theQuotasDoNotSum)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the error message points to the quotas$`, state.theErrorMentionsQuotas)
	ctx.Step(`^the filter report shows (\d+) records passing all predicates$`, state.theFilterReportShowsSurvivors)
	ctx.Step(`^the files "([^"]+)" and "([^"]+)" are identical$`, state.theFilesAreIdentical)
}

// reset clears buffers and state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
		s.projectDir = ""
	}
}

// aProjectWithValidConfig sets up a temp project with a valid config
// and chdirs into it so the config is found by the upward search.
func (s *featureState) aProjectWithValidConfig() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "vigprep-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	s.configPath = filepath.Join(dir, ".vigprep", "config.yml")
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := s.writeConfig(validConfigYAML()); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

// aRawCorpusWithMixedRecords writes a corpus of six records: four
// filter survivors, one knowledge question, one excluded vignette.
func (s *featureState) aRawCorpusWithMixedRecords() error {
	if err := s.aProjectWithValidConfig(); err != nil {
		return err
	}
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
		return fmt.Errorf("marshal corpus: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.projectDir, "corpus.json"), payload, 0o644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	return nil
}

// aFilteredDatasetAt produces a filtered dataset via the filter command.
func (s *featureState) aFilteredDatasetAt(path string) error {
	if err := s.iRunCommand("vigprep filter --corpus corpus.json --out " + path); err != nil {
		return err
	}
	if s.exitCode != 0 {
		return fmt.Errorf("filter failed: %s", s.stderr.String())
	}
	return nil
}

// theQuotasDoNotSum breaks the quota table against the target total.
func (s *featureState) theQuotasDoNotSum() error {
	if err := s.aProjectWithValidConfig(); err != nil {
		return err
	}
	return s.writeConfig(strings.Replace(validConfigYAML(), "target_total: 3", "target_total: 10", 1))
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "vigprep" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(want string) error {
	if !strings.Contains(s.stdout.String(), want) {
		return fmt.Errorf("expected %q in output, got %q", want, s.stdout.String())
	}
	return nil
}

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theErrorMentionsQuotas() error {
	if !strings.Contains(s.stderr.String(), "quotas") {
		return fmt.Errorf("expected error to mention quotas, got %q", s.stderr.String())
	}
	return nil
}

// theFilterReportShowsSurvivors checks the passed_all counter in the
// filter stats output.
func (s *featureState) theFilterReportShowsSurvivors(count int) error {
	want := fmt.Sprintf(`"passed_all": %d`, count)
	if !strings.Contains(s.stdout.String(), want) {
		return fmt.Errorf("expected %s in filter stats, got %q", want, s.stdout.String())
	}
	return nil
}

func (s *featureState) theFilesAreIdentical(first, second string) error {
	a, err := os.ReadFile(first)
	if err != nil {
		return fmt.Errorf("read %s: %w", first, err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		return fmt.Errorf("read %s: %w", second, err)
	}
	if !bytes.Equal(a, b) {
		return fmt.Errorf("%s and %s differ", first, second)
	}
	return nil
}

// writeConfig persists configuration content to the project config path.
func (s *featureState) writeConfig(contents string) error {
	if s.configPath == "" {
		return fmt.Errorf("config path is not set")
	}
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// validConfigYAML returns a small valid config matched to the test corpus.
func validConfigYAML() string {
	return `version: 1
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
}
