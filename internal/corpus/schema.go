package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// datasetSchema is the JSON Schema every dataset file must satisfy.
//
//go:embed dataset_schema.json
var datasetSchema []byte

// CheckDatasetFile validates a dataset file against the embedded schema.
// It catches shape problems in hand-edited files before the stricter
// semantic normalization runs.
func CheckDatasetFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}
	schema, err := compileDatasetSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("dataset schema: %w", err)
	}
	return nil
}

func compileDatasetSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("dataset_schema.json", bytes.NewReader(datasetSchema)); err != nil {
		return nil, fmt.Errorf("load dataset schema: %w", err)
	}
	schema, err := compiler.Compile("dataset_schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile dataset schema: %w", err)
	}
	return schema, nil
}
