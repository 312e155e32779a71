package corpus

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a dataset file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more dataset issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("dataset validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeDataset trims whitespace and validates a dataset.
func NormalizeDataset(ds Dataset) (Dataset, error) {
	collector := &issueCollector{}
	if ds.Version == 0 {
		collector.add("version", "is required")
	} else if ds.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", ds.Version))
	}
	if len(ds.Records) == 0 {
		collector.add("records", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, record := range ds.Records {
		prefix := fmt.Sprintf("records[%d]", i)
		record.ID = strings.TrimSpace(record.ID)
		if record.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[record.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", record.ID))
		} else {
			seenIDs[record.ID] = struct{}{}
		}

		if strings.TrimSpace(record.Stem) == "" {
			collector.add(prefix+".question", "is required")
		}
		if len(record.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		} else {
			for optionIndex, option := range record.Options {
				if strings.TrimSpace(option) == "" {
					collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
				}
			}
		}
		if record.AnswerIdx < 0 || record.AnswerIdx >= len(record.Options) {
			collector.add(prefix+".answer_idx", fmt.Sprintf("index %d out of range", record.AnswerIdx))
		}
		ds.Records[i] = record
	}

	if err := collector.result(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}
