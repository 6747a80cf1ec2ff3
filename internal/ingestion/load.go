package ingestion

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-renderer/internal/schemas"
	"github.com/jonathan/resume-renderer/internal/types"
)

// LoadResume reads a YAML or JSON resume document and returns the validated
// model. JSON needs no special handling: the YAML decoder accepts it as a
// flow-style document.
func LoadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read resume file: %s", path),
			Cause:   err,
		}
	}
	return ParseResume(data)
}

// ParseResume decodes and validates resume document bytes in two phases:
// the raw document is checked against the resume schema (key presence,
// value types), then the typed model enforces the semantic rules (email and
// phone formats, rank uniqueness). Each phase reports all of its violations
// together; none are recovered internally.
func ParseResume(data []byte) (*types.Resume, error) {
	var document interface{}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, &LoadError{
			Message: "failed to parse resume document",
			Cause:   err,
		}
	}

	if err := schemas.ValidateResumeDocument(document); err != nil {
		return nil, toModelError(err)
	}

	var resume types.Resume
	if err := yaml.Unmarshal(data, &resume); err != nil {
		return nil, &LoadError{
			Message: "failed to decode resume document",
			Cause:   err,
		}
	}

	if err := resume.Validate(); err != nil {
		return nil, err
	}
	return &resume, nil
}

// toModelError converts schema violations into the model's ValidationError
// so callers deal with a single validation error type regardless of which
// phase rejected the document.
func toModelError(err error) error {
	var schemaErr *schemas.ValidationError
	if !errors.As(err, &schemaErr) {
		return err
	}
	verr := &types.ValidationError{
		Fields: make([]types.FieldError, 0, len(schemaErr.Errors)),
	}
	for _, fieldErr := range schemaErr.Errors {
		verr.Fields = append(verr.Fields, types.FieldError{
			Field:   fieldErr.Field,
			Message: fieldErr.Message,
		})
	}
	return verr
}
