package tools

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateArguments checks a raw argument bag against a tool's input schema
// before normalization runs. Type mismatches, missing required fields, and
// out-of-enum values are all reported as a single ValidationError.
func ValidateArguments(def Definition, args map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(def.InputSchema)
	documentLoader := gojsonschema.NewGoLoader(args)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return &ValidationError{Detail: strings.Join(errs, ", ")}
}
