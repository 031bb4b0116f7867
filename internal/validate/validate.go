package validate

import (
	"fmt"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi-validator/schema_validation"
)

// Document re-parses a rendered OpenAPI document and checks it
// against the OpenAPI 3.1 schema. A parse failure is returned as an
// error; validation findings come back as warnings so a cosmetic
// issue does not fail the run.
func Document(data []byte) ([]string, error) {
	doc, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing generated document: %w", err)
	}

	if _, err := doc.BuildV3Model(); err != nil {
		return nil, fmt.Errorf("building document model: %w", err)
	}

	valid, validationErrs := schema_validation.ValidateOpenAPIDocument(doc)
	if valid {
		return nil, nil
	}

	var warnings []string
	for _, e := range validationErrs {
		warnings = append(warnings, e.Message)
	}
	return warnings, nil
}
