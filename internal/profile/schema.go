package profile

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sdefoundry/sdectl/internal/apperrors"
)

//go:embed profile.schema.json
var schemaJSON string

var profileSchema = jsonschema.MustCompileString("profile.schema.json", schemaJSON)

// validateSchema checks the raw document structure before field-level
// decoding, so malformed profiles fail with a document-shaped error rather
// than a decode error deep in a field.
func validateSchema(data []byte) error {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := profileSchema.Validate(v); err != nil {
		return apperrors.NewConfigurationError("profile", "document does not match profile schema", err.Error())
	}
	return nil
}
