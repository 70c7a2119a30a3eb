package engine

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema is the JSON schema every analysis payload must satisfy
// before the netlist source is even looked at.
const payloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["netlist"],
  "additionalProperties": false,
  "properties": {
    "netlist_id": { "type": "string" },
    "netlist": { "type": "string", "minLength": 1 },
    "tclk": { "type": "number", "exclusiveMinimum": 0 },
    "setup": { "type": "number", "minimum": 0 },
    "clock_to_q": { "type": "number", "minimum": 0 },
    "eps": { "type": "number", "minimum": 0 },
    "k": { "type": "integer", "minimum": 1 },
    "startpoint_overrides": {
      "type": "object",
      "additionalProperties": { "type": "number" }
    },
    "endpoint_overrides": {
      "type": "object",
      "additionalProperties": { "type": "number" }
    }
  }
}`

// validatePayload checks the raw payload JSON against payloadSchema.
func validatePayload(payloadJSON []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(payloadSchema)
	documentLoader := gojsonschema.NewBytesLoader(payloadJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if result.Valid() {
		return nil
	}

	// Report the first violation; one at a time is enough to act on.
	first := result.Errors()[0]
	return fmt.Errorf("%w: %s: %s", ErrInvalidPayload, first.Field(), first.Description())
}
