package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://catalog.json"

// fileSchema describes the catalog file: three optional difficulty buckets,
// each an array of {title, link, number} entries.
const fileSchema = `{
  "type": "object",
  "properties": {
    "easy":   {"$ref": "#/$defs/bucket"},
    "medium": {"$ref": "#/$defs/bucket"},
    "hard":   {"$ref": "#/$defs/bucket"}
  },
  "additionalProperties": false,
  "$defs": {
    "bucket": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title":  {"type": "string", "minLength": 1},
          "link":   {"type": "string", "minLength": 1},
          "number": {"type": "integer", "minimum": 1}
        },
        "required": ["title", "link", "number"]
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ValidationError reports a catalog document that does not match the schema.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validate checks raw JSON against the catalog schema.
func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := catalogSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

func catalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(fileSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
