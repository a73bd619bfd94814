package jsonfile

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// taskFileSchema describes a valid tasks file: a JSON array of task objects
// with unique-by-construction integer IDs and non-empty descriptions.
const taskFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "task"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "task": {"type": "string", "minLength": 1},
      "priority": {"type": "string", "enum": ["high", "medium", "low"]},
      "created_at": {"type": "string"}
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("tasks.schema.json", taskFileSchema)

// validateDocument checks a decoded JSON document against the tasks file
// schema. The document must come from json.Unmarshal into an interface{}.
func validateDocument(doc interface{}) error {
	return compiledSchema.Validate(doc)
}
