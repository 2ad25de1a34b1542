package extract

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// templateSchema is a JSON-Schema (draft 2020-12 subset) for the order
// template file. Structural checks live here; semantic ones in Validate.
const templateSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["header", "fields"],
  "properties": {
    "header": {"type": "string", "minLength": 1},
    "fields": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "marker": {"type": "string"},
          "kind": {"type": "string", "enum": ["text", "amount", "status"]},
          "required": {"type": "boolean"}
        }
      }
    },
    "status_markers": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "status_phrases": {"type": "array", "items": {"type": "string", "minLength": 1}}
  }
}`

var compiledTemplateSchema = jsonschema.MustCompileString("template.schema.json", templateSchema)

func validateTemplateDoc(doc any) error {
	return compiledTemplateSchema.Validate(doc)
}
