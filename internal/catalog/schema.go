package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
)

var (
	schemaOnce sync.Once
	schemaDoc  []byte
	schemaErr  error
)

// Schema returns the JSON schema of a catalog Document, reflected from the Go types
func Schema() ([]byte, error) {
	schemaOnce.Do(func() {
		schemaDoc, schemaErr = json.MarshalIndent(buildSchema(), "", "  ")
		if schemaErr != nil {
			schemaErr = fmt.Errorf(ErrMsgSchemaFailed, schemaErr)
		}
	})
	return schemaDoc, schemaErr
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(Document))
	schema.Title = "Garden Planner Catalog"
	schema.Description = "Crop and fertiliser definitions consumed by the planner"
	return schema
}
