// Package contracts holds the JSON Schemas that pin down the shapes this
// service publishes, and validation helpers over them. The schemas are the
// contract with the storefront and any queue consumer.
package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var carSchema = mustCompile("schemas/car.schema.json")

func mustCompile(path string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("contracts: embedded schema %s missing: %v", path, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(path, bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("contracts: schema %s is not valid JSON: %v", path, err))
	}
	schema, err := compiler.Compile(path)
	if err != nil {
		panic(fmt.Sprintf("contracts: schema %s does not compile: %v", path, err))
	}
	return schema
}

// ValidateCar checks a marshaled car against the published schema. The
// argument is any value that marshals to the car shape.
func ValidateCar(car interface{}) error {
	raw, err := json.Marshal(car)
	if err != nil {
		return fmt.Errorf("marshaling car for validation: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("remarshaling car for validation: %w", err)
	}

	if err := carSchema.Validate(doc); err != nil {
		return fmt.Errorf("car does not match published schema: %w", err)
	}
	return nil
}
