// Package schemas embeds the JSON schemas for generator configs and outputs.
package schemas

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	Generators = "generators.schema.json"
	Positions  = "positions.schema.json"
)

const baseURL = "https://tidegen.dev/schemas/"

//go:embed files/*.schema.json
var files embed.FS

// Compile loads an embedded schema by file name.
func Compile(name string) (*jsonschema.Schema, error) {
	raw, err := files.ReadFile("files/" + name)
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	url := baseURL + name
	if err := c.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c.Compile(url)
}

// ValidateJSON checks a raw JSON document against the named schema.
func ValidateJSON(name string, raw []byte) error {
	s, err := Compile(name)
	if err != nil {
		return err
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return s.Validate(doc)
}

// ValidateValue round-trips v through JSON (e.g. a YAML-decoded tree) and validates it.
func ValidateValue(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return ValidateJSON(name, raw)
}
