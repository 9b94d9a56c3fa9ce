// Package exporter publishes the record model as an OpenAPI 3.0.0
// document, so downstream services can generate clients against the same
// field names the parser produces.
package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openpurse/go-openpurse/internal/common"
	"github.com/openpurse/go-openpurse/internal/models"
)

// exported lists every model published in the spec, in a stable order.
var exported = []any{
	models.PostalAddress{},
	models.PaymentMessage{},
	models.Pacs002Message{},
	models.Pacs004Message{},
	models.Pacs008Message{},
	models.Pacs009Message{},
	models.Camt004Message{},
	models.Camt029Message{},
	models.Camt052Message{},
	models.Camt053Message{},
	models.Camt054Message{},
	models.Camt056Message{},
	models.Camt086Message{},
	models.Pain001Message{},
	models.Pain002Message{},
	models.Pain008Message{},
	models.Acmt007Message{},
	models.Acmt015Message{},
	models.Setr004Message{},
	models.Setr010Message{},
	models.Fxtr014Message{},
	models.Sese023Message{},
	models.ValidationReport{},
}

// Schema generates the JSON Schema component for one model value. Embedded
// structs are flattened, mirroring how the records embed the base record.
func Schema(model any) (map[string]any, error) {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", common.ErrNotADataclassModel, t)
	}

	properties := map[string]any{}
	var required []string
	collectFields(t, properties, &required)

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	return schema, nil
}

func collectFields(t reflect.Type, properties map[string]any, required *[]string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			collectFields(field.Type, properties, required)
			continue
		}
		name := jsonName(field)
		if name == "" {
			continue
		}
		properties[name] = typeSchema(field.Type)
		if field.Type.Kind() != reflect.Pointer {
			*required = append(*required, name)
		}
	}
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" {
		return strings.ToLower(field.Name)
	}

	return tag
}

// typeSchema maps one Go type to its OpenAPI schema fragment. Pointers
// become nullable, named structs become component references.
func typeSchema(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		schema := typeSchema(t.Elem())
		schema["nullable"] = true
		return schema
	}

	switch t.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Int, reflect.Int32, reflect.Int64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Slice:
		return map[string]any{
			"type":  "array",
			"items": typeSchema(t.Elem()),
		}
	case reflect.Map:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": typeSchema(t.Elem()),
		}
	case reflect.Struct:
		return map[string]any{"$ref": "#/components/schemas/" + t.Name()}
	}

	return map[string]any{"type": "string"}
}

// ToOpenAPI generates the complete OpenAPI 3.0.0 document covering every
// published model. The paths object is empty; this spec documents schemas,
// not endpoints.
func ToOpenAPI() (map[string]any, error) {
	schemas := map[string]any{}
	for _, model := range exported {
		schema, err := Schema(model)
		if err != nil {
			return nil, err
		}
		schemas[reflect.TypeOf(model).Name()] = schema
	}

	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       "OpenPurse Financial Message API",
			"version":     "1.0.0",
			"description": "API specification for standardized ISO 20022 and SWIFT MT payment messages.",
		},
		"components": map[string]any{
			"schemas": schemas,
		},
		"paths": map[string]any{},
	}, nil
}

// WriteJSON renders the spec as indented JSON.
func WriteJSON(w io.Writer) error {
	spec, err := ToOpenAPI()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(spec)
}

// WriteYAML renders the spec as YAML.
func WriteYAML(w io.Writer) error {
	spec, err := ToOpenAPI()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(spec)
}

// ExportJSON saves the spec to a JSON file.
func ExportJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exporter: create %s: %w", path, err)
	}
	defer f.Close()

	return WriteJSON(f)
}

// ExportYAML saves the spec to a YAML file.
func ExportYAML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exporter: create %s: %w", path, err)
	}
	defer f.Close()

	return WriteYAML(f)
}
