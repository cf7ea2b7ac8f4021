package schema

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// JSONSchema represents a JSON Schema document
type JSONSchema struct {
	Schema               string                 `json:"$schema,omitempty"`
	ID                   string                 `json:"$id,omitempty"`
	Title                string                 `json:"title,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Type                 string                 `json:"type,omitempty"`
	Required             []string               `json:"required,omitempty"`
	Properties           map[string]*JSONSchema `json:"properties,omitempty"`
	AdditionalProperties *JSONSchema            `json:"additionalProperties,omitempty"`
	Items                *JSONSchema            `json:"items,omitempty"`
	Enum                 []any                  `json:"enum,omitempty"`
	Pattern              string                 `json:"pattern,omitempty"`
	Minimum              *int64                 `json:"minimum,omitempty"`
	Maximum              *int64                 `json:"maximum,omitempty"`
	MinItems             *int                   `json:"minItems,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	durationType      = reflect.TypeOf(time.Duration(0))
)

// Generator builds JSON schemas for config structs from their field tags.
// Property names come from TagName ("yaml" unless set); the "schema" tag adds
// constraints, e.g. `schema:"required,enum=native|api"`.
type Generator struct {
	TagName string
	BaseID  string
}

func NewGenerator(baseID string) *Generator {
	return &Generator{TagName: "yaml", BaseID: strings.TrimSuffix(baseID, "/")}
}

// Generate returns the schema of v's type, titled after the type.
func (g *Generator) Generate(v any) (*JSONSchema, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("cannot generate schema for nil")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	s, err := g.forType(t)
	if err != nil {
		return nil, err
	}
	s.Schema = schemaRef
	s.Title = t.Name()
	if g.BaseID != "" {
		s.ID = fmt.Sprintf("%s/%s.json", g.BaseID, strings.ToLower(t.Name()))
	}
	return s, nil
}

// GenerateJSON is Generate rendered as indented JSON.
func (g *Generator) GenerateJSON(v any) ([]byte, error) {
	s, err := g.Generate(v)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

func (g *Generator) forType(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	// Durations and text marshalers are written as strings in YAML.
	if t == durationType || reflect.PointerTo(t).Implements(textMarshalerType) {
		return &JSONSchema{Type: "string"}, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.forStruct(t)
	case reflect.Slice, reflect.Array:
		items, err := g.forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type: %s", t.Key())
		}
		values, err := g.forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("map values: %w", err)
		}
		return &JSONSchema{Type: "object", AdditionalProperties: values}, nil
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return integerSchema(t), nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	case reflect.Interface:
		return &JSONSchema{}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func integerSchema(t reflect.Type) *JSONSchema {
	s := &JSONSchema{Type: "integer"}
	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		lo, hi := int64(-1)<<(t.Bits()-1), int64(1)<<(t.Bits()-1)-1
		s.Minimum, s.Maximum = &lo, &hi
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var zero int64
		s.Minimum = &zero
	}
	return s
}

func (g *Generator) forStruct(t reflect.Type) (*JSONSchema, error) {
	s := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := g.fieldName(field)
		if name == "" {
			continue
		}

		fs, err := g.forType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if desc := field.Tag.Get("description"); desc != "" {
			fs.Description = desc
		}
		if parseSchemaTag(field.Tag.Get("schema"), fs) {
			s.Required = append(s.Required, name)
		}

		s.Properties[name] = fs
	}

	return s, nil
}

// fieldName returns "" for fields the tag excludes.
func (g *Generator) fieldName(field reflect.StructField) string {
	tag := field.Tag.Get(g.TagName)
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return strings.ToLower(field.Name)
}

// parseSchemaTag applies constraints to s and reports whether the field is
// required.
func parseSchemaTag(tag string, s *JSONSchema) bool {
	required := false
	for _, part := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "required":
			required = true
		case "enum":
			for _, e := range strings.Split(value, "|") {
				s.Enum = append(s.Enum, e)
			}
		case "pattern":
			s.Pattern = value
		case "minimum":
			if v, err := strconv.ParseInt(value, 10, 64); err == nil {
				s.Minimum = &v
			}
		case "minItems":
			if v, err := strconv.Atoi(value); err == nil {
				s.MinItems = &v
			}
		}
	}
	return required
}
