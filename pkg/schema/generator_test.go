package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level int

func (l level) MarshalText() ([]byte, error) { return []byte("x"), nil }

type sample struct {
	Name     string           `yaml:"name" schema:"required" description:"display name"`
	Mode     string           `yaml:"mode,omitempty" schema:"enum=fast|slow"`
	Count    int32            `yaml:"count"`
	Retries  uint             `yaml:"retries"`
	Timeout  time.Duration    `yaml:"timeout"`
	Level    *level           `yaml:"level"`
	Tags     []string         `yaml:"tags" schema:"minItems=1"`
	Params   map[string]any   `yaml:"params"`
	Children map[string]child `yaml:"children"`
	Skipped  string           `yaml:"-"`
	Implicit bool
	hidden   string
}

type child struct {
	Weight float64 `yaml:"weight" schema:"minimum=1"`
}

func TestGenerate(t *testing.T) {
	s, err := NewGenerator("https://example.com/schemas/").Generate(&sample{})
	require.NoError(t, err)

	assert.Equal(t, schemaRef, s.Schema)
	assert.Equal(t, "sample", s.Title)
	assert.Equal(t, "https://example.com/schemas/sample.json", s.ID)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"name"}, s.Required)

	assert.Len(t, s.Properties, 10)
	assert.NotContains(t, s.Properties, "Skipped")
	assert.NotContains(t, s.Properties, "hidden")

	assert.Equal(t, "display name", s.Properties["name"].Description)
	assert.Equal(t, []any{"fast", "slow"}, s.Properties["mode"].Enum)

	count := s.Properties["count"]
	assert.Equal(t, "integer", count.Type)
	assert.Equal(t, int64(-2147483648), *count.Minimum)
	assert.Equal(t, int64(2147483647), *count.Maximum)
	assert.Equal(t, int64(0), *s.Properties["retries"].Minimum)

	assert.Equal(t, "string", s.Properties["timeout"].Type)
	assert.Equal(t, "string", s.Properties["level"].Type)

	tags := s.Properties["tags"]
	assert.Equal(t, "array", tags.Type)
	assert.Equal(t, "string", tags.Items.Type)
	assert.Equal(t, 1, *tags.MinItems)

	assert.Equal(t, "object", s.Properties["params"].Type)
	assert.Equal(t, "", s.Properties["params"].AdditionalProperties.Type)

	children := s.Properties["children"].AdditionalProperties
	assert.Equal(t, "number", children.Properties["weight"].Type)
	assert.Equal(t, int64(1), *children.Properties["weight"].Minimum)

	assert.Equal(t, "boolean", s.Properties["implicit"].Type)
}

func TestGenerate_Unsupported(t *testing.T) {
	g := NewGenerator("")

	_, err := g.Generate(nil)
	assert.Error(t, err)

	_, err = g.Generate(struct {
		Ch chan int `yaml:"ch"`
	}{})
	assert.Error(t, err)

	_, err = g.Generate(struct {
		M map[int]string `yaml:"m"`
	}{})
	assert.Error(t, err)
}

func TestGenerateJSON(t *testing.T) {
	data, err := NewGenerator("").GenerateJSON(child{})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaRef, doc["$schema"])
	assert.NotContains(t, doc, "$id")
	assert.Contains(t, doc["properties"], "weight")
}
