package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobListSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "integer"},
			"title": {"type": "string"},
			"category": {"type": "string", "enum": ["construccion", "seguridad", "tecnologia"]}
		},
		"required": ["id", "title"]
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()
	require.NoError(t, v.AddSchema("contact.schema.json", []byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"phone1": {"type": "string"},
			"id": {"type": "integer", "minimum": 1}
		},
		"required": ["phone1"]
	}`)))

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid data", `{"phone1": "+123", "id": 1}`, ""},
		{"valid data without optional field", `{"phone1": "+123"}`, ""},
		{"missing required field", `{"id": 1}`, "required"},
		{"wrong type for field", `{"phone1": "+123", "id": "one"}`, "/id"},
		{"constraint violation", `{"phone1": "+123", "id": 0}`, "/id"},
		{"invalid JSON", `{"phone1": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, tmpDir, "data.json", tt.data)

			err := v.ValidateFile(dataPath, "contact.schema.json")

			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_AddSchema(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("jobs.schema.json", []byte(jobListSchema)))

	tests := []struct {
		name      string
		data      string
		wantError bool
	}{
		{"valid array", `[{"id": 1, "title": "Ingeniero"}, {"id": 2, "title": "Técnico", "category": "seguridad"}]`, false},
		{"empty array", `[]`, false},
		{"invalid id type", `[{"id": "two", "title": "Técnico"}]`, true},
		{"missing title", `[{"id": 1}]`, true},
		{"unknown category", `[{"id": 1, "title": "Técnico", "category": "ventas"}]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "jobs.schema.json")
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchemaValidator_AddSchemaRejectsMalformed(t *testing.T) {
	v := NewSchemaValidator()

	err := v.AddSchema("broken.schema.json", []byte(`{"type": `))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()
	dataPath := writeFile(t, tmpDir, "data.json", `{}`)
	require.NoError(t, v.AddSchema("object.schema.json", []byte(`{"type": "object"}`)))

	err := v.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSchema)
	assert.Contains(t, err.Error(), "failed to load schema")

	err = v.ValidateFile(filepath.Join(tmpDir, "nonexistent.json"), "object.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_ReusesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*schemaValidator)
	require.NoError(t, v.AddSchema("object.schema.json", []byte(`{"type": "object"}`)))
	data := []byte(`{"title": "value"}`)

	require.NoError(t, v.ValidateBytes(data, "object.schema.json"))
	require.NoError(t, v.ValidateBytes(data, "object.schema.json"))
	assert.Len(t, v.schemas, 1)

	assert.Error(t, v.ValidateBytes([]byte(`[]`), "object.schema.json"))
}

func TestSchemaValidator_AddSchemaTwiceKeepsFirst(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.AddSchema("jobs.schema.json", []byte(jobListSchema)))
	require.NoError(t, v.AddSchema("jobs.schema.json", []byte(`{"type": "object"}`)))

	assert.NoError(t, v.ValidateBytes([]byte(`[]`), "jobs.schema.json"))
}
