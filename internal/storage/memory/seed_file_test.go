package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewinson2/MJCL/internal/storage"
	"github.com/dewinson2/MJCL/internal/validation"
)

const seedJSON = `{
  "jobs": [
    {
      "id": 5,
      "title": "Jefe de Obra",
      "location": "Santo Domingo",
      "job_type": "Por Proyecto",
      "description": "Dirección de obras civiles.",
      "requirements": ["Ingeniería civil", "Licencia"],
      "category": "construccion",
      "is_active": true,
      "slug": "jefe-de-obra",
      "created_at": "2025-03-01T10:00:00Z"
    },
    {
      "title": "Analista de Redes",
      "location": "Remoto",
      "job_type": "Remoto",
      "description": "Monitoreo de redes.",
      "category": "tecnologia",
      "is_active": false,
      "slug": "analista-de-redes"
    }
  ],
  "contact_info": [
    {"phone1": "+1 809 555 0000", "email1": "rrhh@example.com", "address_line1": "Calle 1"}
  ]
}`

func TestParseSeed(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rows, err := ParseSeed([]byte(seedJSON), validation.NewSchemaValidator(), now)

	require.NoError(t, err)
	require.Len(t, rows[storage.TableJobs], 2)
	first := rows[storage.TableJobs][0]
	assert.Equal(t, int64(5), first[storage.ColumnID])
	assert.Equal(t, []string{"Ingeniería civil", "Licencia"}, first[storage.ColumnRequirements])
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), first[storage.ColumnCreatedAt])
	assert.Equal(t, first[storage.ColumnCreatedAt], first[storage.ColumnUpdatedAt])

	second := rows[storage.TableJobs][1]
	assert.NotContains(t, second, storage.ColumnID)
	assert.Equal(t, now, second[storage.ColumnCreatedAt])
	assert.Equal(t, false, second[storage.ColumnIsActive])
}

func TestParseSeed_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown table", `{"users": []}`},
		{"unknown category", `{"jobs": [{"title": "t", "location": "l", "job_type": "Remoto", "description": "d", "category": "ventas", "slug": "t"}]}`},
		{"missing slug", `{"jobs": [{"title": "t", "location": "l", "job_type": "Remoto", "description": "d", "category": "seguridad"}]}`},
		{"bad slug", `{"jobs": [{"title": "t", "location": "l", "job_type": "Remoto", "description": "d", "category": "seguridad", "slug": "Con Espacios"}]}`},
		{"contact without email", `{"contact_info": [{"phone1": "1", "address_line1": "a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.data), validation.NewSchemaValidator(), time.Now())

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid seed data")
		})
	}
}

func TestParseSeed_DuplicateSlug(t *testing.T) {
	job := `{"title": "t", "location": "l", "job_type": "Remoto", "description": "d", "category": "seguridad", "slug": "tecnico"}`

	_, err := ParseSeed([]byte(`{"jobs": [`+job+`,`+job+`]}`), validation.NewSchemaValidator(), time.Now())

	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrUniqueViolation))
}

func TestLoadSeedFile_FeedsExecutor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(seedJSON), 0o644))
	v := validation.NewSchemaValidator()

	rows, err := LoadSeedFile(path, v, time.Now())
	require.NoError(t, err)

	exec := New(WithSeed(rows))
	client := storage.NewClient(exec)
	ctx := context.Background()

	jobs, err := client.From(storage.TableJobs).Select(storage.ColumnID, storage.ColumnSlug).
		Order(storage.ColumnID, true).Many(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, int64(5), jobs[0][storage.ColumnID])
	assert.Equal(t, int64(6), jobs[1][storage.ColumnID], "rows without id are numbered after the highest one")

	inserted, err := client.From(storage.TableJobs).Insert(ctx, storage.Row{storage.ColumnSlug: "nuevo"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), inserted[storage.ColumnID])

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"), v, time.Now())
	assert.Error(t, err)
}
