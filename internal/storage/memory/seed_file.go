package memory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dewinson2/MJCL/internal/storage"
	"github.com/dewinson2/MJCL/internal/validation"
)

// SeedSchemaName is the name the seed file schema is registered under.
const SeedSchemaName = "mjcl-seed.schema.json"

//go:embed seed.schema.json
var seedSchema []byte

// LoadSeedFile reads a JSON seed file of the form
//
//	{"jobs": [{...}], "contact_info": [{...}]}
//
// validates it against the embedded schema and converts it to rows. Ids are
// optional; timestamps are RFC 3339 strings and default to now.
func LoadSeedFile(path string, v validation.SchemaValidator, now time.Time) (map[string][]storage.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseSeed(data, v, now)
}

// ParseSeed validates and converts seed data. See LoadSeedFile.
func ParseSeed(data []byte, v validation.SchemaValidator, now time.Time) (map[string][]storage.Row, error) {
	if err := v.AddSchema(SeedSchemaName, seedSchema); err != nil {
		return nil, err
	}
	if err := v.ValidateBytes(data, SeedSchemaName); err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}

	var doc map[string][]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	out := make(map[string][]storage.Row, len(doc))
	for tableName, records := range doc {
		rows := make([]storage.Row, 0, len(records))
		for i, rec := range records {
			row, err := convertRecord(tableName, rec, now)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", tableName, i, err)
			}
			rows = append(rows, row)
		}
		out[tableName] = rows
	}

	seen := make(map[any]bool)
	for _, row := range out[storage.TableJobs] {
		slug := row[storage.ColumnSlug]
		if seen[slug] {
			return nil, fmt.Errorf("%w: duplicate slug %v in seed data", storage.ErrUniqueViolation, slug)
		}
		seen[slug] = true
	}
	return out, nil
}

// convertRecord turns decoded JSON values into the types the executor stores.
func convertRecord(tableName string, rec map[string]any, now time.Time) (storage.Row, error) {
	row := make(storage.Row, len(rec)+2)
	for col, val := range rec {
		if err := storage.CheckColumns(tableName, col); err != nil {
			return nil, err
		}
		switch col {
		case storage.ColumnID:
			f, ok := val.(float64)
			if !ok {
				return nil, fmt.Errorf("%w: id must be a number", storage.ErrInvalidQuery)
			}
			row[col] = int64(f)
		case storage.ColumnCreatedAt, storage.ColumnUpdatedAt:
			s, _ := val.(string)
			ts, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", col, err)
			}
			row[col] = ts
		case storage.ColumnRequirements, storage.ColumnBenefits:
			items, _ := val.([]any)
			lines := make([]string, 0, len(items))
			for _, item := range items {
				if s, ok := item.(string); ok {
					lines = append(lines, s)
				}
			}
			row[col] = lines
		default:
			row[col] = val
		}
	}
	if _, ok := row[storage.ColumnCreatedAt]; !ok {
		row[storage.ColumnCreatedAt] = now
	}
	if _, ok := row[storage.ColumnUpdatedAt]; !ok {
		row[storage.ColumnUpdatedAt] = row[storage.ColumnCreatedAt]
	}
	return row, nil
}
