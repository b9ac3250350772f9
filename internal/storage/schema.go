package storage

import (
	"fmt"
	"slices"
)

// Table names
const (
	TableJobs        = "jobs"
	TableContactInfo = "contact_info"
)

// AllColumns selects every column.
const AllColumns = "*"

// Column names shared by both tables
const (
	ColumnID        = "id"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
)

// Job columns
const (
	ColumnTitle        = "title"
	ColumnLocation     = "location"
	ColumnJobType      = "job_type"
	ColumnDescription  = "description"
	ColumnRequirements = "requirements"
	ColumnBenefits     = "benefits"
	ColumnCategory     = "category"
	ColumnIsActive     = "is_active"
	ColumnSlug         = "slug"
)

// Contact info columns
const (
	ColumnPhone1       = "phone1"
	ColumnPhone2       = "phone2"
	ColumnEmail1       = "email1"
	ColumnEmail2       = "email2"
	ColumnAddressLine1 = "address_line1"
	ColumnAddressLine2 = "address_line2"
	ColumnFacebookURL  = "facebook_url"
	ColumnTwitterURL   = "twitter_url"
	ColumnInstagramURL = "instagram_url"
	ColumnLinkedInURL  = "linkedin_url"
)

// Schema lists the known columns of every table. Executors reject requests
// naming anything else.
var Schema = map[string][]string{
	TableJobs: {
		ColumnID, ColumnTitle, ColumnLocation, ColumnJobType, ColumnDescription,
		ColumnRequirements, ColumnBenefits, ColumnCategory, ColumnIsActive,
		ColumnSlug, ColumnCreatedAt, ColumnUpdatedAt,
	},
	TableContactInfo: {
		ColumnID, ColumnPhone1, ColumnPhone2, ColumnEmail1, ColumnEmail2,
		ColumnAddressLine1, ColumnAddressLine2, ColumnFacebookURL,
		ColumnTwitterURL, ColumnInstagramURL, ColumnLinkedInURL,
		ColumnCreatedAt, ColumnUpdatedAt,
	},
}

// UniqueColumns lists columns (besides id) that carry a unique constraint.
var UniqueColumns = map[string][]string{
	TableJobs: {ColumnSlug},
}

// Columns returns the column list of a table.
func Columns(table string) ([]string, error) {
	cols, ok := Schema[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return cols, nil
}

// CheckColumns verifies that every name is a column of table. "*" is allowed.
func CheckColumns(table string, names ...string) error {
	cols, err := Columns(table)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == AllColumns {
			continue
		}
		if !slices.Contains(cols, n) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, n)
		}
	}
	return nil
}

// CheckSelect validates every column referenced by a read request.
func CheckSelect(q Select) error {
	if err := CheckColumns(q.Table, q.Columns...); err != nil {
		return err
	}
	for _, f := range q.Filters {
		if err := CheckColumns(q.Table, f.Column); err != nil {
			return err
		}
	}
	if q.Order != nil {
		if err := CheckColumns(q.Table, q.Order.Column); err != nil {
			return err
		}
	}
	if q.Limit < 0 {
		return invalidf("negative limit %d", q.Limit)
	}
	return nil
}

// CheckMutate validates every column referenced by an update or delete.
func CheckMutate(m Mutate) error {
	for col := range m.Values {
		if err := CheckColumns(m.Table, col); err != nil {
			return err
		}
	}
	for _, f := range m.Filters {
		if err := CheckColumns(m.Table, f.Column); err != nil {
			return err
		}
	}
	return nil
}
