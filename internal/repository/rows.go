package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/storage"
)

// wrapStorageError maps facade errors onto domain sentinels, keeping the cause.
func wrapStorageError(op string, err error) error {
	if errors.Is(err, storage.ErrUniqueViolation) {
		return fmt.Errorf("%w: %s: %w", domain.ErrSlugConflict, op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, op, err)
}

func jobFromRow(r storage.Row) domain.JobPosting {
	return domain.JobPosting{
		ID:           toInt64(r[storage.ColumnID]),
		Title:        toString(r[storage.ColumnTitle]),
		Location:     toString(r[storage.ColumnLocation]),
		JobType:      toString(r[storage.ColumnJobType]),
		Description:  toString(r[storage.ColumnDescription]),
		Requirements: toStrings(r[storage.ColumnRequirements]),
		Benefits:     toStrings(r[storage.ColumnBenefits]),
		Category:     toString(r[storage.ColumnCategory]),
		IsActive:     toBool(r[storage.ColumnIsActive]),
		Slug:         toString(r[storage.ColumnSlug]),
		CreatedAt:    toTime(r[storage.ColumnCreatedAt]),
		UpdatedAt:    toTime(r[storage.ColumnUpdatedAt]),
	}
}

// jobValues returns the writable columns of a posting.
func jobValues(j *domain.JobPosting) storage.Row {
	return storage.Row{
		storage.ColumnTitle:        j.Title,
		storage.ColumnLocation:     j.Location,
		storage.ColumnJobType:      j.JobType,
		storage.ColumnDescription:  j.Description,
		storage.ColumnRequirements: nonNil(j.Requirements),
		storage.ColumnBenefits:     nonNil(j.Benefits),
		storage.ColumnCategory:     j.Category,
		storage.ColumnIsActive:     j.IsActive,
		storage.ColumnSlug:         j.Slug,
	}
}

func contactFromRow(r storage.Row) domain.ContactInfo {
	return domain.ContactInfo{
		ID:           toInt64(r[storage.ColumnID]),
		Phone1:       toString(r[storage.ColumnPhone1]),
		Phone2:       toString(r[storage.ColumnPhone2]),
		Email1:       toString(r[storage.ColumnEmail1]),
		Email2:       toString(r[storage.ColumnEmail2]),
		AddressLine1: toString(r[storage.ColumnAddressLine1]),
		AddressLine2: toString(r[storage.ColumnAddressLine2]),
		FacebookURL:  toString(r[storage.ColumnFacebookURL]),
		TwitterURL:   toString(r[storage.ColumnTwitterURL]),
		InstagramURL: toString(r[storage.ColumnInstagramURL]),
		LinkedInURL:  toString(r[storage.ColumnLinkedInURL]),
		CreatedAt:    toTime(r[storage.ColumnCreatedAt]),
		UpdatedAt:    toTime(r[storage.ColumnUpdatedAt]),
	}
}

func contactValues(c *domain.ContactInfo) storage.Row {
	return storage.Row{
		storage.ColumnPhone1:       c.Phone1,
		storage.ColumnPhone2:       c.Phone2,
		storage.ColumnEmail1:       c.Email1,
		storage.ColumnEmail2:       c.Email2,
		storage.ColumnAddressLine1: c.AddressLine1,
		storage.ColumnAddressLine2: c.AddressLine2,
		storage.ColumnFacebookURL:  c.FacebookURL,
		storage.ColumnTwitterURL:   c.TwitterURL,
		storage.ColumnInstagramURL: c.InstagramURL,
		storage.ColumnLinkedInURL:  c.LinkedInURL,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Value conversions tolerate both executors: the memory one stores Go types
// as given, pgx decodes bigint as int64, text[] as []any and NULL as nil.

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

func toBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func toTime(v any) time.Time {
	t, _ := v.(time.Time)
	return t
}

func toStrings(v any) []string {
	switch s := v.(type) {
	case []string:
		return append([]string{}, s...)
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return []string{}
}
