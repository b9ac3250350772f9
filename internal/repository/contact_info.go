package repository

import (
	"context"

	"github.com/dewinson2/MJCL/internal/domain"
)

// ContactInfo defines the data access interface for the contact details row
type ContactInfo interface {
	// GetFirst returns the row with the lowest id, or nil when the table is empty.
	GetFirst(ctx context.Context) (*domain.ContactInfo, error)
	Create(ctx context.Context, info *domain.ContactInfo) (*domain.ContactInfo, error)
	Update(ctx context.Context, id int64, info *domain.ContactInfo) error
}
