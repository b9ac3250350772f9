package repository

import (
	"context"
	"time"

	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/storage"
)

type contactInfoStore struct {
	client *storage.Client
	now    func() time.Time
}

// NewContactInfoRepository creates a contact info repository over the facade
func NewContactInfoRepository(client *storage.Client) ContactInfo {
	return &contactInfoStore{client: client, now: time.Now}
}

func (s *contactInfoStore) GetFirst(ctx context.Context) (*domain.ContactInfo, error) {
	row, err := s.client.From(storage.TableContactInfo).Select().
		Order(storage.ColumnID, true).
		Limit(1).
		Single(ctx)
	if err != nil {
		return nil, wrapStorageError("get contact info", err)
	}
	if row == nil {
		return nil, nil
	}
	info := contactFromRow(row)
	return &info, nil
}

func (s *contactInfoStore) Create(ctx context.Context, info *domain.ContactInfo) (*domain.ContactInfo, error) {
	now := s.now()
	values := contactValues(info)
	values[storage.ColumnCreatedAt] = now
	values[storage.ColumnUpdatedAt] = now

	row, err := s.client.From(storage.TableContactInfo).Insert(ctx, values)
	if err != nil {
		return nil, wrapStorageError("create contact info", err)
	}
	created := contactFromRow(row)
	return &created, nil
}

func (s *contactInfoStore) Update(ctx context.Context, id int64, info *domain.ContactInfo) error {
	values := contactValues(info)
	values[storage.ColumnUpdatedAt] = s.now()

	_, err := s.client.From(storage.TableContactInfo).Update(values).
		Eq(storage.ColumnID, id).
		Exec(ctx)
	if err != nil {
		return wrapStorageError("update contact info", err)
	}
	return nil
}
