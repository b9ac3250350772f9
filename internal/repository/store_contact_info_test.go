package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/storage"
	"github.com/dewinson2/MJCL/internal/storage/memory"
)

func newContactRepo(opts ...memory.Option) *contactInfoStore {
	repo := NewContactInfoRepository(storage.NewClient(memory.New(opts...))).(*contactInfoStore)
	repo.now = func() time.Time { return fixedNow }
	return repo
}

func TestContactInfoStore_GetFirst(t *testing.T) {
	repo := newContactRepo()

	info, err := repo.GetFirst(context.Background())

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, int64(1), info.ID)
	assert.Equal(t, "info@mjclservicios.com", info.Email1)
}

func TestContactInfoStore_GetFirstEmpty(t *testing.T) {
	repo := newContactRepo(memory.WithoutSeed())

	info, err := repo.GetFirst(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestContactInfoStore_CreateThenUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newContactRepo(memory.WithoutSeed())

	created, err := repo.Create(ctx, &domain.ContactInfo{Phone1: "1", Email1: "a@b.co", AddressLine1: "Calle 1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)

	created.Phone2 = "2"
	require.NoError(t, repo.Update(ctx, created.ID, created))

	got, err := repo.GetFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", got.Phone2)
	assert.Equal(t, "Calle 1", got.AddressLine1)
}

func TestContactInfoStore_StorageError(t *testing.T) {
	exec := new(MockExecutor)
	exec.On("Select", mock.Anything, mock.MatchedBy(func(q storage.Select) bool {
		return q.Table == storage.TableContactInfo &&
			q.Order != nil && q.Order.Column == storage.ColumnID && q.Order.Ascending &&
			q.Limit == 1
	})).Return(nil, errors.New("timeout"))
	repo := NewContactInfoRepository(storage.NewClient(exec))

	info, err := repo.GetFirst(context.Background())

	assert.Nil(t, info)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	exec.AssertExpectations(t)
}
