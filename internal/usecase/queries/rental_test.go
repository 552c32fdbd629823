//go:build unit

package queries

import (
	"context"
	"testing"

	"rentigo/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRentalReadStore struct {
	view    *RentalView
	findErr error

	listLimit int32
}

func (f *fakeRentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.view, nil
}

func (f *fakeRentalReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*RentalListItem, error) {
	f.listLimit = limit
	return nil, nil
}

func (f *fakeRentalReadStore) FindAll(ctx context.Context, limit int32) ([]*RentalListItem, error) {
	f.listLimit = limit
	return nil, nil
}

func TestRentalGetByIDAccess(t *testing.T) {
	owner := uuid.New()
	view := &RentalView{ID: uuid.New(), UserID: owner, Status: "ACTIVE"}

	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"owner reads own rental", Actor{ID: owner, Role: "customer"}, nil},
		{"admin reads any rental", Actor{ID: uuid.New(), Role: "admin"}, nil},
		{"stranger is denied", Actor{ID: uuid.New(), Role: "customer"}, ErrRentalAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewRentalQueries(&fakeRentalReadStore{view: view})
			got, err := q.GetByID(context.Background(), tt.actor, view.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestRentalGetByIDNotFound(t *testing.T) {
	store := &fakeRentalReadStore{findErr: infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)}
	q := NewRentalQueries(store)

	_, err := q.GetByID(context.Background(), Actor{ID: uuid.New(), Role: "admin"}, uuid.New())
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestRentalListDefaultsLimit(t *testing.T) {
	store := &fakeRentalReadStore{}
	q := NewRentalQueries(store)

	_, err := q.ListByUser(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(defaultListLimit), store.listLimit)

	_, err = q.ListAll(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int32(10), store.listLimit)
}
