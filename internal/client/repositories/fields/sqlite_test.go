package fields

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/client/store"
	"github.com/dmitrijs2005/pocket/internal/common"
	"github.com/dmitrijs2005/pocket/internal/dbx"
)

func setupDB(t *testing.T) dbx.DBTX {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "fields.db"), store.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s.DB()
}

func TestPersist_InsertThenUpdate(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	f := &models.Field{UserID: 1, GroupID: 2, GroupFieldID: 3, Title: "password", Value: "hunter2", IsHidden: true}
	require.NoError(t, r.Persist(ctx, f))
	require.NotZero(t, f.ID)

	got, err := r.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(*f, *got))

	require.NoError(t, r.MarkSynchronized(ctx, f.ID, 9))
	got.Value = "correct horse"
	require.NoError(t, r.Persist(ctx, got))

	again, err := r.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "correct horse", again.Value)
	assert.False(t, again.Synchronized)
	assert.EqualValues(t, 9, again.ServerID)
}

func TestListByGroupAndMarkGroupDeleted(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, title := range []string{"login", "password"} {
		require.NoError(t, r.Persist(ctx, &models.Field{UserID: 1, GroupID: 2, Title: title, Value: "v"}))
	}
	require.NoError(t, r.Persist(ctx, &models.Field{UserID: 1, GroupID: 5, Title: "other", Value: "v"}))

	list, err := r.ListByGroup(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, r.MarkDeleted(ctx, 1, list[0].ID))
	list, err = r.ListByGroup(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "password", list[0].Title)

	n, err := r.MarkGroupDeleted(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	list, err = r.ListByGroup(ctx, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, list)

	pending, err := r.ListPending(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, pending, 3, "tombstones and the untouched field are pending")
}

func TestErrors(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, 1)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, r.MarkDeleted(ctx, 1, 1), common.ErrNotFound)
	assert.ErrorIs(t, r.MarkSynchronized(ctx, 1, -1), common.ErrInvalidServerID)
	assert.ErrorIs(t, r.Persist(ctx, &models.Field{ID: 8, Title: "x", Value: "y"}), common.ErrNotFound)
}
