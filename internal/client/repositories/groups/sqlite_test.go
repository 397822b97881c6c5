package groups

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
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "groups.db"), store.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s.DB()
}

func TestPersist_InsertAndUpdate(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	g := &models.Group{UserID: 1, Title: "mail", Note: "personal"}
	require.NoError(t, r.Persist(ctx, g))
	require.NotZero(t, g.ID)

	got, err := r.GetByID(ctx, g.ID)
	require.NoError(t, err)
	want := models.Group{ID: g.ID, UserID: 1, Title: "mail", Icon: DefaultIcon, Note: "personal"}
	assert.Empty(t, cmp.Diff(want, *got))

	require.NoError(t, r.MarkSynchronized(ctx, g.ID, 500))
	got, err = r.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, got.Synchronized)
	assert.EqualValues(t, 500, got.ServerID)

	got.Title = "work mail"
	require.NoError(t, r.Persist(ctx, got))
	again, err := r.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "work mail", again.Title)
	assert.False(t, again.Synchronized, "local change resets sync flag")
	assert.EqualValues(t, 500, again.ServerID)
}

func TestPersist_UpdateUnknown(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	err := r.Persist(context.Background(), &models.Group{ID: 99, UserID: 1, Title: "x"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	_, err := r.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListByGroup_HierarchyAndTombstones(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	root := &models.Group{UserID: 1, Title: "root"}
	require.NoError(t, r.Persist(ctx, root))
	childB := &models.Group{UserID: 1, GroupID: root.ID, Title: "b"}
	childA := &models.Group{UserID: 1, GroupID: root.ID, Title: "a"}
	foreign := &models.Group{UserID: 2, GroupID: root.ID, Title: "other user"}
	for _, g := range []*models.Group{childB, childA, foreign} {
		require.NoError(t, r.Persist(ctx, g))
	}

	roots, err := r.ListByGroup(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "root", roots[0].Title)

	children, err := r.ListByGroup(ctx, 1, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].Title)
	assert.Equal(t, "b", children[1].Title)

	require.NoError(t, r.MarkDeleted(ctx, 1, childA.ID))
	children, err = r.ListByGroup(ctx, 1, root.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "b", children[0].Title)

	tomb, err := r.GetByID(ctx, childA.ID)
	require.NoError(t, err)
	assert.True(t, tomb.Deleted)
	assert.False(t, tomb.Synchronized)

	assert.ErrorIs(t, r.MarkDeleted(ctx, 1, childA.ID), common.ErrNotFound, "already deleted")
	assert.ErrorIs(t, r.MarkDeleted(ctx, 1, foreign.ID), common.ErrNotFound, "owned by another user")
}

func TestListPending(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	a := &models.Group{UserID: 1, Title: "a"}
	b := &models.Group{UserID: 1, Title: "b"}
	require.NoError(t, r.Persist(ctx, a))
	require.NoError(t, r.Persist(ctx, b))
	require.NoError(t, r.MarkSynchronized(ctx, a.ID, 10))
	require.NoError(t, r.MarkSynchronized(ctx, b.ID, 11))

	pending, err := r.ListPending(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, r.MarkDeleted(ctx, 1, b.ID))
	pending, err = r.ListPending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, b.ID, pending[0].ID)
	assert.True(t, pending[0].Deleted, "tombstones are pending")
}

func TestMarkSynchronized_Validation(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	assert.ErrorIs(t, r.MarkSynchronized(ctx, 1, 0), common.ErrInvalidServerID)
	assert.ErrorIs(t, r.MarkSynchronized(ctx, 1, -4), common.ErrInvalidServerID)
	assert.ErrorIs(t, r.MarkSynchronized(ctx, 1, 5), common.ErrNotFound)
}
