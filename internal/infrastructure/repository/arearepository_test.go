package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniticker/internal/domain/area"
	apperrors "miniticker/internal/shared/errors"
)

func newTestArea(t *testing.T, name, prefix string) *area.Area {
	a, err := area.NewArea(name, prefix)
	require.NoError(t, err)
	return a
}

func TestAreaRepository_SaveAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAreaRepository(gdb)
	ctx := context.Background()

	t.Run("save assigns an id and round-trips", func(t *testing.T) {
		a := newTestArea(t, "Information Technology", "TEC")

		require.NoError(t, repo.Save(ctx, a))
		assert.NotZero(t, a.ID())

		found, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, "Information Technology", found.Name())
		assert.Equal(t, "TEC", found.Prefix())
		assert.True(t, found.IsActive())
		assert.Nil(t, found.ResponsibleID())
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		dup := newTestArea(t, "Information Technology", "INF")
		err := repo.Save(ctx, dup)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestAreaRepository_ResponsibleLookup(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAreaRepository(gdb)
	ctx := context.Background()

	a := newTestArea(t, "Finance", "FIN")
	require.NoError(t, repo.Save(ctx, a))

	t.Run("no area for an unassigned user", func(t *testing.T) {
		found, err := repo.GetByResponsibleID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("finds the area after assignment", func(t *testing.T) {
		require.NoError(t, a.SetResponsible(42))
		require.NoError(t, repo.Update(ctx, a))

		found, err := repo.GetByResponsibleID(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, a.ID(), found.ID())
	})

	t.Run("one user cannot be responsible for two areas", func(t *testing.T) {
		other := newTestArea(t, "Facilities", "FAC")
		require.NoError(t, repo.Save(ctx, other))

		require.NoError(t, other.SetResponsible(42))
		err := repo.Update(ctx, other)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestAreaRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAreaRepository(gdb)
	ctx := context.Background()

	a := newTestArea(t, "Human Resources", "HR")
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, a.SetResponsible(7))
	require.NoError(t, repo.Update(ctx, a))

	require.NoError(t, a.Rename("People Operations"))
	a.ClearResponsible()
	a.Deactivate()
	require.NoError(t, repo.Update(ctx, a))

	found, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, "People Operations", found.Name())
	assert.Nil(t, found.ResponsibleID())
	assert.False(t, found.IsActive())
}

func TestAreaRepository_List(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAreaRepository(gdb)
	ctx := context.Background()

	active := newTestArea(t, "Billing", "BIL")
	require.NoError(t, repo.Save(ctx, active))

	inactive := newTestArea(t, "Archive", "ARC")
	inactive.Deactivate()
	require.NoError(t, repo.Save(ctx, inactive))
	require.NoError(t, repo.Update(ctx, inactive))

	t.Run("active only by default", func(t *testing.T) {
		got, err := repo.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Billing", got[0].Name())
	})

	t.Run("include inactive, ordered by name", func(t *testing.T) {
		got, err := repo.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Archive", got[0].Name())
		assert.Equal(t, "Billing", got[1].Name())
	})
}

func TestAreaRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAreaRepository(gdb)
	ctx := context.Background()

	a := newTestArea(t, "Temporary", "TMP")
	require.NoError(t, repo.Save(ctx, a))

	require.NoError(t, repo.Delete(ctx, a.ID()))

	err := repo.Delete(ctx, a.ID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
