package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/testutil"
)

func TestUserSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testutil.NewDatabase(ctx))

	user := testutil.SampleUser(&entity.User{
		ID:          "0xabc",
		TotalPoints: 150,
		CompletedTasks: entity.StringArrayMap{
			"1": {"task1", "task2"},
		},
	})
	require.NoError(t, repo.Save(ctx, &user))

	got, err := repo.GetByID(ctx, "0xabc")
	require.NoError(t, err)
	require.Equal(t, int64(150), got.TotalPoints)
	require.Equal(t, user.CompletedTasks, got.CompletedTasks)
}

func TestUserSaveIsUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testutil.NewDatabase(ctx))

	user := testutil.SampleUser(&entity.User{ID: "guest", TotalPoints: 100})
	require.NoError(t, repo.Save(ctx, &user))

	user.TotalPoints = 250
	require.NoError(t, repo.Save(ctx, &user))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, int64(250), all[0].TotalPoints)
}

func TestUserCorruptRowIsSkipped(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewDatabase(ctx)
	repo := NewUserRepository(store)

	good := testutil.SampleUser(&entity.User{ID: "good"})
	bad := testutil.SampleUser(&entity.User{ID: "bad"})
	require.NoError(t, repo.Save(ctx, &good))
	require.NoError(t, repo.Save(ctx, &bad))

	db, err := store.DB(ctx)
	require.NoError(t, err)
	require.NoError(t,
		db.Exec("UPDATE users SET completed_tasks = ? WHERE id = ?", "[broken", "bad").Error)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "good", all[0].ID)
}
