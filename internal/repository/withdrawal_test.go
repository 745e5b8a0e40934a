package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/testutil"
)

func TestWithdrawalListMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewWithdrawalRepository(testutil.NewDatabase(ctx))

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		w := testutil.SampleWithdrawal(&entity.Withdrawal{
			ID:        id,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, repo.Save(ctx, &w))
	}

	all, err := repo.GetList(ctx, WithdrawalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "third", all[0].ID)
	require.Equal(t, "second", all[1].ID)
	require.Equal(t, "first", all[2].ID)
}

func TestWithdrawalListFilterByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewWithdrawalRepository(testutil.NewDatabase(ctx))

	mine := testutil.SampleWithdrawal(&entity.Withdrawal{ID: "mine", UserID: "0xabc"})
	other := testutil.SampleWithdrawal(&entity.Withdrawal{ID: "other", UserID: "0xdef"})
	require.NoError(t, repo.Save(ctx, &mine))
	require.NoError(t, repo.Save(ctx, &other))

	got, err := repo.GetList(ctx, WithdrawalFilter{UserID: "0xabc"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "mine", got[0].ID)
}

func TestWithdrawalUpdatePatchesOnlyGivenColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewWithdrawalRepository(testutil.NewDatabase(ctx))

	w := testutil.SampleWithdrawal(&entity.Withdrawal{
		ID:       "w1",
		Username: "0x1234...abcd",
		Amount:   500,
	})
	require.NoError(t, repo.Save(ctx, &w))

	require.NoError(t, repo.Update(ctx, "w1", map[string]any{
		"status":  string(entity.WithdrawalCompleted),
		"tx_hash": "0xdeadbeef",
	}))

	got, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)
	require.Equal(t, entity.WithdrawalCompleted, got.Status)
	require.Equal(t, "0xdeadbeef", got.TxHash)
	require.Equal(t, "0x1234...abcd", got.Username)
	require.Equal(t, int64(500), got.Amount)
}

func TestWithdrawalUpdateEmptyPatchIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewWithdrawalRepository(testutil.NewDatabase(ctx))

	require.NoError(t, repo.Update(ctx, "anything", map[string]any{}))
}

func TestWithdrawalDeleteAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewWithdrawalRepository(testutil.NewDatabase(ctx))

	require.NoError(t, repo.DeleteByID(ctx, "never-existed"))
}

func TestSettingGetSet(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingRepository(testutil.NewDatabase(ctx))

	require.NoError(t, repo.Set(ctx, "admin_settings", `{"maintenance":false}`))
	require.NoError(t, repo.Set(ctx, "admin_settings", `{"maintenance":true}`))

	got, err := repo.Get(ctx, "admin_settings")
	require.NoError(t, err)
	require.Equal(t, `{"maintenance":true}`, got)

	_, err = repo.Get(ctx, "missing")
	require.True(t, IsNotFound(err))
}
