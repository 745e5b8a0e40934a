package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/airdroplab/backend/internal/model"
	"github.com/airdroplab/backend/pkg/errorx"
)

func TestAdminSettingsDefaults(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	resp, err := app.AdminSettings(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int64(100), resp.Settings.PointsToUSDCRate)
	require.Equal(t, int64(100), resp.Settings.MinWithdrawal)
	require.Equal(t, int64(10000), resp.Settings.MaxWithdrawal)
	require.False(t, resp.Settings.Maintenance)
}

func TestUpdateAdminSettingsMerges(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	resp, err := app.UpdateAdminSettings(ctx, &model.UpdateAdminSettingsRequest{
		Updates: map[string]any{"maintenance": true, "minWithdrawal": 200},
	})
	require.NoError(t, err)
	require.True(t, resp.Settings.Maintenance)
	require.Equal(t, int64(200), resp.Settings.MinWithdrawal)
	// unspecified fields keep their defaults
	require.Equal(t, int64(100), resp.Settings.PointsToUSDCRate)

	// the stored override now governs withdrawals
	fundUser(t, app, 600)
	_, err = app.Withdraw(ctx, &model.WithdrawRequest{Amount: 150})
	require.True(t, errorx.HasCode(err, errorx.BadRequest))
}

func TestUpdateAdminSettingsValidation(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.UpdateAdminSettings(ctx, &model.UpdateAdminSettingsRequest{
		Updates: map[string]any{"pointsToUSDCRate": 0},
	})
	require.True(t, errorx.HasCode(err, errorx.BadRequest))

	_, err = app.UpdateAdminSettings(ctx, &model.UpdateAdminSettingsRequest{
		Updates: map[string]any{"minWithdrawal": 500, "maxWithdrawal": 100},
	})
	require.True(t, errorx.HasCode(err, errorx.BadRequest))
}

func TestUserSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.UpdateUserSettings(ctx, &model.UpdateUserSettingsRequest{
		Settings: map[string]any{"theme": "dark", "notifications": true},
	})
	require.NoError(t, err)

	resp, err := app.UserSettings(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, "dark", resp.Settings["theme"])
	require.Equal(t, true, resp.Settings["notifications"])
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.CompleteTask(ctx, &model.CompleteTaskRequest{AirdropID: "1", TaskID: "task1"})
	require.NoError(t, err)

	resp, err := app.Stats(ctx, nil)
	require.NoError(t, err)

	stats := resp.Stats
	require.Equal(t, 9, stats.TotalAirdrops)
	require.Equal(t, 1, stats.TotalUsers)
	require.Equal(t, int64(50), stats.TotalPointsEarned)
	require.Equal(t, "$0.50", stats.TotalRewardsDistributed)
	require.Positive(t, stats.ActiveAirdrops)
	require.Zero(t, stats.ConnectedWallets)
}
