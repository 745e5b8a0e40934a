package domain

import (
	"context"
	"fmt"

	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/model"
)

// Stats derives the admin dashboard numbers from the live collections. The
// result is computed per call and never stored.
func (a *App) Stats(
	ctx context.Context, req *model.GetStatsRequest,
) (*model.GetStatsResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := model.AdminStats{
		TotalAirdrops: len(a.airdrops),
		TotalUsers:    len(a.connectedUsers),
	}

	for _, airdrop := range a.airdrops {
		if airdrop.Status == entity.AirdropActive {
			stats.ActiveAirdrops++
		}
	}

	for _, user := range a.connectedUsers {
		if user.IsConnected {
			stats.ConnectedWallets++
		}

		stats.TotalPointsEarned += user.TotalPoints
	}

	rate := a.systemSettingsLocked().PointsToUSDCRate
	if rate <= 0 {
		rate = a.cfg.Reward.PointsToUSDCRate
	}

	stats.TotalRewardsDistributed = fmt.Sprintf("$%.2f",
		float64(stats.TotalPointsEarned)/float64(rate))

	return &model.GetStatsResponse{Stats: stats}, nil
}
