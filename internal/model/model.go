package model

import (
	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/wallet"
)

// AdminStats is a derived view recomputed from the live collections on every
// request. It is never stored.
type AdminStats struct {
	TotalAirdrops           int    `json:"totalAirdrops"`
	ActiveAirdrops          int    `json:"activeAirdrops"`
	TotalUsers              int    `json:"totalUsers"`
	ConnectedWallets        int    `json:"connectedWallets"`
	TotalRewardsDistributed string `json:"totalRewardsDistributed"`
	TotalPointsEarned       int64  `json:"totalPointsEarned"`
}

// SystemSettings is the admin-tunable configuration persisted under the
// admin_settings key.
type SystemSettings struct {
	Maintenance      bool  `json:"maintenance"`
	PointsToUSDCRate int64 `json:"pointsToUSDCRate"`
	MinWithdrawal    int64 `json:"minWithdrawal"`
	MaxWithdrawal    int64 `json:"maxWithdrawal"`
	PlatformFee      int64 `json:"platformFee"`
}

type GetAirdropsRequest struct{}

type GetAirdropsResponse struct {
	Airdrops []entity.Airdrop `json:"airdrops"`
}

type GetAirdropRequest struct {
	ID string `json:"id"`
}

type GetAirdropResponse struct {
	Airdrop entity.Airdrop `json:"airdrop"`
}

type CreateAirdropRequest struct {
	Airdrop entity.Airdrop `json:"airdrop"`
}

type CreateAirdropResponse struct {
	ID string `json:"id"`
}

type UpdateAirdropRequest struct {
	ID      string         `json:"id"`
	Updates map[string]any `json:"updates"`
}

type UpdateAirdropResponse struct{}

type DeleteAirdropRequest struct {
	ID string `json:"id"`
}

type DeleteAirdropResponse struct{}

type CompleteTaskRequest struct {
	AirdropID string `json:"airdropId"`
	TaskID    string `json:"taskId"`
}

type CompleteTaskResponse struct {
	TotalPoints int64 `json:"totalPoints"`
}

type GetUserRequest struct{}

type GetUserResponse struct {
	User entity.User `json:"user"`
}

type GetConnectedUsersRequest struct{}

type GetConnectedUsersResponse struct {
	Users []entity.User `json:"users"`
}

type UpdateUserRequest struct {
	User entity.User `json:"user"`
}

type UpdateUserResponse struct{}

type UpdateUserPointsRequest struct {
	UserID string `json:"userId"`
	Points int64  `json:"points"`
}

type UpdateUserPointsResponse struct{}

type ClaimWelcomeBonusRequest struct{}

type ClaimWelcomeBonusResponse struct {
	Claimed     bool  `json:"claimed"`
	TotalPoints int64 `json:"totalPoints"`
}

type WithdrawRequest struct {
	Amount int64 `json:"amount"`
}

type WithdrawResponse struct {
	Withdrawal entity.Withdrawal `json:"withdrawal"`
}

type GetWithdrawalsRequest struct {
	UserID string `json:"userId"`
}

type GetWithdrawalsResponse struct {
	Withdrawals []entity.Withdrawal `json:"withdrawals"`
}

type CreateWithdrawalRequest struct {
	Withdrawal entity.Withdrawal `json:"withdrawal"`
}

type CreateWithdrawalResponse struct {
	ID string `json:"id"`
}

type UpdateWithdrawalRequest struct {
	ID      string         `json:"id"`
	Updates map[string]any `json:"updates"`
}

type UpdateWithdrawalResponse struct{}

type DeleteWithdrawalRequest struct {
	ID string `json:"id"`
}

type DeleteWithdrawalResponse struct{}

type GetAdminSettingsRequest struct{}

type GetAdminSettingsResponse struct {
	Settings SystemSettings `json:"settings"`
}

type UpdateAdminSettingsRequest struct {
	Updates map[string]any `json:"updates"`
}

type UpdateAdminSettingsResponse struct {
	Settings SystemSettings `json:"settings"`
}

type GetUserSettingsRequest struct{}

type GetUserSettingsResponse struct {
	Settings map[string]any `json:"settings"`
}

type UpdateUserSettingsRequest struct {
	Settings map[string]any `json:"settings"`
}

type UpdateUserSettingsResponse struct{}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	Stats AdminStats `json:"stats"`
}

type ConnectWalletRequest struct{}

type ConnectWalletResponse struct {
	State wallet.State `json:"state"`
}

type DisconnectWalletRequest struct{}

type DisconnectWalletResponse struct{}

type ExportDatabaseRequest struct{}

type ExportDatabaseResponse struct {
	Path string `json:"path"`
}

type ClearDatabaseRequest struct{}

type ClearDatabaseResponse struct{}
