package main

import (
	"net/http"

	"github.com/airdroplab/backend/api"
	"github.com/airdroplab/backend/internal/model"
)

type controller interface {
	Register(router *api.Router)
}

func (s *srv) loadEndpoints() {
	s.router = api.NewRouter(s.configs, s.logger)

	public := []api.Handler{api.RequestLogger, api.AdminGate(s.store)}
	admin := []api.Handler{api.RequestLogger, api.AdminGate(s.store), api.RequireAdmin}

	controllers := []controller{
		&api.Endpoint[model.GetAirdropsRequest, model.GetAirdropsResponse]{
			Method: http.MethodGet,
			Path:   "/airdrops",
			Before: public,
			Handle: s.app.Airdrops,
		},
		&api.Endpoint[model.GetAirdropRequest, model.GetAirdropResponse]{
			Method: http.MethodGet,
			Path:   "/airdrops/get",
			Before: public,
			Handle: s.app.GetAirdrop,
		},
		&api.Endpoint[model.CreateAirdropRequest, model.CreateAirdropResponse]{
			Method: http.MethodPost,
			Path:   "/airdrops/create",
			Before: admin,
			Handle: s.app.CreateAirdrop,
		},
		&api.Endpoint[model.UpdateAirdropRequest, model.UpdateAirdropResponse]{
			Method: http.MethodPost,
			Path:   "/airdrops/update",
			Before: admin,
			Handle: s.app.UpdateAirdrop,
		},
		&api.Endpoint[model.DeleteAirdropRequest, model.DeleteAirdropResponse]{
			Method: http.MethodDelete,
			Path:   "/airdrops/delete",
			Before: admin,
			Handle: s.app.DeleteAirdrop,
		},

		&api.Endpoint[model.CompleteTaskRequest, model.CompleteTaskResponse]{
			Method: http.MethodPost,
			Path:   "/tasks/complete",
			Before: public,
			Handle: s.app.CompleteTask,
		},

		&api.Endpoint[model.GetUserRequest, model.GetUserResponse]{
			Method: http.MethodGet,
			Path:   "/users/me",
			Before: public,
			Handle: s.app.GetUser,
		},
		&api.Endpoint[model.GetConnectedUsersRequest, model.GetConnectedUsersResponse]{
			Method: http.MethodGet,
			Path:   "/users",
			Before: admin,
			Handle: s.app.GetConnectedUsers,
		},
		&api.Endpoint[model.UpdateUserRequest, model.UpdateUserResponse]{
			Method: http.MethodPost,
			Path:   "/users/update",
			Before: public,
			Handle: s.app.UpdateUser,
		},
		&api.Endpoint[model.UpdateUserPointsRequest, model.UpdateUserPointsResponse]{
			Method: http.MethodPost,
			Path:   "/users/points",
			Before: admin,
			Handle: s.app.UpdateUserPoints,
		},
		&api.Endpoint[model.ClaimWelcomeBonusRequest, model.ClaimWelcomeBonusResponse]{
			Method: http.MethodPost,
			Path:   "/users/welcome-bonus",
			Before: public,
			Handle: s.app.ClaimWelcomeBonus,
		},

		&api.Endpoint[model.WithdrawRequest, model.WithdrawResponse]{
			Method: http.MethodPost,
			Path:   "/withdrawals/withdraw",
			Before: public,
			Handle: s.app.Withdraw,
		},
		&api.Endpoint[model.GetWithdrawalsRequest, model.GetWithdrawalsResponse]{
			Method: http.MethodGet,
			Path:   "/withdrawals",
			Before: public,
			Handle: s.app.GetWithdrawals,
		},
		&api.Endpoint[model.CreateWithdrawalRequest, model.CreateWithdrawalResponse]{
			Method: http.MethodPost,
			Path:   "/withdrawals/create",
			Before: admin,
			Handle: s.app.CreateWithdrawal,
		},
		&api.Endpoint[model.UpdateWithdrawalRequest, model.UpdateWithdrawalResponse]{
			Method: http.MethodPost,
			Path:   "/withdrawals/update",
			Before: admin,
			Handle: s.app.UpdateWithdrawal,
		},
		&api.Endpoint[model.DeleteWithdrawalRequest, model.DeleteWithdrawalResponse]{
			Method: http.MethodDelete,
			Path:   "/withdrawals/delete",
			Before: admin,
			Handle: s.app.DeleteWithdrawal,
		},

		&api.Endpoint[model.GetUserSettingsRequest, model.GetUserSettingsResponse]{
			Method: http.MethodGet,
			Path:   "/settings",
			Before: public,
			Handle: s.app.UserSettings,
		},
		&api.Endpoint[model.UpdateUserSettingsRequest, model.UpdateUserSettingsResponse]{
			Method: http.MethodPost,
			Path:   "/settings/update",
			Before: public,
			Handle: s.app.UpdateUserSettings,
		},

		&api.Endpoint[model.ConnectWalletRequest, model.ConnectWalletResponse]{
			Method: http.MethodPost,
			Path:   "/wallet/connect",
			Before: public,
			Handle: s.app.ConnectWallet,
		},
		&api.Endpoint[model.DisconnectWalletRequest, model.DisconnectWalletResponse]{
			Method: http.MethodPost,
			Path:   "/wallet/disconnect",
			Before: public,
			Handle: s.app.DisconnectWallet,
		},

		&api.Endpoint[model.GetStatsRequest, model.GetStatsResponse]{
			Method: http.MethodGet,
			Path:   "/admin/stats",
			Before: admin,
			Handle: s.app.Stats,
		},
		&api.Endpoint[model.GetAdminSettingsRequest, model.GetAdminSettingsResponse]{
			Method: http.MethodGet,
			Path:   "/admin/settings",
			Before: admin,
			Handle: s.app.AdminSettings,
		},
		&api.Endpoint[model.UpdateAdminSettingsRequest, model.UpdateAdminSettingsResponse]{
			Method: http.MethodPost,
			Path:   "/admin/settings/update",
			Before: admin,
			Handle: s.app.UpdateAdminSettings,
		},
		&api.Endpoint[model.ExportDatabaseRequest, model.ExportDatabaseResponse]{
			Method: http.MethodPost,
			Path:   "/admin/export",
			Before: admin,
			Handle: s.app.ExportDatabase,
		},
		&api.Endpoint[model.ClearDatabaseRequest, model.ClearDatabaseResponse]{
			Method: http.MethodPost,
			Path:   "/admin/clear",
			Before: admin,
			Handle: s.app.ClearDatabase,
		},
	}

	for _, c := range controllers {
		c.Register(s.router)
	}
}
