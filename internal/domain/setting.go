package domain

import (
	"context"
	"encoding/json"

	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/model"
	"github.com/airdroplab/backend/pkg/errorx"
)

// AdminSettings returns the effective system settings: stored overrides when
// present, configured defaults otherwise.
func (a *App) AdminSettings(
	ctx context.Context, req *model.GetAdminSettingsRequest,
) (*model.GetAdminSettingsResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return &model.GetAdminSettingsResponse{Settings: a.systemSettingsLocked()}, nil
}

// UpdateAdminSettings merges the supplied fields over the effective settings
// and persists the result to both backends.
func (a *App) UpdateAdminSettings(
	ctx context.Context, req *model.UpdateAdminSettingsRequest,
) (*model.UpdateAdminSettingsResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings := a.systemSettingsLocked()
	if err := decodePatch(req.Updates, &settings); err != nil {
		a.logger.Debugf("Invalid settings patch: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid update payload")
	}

	if settings.PointsToUSDCRate <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Conversion rate must be positive")
	}

	if settings.MinWithdrawal < 0 || settings.MaxWithdrawal < settings.MinWithdrawal {
		return nil, errorx.New(errorx.BadRequest, "Invalid withdrawal limits")
	}

	kv.Set(a.store, kv.KeyAdminSettings, settings)
	a.saveSettingToStore(ctx, kv.KeyAdminSettings, settings)
	return &model.UpdateAdminSettingsResponse{Settings: settings}, nil
}

// UserSettings returns the free-form per-user preferences.
func (a *App) UserSettings(
	ctx context.Context, req *model.GetUserSettingsRequest,
) (*model.GetUserSettingsResponse, error) {
	settings := kv.Get(a.store, kv.KeyUserSettings, map[string]any{})
	return &model.GetUserSettingsResponse{Settings: settings}, nil
}

// UpdateUserSettings replaces the per-user preferences wholesale.
func (a *App) UpdateUserSettings(
	ctx context.Context, req *model.UpdateUserSettingsRequest,
) (*model.UpdateUserSettingsResponse, error) {
	settings := req.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	kv.Set(a.store, kv.KeyUserSettings, settings)
	a.saveSettingToStore(ctx, kv.KeyUserSettings, settings)
	return &model.UpdateUserSettingsResponse{}, nil
}

// systemSettingsLocked resolves the effective settings with configured
// defaults for fields never overridden. Callers hold a.mu.
func (a *App) systemSettingsLocked() model.SystemSettings {
	return kv.Get(a.store, kv.KeyAdminSettings, model.SystemSettings{
		PointsToUSDCRate: a.cfg.Reward.PointsToUSDCRate,
		MinWithdrawal:    a.cfg.Withdraw.MinAmount,
		MaxWithdrawal:    a.cfg.Withdraw.MaxAmount,
	})
}

func (a *App) saveSettingToStore(ctx context.Context, key string, value any) {
	if !a.db.Ready() {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		a.logger.Warnf("Cannot serialize setting %s: %v", key, err)
		return
	}

	if err := a.settingRepo.Set(ctx, key, string(b)); err != nil {
		a.logger.Errorf("Cannot save setting %s: %v", key, err)
	}
}
