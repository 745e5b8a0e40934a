package domain

import (
	"context"
	"time"

	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/fixture"
	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/model"
	"github.com/airdroplab/backend/pkg/errorx"
)

// ExportDatabase snapshots the relational store to a dated file and reports
// where it landed.
func (a *App) ExportDatabase(
	ctx context.Context, req *model.ExportDatabaseRequest,
) (*model.ExportDatabaseResponse, error) {
	path, err := a.db.Export(time.Now())
	if err != nil {
		if errorx.HasCode(err, errorx.Unavailable) {
			return nil, err
		}

		a.logger.Errorf("Cannot export database: %v", err)
		return nil, errorx.Unknown
	}

	a.logger.Infof("Database exported to %s", path)
	return &model.ExportDatabaseResponse{Path: path}, nil
}

// ClearDatabase truncates every table and resets the in-memory state to the
// seed catalog and a fresh guest user, mirroring both into the key-value
// store.
func (a *App) ClearDatabase(
	ctx context.Context, req *model.ClearDatabaseRequest,
) (*model.ClearDatabaseResponse, error) {
	if err := a.db.Clear(ctx); err != nil {
		if errorx.HasCode(err, errorx.Unavailable) {
			return nil, err
		}

		a.logger.Errorf("Cannot clear database: %v", err)
		return nil, errorx.Unknown
	}

	a.mu.Lock()
	a.airdrops = fixture.Airdrops()
	a.connectedUsers = []entity.User{}
	a.user = newInitialUser("")

	kv.Set(a.store, kv.KeyAirdrops, a.airdrops)
	kv.Set(a.store, kv.KeyConnectedUsers, a.connectedUsers)
	kv.Set(a.store, kv.KeyUser, a.user)
	a.store.Delete(kv.KeyWelcomeBonusClaimed)
	a.mu.Unlock()

	a.logger.Infof("Database cleared")
	return &model.ClearDatabaseResponse{}, nil
}
