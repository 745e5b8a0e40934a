package domain

import (
	"context"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/math"

	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/model"
	"github.com/airdroplab/backend/pkg/enum"
	"github.com/airdroplab/backend/pkg/errorx"
	"github.com/airdroplab/backend/pkg/idutil"
)

// Airdrops returns the current catalog.
func (a *App) Airdrops(
	ctx context.Context, req *model.GetAirdropsRequest,
) (*model.GetAirdropsResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return &model.GetAirdropsResponse{
		Airdrops: append([]entity.Airdrop(nil), a.airdrops...),
	}, nil
}

func (a *App) GetAirdrop(
	ctx context.Context, req *model.GetAirdropRequest,
) (*model.GetAirdropResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	airdrop := a.findAirdrop(req.ID)
	if airdrop == nil {
		return nil, errorx.New(errorx.NotFound, "Airdrop not found")
	}

	return &model.GetAirdropResponse{Airdrop: *airdrop}, nil
}

// CreateAirdrop adds a campaign under a freshly generated id. The time
// window is validated here, at the creating surface, not in the storage
// layer.
func (a *App) CreateAirdrop(
	ctx context.Context, req *model.CreateAirdropRequest,
) (*model.CreateAirdropResponse, error) {
	airdrop := req.Airdrop
	if airdrop.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Title must not be empty")
	}

	if !airdrop.StartDate.Before(airdrop.EndDate) {
		return nil, errorx.New(errorx.BadRequest, "Start date must be before end date")
	}

	if _, err := enum.ToEnum[entity.AirdropStatus](string(airdrop.Status)); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", airdrop.Status)
	}

	airdrop.ID = idutil.New()
	airdrop.CreatedAt = time.Now()
	airdrop.Participants = clampParticipants(airdrop)
	if airdrop.Tasks == nil {
		airdrop.Tasks = entity.Array[entity.Task]{}
	}
	if airdrop.Requirements == nil {
		airdrop.Requirements = entity.Array[string]{}
	}

	a.mu.Lock()
	a.airdrops = append(a.airdrops, airdrop)
	kv.Set(a.store, kv.KeyAirdrops, a.airdrops)
	a.mu.Unlock()

	a.saveAirdropToStore(ctx, airdrop)
	return &model.CreateAirdropResponse{ID: airdrop.ID}, nil
}

// UpdateAirdrop applies a shallow merge of the supplied fields over the
// existing record; unspecified fields keep their values.
func (a *App) UpdateAirdrop(
	ctx context.Context, req *model.UpdateAirdropRequest,
) (*model.UpdateAirdropResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	existing := a.findAirdrop(req.ID)
	if existing == nil {
		return nil, errorx.New(errorx.NotFound, "Airdrop not found")
	}

	merged := *existing
	if err := decodePatch(req.Updates, &merged); err != nil {
		a.logger.Debugf("Invalid airdrop patch: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid update payload")
	}

	merged.ID = existing.ID
	merged.Participants = clampParticipants(merged)
	*existing = merged

	kv.Set(a.store, kv.KeyAirdrops, a.airdrops)
	a.saveAirdropToStore(ctx, merged)
	return &model.UpdateAirdropResponse{}, nil
}

// DeleteAirdrop removes the campaign. Deleting an unknown id changes
// nothing and is not an error.
func (a *App) DeleteAirdrop(
	ctx context.Context, req *model.DeleteAirdropRequest,
) (*model.DeleteAirdropResponse, error) {
	a.mu.Lock()

	kept := a.airdrops[:0]
	for _, airdrop := range a.airdrops {
		if airdrop.ID != req.ID {
			kept = append(kept, airdrop)
		}
	}
	a.airdrops = kept

	kv.Set(a.store, kv.KeyAirdrops, a.airdrops)
	a.mu.Unlock()

	if a.db.Ready() {
		if err := a.airdropRepo.DeleteByID(ctx, req.ID); err != nil {
			a.logger.Errorf("Cannot delete airdrop %s: %v", req.ID, err)
		}
	}

	return &model.DeleteAirdropResponse{}, nil
}

// clampParticipants keeps the participant count within the campaign cap. A
// zero cap means unbounded.
func clampParticipants(airdrop entity.Airdrop) int64 {
	if airdrop.MaxParticipants <= 0 {
		return airdrop.Participants
	}

	return math.MinInt64(airdrop.Participants, airdrop.MaxParticipants)
}

func (a *App) findAirdrop(id string) *entity.Airdrop {
	for i := range a.airdrops {
		if a.airdrops[i].ID == id {
			return &a.airdrops[i]
		}
	}

	return nil
}

func (a *App) saveAirdropToStore(ctx context.Context, airdrop entity.Airdrop) {
	if !a.db.Ready() {
		return
	}

	if err := a.airdropRepo.Save(ctx, &airdrop); err != nil {
		a.logger.Errorf("Cannot save airdrop %s: %v", airdrop.ID, err)
	}
}

// decodePatch merges a loosely-typed field map onto target, matching keys
// against json tags and converting string timestamps.
func decodePatch(updates map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(updates)
}
