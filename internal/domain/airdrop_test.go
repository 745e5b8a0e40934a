package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/model"
	"github.com/airdroplab/backend/pkg/errorx"
)

func validAirdrop() entity.Airdrop {
	now := time.Now()
	return entity.Airdrop{
		Title:           "Test Protocol",
		Description:     "A test campaign",
		Status:          entity.AirdropActive,
		Participants:    10,
		MaxParticipants: 100,
		StartDate:       now,
		EndDate:         now.Add(30 * 24 * time.Hour),
	}
}

func TestCreateAirdropAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	first, err := app.CreateAirdrop(ctx, &model.CreateAirdropRequest{Airdrop: validAirdrop()})
	require.NoError(t, err)
	second, err := app.CreateAirdrop(ctx, &model.CreateAirdropRequest{Airdrop: validAirdrop()})
	require.NoError(t, err)

	require.NotEmpty(t, first.ID)
	require.NotEqual(t, first.ID, second.ID)

	resp, err := app.Airdrops(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resp.Airdrops, 11)
}

func TestCreateAirdropValidation(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	noTitle := validAirdrop()
	noTitle.Title = ""
	_, err := app.CreateAirdrop(ctx, &model.CreateAirdropRequest{Airdrop: noTitle})
	require.True(t, errorx.HasCode(err, errorx.BadRequest))

	backwards := validAirdrop()
	backwards.StartDate, backwards.EndDate = backwards.EndDate, backwards.StartDate
	_, err = app.CreateAirdrop(ctx, &model.CreateAirdropRequest{Airdrop: backwards})
	require.True(t, errorx.HasCode(err, errorx.BadRequest))

	badStatus := validAirdrop()
	badStatus.Status = "paused"
	_, err = app.CreateAirdrop(ctx, &model.CreateAirdropRequest{Airdrop: badStatus})
	require.True(t, errorx.HasCode(err, errorx.BadRequest))
}

func TestCreateAirdropClampsParticipants(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	over := validAirdrop()
	over.Participants = 500
	over.MaxParticipants = 100

	resp, err := app.CreateAirdrop(ctx, &model.CreateAirdropRequest{Airdrop: over})
	require.NoError(t, err)

	got, err := app.GetAirdrop(ctx, &model.GetAirdropRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, int64(100), got.Airdrop.Participants)
}

func TestUpdateAirdropShallowMerge(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.UpdateAirdrop(ctx, &model.UpdateAirdropRequest{
		ID: "1",
		Updates: map[string]any{
			"title":  "Renamed",
			"status": "completed",
		},
	})
	require.NoError(t, err)

	got, err := app.GetAirdrop(ctx, &model.GetAirdropRequest{ID: "1"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Airdrop.Title)
	require.Equal(t, entity.AirdropCompleted, got.Airdrop.Status)

	// untouched fields survive the merge
	require.Len(t, got.Airdrop.Tasks, 4)
	require.NotEmpty(t, got.Airdrop.Description)
}

func TestUpdateAirdropUnknownID(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.UpdateAirdrop(ctx, &model.UpdateAirdropRequest{
		ID:      "missing",
		Updates: map[string]any{"title": "x"},
	})
	require.True(t, errorx.HasCode(err, errorx.NotFound))
}

func TestDeleteAirdrop(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.DeleteAirdrop(ctx, &model.DeleteAirdropRequest{ID: "1"})
	require.NoError(t, err)

	_, err = app.GetAirdrop(ctx, &model.GetAirdropRequest{ID: "1"})
	require.True(t, errorx.HasCode(err, errorx.NotFound))

	resp, err := app.Airdrops(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resp.Airdrops, 8)
}

func TestDeleteAbsentAirdropIsNoop(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	_, err := app.DeleteAirdrop(ctx, &model.DeleteAirdropRequest{ID: "never-existed"})
	require.NoError(t, err)

	resp, err := app.Airdrops(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resp.Airdrops, 9)
}
