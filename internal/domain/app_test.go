package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/repository"
	"github.com/airdroplab/backend/internal/testutil"
	"github.com/airdroplab/backend/internal/wallet"
)

func newAppWithDatabase(t *testing.T, db *database.Database) *App {
	store := testutil.NewKVStore(t.TempDir())
	adapter := wallet.NewAdapter(nil, store, testutil.NewLogger())

	app := NewApp(
		config.Default(),
		testutil.NewLogger(),
		store,
		db,
		adapter,
		repository.NewAirdropRepository(db),
		repository.NewUserRepository(db),
		repository.NewWithdrawalRepository(db),
		repository.NewSettingRepository(db),
	)

	app.Bootstrap(context.Background())
	return app
}

func newTestApp(t *testing.T) *App {
	app := newAppWithDatabase(t, testutil.NewDatabase(context.Background()))
	app.SyncWithStore(context.Background())
	return app
}

// newColdApp has no ready database behind it, only the key-value mirror.
func newColdApp(t *testing.T) *App {
	return newAppWithDatabase(t, testutil.NewClosedDatabase())
}

func TestBootstrapSeedsFixtureCatalog(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Airdrops(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, resp.Airdrops, 9)

	first := resp.Airdrops[0]
	require.Equal(t, "1", first.ID)
	require.Len(t, first.Tasks, 4)

	var total int64
	for _, task := range first.Tasks {
		total += task.Points
	}
	require.Equal(t, int64(150), total)
}

func TestBootstrapStartsWithGuestUser(t *testing.T) {
	app := newColdApp(t)

	user := app.User()
	require.Equal(t, entity.GuestUserID, user.ID)
	require.False(t, user.IsConnected)
	require.Zero(t, user.TotalPoints)
	require.NotNil(t, user.CompletedTasks)
}

func TestSyncWithStorePrefersStoredCatalog(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDatabase(ctx)

	stored := testutil.SampleAirdrop(&entity.Airdrop{ID: "from-db", Title: "Stored"})
	require.NoError(t, repository.NewAirdropRepository(db).Save(ctx, &stored))

	app := newAppWithDatabase(t, db)
	app.SyncWithStore(ctx)

	resp, err := app.Airdrops(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resp.Airdrops, 1)
	require.Equal(t, "from-db", resp.Airdrops[0].ID)

	// the mirror follows the store
	require.Equal(t, "from-db",
		kv.Get(app.store, kv.KeyAirdrops, []entity.Airdrop{})[0].ID)
}

func TestSyncWithStoreSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDatabase(ctx)

	app := newAppWithDatabase(t, db)
	app.SyncWithStore(ctx)

	stored, err := repository.NewAirdropRepository(db).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 9)
}
