package sqlstore

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/hairlog-api/pkg/sqlstore"
	"github.com/breeew/hairlog-api/pkg/types"
	"github.com/breeew/hairlog-api/pkg/utils"
)

func setupIntegrationProvider(t *testing.T) *Provider {
	dsn := os.Getenv("TEST_HAIRLOG_POSTGRESQL_DSN")
	if dsn == "" {
		t.Skip("TEST_HAIRLOG_POSTGRESQL_DSN not set")
	}

	p := NewProvider(sqlstore.MustSetupProvider(sqlstore.ConnectConfig{DSN: dsn}))
	require.NoError(t, p.Install(context.Background()))
	t.Cleanup(func() { p.Close() })
	return p
}

func Test_ProfileCreateIfAbsentConcurrent(t *testing.T) {
	p := setupIntegrationProvider(t)
	utils.SetupIDWorker(1)
	ctx := context.Background()
	userID := "it-" + utils.RandomStr(12)

	_, err := p.ProfileStore().Get(ctx, userID)
	require.ErrorIs(t, err, sql.ErrNoRows)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := p.ProfileStore().CreateIfAbsent(ctx, types.DefaultProfile(utils.GenSpecIDStr(), userID, time.Now().Unix()))
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	profile, err := p.ProfileStore().Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, types.DEFAULT_PROFILE_HEALTH_RATING, profile.HairHealthRating)
}
