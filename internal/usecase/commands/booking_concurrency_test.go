//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gudlft-booking/internal/domain/booking"
	"gudlft-booking/internal/infra/recordstore"
	"gudlft-booking/internal/infra/uow"
	"gudlft-booking/internal/pkg/clock"
	"gudlft-booking/internal/pkg/config"
	"gudlft-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchasePlacesConcurrent(t *testing.T) {
	const (
		startPoints = 5
		startPlaces = 25
		workers     = 20
	)

	dir := t.TempDir()
	cfg := config.StoreConfig{
		ClubsPath:        filepath.Join(dir, "clubs.json"),
		CompetitionsPath: filepath.Join(dir, "competitions.json"),
		DateLayout:       "2006-01-02 15:04:05",
		TimeZone:         "UTC",
	}
	require.NoError(t, os.WriteFile(cfg.ClubsPath,
		[]byte(`{"clubs":[{"name":"She Lifts","email":"kate@shelifts.co.uk","points":"5"}]}`), 0o644))
	require.NoError(t, os.WriteFile(cfg.CompetitionsPath,
		[]byte(`{"competitions":[{"name":"Winter Open","date":"2030-01-16 09:00:00","numberOfPlaces":"25"}]}`), 0o644))

	store, err := recordstore.Open(cfg, nil)
	require.NoError(t, err)

	clk := clock.NewMockClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	cmds := commands.NewBookingCommands(uow.NewFileUoW(store, nil), booking.NewLedger(clk), clk, nil, nil)

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		rejected  atomic.Int32
		failures  atomic.Int32
	)
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := cmds.PurchasePlaces(context.Background(), commands.PurchasePlacesParams{
				Club: "She Lifts", Competition: "Winter Open", Places: 1,
			})
			switch {
			case err != nil:
				failures.Add(1)
			case res.Outcome.Reason.IsSuccess():
				successes.Add(1)
			case res.Outcome.Reason == booking.ReasonInsufficientPoints:
				rejected.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Zero(t, failures.Load())
	assert.EqualValues(t, startPoints, successes.Load())
	assert.EqualValues(t, workers-startPoints, rejected.Load())

	assertState := func(t *testing.T, s *recordstore.Store) {
		t.Helper()
		s.Lock()
		defer s.Unlock()
		clubs, comps := s.Clubs(), s.Competitions()
		require.Len(t, clubs, 1)
		require.Len(t, comps, 1)
		assert.Equal(t, startPoints-int(successes.Load()), clubs[0].Points())
		assert.Equal(t, startPlaces-int(successes.Load()), comps[0].NumberOfPlaces())
		assert.GreaterOrEqual(t, clubs[0].Points(), 0)
	}

	t.Run("in memory", func(t *testing.T) {
		assertState(t, store)
	})

	t.Run("reloaded from disk", func(t *testing.T) {
		reloaded, err := recordstore.Open(cfg, nil)
		require.NoError(t, err)
		assertState(t, reloaded)
	})
}
