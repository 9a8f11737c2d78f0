//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gudlft-booking/internal/domain/booking"
	"gudlft-booking/internal/domain/club"
	"gudlft-booking/internal/domain/competition"
	"gudlft-booking/internal/infra"
	"gudlft-booking/internal/pkg/clock"
	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/usecase/commands"
	"gudlft-booking/internal/usecase/shared"
	sharedmock "gudlft-booking/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordedOutcome struct {
	Reason    string
	Requested int
}

type fakeRecorder struct {
	outcomes        []recordedOutcome
	persistFailures int
}

func (f *fakeRecorder) RecordOutcome(reason string, requested int) {
	f.outcomes = append(f.outcomes, recordedOutcome{Reason: reason, Requested: requested})
}

func (f *fakeRecorder) RecordPersistFailure() {
	f.persistFailures++
}

type fixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	clubs    *sharedmock.MockClubRepository
	comps    *sharedmock.MockCompetitionRepository
	recorder *fakeRecorder
	cmds     commands.BookingCommands
}

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		clubs:    sharedmock.NewMockClubRepository(ctrl),
		comps:    sharedmock.NewMockCompetitionRepository(ctrl),
		recorder: &fakeRecorder{},
	}
	f.tx.EXPECT().Clubs().Return(f.clubs).AnyTimes()
	f.tx.EXPECT().Competitions().Return(f.comps).AnyTimes()

	clk := clock.NewMockClock(now)
	f.cmds = commands.NewBookingCommands(f.uow, booking.NewLedger(clk), clk, f.recorder, nil)
	return f
}

// runWithin makes the mocked unit of work execute the callback against the
// mocked transaction.
func (f fixture) runWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func newClub(t *testing.T, points int) *club.Club {
	t.Helper()
	c, err := club.NewClub("Iron Temple", "admin@irontemple.com", points)
	require.NoError(t, err)
	return c
}

func newCompetition(t *testing.T, date time.Time, places int) *competition.Competition {
	t.Helper()
	c, err := competition.NewCompetition("Fall Classic", &date, places)
	require.NoError(t, err)
	return c
}

func TestPurchasePlaces(t *testing.T) {
	future := now.Add(30 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name        string
		points      int
		places      int
		date        time.Time
		requested   int
		wantReason  booking.Reason
		wantPoints  int
		wantPlaces  int
		wantSavesOK bool
	}{
		{
			name: "success debits both", points: 13, places: 25, date: future, requested: 3,
			wantReason: booking.ReasonSuccess, wantPoints: 10, wantPlaces: 22, wantSavesOK: true,
		},
		{
			name: "past competition", points: 13, places: 25, date: past, requested: 1,
			wantReason: booking.ReasonPastCompetition, wantPoints: 13, wantPlaces: 25,
		},
		{
			name: "non integer input arrives as zero", points: 13, places: 25, date: future, requested: 0,
			wantReason: booking.ReasonInvalidQuantity, wantPoints: 13, wantPlaces: 25,
		},
		{
			name: "more than available", points: 13, places: 2, date: future, requested: 3,
			wantReason: booking.ReasonInsufficientAvailability, wantPoints: 13, wantPlaces: 2,
		},
		{
			name: "over the per competition cap", points: 20, places: 25, date: future, requested: 13,
			wantReason: booking.ReasonExceedsPerCompetitionLimit, wantPoints: 20, wantPlaces: 25,
		},
		{
			name: "not enough points", points: 4, places: 25, date: future, requested: 5,
			wantReason: booking.ReasonInsufficientPoints, wantPoints: 4, wantPlaces: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			c := newClub(t, tt.points)
			comp := newCompetition(t, tt.date, tt.places)

			f.runWithin()
			f.clubs.EXPECT().FindByName(gomock.Any(), "Iron Temple").Return(c, nil)
			f.comps.EXPECT().FindByName(gomock.Any(), "Fall Classic").Return(comp, nil)
			if tt.wantSavesOK {
				gomock.InOrder(
					f.comps.EXPECT().Save(gomock.Any(), comp).Return(nil),
					f.clubs.EXPECT().Save(gomock.Any(), c).Return(nil),
				)
			}

			result, err := f.cmds.PurchasePlaces(context.Background(), commands.PurchasePlacesParams{
				Club:        "Iron Temple",
				Competition: "Fall Classic",
				Places:      tt.requested,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantReason, result.Outcome.Reason)
			assert.Equal(t, tt.wantPoints, result.Club.Points)
			assert.Equal(t, tt.wantPlaces, result.Competition.NumberOfPlaces)
			assert.Equal(t, tt.wantPoints, c.Points())
			assert.Equal(t, tt.wantPlaces, comp.NumberOfPlaces())

			want := []recordedOutcome{{Reason: tt.wantReason.String(), Requested: tt.requested}}
			if diff := cmp.Diff(want, f.recorder.outcomes); diff != "" {
				t.Errorf("recorded outcomes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPurchasePlacesLookupFailures(t *testing.T) {
	notFound := infra.RepositoryError{Kind: infra.KindNotFound}

	t.Run("unknown club", func(t *testing.T) {
		f := newFixture(t)
		f.runWithin()
		f.clubs.EXPECT().FindByName(gomock.Any(), "Nobody").Return(nil, notFound)

		result, err := f.cmds.PurchasePlaces(context.Background(), commands.PurchasePlacesParams{
			Club: "Nobody", Competition: "Fall Classic", Places: 1,
		})
		assert.Nil(t, result)
		assert.True(t, errs.Is(err, errs.ErrClubNotFound))
		assert.Empty(t, f.recorder.outcomes)
	})

	t.Run("unknown competition", func(t *testing.T) {
		f := newFixture(t)
		f.runWithin()
		f.clubs.EXPECT().FindByName(gomock.Any(), "Iron Temple").Return(newClub(t, 4), nil)
		f.comps.EXPECT().FindByName(gomock.Any(), "Winter Cup").Return(nil, notFound)

		_, err := f.cmds.PurchasePlaces(context.Background(), commands.PurchasePlacesParams{
			Club: "Iron Temple", Competition: "Winter Cup", Places: 1,
		})
		assert.True(t, errs.Is(err, errs.ErrCompetitionNotFound))
		assert.False(t, errs.Is(err, errs.ErrClubNotFound))
	})

	t.Run("other repository errors pass through", func(t *testing.T) {
		f := newFixture(t)
		f.runWithin()
		f.clubs.EXPECT().FindByName(gomock.Any(), "Iron Temple").Return(nil, context.Canceled)

		_, err := f.cmds.PurchasePlaces(context.Background(), commands.PurchasePlacesParams{
			Club: "Iron Temple", Competition: "Fall Classic", Places: 1,
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, errs.Is(err, errs.ErrClubNotFound))
	})
}

func TestPurchasePlacesPersistFailure(t *testing.T) {
	f := newFixture(t)
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		Return(errs.Mark(errors.New("rename clubs.json: is a directory"), shared.ErrCommitFailed))

	result, err := f.cmds.PurchasePlaces(context.Background(), commands.PurchasePlacesParams{
		Club: "Iron Temple", Competition: "Fall Classic", Places: 1,
	})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrPersistenceFailed))
	assert.Equal(t, 1, f.recorder.persistFailures)
	assert.Empty(t, f.recorder.outcomes)
}

func TestPurchasePlacesSuccessiveBookings(t *testing.T) {
	f := newFixture(t)
	c := newClub(t, 13)
	comp := newCompetition(t, now.Add(time.Hour), 13)

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).Times(3)
	f.clubs.EXPECT().FindByName(gomock.Any(), gomock.Any()).Return(c, nil).Times(3)
	f.comps.EXPECT().FindByName(gomock.Any(), gomock.Any()).Return(comp, nil).Times(3)
	f.clubs.EXPECT().Save(gomock.Any(), c).Return(nil).Times(2)
	f.comps.EXPECT().Save(gomock.Any(), comp).Return(nil).Times(2)

	params := commands.PurchasePlacesParams{Club: "Iron Temple", Competition: "Fall Classic", Places: 6}
	var reasons []booking.Reason
	for range 3 {
		result, err := f.cmds.PurchasePlaces(context.Background(), params)
		require.NoError(t, err)
		reasons = append(reasons, result.Outcome.Reason)
	}

	assert.Equal(t, []booking.Reason{
		booking.ReasonSuccess,
		booking.ReasonSuccess,
		booking.ReasonInsufficientAvailability,
	}, reasons)
	assert.Equal(t, 1, c.Points())
	assert.Equal(t, 1, comp.NumberOfPlaces())
}
