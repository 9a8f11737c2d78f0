package queries

import (
	"context"

	"gudlft-booking/internal/infra"
	"gudlft-booking/internal/pkg/clock"
	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/usecase/shared"
)

type ClubQueries interface {
	List(ctx context.Context) ([]ClubView, error)
	FindByEmail(ctx context.Context, email string) (*ClubView, error)
	Summary(ctx context.Context, email string) (*SummaryView, error)
	BookingPage(ctx context.Context, competitionName, clubName string) (*BookingPageView, error)
}

type clubQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClubQueries(uow shared.UnitOfWork, clock clock.Clock) ClubQueries {
	return &clubQueriesImpl{
		uow:   uow,
		clock: clock,
	}
}

// List returns every club in file order, used for the public points board.
func (q *clubQueriesImpl) List(ctx context.Context) ([]ClubView, error) {
	return shared.ReadInTx(ctx, q.uow, func(ctx context.Context, tx shared.ReadTx) ([]ClubView, error) {
		clubs, err := tx.Clubs().List(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]ClubView, len(clubs))
		for i, c := range clubs {
			views[i] = NewClubView(c)
		}
		return views, nil
	})
}

func (q *clubQueriesImpl) FindByEmail(ctx context.Context, email string) (*ClubView, error) {
	return shared.ReadInTx(ctx, q.uow, func(ctx context.Context, tx shared.ReadTx) (*ClubView, error) {
		c, err := tx.Clubs().FindByEmail(ctx, email)
		if err != nil {
			return nil, clubLookupErr(err)
		}
		v := NewClubView(c)
		return &v, nil
	})
}

func (q *clubQueriesImpl) Summary(ctx context.Context, email string) (*SummaryView, error) {
	now := q.clock.Now()
	return shared.ReadInTx(ctx, q.uow, func(ctx context.Context, tx shared.ReadTx) (*SummaryView, error) {
		c, err := tx.Clubs().FindByEmail(ctx, email)
		if err != nil {
			return nil, clubLookupErr(err)
		}
		comps, err := tx.Competitions().List(ctx)
		if err != nil {
			return nil, err
		}

		summary := &SummaryView{
			Club:         NewClubView(c),
			Competitions: make([]CompetitionView, len(comps)),
		}
		for i, comp := range comps {
			summary.Competitions[i] = NewCompetitionView(comp, now)
		}
		return summary, nil
	})
}

func (q *clubQueriesImpl) BookingPage(ctx context.Context, competitionName, clubName string) (*BookingPageView, error) {
	now := q.clock.Now()
	return shared.ReadInTx(ctx, q.uow, func(ctx context.Context, tx shared.ReadTx) (*BookingPageView, error) {
		c, err := tx.Clubs().FindByName(ctx, clubName)
		if err != nil {
			return nil, clubLookupErr(err)
		}
		comp, err := tx.Competitions().FindByName(ctx, competitionName)
		if err != nil {
			return nil, competitionLookupErr(err)
		}

		page := &BookingPageView{
			Club:        NewClubView(c),
			Competition: NewCompetitionView(comp, now),
		}
		page.MaxPlaces = MaxBookable(page.Club, page.Competition)
		return page, nil
	})
}

func clubLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrClubNotFound)
	}
	return err
}

func competitionLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrCompetitionNotFound)
	}
	return err
}
