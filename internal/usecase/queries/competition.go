package queries

import (
	"context"

	"gudlft-booking/internal/pkg/clock"
	"gudlft-booking/internal/usecase/shared"
)

type CompetitionQueries interface {
	List(ctx context.Context) ([]CompetitionView, error)
	FindByName(ctx context.Context, name string) (*CompetitionView, error)
}

type competitionQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCompetitionQueries(uow shared.UnitOfWork, clock clock.Clock) CompetitionQueries {
	return &competitionQueriesImpl{
		uow:   uow,
		clock: clock,
	}
}

func (q *competitionQueriesImpl) List(ctx context.Context) ([]CompetitionView, error) {
	now := q.clock.Now()
	return shared.ReadInTx(ctx, q.uow, func(ctx context.Context, tx shared.ReadTx) ([]CompetitionView, error) {
		comps, err := tx.Competitions().List(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]CompetitionView, len(comps))
		for i, c := range comps {
			views[i] = NewCompetitionView(c, now)
		}
		return views, nil
	})
}

func (q *competitionQueriesImpl) FindByName(ctx context.Context, name string) (*CompetitionView, error) {
	now := q.clock.Now()
	return shared.ReadInTx(ctx, q.uow, func(ctx context.Context, tx shared.ReadTx) (*CompetitionView, error) {
		c, err := tx.Competitions().FindByName(ctx, name)
		if err != nil {
			return nil, competitionLookupErr(err)
		}
		v := NewCompetitionView(c, now)
		return &v, nil
	})
}
