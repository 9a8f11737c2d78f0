package repository

import (
	"context"
	"log/slog"

	"gudlft-booking/internal/domain/competition"
	"gudlft-booking/internal/infra"
)

type CompetitionStore interface {
	Competitions() []*competition.Competition
}

type CompetitionRepository struct {
	store  CompetitionStore
	logger *slog.Logger
	onSave func()
}

func NewCompetitionRepository(store CompetitionStore, logger *slog.Logger, onSave func()) *CompetitionRepository {
	return &CompetitionRepository{
		store:  store,
		logger: logger,
		onSave: onSave,
	}
}

func (r *CompetitionRepository) FindByName(ctx context.Context, name string) (*competition.Competition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.store.Competitions() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "competition not found by name "+name, nil)
}

func (r *CompetitionRepository) List(ctx context.Context) ([]*competition.Competition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	comps := r.store.Competitions()
	out := make([]*competition.Competition, len(comps))
	copy(out, comps)
	return out, nil
}

func (r *CompetitionRepository) Save(ctx context.Context, c *competition.Competition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, existing := range r.store.Competitions() {
		if existing == c {
			if r.onSave != nil {
				r.onSave()
			}
			return nil
		}
	}
	return infra.WrapRepoErr(r.logger, infra.KindNotFound, "competition is not part of the store: "+c.Name(), nil)
}
