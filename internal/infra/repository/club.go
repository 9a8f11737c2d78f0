package repository

import (
	"context"
	"log/slog"

	"gudlft-booking/internal/domain/club"
	"gudlft-booking/internal/infra"
)

type ClubStore interface {
	Clubs() []*club.Club
}

// ClubRepository looks clubs up in the loaded collection. It is scoped to a
// single unit of work, which holds the store lock for its lifetime.
type ClubRepository struct {
	store  ClubStore
	logger *slog.Logger
	onSave func()
}

func NewClubRepository(store ClubStore, logger *slog.Logger, onSave func()) *ClubRepository {
	return &ClubRepository{
		store:  store,
		logger: logger,
		onSave: onSave,
	}
}

func (r *ClubRepository) FindByName(ctx context.Context, name string) (*club.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.store.Clubs() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "club not found by name "+name, nil)
}

func (r *ClubRepository) FindByEmail(ctx context.Context, email string) (*club.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.store.Clubs() {
		if c.HasEmail(email) {
			return c, nil
		}
	}
	return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "club not found by email "+email, nil)
}

func (r *ClubRepository) List(ctx context.Context) ([]*club.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clubs := r.store.Clubs()
	out := make([]*club.Club, len(clubs))
	copy(out, clubs)
	return out, nil
}

// Save marks the club for persistence at the end of the unit of work. Only
// clubs that came from this store can be saved.
func (r *ClubRepository) Save(ctx context.Context, c *club.Club) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, existing := range r.store.Clubs() {
		if existing == c {
			if r.onSave != nil {
				r.onSave()
			}
			return nil
		}
	}
	return infra.WrapRepoErr(r.logger, infra.KindNotFound, "club is not part of the store: "+c.Name(), nil)
}
