package shared

import (
	"context"

	"gudlft-booking/internal/domain/club"
	"gudlft-booking/internal/domain/competition"
)

type UnitOfWork interface {
	// Within: exclusive access for booking writes; state is persisted when
	// any repository saved, and rolled back when fn or the write fails
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent reads across clubs and competitions
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

type Tx interface {
	Clubs() ClubRepository
	Competitions() CompetitionRepository
}

type ReadTx interface {
	Clubs() ClubReader
	Competitions() CompetitionReader
}

// Entities returned by readers are live; they must not be used once the
// enclosing unit of work has returned.
type ClubReader interface {
	FindByName(ctx context.Context, name string) (*club.Club, error)
	FindByEmail(ctx context.Context, email string) (*club.Club, error)
	List(ctx context.Context) ([]*club.Club, error)
}

type ClubRepository interface {
	ClubReader
	Save(ctx context.Context, c *club.Club) error
}

type CompetitionReader interface {
	FindByName(ctx context.Context, name string) (*competition.Competition, error)
	List(ctx context.Context) ([]*competition.Competition, error)
}

type CompetitionRepository interface {
	CompetitionReader
	Save(ctx context.Context, c *competition.Competition) error
}
