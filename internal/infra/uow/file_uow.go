package uow

import (
	"context"
	"log/slog"

	"gudlft-booking/internal/infra/recordstore"
	"gudlft-booking/internal/infra/repository"
	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/usecase/shared"
)

// FileUoW serializes every unit of work on the record store lock, so a
// booking's validate, mutate and persist steps never interleave with
// another request in this process.
type FileUoW struct {
	store  *recordstore.Store
	logger *slog.Logger
}

func NewFileUoW(store *recordstore.Store, logger *slog.Logger) shared.UnitOfWork {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileUoW{
		store:  store,
		logger: logger,
	}
}

func (u *FileUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.Lock()
	defer u.store.Unlock()

	snap := u.store.Snapshot()
	tx := &fileTx{uow: u}

	if err := fn(ctx, tx); err != nil {
		u.rollback(snap)
		return err
	}

	if !tx.dirty {
		return nil
	}

	if err := u.store.Persist(ctx); err != nil {
		u.rollback(snap)
		u.compensate(ctx)
		return errs.Mark(err, shared.ErrCommitFailed)
	}

	return nil
}

func (u *FileUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.Lock()
	defer u.store.Unlock()

	return fn(ctx, &fileReadTx{uow: u})
}

func (u *FileUoW) rollback(snap recordstore.Snapshot) {
	if err := u.store.Restore(snap); err != nil {
		u.logger.Error("rollback failed",
			"error", errs.Mark(err, shared.ErrRollbackFailed).Error())
	}
}

// compensate writes the restored state back so a file replaced before the
// failure no longer carries the rolled-back booking. Best effort.
func (u *FileUoW) compensate(ctx context.Context) {
	if err := u.store.Persist(context.WithoutCancel(ctx)); err != nil {
		u.logger.Error("compensating write failed, files may disagree with memory",
			"error", err.Error())
		return
	}
	u.logger.Warn("compensating write restored files to pre-booking state")
}

type fileTx struct {
	uow   *FileUoW
	dirty bool

	// Lazy-initialized repositories
	clubRepo        shared.ClubRepository
	competitionRepo shared.CompetitionRepository
}

func (t *fileTx) markDirty() {
	t.dirty = true
}

func (t *fileTx) Clubs() shared.ClubRepository {
	if t.clubRepo == nil {
		t.clubRepo = repository.NewClubRepository(t.uow.store, t.uow.logger, t.markDirty)
	}
	return t.clubRepo
}

func (t *fileTx) Competitions() shared.CompetitionRepository {
	if t.competitionRepo == nil {
		t.competitionRepo = repository.NewCompetitionRepository(t.uow.store, t.uow.logger, t.markDirty)
	}
	return t.competitionRepo
}

type fileReadTx struct {
	uow *FileUoW

	clubReader        shared.ClubReader
	competitionReader shared.CompetitionReader
}

func (t *fileReadTx) Clubs() shared.ClubReader {
	if t.clubReader == nil {
		t.clubReader = repository.NewClubRepository(t.uow.store, t.uow.logger, nil)
	}
	return t.clubReader
}

func (t *fileReadTx) Competitions() shared.CompetitionReader {
	if t.competitionReader == nil {
		t.competitionReader = repository.NewCompetitionRepository(t.uow.store, t.uow.logger, nil)
	}
	return t.competitionReader
}
