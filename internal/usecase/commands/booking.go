package commands

import (
	"context"
	"log/slog"

	"gudlft-booking/internal/domain/booking"
	"gudlft-booking/internal/infra"
	"gudlft-booking/internal/pkg/clock"
	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/pkg/metrics"
	"gudlft-booking/internal/usecase/queries"
	"gudlft-booking/internal/usecase/shared"
)

type BookingCommands interface {
	PurchasePlaces(ctx context.Context, params PurchasePlacesParams) (*PurchaseResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   *booking.Ledger
	clock    clock.Clock
	recorder metrics.BookingRecorder
	logger   *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	ledger *booking.Ledger,
	clock clock.Clock,
	recorder metrics.BookingRecorder,
	logger *slog.Logger,
) BookingCommands {
	if recorder == nil {
		recorder = metrics.Noop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingCommandsImpl{
		uow:      uow,
		ledger:   ledger,
		clock:    clock,
		recorder: recorder,
		logger:   logger,
	}
}

// PurchasePlaces resolves both parties, runs the ledger and persists the
// pair when the booking succeeds. Everything happens in one unit of work.
func (b *bookingCommandsImpl) PurchasePlaces(ctx context.Context, params PurchasePlacesParams) (*PurchaseResult, error) {
	result, err := shared.RunInTx(ctx, b.uow, func(ctx context.Context, tx shared.Tx) (*PurchaseResult, error) {
		c, err := tx.Clubs().FindByName(ctx, params.Club)
		if err != nil {
			return nil, lookupErr(err, errs.ErrClubNotFound)
		}
		comp, err := tx.Competitions().FindByName(ctx, params.Competition)
		if err != nil {
			return nil, lookupErr(err, errs.ErrCompetitionNotFound)
		}

		outcome, err := b.ledger.Attempt(c, comp, params.Places)
		if err != nil {
			return nil, errs.Wrap(err, "booking attempt")
		}

		if outcome.Reason.IsSuccess() {
			if err := tx.Competitions().Save(ctx, comp); err != nil {
				return nil, err
			}
			if err := tx.Clubs().Save(ctx, c); err != nil {
				return nil, err
			}
		}

		return &PurchaseResult{
			Outcome:     outcome,
			Club:        queries.NewClubView(c),
			Competition: queries.NewCompetitionView(comp, b.clock.Now()),
		}, nil
	})
	if err != nil {
		if errs.Is(err, shared.ErrCommitFailed) {
			b.recorder.RecordPersistFailure()
			b.logger.ErrorContext(ctx, "booking rolled back, record files not written",
				"club", params.Club,
				"competition", params.Competition,
				"places", params.Places,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, 5))
			return nil, errs.Mark(err, errs.ErrPersistenceFailed)
		}
		return nil, err
	}

	b.recorder.RecordOutcome(result.Outcome.Reason.String(), params.Places)

	logArgs := []any{
		"club", params.Club,
		"competition", params.Competition,
		"places", params.Places,
		"reason", result.Outcome.Reason.String(),
	}
	if result.Outcome.Reason.IsSuccess() {
		b.logger.InfoContext(ctx, "booking complete", append(logArgs,
			"points_remaining", result.Outcome.PointsRemaining,
			"places_remaining", result.Outcome.PlacesRemaining)...)
	} else {
		b.logger.InfoContext(ctx, "booking rejected", logArgs...)
	}

	return result, nil
}

func lookupErr(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return err
}
