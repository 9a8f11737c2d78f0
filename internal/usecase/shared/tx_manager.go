package shared

import (
	"context"

	"gudlft-booking/internal/pkg/errs"
)

var (
	ErrCommitFailed   = errs.New("failed to persist unit of work")
	ErrRollbackFailed = errs.New("failed to roll back unit of work")
)

// RunInTx runs fn inside uow.Within and returns its result.
func RunInTx[T any](ctx context.Context, uow UnitOfWork, fn func(ctx context.Context, tx Tx) (T, error)) (T, error) {
	var result T

	err := uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		r, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// ReadInTx is RunInTx for WithinReadOnly.
func ReadInTx[T any](ctx context.Context, uow UnitOfWork, fn func(ctx context.Context, tx ReadTx) (T, error)) (T, error) {
	var result T

	err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx ReadTx) error {
		r, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
