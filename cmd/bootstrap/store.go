package bootstrap

import (
	"context"
	"log/slog"

	"gudlft-booking/internal/infra/recordstore"
	"gudlft-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewRecordStore,
	),
)

// NewRecordStore loads both record files. A load failure aborts start-up.
func NewRecordStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*recordstore.Store, error) {
	store, err := recordstore.Open(cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("record store closed")
			return nil
		},
	})

	return store, nil
}
