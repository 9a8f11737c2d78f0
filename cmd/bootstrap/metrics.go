package bootstrap

import (
	"gudlft-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(r *metrics.Registry) metrics.BookingRecorder { return r },
	),
)
