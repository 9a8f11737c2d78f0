package bootstrap

import (
	"gudlft-booking/cmd/bootstrap/components"
	"gudlft-booking/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(clock.NewRealClock),
	ConfigModule,
	LoggerModule,
	StoreModule,
	MetricsModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
