package components

import (
	"log/slog"

	"gudlft-booking/internal/handler"
	"gudlft-booking/internal/handler/api"
	"gudlft-booking/internal/handler/middleware"
	"gudlft-booking/internal/pkg/config"
	"gudlft-booking/internal/pkg/jwt"
	"gudlft-booking/internal/usecase"
	"gudlft-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewBoardHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		NewSessionMiddleware,
		func(board *api.BoardHandler, booking *api.BookingHandler, catalog *api.CatalogHandler) handler.Handlers {
			return handler.Handlers{Board: board, Booking: booking, Catalog: catalog}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewSessionMiddleware(v usecase.TokenValidator, cfg config.Config, logger *slog.Logger) *middleware.SessionMiddleware {
	return middleware.NewSessionMiddleware(v, cfg.Session, logger)
}

func NewBoardHandler(clubQ queries.ClubQueries, jwtService *jwt.Service, cfg config.Config, logger *slog.Logger) *api.BoardHandler {
	return api.NewBoardHandler(clubQ, jwtService, cfg.Session, logger)
}
