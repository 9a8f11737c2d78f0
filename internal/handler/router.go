package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gudlft-booking/internal/handler/api"
	"gudlft-booking/internal/handler/middleware"
	"gudlft-booking/internal/handler/web"
	"gudlft-booking/internal/pkg/config"
	"gudlft-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Board   *api.BoardHandler
	Booking *api.BookingHandler
	Catalog *api.CatalogHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	sessionMiddleware *middleware.SessionMiddleware,
	registry *metrics.Registry,
) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	setupMiddleware(engine, logger)
	setupRoutes(engine, cfg, logger.GetSlogLogger(), handlers, sessionMiddleware, registry)
	return nil
}

func setupMiddleware(engine *gin.Engine, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	h Handlers,
	sessionMiddleware *middleware.SessionMiddleware,
	registry *metrics.Registry,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(registry.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	pages := engine.Group("")
	pages.Use(sessionMiddleware.LoadSession())
	{
		addRoutes(pages, []route{
			{Method: http.MethodGet, Path: "/", Handler: h.Board.Index},
			{Method: http.MethodPost, Path: "/showSummary", Handler: h.Board.ShowSummary},
			{Method: http.MethodGet, Path: "/summary", Handler: h.Board.Summary, Mw: []gin.HandlerFunc{sessionMiddleware.RequireSession()}},
			{Method: http.MethodGet, Path: "/book/:competition/:club", Handler: h.Booking.BookPage},
			{Method: http.MethodPost, Path: "/purchasePlaces", Handler: h.Booking.PurchasePlaces},
			{Method: http.MethodGet, Path: "/logout", Handler: h.Board.Logout},
		})
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/clubs", Handler: h.Catalog.ListClubs},
			{Method: http.MethodGet, Path: "/competitions", Handler: h.Catalog.ListCompetitions},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Catalog.CreateBooking},
		})
		// preflight requests are answered by the CORS middleware
		apiGroup.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
