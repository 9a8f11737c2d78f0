//go:build unit

package api_test

import (
	"log/slog"
	"net/http"
	"testing"

	"gudlft-booking/internal/handler/middleware"
	"gudlft-booking/internal/handler/web"
	"gudlft-booking/internal/pkg/clock"
	"gudlft-booking/internal/pkg/config"
	"gudlft-booking/internal/pkg/jwt"
	"gudlft-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router     *gin.Engine
	cfg        config.Config
	jwtService *jwt.Service
	session    *middleware.SessionMiddleware
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.Session.Secret, cfg.Session.Duration, clock.NewRealClock())

	router := gin.New()
	tmpl, err := web.Templates()
	require.NoError(t, err)
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.ErrorHandler())

	return &testEnv{
		router:     router,
		cfg:        cfg,
		jwtService: jwtService,
		session:    middleware.NewSessionMiddleware(usecase.NewTokenValidator(jwtService), cfg.Session, slog.Default()),
	}
}

func (e *testEnv) sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	token, err := e.jwtService.GenerateToken(email)
	require.NoError(t, err)
	return &http.Cookie{Name: e.cfg.Session.CookieName, Value: token}
}
