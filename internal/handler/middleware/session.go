package middleware

import (
	"log/slog"
	"net/http"

	"gudlft-booking/internal/pkg/config"
	"gudlft-booking/internal/pkg/cookie"
	"gudlft-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxClubEmailKey = "club_email"

type SessionMiddleware struct {
	tokenValidator usecase.TokenValidator
	cfg            config.SessionConfig
	logger         *slog.Logger
}

func NewSessionMiddleware(tokenValidator usecase.TokenValidator, cfg config.SessionConfig, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		tokenValidator: tokenValidator,
		cfg:            cfg,
		logger:         logger,
	}
}

// LoadSession attaches the session club email when a valid cookie is
// present. A bad cookie is cleared and the request continues anonymously.
func (m *SessionMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c, m.cfg)
		if token == "" {
			c.Next()
			return
		}

		email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Debug("Session cookie rejected", "error", err.Error())
			cookie.ClearSessionCookie(c, m.cfg)
			c.Next()
			return
		}

		c.Set(ctxClubEmailKey, email)
		c.Next()
	}
}

// RequireSession sends browsers without a session back to the login page.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetClubEmail(c); !ok {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetClubEmail(c *gin.Context) (string, bool) {
	email := c.GetString(ctxClubEmailKey)
	return email, email != ""
}
