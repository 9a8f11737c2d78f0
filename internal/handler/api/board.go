package api

import (
	"log/slog"
	"net/http"

	reqdto "gudlft-booking/internal/handler/dto/request"
	"gudlft-booking/internal/handler/httperr"
	"gudlft-booking/internal/handler/middleware"
	"gudlft-booking/internal/handler/web"
	"gudlft-booking/internal/pkg/config"
	"gudlft-booking/internal/pkg/cookie"
	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/pkg/jwt"
	"gudlft-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgEmailNotFound = "Sorry, that email was not found."

type BoardHandler struct {
	clubQ      queries.ClubQueries
	jwtService *jwt.Service
	sessionCfg config.SessionConfig
	logger     *slog.Logger
}

func NewBoardHandler(clubQ queries.ClubQueries, jwtService *jwt.Service, sessionCfg config.SessionConfig, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		clubQ:      clubQ,
		jwtService: jwtService,
		sessionCfg: sessionCfg,
		logger:     logger,
	}
}

// Index renders the login form and the public points board.
func (h *BoardHandler) Index(c *gin.Context) {
	h.renderIndex(c, http.StatusOK, nil)
}

// ShowSummary logs a club in by secretary email and shows its competitions.
func (h *BoardHandler) ShowSummary(c *gin.Context) {
	var form reqdto.ShowSummaryForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderIndex(c, http.StatusBadRequest, &web.Flash{Message: msgEmailNotFound, Error: true})
		return
	}

	summary, err := h.clubQ.Summary(c.Request.Context(), form.Email)
	if err != nil {
		if errs.Is(err, errs.ErrClubNotFound) {
			h.renderIndex(c, http.StatusBadRequest, &web.Flash{Message: msgEmailNotFound, Error: true})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	token, err := h.jwtService.GenerateToken(summary.Club.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	cookie.SetSessionCookie(c, h.sessionCfg, token, h.jwtService.TokenDuration())

	c.HTML(http.StatusOK, "welcome.html", web.WelcomePage{
		Club:         summary.Club,
		Competitions: summary.Competitions,
	})
}

// Summary re-renders the welcome page for the club of the current session.
func (h *BoardHandler) Summary(c *gin.Context) {
	email, ok := middleware.GetClubEmail(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	summary, err := h.clubQ.Summary(c.Request.Context(), email)
	if err != nil {
		if errs.Is(err, errs.ErrClubNotFound) {
			cookie.ClearSessionCookie(c, h.sessionCfg)
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.HTML(http.StatusOK, "welcome.html", web.WelcomePage{
		Club:         summary.Club,
		Competitions: summary.Competitions,
	})
}

func (h *BoardHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.sessionCfg)
	c.Redirect(http.StatusFound, "/")
}

func (h *BoardHandler) renderIndex(c *gin.Context, status int, flash *web.Flash) {
	clubs, err := h.clubQ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load points board", "error", err.Error())
	}
	c.HTML(status, "index.html", web.IndexPage{
		Flash: flash,
		Clubs: clubs,
	})
}
