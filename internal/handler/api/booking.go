package api

import (
	"log/slog"
	"net/http"

	"gudlft-booking/internal/domain/booking"
	reqdto "gudlft-booking/internal/handler/dto/request"
	"gudlft-booking/internal/handler/httperr"
	"gudlft-booking/internal/handler/middleware"
	"gudlft-booking/internal/handler/web"
	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/usecase/commands"
	"gudlft-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgSomethingWentWrong = "Something went wrong-please try again"
	msgBookingNotSaved    = "Booking could not be saved, please try again"
)

var reasonStatus = map[booking.Reason]int{
	booking.ReasonSuccess:                    http.StatusOK,
	booking.ReasonPastCompetition:            http.StatusBadRequest,
	booking.ReasonInvalidQuantity:            http.StatusBadRequest,
	booking.ReasonInsufficientAvailability:   http.StatusConflict,
	booking.ReasonExceedsPerCompetitionLimit: http.StatusBadRequest,
	booking.ReasonInsufficientPoints:         http.StatusConflict,
}

// StatusForReason maps a booking outcome to its HTTP status.
func StatusForReason(r booking.Reason) int {
	if status, ok := reasonStatus[r]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type BookingHandler struct {
	cmds   commands.BookingCommands
	clubQ  queries.ClubQueries
	compQ  queries.CompetitionQueries
	logger *slog.Logger
}

func NewBookingHandler(cmds commands.BookingCommands, clubQ queries.ClubQueries, compQ queries.CompetitionQueries, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		cmds:   cmds,
		clubQ:  clubQ,
		compQ:  compQ,
		logger: logger,
	}
}

// BookPage renders the booking form for one club and competition.
func (h *BookingHandler) BookPage(c *gin.Context) {
	page, err := h.clubQ.BookingPage(c.Request.Context(), c.Param("competition"), c.Param("club"))
	if err != nil {
		if isLookupErr(err) {
			h.renderNotFound(c)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	var flash *web.Flash
	if !page.Competition.Bookable {
		flash = &web.Flash{Message: booking.ReasonPastCompetition.Message(), Error: true}
	}
	c.HTML(http.StatusOK, "booking.html", web.BookingPage{
		Flash:       flash,
		Club:        page.Club,
		Competition: page.Competition,
		MaxPlaces:   page.MaxPlaces,
	})
}

// PurchasePlaces handles the booking form and re-renders the welcome page
// with the outcome message.
func (h *BookingHandler) PurchasePlaces(c *gin.Context) {
	var form reqdto.PurchasePlacesForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.PurchasePlaces(c.Request.Context(), form.ToParams())
	if err != nil {
		switch {
		case isLookupErr(err):
			h.renderNotFound(c)
		case errs.Is(err, errs.ErrPersistenceFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgBookingNotSaved, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	comps, err := h.compQ.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	reason := result.Outcome.Reason
	c.HTML(StatusForReason(reason), "welcome.html", web.WelcomePage{
		Flash:        &web.Flash{Message: reason.Message(), Error: !reason.IsSuccess()},
		Club:         result.Club,
		Competitions: comps,
	})
}

// renderNotFound shows the session club's summary when there is one, the
// login page otherwise.
func (h *BookingHandler) renderNotFound(c *gin.Context) {
	flash := &web.Flash{Message: msgSomethingWentWrong, Error: true}

	if email, ok := middleware.GetClubEmail(c); ok {
		if summary, err := h.clubQ.Summary(c.Request.Context(), email); err == nil {
			c.HTML(http.StatusNotFound, "welcome.html", web.WelcomePage{
				Flash:        flash,
				Club:         summary.Club,
				Competitions: summary.Competitions,
			})
			return
		}
	}

	clubs, err := h.clubQ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load points board", "error", err.Error())
	}
	c.HTML(http.StatusNotFound, "index.html", web.IndexPage{
		Flash: flash,
		Clubs: clubs,
	})
}

func isLookupErr(err error) bool {
	return errs.Is(err, errs.ErrClubNotFound) || errs.Is(err, errs.ErrCompetitionNotFound)
}
