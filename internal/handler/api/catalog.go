package api

import (
	"net/http"

	reqdto "gudlft-booking/internal/handler/dto/request"
	resdto "gudlft-booking/internal/handler/dto/response"
	"gudlft-booking/internal/handler/httperr"
	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/usecase/commands"
	"gudlft-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds  commands.BookingCommands
	clubQ queries.ClubQueries
	compQ queries.CompetitionQueries
}

func NewCatalogHandler(cmds commands.BookingCommands, clubQ queries.ClubQueries, compQ queries.CompetitionQueries) *CatalogHandler {
	return &CatalogHandler{
		cmds:  cmds,
		clubQ: clubQ,
		compQ: compQ,
	}
}

// @Summary List clubs
// @Description List every club with its remaining points
// @Tags clubs
// @Produce json
// @Success 200 {array} resdto.ClubResponse
// @Failure 500 {object} httperr.Response
// @Router /api/clubs [get]
func (h *CatalogHandler) ListClubs(c *gin.Context) {
	clubs, err := h.clubQ.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	res, err := resdto.FromClubViews(clubs)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List competitions
// @Description List every competition with remaining places and its status
// @Tags competitions
// @Produce json
// @Success 200 {array} resdto.CompetitionResponse
// @Failure 500 {object} httperr.Response
// @Router /api/competitions [get]
func (h *CatalogHandler) ListCompetitions(c *gin.Context) {
	comps, err := h.compQ.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompetitionViews(comps))
}

// @Summary Book places
// @Description Spend club points on places in a competition. Rejections carry a reason and a 4xx status.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.PurchasePlacesRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} resdto.BookingResponse
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *CatalogHandler) CreateBooking(c *gin.Context) {
	var req reqdto.PurchasePlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.PurchasePlaces(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrClubNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Club not found", nil)
		case errs.Is(err, errs.ErrCompetitionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Competition not found", nil)
		case errs.Is(err, errs.ErrPersistenceFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgBookingNotSaved, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	res, err := resdto.FromPurchaseResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(StatusForReason(result.Outcome.Reason), res)
}
