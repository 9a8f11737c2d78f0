//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"gudlft-booking/internal/domain/booking"
	"gudlft-booking/internal/handler/api"
	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/usecase/commands"
	"gudlft-booking/internal/usecase/queries"
	"gudlft-booking/tests/common/builder"
	"gudlft-booking/tests/common/httptest"
	commandsmock "gudlft-booking/tests/mock/commands"
	queriesmock "gudlft-booking/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	env       *testEnv
	mockCtrl  *gomock.Controller
	mockCmds  *commandsmock.MockBookingCommands
	mockClubQ *queriesmock.MockClubQueries
	mockCompQ *queriesmock.MockCompetitionQueries
	logs      *bytes.Buffer
	handler   *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockClubQ = queriesmock.NewMockClubQueries(s.mockCtrl)
	s.mockCompQ = queriesmock.NewMockCompetitionQueries(s.mockCtrl)
	s.logs = &bytes.Buffer{}
	s.handler = api.NewBookingHandler(s.mockCmds, s.mockClubQ, s.mockCompQ, slog.New(slog.NewTextHandler(s.logs, nil)))

	pages := s.env.router.Group("")
	pages.Use(s.env.session.LoadSession())
	pages.GET("/book/:competition/:club", s.handler.BookPage)
	pages.POST("/purchasePlaces", s.handler.PurchasePlaces)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestBookPage
// ================================================================================

func (s *BookingHandlerTestSuite) TestBookPage() {
	now := time.Now()
	club := builder.NewClubBuilder().WithName("Simply Lift").WithPoints(13).BuildView()

	s.Run("success: renders the form with the bookable maximum", func() {
		comp := builder.NewCompetitionBuilder().WithName("Fall Classic").WithPlaces(5).BuildView(now)
		s.mockClubQ.EXPECT().BookingPage(gomock.Any(), "Fall Classic", "Simply Lift").
			Return(&queries.BookingPageView{Club: club, Competition: comp, MaxPlaces: 5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, "/book/Fall%20Classic/Simply%20Lift", nil)

		httptest.AssertPage(s.T(), rec, http.StatusOK,
			"<h2>Fall Classic</h2>",
			"Places available: 5",
			`action="/purchasePlaces"`,
			`max="5"`)
	})

	s.Run("success: a past competition is shown without the form", func() {
		comp := builder.NewCompetitionBuilder().WithName("Spring Festival").InThePast().BuildView(now)
		s.mockClubQ.EXPECT().BookingPage(gomock.Any(), "Spring Festival", "Simply Lift").
			Return(&queries.BookingPageView{Club: club, Competition: comp}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, "/book/Spring%20Festival/Simply%20Lift", nil)

		httptest.AssertPage(s.T(), rec, http.StatusOK, booking.ReasonPastCompetition.Message())
		s.NotContains(rec.Body.String(), `action="/purchasePlaces"`)
	})

	s.Run("error: 404 login page for an unknown party without a session", func() {
		s.mockClubQ.EXPECT().BookingPage(gomock.Any(), "Nope", "Simply Lift").
			Return(nil, errs.ErrCompetitionNotFound).Times(1)
		s.mockClubQ.EXPECT().List(gomock.Any()).Return([]queries.ClubView{club}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, "/book/Nope/Simply%20Lift", nil)

		httptest.AssertPage(s.T(), rec, http.StatusNotFound,
			"Something went wrong-please try again",
			`action="/showSummary"`)
	})

	s.Run("error: 404 page still renders when the board cannot be loaded", func() {
		s.mockClubQ.EXPECT().BookingPage(gomock.Any(), "Nope", "Simply Lift").
			Return(nil, errs.ErrCompetitionNotFound).Times(1)
		s.mockClubQ.EXPECT().List(gomock.Any()).Return(nil, errors.New("store locked")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, "/book/Nope/Simply%20Lift", nil)

		httptest.AssertPage(s.T(), rec, http.StatusNotFound, "Something went wrong-please try again", "No clubs registered")
		s.Contains(s.logs.String(), "failed to load points board")
		s.Contains(s.logs.String(), "store locked")
	})

	s.Run("error: 404 summary page for an unknown party with a session", func() {
		s.mockClubQ.EXPECT().BookingPage(gomock.Any(), "Fall Classic", "Nobody").
			Return(nil, errs.ErrClubNotFound).Times(1)
		s.mockClubQ.EXPECT().Summary(gomock.Any(), club.Email).
			Return(&queries.SummaryView{Club: club}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, "/book/Fall%20Classic/Nobody", nil,
			s.env.sessionCookie(s.T(), club.Email))

		httptest.AssertPage(s.T(), rec, http.StatusNotFound,
			"Something went wrong-please try again",
			"Welcome, "+club.Email)
	})

	s.Run("error: 500 when the page cannot be loaded", func() {
		s.mockClubQ.EXPECT().BookingPage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.env.router, http.MethodGet, "/book/Fall%20Classic/Simply%20Lift", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestPurchasePlaces
// ================================================================================

func (s *BookingHandlerTestSuite) TestPurchasePlaces() {
	now := time.Now()
	form := func(places string) url.Values {
		return url.Values{"club": {"Simply Lift"}, "competition": {"Fall Classic"}, "places": {places}}
	}
	resultFor := func(reason booking.Reason, requested, points int) *commands.PurchaseResult {
		return &commands.PurchaseResult{
			Outcome:     booking.Outcome{Reason: reason, Requested: requested, PointsRemaining: points},
			Club:        builder.NewClubBuilder().WithName("Simply Lift").WithPoints(points).BuildView(),
			Competition: builder.NewCompetitionBuilder().WithName("Fall Classic").BuildView(now),
		}
	}
	comps := []queries.CompetitionView{
		builder.NewCompetitionBuilder().WithName("Fall Classic").BuildView(now),
	}

	testCases := []struct {
		name       string
		places     string
		reason     booking.Reason
		points     int
		expectCode int
	}{
		{name: "success", places: "3", reason: booking.ReasonSuccess, points: 10, expectCode: http.StatusOK},
		{name: "past competition", places: "3", reason: booking.ReasonPastCompetition, points: 13, expectCode: http.StatusBadRequest},
		{name: "invalid quantity", places: "0", reason: booking.ReasonInvalidQuantity, points: 13, expectCode: http.StatusBadRequest},
		{name: "insufficient availability", places: "12", reason: booking.ReasonInsufficientAvailability, points: 13, expectCode: http.StatusConflict},
		{name: "exceeds per competition limit", places: "13", reason: booking.ReasonExceedsPerCompetitionLimit, points: 13, expectCode: http.StatusBadRequest},
		{name: "insufficient points", places: "5", reason: booking.ReasonInsufficientPoints, points: 4, expectCode: http.StatusConflict},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expectCode, api.StatusForReason(tc.reason))

			s.mockCmds.EXPECT().PurchasePlaces(gomock.Any(), gomock.Any()).
				Return(resultFor(tc.reason, 3, tc.points), nil).Times(1)
			s.mockCompQ.EXPECT().List(gomock.Any()).Return(comps, nil).Times(1)

			rec := httptest.PerformForm(s.T(), s.env.router, "/purchasePlaces", form(tc.places))

			httptest.AssertPage(s.T(), rec, tc.expectCode, tc.reason.Message(), "Fall Classic")
		})
	}

	s.Run("success: the page shows the points left after booking", func() {
		s.mockCmds.EXPECT().PurchasePlaces(gomock.Any(), commands.PurchasePlacesParams{
			Club: "Simply Lift", Competition: "Fall Classic", Places: 3,
		}).Return(resultFor(booking.ReasonSuccess, 3, 10), nil).Times(1)
		s.mockCompQ.EXPECT().List(gomock.Any()).Return(comps, nil).Times(1)

		rec := httptest.PerformForm(s.T(), s.env.router, "/purchasePlaces", form("3"))

		httptest.AssertPage(s.T(), rec, http.StatusOK, "Great-booking complete!", "Points available: 10", `class="message"`)
	})

	s.Run("non-integer places reach the ledger as zero", func() {
		for _, raw := range []string{"abc", "1.5", ""} {
			s.mockCmds.EXPECT().PurchasePlaces(gomock.Any(), commands.PurchasePlacesParams{
				Club: "Simply Lift", Competition: "Fall Classic", Places: 0,
			}).Return(resultFor(booking.ReasonInvalidQuantity, 0, 13), nil).Times(1)
			s.mockCompQ.EXPECT().List(gomock.Any()).Return(comps, nil).Times(1)

			rec := httptest.PerformForm(s.T(), s.env.router, "/purchasePlaces", form(raw))

			httptest.AssertPage(s.T(), rec, http.StatusBadRequest, "You must book at least 1 place.", `class="error"`)
		}
	})

	s.Run("error: 400 when a party field is missing", func() {
		rec := httptest.PerformForm(s.T(), s.env.router, "/purchasePlaces", url.Values{"club": {"Simply Lift"}, "places": {"1"}})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 page for an unknown club", func() {
		s.mockCmds.EXPECT().PurchasePlaces(gomock.Any(), gomock.Any()).Return(nil, errs.ErrClubNotFound).Times(1)
		s.mockClubQ.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformForm(s.T(), s.env.router, "/purchasePlaces", form("1"))

		httptest.AssertPage(s.T(), rec, http.StatusNotFound, "Something went wrong-please try again")
	})

	s.Run("error: 500 when the booking cannot be saved", func() {
		s.mockCmds.EXPECT().PurchasePlaces(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("rename failed"), errs.ErrPersistenceFailed)).Times(1)

		rec := httptest.PerformForm(s.T(), s.env.router, "/purchasePlaces", form("1"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Booking could not be saved, please try again")
	})
}
