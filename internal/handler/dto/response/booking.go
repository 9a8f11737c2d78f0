package response

import (
	"time"

	"gudlft-booking/internal/pkg/errs"
	"gudlft-booking/internal/usecase/commands"
	"gudlft-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

const DateLayout = "2006-01-02 15:04:05"

type ClubResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int    `json:"points"`
}

type CompetitionResponse struct {
	Name           string `json:"name"`
	Date           string `json:"date,omitempty"`
	NumberOfPlaces int    `json:"number_of_places"`
	Status         string `json:"status"`
	Bookable       bool   `json:"bookable"`
}

type BookingResponse struct {
	Reason      string              `json:"reason"`
	Message     string              `json:"message"`
	Requested   int                 `json:"requested"`
	Club        ClubResponse        `json:"club"`
	Competition CompetitionResponse `json:"competition"`
}

func FromClubView(v queries.ClubView) (ClubResponse, error) {
	var res ClubResponse
	if err := copier.Copy(&res, &v); err != nil {
		return ClubResponse{}, errs.Wrap(err, "map club view")
	}
	return res, nil
}

// FromClubViews never returns nil, so an empty board encodes as [].
func FromClubViews(vs []queries.ClubView) ([]ClubResponse, error) {
	res := make([]ClubResponse, 0, len(vs))
	if len(vs) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, errs.Wrap(err, "map club views")
	}
	return res, nil
}

func FromCompetitionView(v queries.CompetitionView) CompetitionResponse {
	res := CompetitionResponse{
		Name:           v.Name,
		NumberOfPlaces: v.NumberOfPlaces,
		Status:         v.Status,
		Bookable:       v.Bookable,
	}
	if v.Date != nil {
		res.Date = FormatDate(*v.Date)
	}
	return res
}

func FromCompetitionViews(vs []queries.CompetitionView) []CompetitionResponse {
	res := make([]CompetitionResponse, len(vs))
	for i, v := range vs {
		res[i] = FromCompetitionView(v)
	}
	return res
}

func FromPurchaseResult(r *commands.PurchaseResult) (BookingResponse, error) {
	club, err := FromClubView(r.Club)
	if err != nil {
		return BookingResponse{}, err
	}
	return BookingResponse{
		Reason:      r.Outcome.Reason.String(),
		Message:     r.Outcome.Reason.Message(),
		Requested:   r.Outcome.Requested,
		Club:        club,
		Competition: FromCompetitionView(r.Competition),
	}, nil
}

// FormatDate writes dates the way the record files store them.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
