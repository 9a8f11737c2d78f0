package queries

import (
	"time"

	"gudlft-booking/internal/domain/booking"
	"gudlft-booking/internal/domain/club"
	"gudlft-booking/internal/domain/competition"
	"gudlft-booking/internal/pkg/ptr"
)

// ClubView represents read-optimized club data
type ClubView struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int    `json:"points"`
}

// CompetitionView represents a competition classified at read time
type CompetitionView struct {
	Name           string     `json:"name"`
	Date           *time.Time `json:"date,omitempty"`
	NumberOfPlaces int        `json:"number_of_places"`
	Status         string     `json:"status"`
	Bookable       bool       `json:"bookable"`
}

// SummaryView is everything the welcome page shows for one club
type SummaryView struct {
	Club         ClubView          `json:"club"`
	Competitions []CompetitionView `json:"competitions"`
}

// BookingPageView pairs the club and competition of a booking form
type BookingPageView struct {
	Club        ClubView        `json:"club"`
	Competition CompetitionView `json:"competition"`
	MaxPlaces   int             `json:"max_places"`
}

func NewClubView(c *club.Club) ClubView {
	return ClubView{
		Name:   c.Name(),
		Email:  c.Email(),
		Points: c.Points(),
	}
}

func NewCompetitionView(c *competition.Competition, now time.Time) CompetitionView {
	status := c.Classify(now)
	v := CompetitionView{
		Name:           c.Name(),
		NumberOfPlaces: c.NumberOfPlaces(),
		Status:         status.String(),
		Bookable:       status.IsBookable(),
	}
	if d, ok := c.Date(); ok {
		v.Date = ptr.To(d)
	}
	return v
}

// MaxBookable is the largest request the ledger would accept for this pair,
// ignoring the competition date.
func MaxBookable(c ClubView, comp CompetitionView) int {
	return max(0, min(booking.MaxPlacesPerCompetition, comp.NumberOfPlaces, c.Points))
}
