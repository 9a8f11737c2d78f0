package competition

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyCompetitionName = errors.New("competition name cannot be empty")
	ErrNegativePlaces       = errors.New("number of places cannot be negative")
	ErrNonPositiveReserve   = errors.New("places to reserve must be positive")
	ErrInsufficientPlaces   = errors.New("not enough places available")
)

type Competition struct {
	name           string
	date           *time.Time
	numberOfPlaces int
}

// NewCompetition builds a competition. A nil date means the competition is
// never classified as past.
func NewCompetition(name string, date *time.Time, numberOfPlaces int) (*Competition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCompetitionName
	}
	if numberOfPlaces < 0 {
		return nil, ErrNegativePlaces
	}

	var d *time.Time
	if date != nil {
		v := *date
		d = &v
	}

	return &Competition{
		name:           name,
		date:           d,
		numberOfPlaces: numberOfPlaces,
	}, nil
}

func (c *Competition) Name() string        { return c.name }
func (c *Competition) NumberOfPlaces() int { return c.numberOfPlaces }
func (c *Competition) HasDate() bool       { return c.date != nil }

// Date returns the competition date and whether one is set.
func (c *Competition) Date() (time.Time, bool) {
	if c.date == nil {
		return time.Time{}, false
	}
	return *c.date, true
}

// Classify compares the date against now. A competition starting exactly at
// now is not past.
func (c *Competition) Classify(now time.Time) Status {
	if c.date == nil {
		return StatusUndated
	}
	if c.date.Before(now) {
		return StatusPast
	}
	return StatusUpcoming
}

func (c *Competition) IsPast(now time.Time) bool {
	return c.Classify(now) == StatusPast
}

func (c *Competition) HasPlaces(places int) bool {
	return places <= c.numberOfPlaces
}

func (c *Competition) ReservePlaces(places int) error {
	if places <= 0 {
		return ErrNonPositiveReserve
	}
	if !c.HasPlaces(places) {
		return ErrInsufficientPlaces
	}
	c.numberOfPlaces -= places
	return nil
}
