package club

import (
	"errors"
	"strings"
)

var (
	ErrEmptyClubName      = errors.New("club name cannot be empty")
	ErrNegativePoints     = errors.New("points cannot be negative")
	ErrNonPositiveSpend   = errors.New("points to spend must be positive")
	ErrInsufficientPoints = errors.New("not enough points")
)

// Club holds a spendable points budget. Points only ever go down.
type Club struct {
	name   string
	email  Email
	points int
}

func NewClub(name, email string, points int) (*Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyClubName
	}

	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	if points < 0 {
		return nil, ErrNegativePoints
	}

	return &Club{
		name:   name,
		email:  e,
		points: points,
	}, nil
}

func (c *Club) Name() string  { return c.name }
func (c *Club) Email() string { return c.email.Value() }
func (c *Club) Points() int   { return c.points }

func (c *Club) HasEmail(email string) bool {
	return c.email.Matches(email)
}

func (c *Club) CanAfford(points int) bool {
	return points <= c.points
}

func (c *Club) SpendPoints(points int) error {
	if points <= 0 {
		return ErrNonPositiveSpend
	}
	if !c.CanAfford(points) {
		return ErrInsufficientPoints
	}
	c.points -= points
	return nil
}
