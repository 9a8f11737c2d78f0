package booking

import (
	"errors"
	"fmt"

	"gudlft-booking/internal/domain/club"
	"gudlft-booking/internal/domain/competition"
	"gudlft-booking/internal/pkg/clock"
)

// MaxPlacesPerCompetition caps a single booking request for every club and competition.
const MaxPlacesPerCompetition = 12

var ErrUnresolvedParty = errors.New("club and competition must be resolved before booking")

// Outcome is the result of one booking attempt. Points and places are the
// values after the attempt.
type Outcome struct {
	Reason            Reason
	Requested         int
	PointsRemaining   int
	PlacesRemaining   int
	CompetitionStatus competition.Status
}

type Ledger struct {
	clock clock.Clock
}

func NewLedger(clock clock.Clock) *Ledger {
	return &Ledger{clock: clock}
}

// Evaluate runs the booking rules in order and returns the first violated
// one, or ReasonSuccess. It never mutates its arguments.
func (l *Ledger) Evaluate(c *club.Club, comp *competition.Competition, requested int) Reason {
	switch {
	case comp.IsPast(l.clock.Now()):
		return ReasonPastCompetition
	case requested <= 0:
		return ReasonInvalidQuantity
	case !comp.HasPlaces(requested):
		return ReasonInsufficientAvailability
	case requested > MaxPlacesPerCompetition:
		return ReasonExceedsPerCompetitionLimit
	case !c.CanAfford(requested):
		return ReasonInsufficientPoints
	default:
		return ReasonSuccess
	}
}

// Attempt evaluates the request and, on success, debits both the
// competition's places and the club's points by the requested amount.
// Rejections leave both entities untouched. Persisting the pair is the
// caller's job.
func (l *Ledger) Attempt(c *club.Club, comp *competition.Competition, requested int) (Outcome, error) {
	if c == nil || comp == nil {
		return Outcome{}, ErrUnresolvedParty
	}

	reason := l.Evaluate(c, comp, requested)
	if reason.IsSuccess() {
		if err := comp.ReservePlaces(requested); err != nil {
			return Outcome{}, fmt.Errorf("reserve %d places in %q: %w", requested, comp.Name(), err)
		}
		if err := c.SpendPoints(requested); err != nil {
			return Outcome{}, fmt.Errorf("spend %d points of %q: %w", requested, c.Name(), err)
		}
	}

	return Outcome{
		Reason:            reason,
		Requested:         requested,
		PointsRemaining:   c.Points(),
		PlacesRemaining:   comp.NumberOfPlaces(),
		CompetitionStatus: comp.Classify(l.clock.Now()),
	}, nil
}
