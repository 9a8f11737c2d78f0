package request

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"gudlft-booking/internal/usecase/commands"
)

// PurchasePlacesForm is the HTML booking form. Places stays a string so
// that non-integer input reaches the ledger as an invalid quantity instead
// of failing binding.
type PurchasePlacesForm struct {
	Club        string `form:"club" binding:"required"`
	Competition string `form:"competition" binding:"required"`
	Places      string `form:"places"`
}

func (f *PurchasePlacesForm) ToParams() commands.PurchasePlacesParams {
	return commands.PurchasePlacesParams{
		Club:        f.Club,
		Competition: f.Competition,
		Places:      ParsePlaces(f.Places),
	}
}

type PurchasePlacesRequest struct {
	Club        string `json:"club" binding:"required"`
	Competition string `json:"competition" binding:"required"`
	Places      any    `json:"places" swaggertype:"integer"`
}

func (r *PurchasePlacesRequest) ToParams() commands.PurchasePlacesParams {
	return commands.PurchasePlacesParams{
		Club:        r.Club,
		Competition: r.Competition,
		Places:      placesFromJSON(r.Places),
	}
}

// ParsePlaces returns 0 for anything that is not a base-10 integer.
// Integers outside the int range are clamped, so an oversized request is
// still a positive quantity.
func ParsePlaces(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return n
		}
		return 0
	}
	return n
}

func placesFromJSON(v any) int {
	switch p := v.(type) {
	case float64:
		switch {
		case p != math.Trunc(p):
			return 0
		case p >= math.MaxInt:
			return math.MaxInt
		case p <= math.MinInt:
			return math.MinInt
		}
		return int(p)
	case string:
		return ParsePlaces(p)
	default:
		return 0
	}
}
