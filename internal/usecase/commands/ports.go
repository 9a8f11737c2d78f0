package commands

import (
	"gudlft-booking/internal/domain/booking"
	"gudlft-booking/internal/usecase/queries"
)

// PurchasePlacesParams names both parties exactly as they appear in the
// record files. Places is the requested quantity; callers pass 0 for input
// that is not an integer.
type PurchasePlacesParams struct {
	Club        string
	Competition string
	Places      int
}

// PurchaseResult carries the outcome and the state of both parties after
// the attempt. Rejections are results, not errors.
type PurchaseResult struct {
	Outcome     booking.Outcome
	Club        queries.ClubView
	Competition queries.CompetitionView
}
