package booking

// Reason identifies the result of a booking attempt. Every value except
// ReasonSuccess is a rejection.
type Reason string

const (
	ReasonSuccess                    Reason = "Success"
	ReasonPastCompetition            Reason = "PastCompetition"
	ReasonInvalidQuantity            Reason = "InvalidQuantity"
	ReasonInsufficientAvailability   Reason = "InsufficientAvailability"
	ReasonExceedsPerCompetitionLimit Reason = "ExceedsPerCompetitionLimit"
	ReasonInsufficientPoints         Reason = "InsufficientPoints"
)

var messages = map[Reason]string{
	ReasonSuccess:                    "Great-booking complete!",
	ReasonPastCompetition:            "Cannot book places for past competitions",
	ReasonInvalidQuantity:            "You must book at least 1 place.",
	ReasonInsufficientAvailability:   "Cannot book more places than are available.",
	ReasonExceedsPerCompetitionLimit: "Cannot book more than 12 places per competition",
	ReasonInsufficientPoints:         "Not enough points",
}

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsSuccess() bool {
	return r == ReasonSuccess
}

// Message is the text shown to the club for this reason.
func (r Reason) Message() string {
	return messages[r]
}

func (r Reason) IsValid() bool {
	_, ok := messages[r]
	return ok
}

// Reasons lists every reason in check order, success last.
func Reasons() []Reason {
	return []Reason{
		ReasonPastCompetition,
		ReasonInvalidQuantity,
		ReasonInsufficientAvailability,
		ReasonExceedsPerCompetitionLimit,
		ReasonInsufficientPoints,
		ReasonSuccess,
	}
}
