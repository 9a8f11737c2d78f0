package errs

import "errors"

// Sentinels shared across the usecase and handler layers.
// Booking rejections are not errors; see domain/booking.Reason.
var (
	// Lookup errors
	ErrClubNotFound        = errors.New("club not found")
	ErrCompetitionNotFound = errors.New("competition not found")

	// Session errors
	ErrSessionMissing = errors.New("session missing")

	// Operation errors
	ErrPersistenceFailed = errors.New("persistence failed")
)
