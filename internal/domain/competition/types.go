package competition

// Status is the result of classifying a competition against the current time.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusPast     Status = "past"
	StatusUndated  Status = "undated"
)

func (s Status) String() string {
	return string(s)
}

// IsBookable reports whether the status permits new bookings.
func (s Status) IsBookable() bool {
	return s != StatusPast
}
