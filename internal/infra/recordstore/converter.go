package recordstore

import (
	"fmt"
	"strings"
	"time"

	"gudlft-booking/internal/domain/club"
	"gudlft-booking/internal/domain/competition"
	"gudlft-booking/internal/pkg/ptr"
)

func clubFromRecord(r ClubRecord) (*club.Club, error) {
	c, err := club.NewClub(r.Name, r.Email, int(r.Points))
	if err != nil {
		return nil, fmt.Errorf("club %q: %w", r.Name, err)
	}
	return c, nil
}

func clubToRecord(c *club.Club) ClubRecord {
	return ClubRecord{
		Name:   c.Name(),
		Email:  c.Email(),
		Points: TextInt(c.Points()),
	}
}

func competitionFromRecord(r CompetitionRecord, layout string, loc *time.Location) (*competition.Competition, error) {
	var date *time.Time
	if raw := strings.TrimSpace(r.Date); raw != "" {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err != nil {
			return nil, fmt.Errorf("competition %q: invalid date: %w", r.Name, err)
		}
		date = ptr.To(t)
	}

	comp, err := competition.NewCompetition(r.Name, date, int(r.NumberOfPlaces))
	if err != nil {
		return nil, fmt.Errorf("competition %q: %w", r.Name, err)
	}
	return comp, nil
}

func competitionToRecord(c *competition.Competition, layout string, loc *time.Location) CompetitionRecord {
	r := CompetitionRecord{
		Name:           c.Name(),
		NumberOfPlaces: TextInt(c.NumberOfPlaces()),
	}
	if d, ok := c.Date(); ok {
		r.Date = d.In(loc).Format(layout)
	}
	return r
}
