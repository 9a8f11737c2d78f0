//go:build unit || e2e

package builder

import (
	"time"

	"gudlft-booking/internal/domain/competition"
	"gudlft-booking/internal/infra/recordstore"
	"gudlft-booking/internal/pkg/ptr"
	"gudlft-booking/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
)

// RecordDateLayout is the date layout of the record files.
const RecordDateLayout = "2006-01-02 15:04:05"

type CompetitionBuilder struct {
	Name           string
	Date           *time.Time
	NumberOfPlaces int
}

// NewCompetitionBuilder returns an upcoming competition dated a year ahead.
func NewCompetitionBuilder() *CompetitionBuilder {
	return &CompetitionBuilder{
		Name:           gofakeit.LetterN(8) + " Classic",
		Date:           ptr.To(time.Now().AddDate(1, 0, 0).Truncate(time.Second)),
		NumberOfPlaces: gofakeit.IntRange(13, 40),
	}
}

func (b *CompetitionBuilder) With(mutate func(*CompetitionBuilder)) *CompetitionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CompetitionBuilder) BuildDomain() (*competition.Competition, error) {
	return competition.NewCompetition(b.Name, b.Date, b.NumberOfPlaces)
}

func (b *CompetitionBuilder) BuildRecord() recordstore.CompetitionRecord {
	rec := recordstore.CompetitionRecord{
		Name:           b.Name,
		NumberOfPlaces: recordstore.TextInt(b.NumberOfPlaces),
	}
	if b.Date != nil {
		rec.Date = b.Date.Format(RecordDateLayout)
	}
	return rec
}

func (b *CompetitionBuilder) BuildView(now time.Time) queries.CompetitionView {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return queries.NewCompetitionView(c, now)
}

// Fluent builder methods
func (b *CompetitionBuilder) WithName(name string) *CompetitionBuilder {
	b.Name = name
	return b
}

func (b *CompetitionBuilder) WithPlaces(places int) *CompetitionBuilder {
	b.NumberOfPlaces = places
	return b
}

func (b *CompetitionBuilder) WithDate(date time.Time) *CompetitionBuilder {
	b.Date = ptr.To(date)
	return b
}

func (b *CompetitionBuilder) InThePast() *CompetitionBuilder {
	b.Date = ptr.To(time.Now().AddDate(-1, 0, 0).Truncate(time.Second))
	return b
}

func (b *CompetitionBuilder) Undated() *CompetitionBuilder {
	b.Date = nil
	return b
}
