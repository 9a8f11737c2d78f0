//go:build unit || e2e

package builder

import (
	"fmt"
	"strings"

	"gudlft-booking/internal/domain/club"
	"gudlft-booking/internal/infra/recordstore"
	"gudlft-booking/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
)

type ClubBuilder struct {
	Name   string
	Email  string
	Points int
}

func NewClubBuilder() *ClubBuilder {
	return &ClubBuilder{
		Name:   "Club " + gofakeit.LetterN(8),
		Email:  fmt.Sprintf("%s@%s.com", strings.ToLower(gofakeit.LetterN(8)), strings.ToLower(gofakeit.LetterN(6))),
		Points: gofakeit.IntRange(13, 30),
	}
}

func (b *ClubBuilder) With(mutate func(*ClubBuilder)) *ClubBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ClubBuilder) BuildDomain() (*club.Club, error) {
	return club.NewClub(b.Name, b.Email, b.Points)
}

func (b *ClubBuilder) BuildRecord() recordstore.ClubRecord {
	return recordstore.ClubRecord{
		Name:   b.Name,
		Email:  b.Email,
		Points: recordstore.TextInt(b.Points),
	}
}

func (b *ClubBuilder) BuildView() queries.ClubView {
	return queries.ClubView{
		Name:   b.Name,
		Email:  b.Email,
		Points: b.Points,
	}
}

// Fluent builder methods
func (b *ClubBuilder) WithName(name string) *ClubBuilder {
	b.Name = name
	return b
}

func (b *ClubBuilder) WithEmail(email string) *ClubBuilder {
	b.Email = email
	return b
}

func (b *ClubBuilder) WithPoints(points int) *ClubBuilder {
	b.Points = points
	return b
}
