//go:build unit

package club_test

import (
	"testing"

	"gudlft-booking/internal/domain/club"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClub(t *testing.T) {
	tests := []struct {
		name   string
		club   string
		email  string
		points int
		errIs  error
	}{
		{name: "valid club", club: "Simply Lift", email: "john@simplylift.co", points: 13},
		{name: "zero points allowed", club: "Iron Temple", email: "admin@irontemple.com", points: 0},
		{name: "empty name", club: "  ", email: "john@simplylift.co", points: 1, errIs: club.ErrEmptyClubName},
		{name: "invalid email", club: "She Lifts", email: "kate-at-shelifts", points: 1, errIs: club.ErrInvalidEmail},
		{name: "negative points", club: "She Lifts", email: "kate@shelifts.co.uk", points: -1, errIs: club.ErrNegativePoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := club.NewClub(tt.club, tt.email, tt.points)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.club, c.Name())
			assert.Equal(t, tt.email, c.Email())
			assert.Equal(t, tt.points, c.Points())
		})
	}
}

func TestClubHasEmail(t *testing.T) {
	c, err := club.NewClub("Simply Lift", "john@simplylift.co", 13)
	require.NoError(t, err)

	assert.True(t, c.HasEmail("john@simplylift.co"))
	assert.False(t, c.HasEmail("JOHN@simplylift.co"))
	assert.False(t, c.HasEmail(" john@simplylift.co"))
}

func TestClubSpendPoints(t *testing.T) {
	t.Run("decrements by the amount spent", func(t *testing.T) {
		c, err := club.NewClub("Simply Lift", "john@simplylift.co", 13)
		require.NoError(t, err)

		require.NoError(t, c.SpendPoints(5))
		assert.Equal(t, 8, c.Points())

		require.NoError(t, c.SpendPoints(8))
		assert.Equal(t, 0, c.Points())
	})

	t.Run("rejects overspend without change", func(t *testing.T) {
		c, err := club.NewClub("Iron Temple", "admin@irontemple.com", 4)
		require.NoError(t, err)

		assert.ErrorIs(t, c.SpendPoints(5), club.ErrInsufficientPoints)
		assert.Equal(t, 4, c.Points())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		c, err := club.NewClub("Iron Temple", "admin@irontemple.com", 4)
		require.NoError(t, err)

		assert.ErrorIs(t, c.SpendPoints(0), club.ErrNonPositiveSpend)
		assert.ErrorIs(t, c.SpendPoints(-3), club.ErrNonPositiveSpend)
		assert.Equal(t, 4, c.Points())
	})
}
