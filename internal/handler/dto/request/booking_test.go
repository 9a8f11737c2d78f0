//go:build unit

package request_test

import (
	"math"
	"testing"

	reqdto "gudlft-booking/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
)

func TestParsePlaces(t *testing.T) {
	tests := map[string]int{
		"3":    3,
		" 12 ": 12,
		"0":    0,
		"-2":   -2,
		"":     0,
		"abc":  0,
		"2.5":  0,
		"1e3":  0,

		"99999999999999999999":  math.MaxInt,
		"-99999999999999999999": math.MinInt,
	}
	for in, want := range tests {
		assert.Equal(t, want, reqdto.ParsePlaces(in), "input %q", in)
	}
}

func TestPurchasePlacesRequestToParams(t *testing.T) {
	tests := []struct {
		name   string
		places any
		want   int
	}{
		{name: "number", places: float64(4), want: 4},
		{name: "numeric string", places: "4", want: 4},
		{name: "fraction", places: 2.5, want: 0},
		{name: "missing", places: nil, want: 0},
		{name: "bool", places: true, want: 0},
		{name: "above int32", places: 3e9, want: 3_000_000_000},
		{name: "above int", places: 1e20, want: math.MaxInt},
		{name: "below int", places: -1e20, want: math.MinInt},
		{name: "oversized string", places: "99999999999999999999", want: math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := reqdto.PurchasePlacesRequest{Club: "Iron Temple", Competition: "Fall Classic", Places: tt.places}
			params := req.ToParams()
			assert.Equal(t, tt.want, params.Places)
			assert.Equal(t, "Iron Temple", params.Club)
			assert.Equal(t, "Fall Classic", params.Competition)
		})
	}
}
