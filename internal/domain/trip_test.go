package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripRequest_Hops(t *testing.T) {
	req := TripRequest{Stops: []Stop{
		{City: "Москва", Date: "2025-03-01"},
		{City: " Тверь ", Date: "2025-03-02"},
		{City: "Москва"},
	}}

	assert.NoError(t, req.Validate())
	assert.Equal(t, []Hop{
		{Index: 0, From: "Москва", To: "Тверь", Date: "2025-03-01"},
		{Index: 1, From: "Тверь", To: "Москва", Date: "2025-03-02"},
	}, req.Hops())
}

func TestTripRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  TripRequest
	}{
		{"single stop", TripRequest{Stops: []Stop{{City: "A", Date: "2025-03-01"}}}},
		{"empty city", TripRequest{Stops: []Stop{{City: "A", Date: "2025-03-01"}, {City: " "}}}},
		{"bad date", TripRequest{Stops: []Stop{{City: "A", Date: "01.03.2025"}, {City: "B"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.req.Validate(), ErrInvalidTrip)
		})
	}
	assert.Nil(t, TripRequest{}.Hops())
}
