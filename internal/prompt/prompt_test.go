package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []domain.Stop
	}{
		{
			name:  "empty city finishes",
			input: "Москва\n2025-03-01\nТверь\n2025-03-02\n\n",
			want:  []domain.Stop{{City: "Москва", Date: "2025-03-01"}, {City: "Тверь", Date: "2025-03-02"}},
		},
		{
			name:  "empty date keeps last stop",
			input: "Москва\n2025-03-01\nТверь\n\nignored\n",
			want:  []domain.Stop{{City: "Москва", Date: "2025-03-01"}, {City: "Тверь"}},
		},
		{
			name:  "repeated city is a new stop",
			input: "Москва\n2025-03-01\nТверь\n2025-03-01\nМосква\n",
			want: []domain.Stop{
				{City: "Москва", Date: "2025-03-01"},
				{City: "Тверь", Date: "2025-03-01"},
				{City: "Москва"},
			},
		},
		{
			name:  "blank first city is asked again",
			input: "\n  Москва \n2025-03-01\n",
			want:  []domain.Stop{{City: "Москва", Date: "2025-03-01"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			req, err := ReadTrip(strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Stops)
			assert.Contains(t, out.String(), "Enter the departure city: ")
		})
	}
}

func TestReadTrip_NoInput(t *testing.T) {
	_, err := ReadTrip(strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNoInput)
}
