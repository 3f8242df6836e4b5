package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		window   DeliveryWindow
		start    string
		end      string
		expected bool
	}{
		{
			name:     "disjoint windows do not overlap",
			window:   DeliveryWindow{TimeStart: "09:00", TimeEnd: "12:00"},
			start:    "13:00",
			end:      "16:00",
			expected: false,
		},
		{
			name:     "partial intersection overlaps",
			window:   DeliveryWindow{TimeStart: "09:00", TimeEnd: "13:00"},
			start:    "12:00",
			end:      "16:00",
			expected: true,
		},
		{
			name:     "back-to-back windows do not overlap",
			window:   DeliveryWindow{TimeStart: "09:00", TimeEnd: "12:00"},
			start:    "12:00",
			end:      "15:00",
			expected: false,
		},
		{
			name:     "back-to-back windows do not overlap in reverse order",
			window:   DeliveryWindow{TimeStart: "12:00", TimeEnd: "15:00"},
			start:    "09:00",
			end:      "12:00",
			expected: false,
		},
		{
			name:     "contained window overlaps",
			window:   DeliveryWindow{TimeStart: "10:00", TimeEnd: "11:00"},
			start:    "09:00",
			end:      "18:00",
			expected: true,
		},
		{
			name:     "surrounding window overlaps",
			window:   DeliveryWindow{TimeStart: "09:00", TimeEnd: "18:00"},
			start:    "10:00",
			end:      "11:00",
			expected: true,
		},
		{
			name:     "identical windows overlap",
			window:   DeliveryWindow{TimeStart: "09:00", TimeEnd: "12:00"},
			start:    "09:00",
			end:      "12:00",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.window.Overlaps(tt.start, tt.end))
		})
	}
}

func TestDeliveryWindow_AvailableMinutes(t *testing.T) {
	window := DeliveryWindow{TimeStart: "09:00", TimeEnd: "18:00"}
	assert.Equal(t, 540, window.AvailableMinutes())

	malformed := DeliveryWindow{TimeStart: "soon", TimeEnd: "18:00"}
	assert.Equal(t, 0, malformed.AvailableMinutes())
}
