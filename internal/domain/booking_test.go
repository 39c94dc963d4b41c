package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_ProvisionalExpired(t *testing.T) {
	expiresAt := time.Date(2026, 9, 10, 12, 15, 0, 0, time.UTC)

	provisional := &Booking{
		Status:                StatusProvisional,
		ConfirmationExpiresAt: &expiresAt,
	}

	assert.False(t, provisional.ProvisionalExpired(expiresAt.Add(-time.Minute)))
	assert.False(t, provisional.ProvisionalExpired(expiresAt), "граница окна ещё не просрочка")
	assert.True(t, provisional.ProvisionalExpired(expiresAt.Add(time.Second)))

	confirmed := &Booking{
		Status:                StatusConfirmed,
		ConfirmationExpiresAt: &expiresAt,
	}
	assert.False(t, confirmed.ProvisionalExpired(expiresAt.Add(time.Hour)),
		"подтверждённое бронирование не просрочивается")

	noWindow := &Booking{Status: StatusProvisional}
	assert.False(t, noWindow.ProvisionalExpired(expiresAt.Add(time.Hour)))
}

func TestBooking_Occupies(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Minute)
	alive := now.Add(time.Minute)

	tests := []struct {
		name     string
		booking  *Booking
		expected bool
	}{
		{
			name:     "подтверждённое занимает док",
			booking:  &Booking{Status: StatusConfirmed},
			expected: true,
		},
		{
			name:     "завершённое занимает док",
			booking:  &Booking{Status: StatusCompleted},
			expected: true,
		},
		{
			name:     "отменённое не занимает",
			booking:  &Booking{Status: StatusCancelled},
			expected: false,
		},
		{
			name:     "действующее provisional занимает",
			booking:  &Booking{Status: StatusProvisional, ConfirmationExpiresAt: &alive},
			expected: true,
		},
		{
			name:     "просроченное provisional не занимает",
			booking:  &Booking{Status: StatusProvisional, ConfirmationExpiresAt: &expired},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.booking.Occupies(now))
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusProvisional}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
}
