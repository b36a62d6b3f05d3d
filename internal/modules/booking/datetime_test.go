package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mon, 29th Dec 2025", "2025-12-29"},
		{"Wed, 24th Dec 2025", "2025-12-24"},
		{"Mon, December 1st, 2025", "2025-12-01"},
		{"Sun, December 21st, 2025", "2025-12-21"},
		{"Thu, January 22nd, 2026", "2026-01-22"},
		{"Wed, December 3rd, 2025", "2025-12-03"},
		{"2025-12-29", "2025-12-29"},
		{"December 24, 2025", "2025-12-24"},
		{"24 Dec 2025", "2025-12-24"},
		{"2025-12-29T00:00:00Z", "2025-12-29"},
		{"  2025-12-29  ", "2025-12-29"},
	}

	for _, tc := range cases {
		got, err := ParseBookingDate(tc.in)
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseBookingDate_Idempotent(t *testing.T) {
	first, err := ParseBookingDate("Mon, 29th Dec 2025")
	assert.NoError(t, err)

	second, err := ParseBookingDate(first)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseBookingDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "garbage", "32nd Dec 2025", "2025-02-30", "sometime next week"} {
		_, err := ParseBookingDate(in)
		assert.ErrorIs(t, err, ErrInvalidBookingDate, "input %q", in)
	}
}

func TestParseBookingTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10:00 am", "10:00:00"},
		{"2:30 pm", "14:30:00"},
		{"5:15 pm", "17:15:00"},
		{"12:00 pm", "12:00:00"},
		{"12:00 am", "00:00:00"},
		{"11:45 AM", "11:45:00"},
		{"14:30", "14:30:00"},
		{"9:05", "09:05:00"},
		{"17:15:00", "17:15:00"},
		{" 5:15 pm ", "17:15:00"},
	}

	for _, tc := range cases {
		got, err := ParseBookingTime(tc.in)
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseBookingTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "garbage", "25:00", "13:00 pm", "10:75 am", "noonish"} {
		_, err := ParseBookingTime(in)
		assert.ErrorIs(t, err, ErrInvalidBookingTime, "input %q", in)
	}
}
