package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The booking panel hands dates over as calendar labels ("Mon, December 1st,
// 2025"), the admin edit form as ISO strings. Both normalize to YYYY-MM-DD.

var (
	weekdayPrefixRe = regexp.MustCompile(`^[A-Za-z]{3},\s*`)
	ordinalRe       = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

	timeAmPmRe = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(am|pm)$`)
	time24hRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2006/01/02",
}

// ParseBookingDate normalizes a free-text date to "YYYY-MM-DD". A leading
// three-letter weekday ("Wed, ") and ordinal day suffixes ("24th") are
// stripped before parsing. Already-ISO input passes through unchanged.
func ParseBookingDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalidBookingDate
	}

	s = weekdayPrefixRe.ReplaceAllString(s, "")
	s = ordinalRe.ReplaceAllString(s, "$1")

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.UTC().Format("2006-01-02"), nil
	}
	return "", ErrInvalidBookingDate
}

// ParseBookingTime normalizes "10:00 am" / "5:15 pm" / "14:30" to a
// zero-padded 24-hour "HH:MM:00".
func ParseBookingTime(raw string) (string, error) {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return "", ErrInvalidBookingTime
	}

	if m := timeAmPmRe.FindStringSubmatch(s); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if hh < 1 || hh > 12 || mm > 59 {
			return "", ErrInvalidBookingTime
		}
		if m[3] == "pm" && hh != 12 {
			hh += 12
		}
		if m[3] == "am" && hh == 12 {
			hh = 0
		}
		return fmt.Sprintf("%02d:%02d:00", hh, mm), nil
	}

	if m := time24hRe.FindStringSubmatch(s); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if hh > 23 || mm > 59 {
			return "", ErrInvalidBookingTime
		}
		return fmt.Sprintf("%02d:%02d:00", hh, mm), nil
	}

	return "", ErrInvalidBookingTime
}
