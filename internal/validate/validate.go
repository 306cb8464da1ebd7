// Package validate parses the answers typed at the order desk prompts.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"autozone/internal/model"
)

var (
	ErrBadNumber = errors.New("not a positive whole number")
	ErrBadDate   = errors.New("date is not a valid MM/DD/YYYY")
	ErrBadTime   = errors.New("time is not a valid HH:MM AM/PM")
	ErrBadYesNo  = errors.New("answer is not yes or no")
)

var (
	dateShape = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)
	timeShape = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5][0-9] (?i:am|pm)$`)
)

// ParseDate accepts exactly MM/DD/YYYY and rejects dates that do not exist.
func ParseDate(s string) (time.Time, error) {
	if !dateShape.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	// time.Parse rejects month 13 and day 30 of February on its own.
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return d, nil
}

// ParseTime accepts H:MM or HH:MM followed by AM or PM in any case and
// returns the input with surrounding whitespace removed.
func ParseTime(s string) (string, error) {
	t := strings.TrimSpace(s)
	if !timeShape.MatchString(t) {
		return "", fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	return t, nil
}

// ParsePositiveInt accepts a base-10 integer in 1..model.MaxQuantity.
func ParsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > model.MaxQuantity {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return n, nil
}

// ParseYesNo reports true for "yes" and false for "no", ignoring case and
// surrounding whitespace.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrBadYesNo, s)
}
