package domain

import (
	"strconv"
	"strings"
)

// Position is a track or disc position with an optional total, the
// structured form of the "N" / "N/Total" editing representation.
type Position struct {
	Number *int
	Total  *int
}

// ParsePosition parses the editing representation of a position.
// "5/12" yields {5, 12}, "5" yields {5, nil}, an unparsable numerator
// yields {nil, nil}; an unparsable or absent denominator is dropped.
func ParsePosition(raw string) Position {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Position{}
	}

	numPart, totalPart, hasTotal := strings.Cut(raw, "/")

	number, err := strconv.Atoi(strings.TrimSpace(numPart))
	if err != nil || number < 0 {
		return Position{}
	}

	pos := Position{Number: &number}
	if !hasTotal {
		return pos
	}

	total, err := strconv.Atoi(strings.TrimSpace(totalPart))
	if err != nil || total < 0 {
		return pos
	}
	pos.Total = &total
	return pos
}

// FormatPosition renders a number/total pair in the editing
// representation: "N/Total", "N", or "" when no number is present.
func FormatPosition(number, total *int) string {
	if number == nil {
		return ""
	}
	if total == nil {
		return strconv.Itoa(*number)
	}
	return strconv.Itoa(*number) + "/" + strconv.Itoa(*total)
}

// String renders the position in its editing representation.
func (p Position) String() string {
	return FormatPosition(p.Number, p.Total)
}
