package card

import (
	"strconv"
	"time"
)

const (
	maxMonth = 12
	// maxYear is the last year an expiry can name; larger years are
	// treated as unparseable.
	maxYear = 275760
)

// Type returns the id of the scheme matching number.
func (r *Registry) Type(number string) (string, bool) {
	s, ok := r.Match(Normalize(number))
	if !ok {
		return "", false
	}
	return s.ID, true
}

// Name returns the display name of the scheme matching number.
func (r *Registry) Name(number string) (string, bool) {
	s, ok := r.Match(Normalize(number))
	if !ok {
		return "", false
	}
	return s.Name, true
}

// ValidateNumber checks the scheme, length and, where the scheme requires
// it, the mod-10 checksum of number.
func (r *Registry) ValidateNumber(number string) bool {
	digits := Normalize(number)
	if digits == "" {
		return false
	}

	s, ok := r.Match(digits)
	if !ok {
		return false
	}
	if !s.AcceptsLength(len(digits)) {
		return false
	}
	if s.Luhn {
		return LuhnValid(digits)
	}
	return true
}

// ValidateCVC checks cvc against the global 3-4 digit bound and, when
// schemeID names a known scheme, against that scheme's CVC lengths.
// An unknown schemeID adds no restriction.
func (r *Registry) ValidateCVC(cvc, schemeID string) bool {
	digits := Normalize(cvc)
	if len(digits) < MinCVCLength || len(digits) > MaxCVCLength {
		return false
	}
	if schemeID == "" {
		return true
	}
	if s, ok := r.Lookup(schemeID); ok {
		return s.AcceptsCVCLength(len(digits))
	}
	return true
}

// Format groups number for display using the matched scheme's grouping.
// Numbers with no matching scheme come back normalized but ungrouped.
func (r *Registry) Format(number string) string {
	digits := Normalize(number)
	s, ok := r.Match(digits)
	if !ok {
		return digits
	}
	if limit := s.MaxLength(); limit > 0 && len(digits) > limit {
		digits = digits[:limit]
	}
	return s.Grouping.Apply(digits)
}

// ValidateExpiry reports whether a card expiring in month/year is still
// valid at now. A card is valid through the end of its expiry month.
//
// Only months above 12 are rejected; month 0 is accepted and treated as
// the month before January of year. Two-digit years take the century of
// now, with no rollover: "99" in 2025 is 2099. Years after 275760 are
// rejected.
func ValidateExpiry(month, year string, now time.Time) bool {
	month = Normalize(month)
	year = Normalize(year)
	if month == "" || year == "" {
		return false
	}

	m, err := strconv.Atoi(month)
	if err != nil || m > maxMonth {
		return false
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	if len(year) == 2 {
		y += now.Year() / 100 * 100
	}
	if y > maxYear {
		return false
	}

	// time.Date normalizes month 13 to January of the next year.
	expiry := time.Date(y, time.Month(m+1), 1, 0, 0, 0, 0, now.Location())
	return expiry.After(now)
}

// ValidateExpiry lets a Registry stand in for the package-level API.
// Expiry rules do not depend on schemes.
func (r *Registry) ValidateExpiry(month, year string, now time.Time) bool {
	return ValidateExpiry(month, year, now)
}
