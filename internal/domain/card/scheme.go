package card

import (
	"regexp"
	"slices"
)

// CVC lengths accepted by any scheme.
const (
	MinCVCLength = 3
	MaxCVCLength = 4
)

// Scheme describes one card network and its numbering rules.
type Scheme struct {
	ID         string         `json:"type"`
	Name       string         `json:"name"`
	Pattern    *regexp.Regexp `json:"-"`
	Lengths    []int          `json:"lengths"`
	CVCLengths []int          `json:"cvc_lengths"`
	Grouping   Grouping       `json:"-"`
	Luhn       bool           `json:"luhn"`
}

// Matches reports whether the scheme's prefix pattern matches digits.
func (s Scheme) Matches(digits string) bool {
	if s.Pattern == nil || digits == "" {
		return false
	}
	loc := s.Pattern.FindStringIndex(digits)
	return loc != nil && loc[0] == 0
}

// AcceptsLength reports whether n is a valid number length.
func (s Scheme) AcceptsLength(n int) bool {
	return slices.Contains(s.Lengths, n)
}

// AcceptsCVCLength reports whether n is a valid CVC length.
func (s Scheme) AcceptsCVCLength(n int) bool {
	return slices.Contains(s.CVCLengths, n)
}

// MaxLength is the longest valid number length, or 0 if none is set.
func (s Scheme) MaxLength() int {
	if len(s.Lengths) == 0 {
		return 0
	}
	return slices.Max(s.Lengths)
}

func lengthRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, n)
	}
	return out
}

// DefaultSchemes returns the built-in scheme table in match order.
func DefaultSchemes() []Scheme {
	return []Scheme{
		{
			ID:         "maestro",
			Name:       "Maestro",
			Pattern:    regexp.MustCompile(`^(5018|5020|5038|6304|6759|676[1-3])`),
			Lengths:    lengthRange(12, 19),
			CVCLengths: []int{MinCVCLength},
			Grouping:   GroupingUniform,
			Luhn:       true,
		},
		{
			ID:         "dinersclub",
			Name:       "Diner’s Club",
			Pattern:    regexp.MustCompile(`^(36|38|30[0-5])`),
			Lengths:    []int{14},
			CVCLengths: []int{MinCVCLength},
			Grouping:   GroupingUniform,
			Luhn:       true,
		},
		{
			ID:         "laser",
			Name:       "Laser",
			Pattern:    regexp.MustCompile(`^(6706|6771|6709)`),
			Lengths:    lengthRange(16, 19),
			CVCLengths: []int{MinCVCLength},
			Grouping:   GroupingUniform,
			Luhn:       true,
		},
		{
			ID:         "jcb",
			Name:       "JCB",
			Pattern:    regexp.MustCompile(`^35`),
			Lengths:    []int{15, 16},
			CVCLengths: []int{MinCVCLength},
			Grouping:   GroupingUniform,
			Luhn:       true,
		},
		{
			ID:         "unionpay",
			Name:       "UnionPay",
			Pattern:    regexp.MustCompile(`^62`),
			Lengths:    []int{16},
			CVCLengths: []int{MinCVCLength},
			Grouping:   GroupingUniform,
			Luhn:       false,
		},
		{
			ID:         "discover",
			Name:       "Discover",
			Pattern:    regexp.MustCompile(`^(6011|65|64[4-9]|622[1-9])`),
			Lengths:    []int{16},
			CVCLengths: []int{MinCVCLength},
			Grouping:   GroupingUniform,
			Luhn:       true,
		},
		{
			ID:         "mastercard",
			Name:       "MasterCard",
			Pattern:    regexp.MustCompile(`^5[0-5]`),
			Lengths:    []int{16},
			CVCLengths: []int{MinCVCLength},
			Grouping:   GroupingUniform,
			Luhn:       true,
		},
		{
			ID:         "amex",
			Name:       "American Express",
			Pattern:    regexp.MustCompile(`^3[47]`),
			Lengths:    []int{15},
			CVCLengths: []int{MinCVCLength, MaxCVCLength},
			Grouping:   GroupingAmex,
			Luhn:       true,
		},
		{
			ID:         "visa",
			Name:       "Visa",
			Pattern:    regexp.MustCompile(`^4`),
			Lengths:    []int{13, 16},
			CVCLengths: []int{MinCVCLength},
			Grouping:   GroupingUniform,
			Luhn:       true,
		},
	}
}
