package card

import "strings"

// Grouping selects how a card number is split into display groups.
type Grouping int

const (
	// GroupingUniform splits into groups of four, the last group possibly shorter.
	GroupingUniform Grouping = iota
	// GroupingAmex splits into groups of at most 4, 6 and 5 digits.
	GroupingAmex
)

const uniformGroupSize = 4

var amexGroupSizes = []int{4, 6, 5}

func (g Grouping) String() string {
	switch g {
	case GroupingUniform:
		return "uniform"
	case GroupingAmex:
		return "amex"
	default:
		return "unknown"
	}
}

// Split breaks digits into display groups. Empty groups are never returned.
// For GroupingAmex digits beyond the third group are dropped, callers
// truncate to the scheme's longest length first.
func (g Grouping) Split(digits string) []string {
	var groups []string

	switch g {
	case GroupingAmex:
		rest := digits
		for _, size := range amexGroupSizes {
			if rest == "" {
				break
			}
			n := min(size, len(rest))
			groups = append(groups, rest[:n])
			rest = rest[n:]
		}
	default:
		for i := 0; i < len(digits); i += uniformGroupSize {
			end := min(i+uniformGroupSize, len(digits))
			groups = append(groups, digits[i:end])
		}
	}

	return groups
}

// Apply splits digits and joins the groups with a single space. When no
// group is produced the input is returned unchanged.
func (g Grouping) Apply(digits string) string {
	groups := g.Split(digits)
	if len(groups) == 0 {
		return digits
	}
	return strings.Join(groups, " ")
}
