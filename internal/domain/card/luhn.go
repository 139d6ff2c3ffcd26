package card

// LuhnValid reports whether digits passes the mod-10 checksum.
// digits must already be normalized. The empty string sums to 0 and passes;
// callers guard against empty input themselves.
func LuhnValid(digits string) bool {
	var sum int
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i]) - '0'
		if d < 0 || d > 9 {
			// normalized input never gets here
			d = 0
		}

		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
		double = !double
	}

	return sum%10 == 0
}
