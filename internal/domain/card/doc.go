/*
Package card identifies payment card schemes and validates card data.

Everything in this package is pure: no I/O, no ambient clock and no state
that changes after package initialization. All functions are safe for
concurrent use.

Usage:

	// Identify the scheme
	id, ok := card.Type("4242 4242 4242 4242") // "visa", true

	// Validate the number (length + mod-10 checksum)
	ok = card.ValidateNumber("4242 4242 4242 4242")

	// Validate expiry against an explicit reference instant
	ok = card.ValidateExpiry("07", "25", time.Now())

	// Validate a CVC, optionally scoped to a scheme
	ok = card.ValidateCVC("1234", "amex")

	// Format for display
	s := card.Format("378282246310005") // "3782 822463 10005"

Schemes:

The default registry is an ordered table. Matching walks it in order and the
first scheme whose prefix pattern matches wins, so overlapping prefixes are
resolved by position, not by specificity. Use NewRegistry to build a custom
table; its methods mirror the package-level functions.

Expiry:

Two-digit years are expanded with the century of the reference instant, so
"99" in 2025 means 2099. Months above 12 are rejected but month 0 is not.
*/
package card
