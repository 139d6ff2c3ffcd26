package card

// Type returns the scheme id for number using the default registry.
func Type(number string) (string, bool) {
	return defaultRegistry.Type(number)
}

// Name returns the scheme display name for number using the default registry.
func Name(number string) (string, bool) {
	return defaultRegistry.Name(number)
}

// ValidateNumber checks length and checksum of number against the default registry.
func ValidateNumber(number string) bool {
	return defaultRegistry.ValidateNumber(number)
}

// ValidateCVC checks cvc length, scoped to schemeID when it is a known scheme.
func ValidateCVC(cvc, schemeID string) bool {
	return defaultRegistry.ValidateCVC(cvc, schemeID)
}

// Format groups number for display using the default registry.
func Format(number string) string {
	return defaultRegistry.Format(number)
}

// Lookup finds a default scheme by id, ignoring case.
func Lookup(id string) (Scheme, bool) {
	return defaultRegistry.Lookup(id)
}

