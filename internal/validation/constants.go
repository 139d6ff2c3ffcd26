package validation

const (
	// Raw input limits, checked before any card rule runs
	MaxCardInputLength   = 64
	MaxExpiryInputLength = 8
	MaxCVCInputLength    = 8
	MaxNameLength        = 200
	MaxAPIKeyLength      = 255
)
