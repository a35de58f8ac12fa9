package models

// AuthOutcome is the result of a registration or login attempt. It represents
// business-rule rejections only; infrastructure faults travel as regular
// errors. Errors is empty exactly when Succeeded is true.
type AuthOutcome struct {
	Succeeded bool
	Errors    []string
}

// Success returns a succeeded outcome.
func Success() *AuthOutcome {
	return &AuthOutcome{Succeeded: true}
}

// Failure returns a failed outcome carrying one or more human-readable
// reasons.
func Failure(errs ...string) *AuthOutcome {
	return &AuthOutcome{Errors: errs}
}
