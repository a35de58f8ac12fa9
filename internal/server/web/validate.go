package web

import "unicode"

// Register form validation messages.
const (
	MsgUsernameRequired = "The Username field is required."
	MsgPasswordRequired = "The Password field is required."
	MsgPasswordTooShort = "The Password must be at least 8 characters long."
	MsgPasswordTooWeak  = "Passwords must be at least 8 characters and contain: upper case (A-Z), lower case (a-z), number (0-9) and special character (e.g. !@#$%^&*)"
	MsgConfirmMismatch  = "The password and confirmation password do not match."
)

const minPasswordLength = 8

// validateRegister checks a registration form against the password policy and
// returns every violation. The credential service is only reached when the
// result is empty.
func validateRegister(r registerRequest) []string {
	var errs []string

	if r.Username == "" {
		errs = append(errs, MsgUsernameRequired)
	}

	switch {
	case r.Password == "":
		errs = append(errs, MsgPasswordRequired)
	case len(r.Password) < minPasswordLength:
		errs = append(errs, MsgPasswordTooShort)
	case !passwordMeetsPolicy(r.Password):
		errs = append(errs, MsgPasswordTooWeak)
	}

	if r.ConfirmPassword != r.Password {
		errs = append(errs, MsgConfirmMismatch)
	}

	return errs
}

// passwordMeetsPolicy requires at least one upper-case letter, one lower-case
// letter, one digit, and one special character. Only punctuation and symbol
// runes count as special; spaces and control characters do not.
func passwordMeetsPolicy(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
