package validation

import "regexp"

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-_.]{2,20}[A-Za-z0-9]$`)
	passwordRe = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+=-]{6,32}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username)
}

func ValidatePassword(password string) bool {
	return passwordRe.MatchString(password)
}

func ValidateEmail(email string) bool {
	return len(email) <= 255 && emailRe.MatchString(email)
}
