package validation

import (
	"fmt"
	"regexp"
)

// UsernamePattern defines the accepted login name format:
// latin letters, digits and underscore, 3-32 characters.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

// PhonePattern accepts local and international Syrian numbers,
// e.g. 0956789123 or +963956961395.
var PhonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

const (
	// MinUsernameLen is the minimum login name length
	MinUsernameLen = 3
	// MaxUsernameLen is the maximum login name length
	MaxUsernameLen = 32
)

// ValidateUsername checks that a login name matches the accepted format
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword checks the minimum password requirements
func ValidatePassword(password string) error {
	const minPasswordLen = 4

	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}

	return nil
}

// ValidatePhone checks a client or provider phone number. Empty phones
// are accepted; duplicate numbers across clients are deliberately not
// rejected anywhere.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}

	if !PhonePattern.MatchString(phone) {
		return fmt.Errorf("phone number must contain 7-15 digits with an optional leading +")
	}

	return nil
}
