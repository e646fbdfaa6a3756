package validator

import (
	"fmt"
	"net/mail"
	"regexp"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func ValidateString(value string, minLength int, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}

	return nil
}

func ValidateUsername(value string) error {
	if err := ValidateString(value, 3, 30); err != nil {
		return err
	}

	if !usernamePattern.MatchString(value) {
		return fmt.Errorf("must contain only letters, digits, or underscore")
	}

	return nil
}

func ValidatePassword(value string) error {
	return ValidateString(value, 8, 64)
}

func ValidateEmail(value string) error {
	if err := ValidateString(value, 6, 200); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("is not a valid email address")
	}

	return nil
}

func ValidateItemType(value string) error {
	switch db.ItemType(value) {
	case db.ItemTypeAuction, db.ItemTypeBuyItNow:
		return nil
	}

	return fmt.Errorf("must be either %q or %q", db.ItemTypeAuction, db.ItemTypeBuyItNow)
}

func ValidatePrice(value int64) error {
	if value <= 0 {
		return fmt.Errorf("must be greater than 0")
	}

	return nil
}
