package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrDuplicateFilename  = errors.New("a photo with that filename already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("record not found")
)

// isDuplicateErr reports whether err is a unique-constraint violation.
// Not all driver/gorm combinations translate to gorm.ErrDuplicatedKey,
// so fall back to matching the driver message.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
