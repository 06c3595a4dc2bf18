package auth

import (
	"errors"
	"fmt"

	"foodtrace/pkg/serrors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password at the default cost.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", serrors.With(serrors.ErrBadRequest, "password must not be empty")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "password too long")
		}

		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(h), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
