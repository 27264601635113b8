package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const defaultCost = 12

var (
	// ErrMismatch is returned when a password does not match its hash
	ErrMismatch = errors.New("password does not match")
	// ErrTooLong is returned for passwords bcrypt would silently truncate
	ErrTooLong = errors.New("password must be 72 bytes or fewer")
)

// Service hashes and verifies admin passwords with bcrypt.
type Service struct {
	cost int
}

// NewService creates a Service with the default cost
func NewService() *Service {
	return &Service{cost: defaultCost}
}

// NewServiceWithCost creates a Service with a custom cost. Tests use bcrypt.MinCost.
func NewServiceWithCost(cost int) *Service {
	return &Service{cost: cost}
}

// Hash returns the bcrypt hash of plaintext
func (s *Service) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify returns nil when plaintext matches hash
func (s *Service) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to compare password hash: %w", err)
	}
	return nil
}
