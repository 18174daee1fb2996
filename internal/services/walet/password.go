package walet

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptEncoder hashes passwords with bcrypt.
type BcryptEncoder struct {
	Cost int
}

func (e BcryptEncoder) Encode(raw string) (string, error) {
	cost := e.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// PlainEncoder stores passwords unchanged.
type PlainEncoder struct{}

func (PlainEncoder) Encode(raw string) (string, error) {
	return raw, nil
}
