// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-novel-hub/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements [PasswordHasher] with bcrypt.
//
// The plaintext is first run through HMAC-SHA256 keyed with the server
// pepper and hex-encoded. The pre-hash is 64 bytes, which keeps bcrypt below
// its 72-byte input limit for passwords of any length.
type BcryptHasher struct {
	pepper string
	cost   int
}

// NewBcryptHasher returns a hasher using pepper (may be empty) and
// bcrypt.DefaultCost.
func NewBcryptHasher(pepper string) *BcryptHasher {
	return &BcryptHasher{pepper: pepper, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (h *BcryptHasher) WithCost(cost int) *BcryptHasher {
	h.cost = cost
	return h
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(h.prehash(plaintext)), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	if digest == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(h.prehash(plaintext))) == nil
}

func (h *BcryptHasher) prehash(plaintext string) string {
	return utils.HashString(plaintext, h.pepper)
}
