// Package crypto holds the password hashing used by the credential flow.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-salted one-way digests
// and checks plaintexts against them.
//
// Implementations must never return or log the plaintext.
type PasswordHasher interface {
	// Hash returns a digest of plaintext suitable for storage.
	// Two calls with the same input return different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed or empty
	// digest yields false.
	Verify(plaintext, digest string) bool
}
