// Package cryptox implements password hashing for EcoTracker accounts.
//
// Passwords are never persisted; only an argon2id hash derived with a random
// per-user salt is stored, and verification compares hashes in constant time.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/ecotracker/internal/common"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes generated per user at signup.
const SaltSize = 16

// argon2id parameters (time, memory KiB, threads, key length).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// GenerateSalt returns a fresh random salt for a new account.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives the stored hash from a password and salt.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassword reports whether the candidate password matches the stored
// hash. The comparison is constant-time.
func VerifyPassword(hash, password, salt []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(hash, candidate) == 1
}
