package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for credential key derivation
const (
	// Argon2Time is the number of iterations (time cost)
	Argon2Time = 1
	// Argon2Memory is the memory cost in KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads is the number of parallel lanes
	Argon2Threads = 4
	// Argon2KeyLen is the derived key length in bytes
	Argon2KeyLen = 32
	// SaltSize is the salt length in bytes
	SaltSize = 32
)

// GenerateSalt returns a cryptographically random salt
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveCredentialKey stretches a login password with Argon2id. The
// username is folded into the input so equal passwords of different users
// derive different keys.
func DeriveCredentialKey(password, username string, salt []byte) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	input := []byte(username + ":" + password)
	key := argon2.IDKey(input, salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	return key, nil
}

// HashCredentialKey hashes a derived credential key with SHA256. The key
// is already stretched by Argon2id; the hash is what gets stored.
func HashCredentialKey(key []byte) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("credential key cannot be empty")
	}

	hash := sha256.Sum256(key)
	return hex.EncodeToString(hash[:]), nil
}

// VerifyCredentialKey checks a derived key against the stored hash
func VerifyCredentialKey(key []byte, hashedKey string) error {
	if len(key) == 0 {
		return fmt.Errorf("credential key cannot be empty")
	}
	if hashedKey == "" {
		return fmt.Errorf("hashed credential key cannot be empty")
	}

	computed, err := HashCredentialKey(key)
	if err != nil {
		return fmt.Errorf("failed to compute credential key hash: %w", err)
	}

	if computed != hashedKey {
		return fmt.Errorf("invalid credential key")
	}

	return nil
}
