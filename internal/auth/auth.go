// Package auth implements the username/password login gate in front of
// the dashboard. Users are registered at startup; passwords are stretched
// with Argon2id and stored as SHA256 hashes, never in clear. A successful
// login issues a signed session token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/OLMA25/guzels-clinic-management-system/internal/validation"
)

// ErrInvalidCredentials indicates a wrong username or password. Login
// never says which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// User is a registered dashboard account
type User struct {
	ID       string
	Username string
	IsAdmin  bool

	credentialHash string
	salt           []byte
}

// Service verifies credentials and issues session tokens
type Service struct {
	users  map[string]*User
	jwtCfg JWTConfig
}

// NewService creates an auth service with the given signing secret.
// Session tokens live for sessionTTL.
func NewService(secret []byte, sessionTTL time.Duration) *Service {
	return &Service{
		users: make(map[string]*User),
		jwtCfg: JWTConfig{
			Secret:     secret,
			SessionTTL: sessionTTL,
		},
	}
}

// AddUser registers an account. The password is derived and hashed
// immediately and the clear text discarded.
func (s *Service) AddUser(username, password string, isAdmin bool) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	salt, err := GenerateSalt()
	if err != nil {
		return err
	}

	key, err := DeriveCredentialKey(password, username, salt)
	if err != nil {
		return fmt.Errorf("failed to derive credential key: %w", err)
	}

	hash, err := HashCredentialKey(key)
	if err != nil {
		return fmt.Errorf("failed to hash credential key: %w", err)
	}

	s.users[username] = &User{
		ID:             uuid.NewString(),
		Username:       username,
		IsAdmin:        isAdmin,
		credentialHash: hash,
		salt:           salt,
	}

	return nil
}

// Login verifies the credentials and returns a session token.
// Returns ErrInvalidCredentials on any mismatch.
func (s *Service) Login(username, password string) (string, *User, error) {
	user, ok := s.users[username]
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	key, err := DeriveCredentialKey(password, username, user.salt)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := VerifyCredentialKey(key, user.credentialHash); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateSessionToken(s.jwtCfg, user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session: %w", err)
	}

	return token, user, nil
}

// ValidateSession parses and checks a session token issued by Login
func (s *Service) ValidateSession(token string) (*SessionClaims, error) {
	return ValidateSessionToken(s.jwtCfg, token)
}
