package interfaces

import "devconnector/internal/auth"

// TokenServiceInterface issues and verifies session tokens
type TokenServiceInterface interface {
	Issue(identity auth.Identity) (string, error)
	Verify(token string) (auth.Identity, error)
}

// PasswordHasherInterface hashes and checks stored credentials
type PasswordHasherInterface interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
