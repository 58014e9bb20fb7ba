package auth

import "errors"

var (
	// ErrMissingCredential means no token was supplied with the request.
	ErrMissingCredential = errors.New("missing token")

	// ErrInvalidCredential covers every token verification failure: bad
	// signature, unexpected algorithm, expiry, malformed structure.
	ErrInvalidCredential = errors.New("invalid token")

	// ErrMisconfiguredSecret means the signing secret is absent or unusable.
	ErrMisconfiguredSecret = errors.New("token secret is not configured")
)
