package auth

import "errors"

// ErrIdentityNotFound is the error we return for not found identities
var ErrIdentityNotFound = errors.New("identity not found")

// ErrMismatchedHashAndPassword is the error for a failed password comparison
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password")

// ErrInvalidCredentials is the collapsed login failure surfaced to callers.
// Unknown username and bad password both map here so responses cannot be
// used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDuplicateUser means the username or email is already registered
var ErrDuplicateUser = errors.New("username or email already registered")

// ErrPartialRegistration means the role assignment step of registration
// failed; the enclosing transaction rolls the identity back
var ErrPartialRegistration = errors.New("registration incomplete: role assignment failed")

// ErrNoEmptyString rejects empty required string inputs
var ErrNoEmptyString = errors.New("value must not be empty")

// ErrWeakPassword means the password failed the complexity policy
var ErrWeakPassword = errors.New("password does not meet the complexity policy")

// ErrTokenMalformed is a token that could not be parsed
var ErrTokenMalformed = errors.New("token is malformed")

// ErrTokenExpired is a token past its expiry
var ErrTokenExpired = errors.New("token is expired")

// ErrTokenSignatureInvalid is a token whose signature does not verify
var ErrTokenSignatureInvalid = errors.New("token signature is invalid")

// ErrTokenIssuerMismatch is a token from an unexpected issuer
var ErrTokenIssuerMismatch = errors.New("token issuer mismatch")

// ErrTokenAudienceMismatch is a token minted for a different audience
var ErrTokenAudienceMismatch = errors.New("token audience mismatch")

// ErrNotResourceOwner is an authenticated caller acting on a resource
// they do not own
var ErrNotResourceOwner = errors.New("caller does not own this resource")

// ErrSigningKeyTooShort is a startup configuration error, never a
// per-request one
var ErrSigningKeyTooShort = errors.New("signing key must be at least 256 bits")

// IsTokenError will check for any token validation failure
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenSignatureInvalid) ||
		errors.Is(err, ErrTokenIssuerMismatch) ||
		errors.Is(err, ErrTokenAudienceMismatch)
}

// IsAuthenticationError will check for credential or token failures that
// should surface as one generic unauthenticated response
func IsAuthenticationError(err error) bool {
	return IsTokenError(err) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrIdentityNotFound) ||
		errors.Is(err, ErrMismatchedHashAndPassword)
}
