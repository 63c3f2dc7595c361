package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenAudience is the fixed audience claim carried by every device token.
const TokenAudience = "device"

// Internal reason codes for rejected device tokens. These are logged
// server-side and never written to a response body.
const (
	ReasonNoSecret  = "no-secret"
	ReasonFormat    = "format"
	ReasonAlg       = "alg"
	ReasonSignature = "signature"
	ReasonExpired   = "expired"
	ReasonNotBefore = "nbf"
	ReasonAudience  = "aud"
	ReasonClaims    = "claims"
)

// TokenError carries the internal reason a token was rejected. Every
// TokenError maps to a 401 externally, including no-secret: a misconfigured
// server must not look different from a forgery to the caller.
type TokenError struct {
	Reason string
	Err    error
}

func (e *TokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("device token rejected (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("device token rejected (%s)", e.Reason)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// TokenService mints and verifies HS256 device tokens. The secret is injected
// at construction and never read from the request or from globals.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new instance of TokenService
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Expiry returns the configured token lifetime
func (s *TokenService) Expiry() time.Duration {
	return s.expiry
}

// Mint issues a signed device token for a device code
func (s *TokenService) Mint(deviceCode string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("device token secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       deviceCode,
		"device_id": deviceCode,
		"aud":       TokenAudience,
		"iat":       now.Unix(),
		"nbf":       now.Unix(),
		"exp":       now.Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a bearer token and returns the device code it was minted
// for. The device code is the only identity downstream code may trust; any
// device id in the request body is ignored. On failure the returned error is
// a *TokenError whose Reason is for logs only.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if len(s.secret) == 0 {
		return "", &TokenError{Reason: ReasonNoSecret}
	}

	if strings.Count(tokenString, ".") != 2 {
		return "", &TokenError{Reason: ReasonFormat}
	}

	parser := jwt.NewParser(
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
	)

	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// HS256 only; HS384/HS512 are not accepted variants
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		if typ, ok := token.Header["typ"].(string); ok && typ != "JWT" {
			return nil, fmt.Errorf("unexpected token type %q", typ)
		}
		return s.secret, nil
	})
	if err != nil {
		return "", &TokenError{Reason: rejectionReason(err), Err: err}
	}

	// device_id claim preferred, sub as fallback
	if code, ok := claims["device_id"].(string); ok && code != "" {
		return code, nil
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}
	return "", &TokenError{Reason: ReasonClaims, Err: errors.New("no device identifier claim")}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ReasonFormat
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ReasonAlg
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ReasonSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ReasonNotBefore
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ReasonAudience
	default:
		return ReasonClaims
	}
}
