package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const issuer = "okazmarkt"

// Tokens are minted by the account service with the same shared secret; this
// service only verifies them. The default keeps dev setups working and must
// be overridden in production config.
var secret = []byte("okazmarkt-secret-change-me")

var (
	ErrNoUser       = errors.New("token carries no user id")
	ErrInvalidToken = errors.New("invalid token")
)

// SetSecret installs the shared HS256 secret. Call once at startup, before
// any request is served.
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims is the token payload. The user id travels in the uid claim.
type Claims struct {
	UserID string `json:"uid"`
	jwtlib.RegisteredClaims
}

var parser = jwtlib.NewParser(
	jwtlib.WithValidMethods([]string{"HS256"}),
	jwtlib.WithIssuer(issuer),
	jwtlib.WithExpirationRequired(),
	jwtlib.WithLeeway(30*time.Second),
)

// Sign mints a token for the given user. Used by tests and local tooling;
// production tokens come from the account service.
func Sign(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
}

// Parse verifies signature, method, issuer and expiry, and returns the
// claims.
func Parse(raw string) (*Claims, error) {
	var claims Claims
	token, err := parser.ParseWithClaims(raw, &claims, func(*jwtlib.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrNoUser
	}
	return &claims, nil
}
