package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FormTokenSubject is the subject claim carried by anonymous form tokens.
// The public contribution form has no authenticated user; the token only
// proves the submission originated from a form we served recently.
const FormTokenSubject = "contribution-form"

// GenerateJWT creates a signed HS256 token with the given subject and expiry.
func GenerateJWT(subject string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims, returning the claims on success.
func ParseAndValidateJWT(tokenString string, secretKey string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}

// GenerateFormToken mints the short-lived anti-replay token embedded in the
// contribution form (the moral equivalent of the old WordPress nonce).
func GenerateFormToken(secret string, ttl time.Duration, issuer string) (string, error) {
	return GenerateJWT(FormTokenSubject, secret, ttl, issuer)
}

// VerifyFormToken reports whether a submitted form token is genuine and
// still within its validity window.
func VerifyFormToken(tokenString string, secret string) bool {
	claims, err := ParseAndValidateJWT(tokenString, secret)
	if err != nil {
		return false
	}
	return claims.Subject == FormTokenSubject
}
