// Package token decodes the payload segment of a compact signed credential
// and checks its expiry claim. No signature verification is performed; this
// is a presentation-layer expiry check, not a security boundary.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// now is swapped in tests.
var now = time.Now

// ExpiresAt extracts the exp claim from a compact token without verifying
// its signature. ok is false when the token is malformed or carries no exp.
func ExpiresAt(credential string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(credential, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// IsExpired reports whether the credential's exp claim is strictly in the
// past. Fail-closed: wrong segment count, undecodable or non-JSON payload,
// and absent or non-numeric exp all count as expired rather than erroring.
func IsExpired(credential string) bool {
	exp, ok := ExpiresAt(credential)
	if !ok {
		return true
	}
	return exp.Unix() < now().Unix()
}
