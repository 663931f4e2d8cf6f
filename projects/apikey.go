package projects

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KeyInfo is what the hosted service encodes in its API keys.
type KeyInfo struct {
	Role      string
	Ref       string
	ExpiresAt time.Time
}

type keyClaims struct {
	Role string `json:"role"`
	Ref  string `json:"ref"`
	jwt.RegisteredClaims
}

// ServiceRole is the role of keys that bypass row level security.
const ServiceRole = "service_role"

// InspectKey decodes an API key without verifying its signature; only the
// hosted service holds the secret. It fails for keys that are not JWTs or
// that have already expired.
func InspectKey(key string, now time.Time) (KeyInfo, error) {
	var claims keyClaims
	if _, _, err := jwt.NewParser().ParseUnverified(key, &claims); err != nil {
		return KeyInfo{}, fmt.Errorf("api key is not a JWT: %w", err)
	}
	info := KeyInfo{Role: claims.Role, Ref: claims.Ref}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
		if !info.ExpiresAt.After(now) {
			return info, fmt.Errorf("api key expired at %s", info.ExpiresAt.Format(time.RFC3339))
		}
	}
	if info.Role == "" {
		return info, errors.New("api key has no role claim")
	}
	return info, nil
}
