package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks ID token signatures against the provider's JWKS and
// extracts the identity claims embedded in the token. The isAdmin claim here
// is the token's cached copy; privilege checks must still go through
// Provider.FreshClaims.
type Verifier struct {
	keys     *KeySet
	issuer   string
	audience string
}

func NewVerifier(keys *KeySet, issuer, audience string) *Verifier {
	return &Verifier{keys: keys, issuer: issuer, audience: audience}
}

func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.Parse(tokenString, v.keys.KeyFunc, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("auth: token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("auth: unexpected claims type")
	}

	claims := &Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.UID = sub
	}
	if claims.UID == "" {
		claims.UID, _ = mapClaims["user_id"].(string)
	}
	claims.Email, _ = mapClaims["email"].(string)
	claims.IsAdmin, _ = mapClaims["isAdmin"].(bool)
	return claims, nil
}
