package domain

import "context"

// AdminIdentity is the authenticated admin attached to request context.
type AdminIdentity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// AdminSession is what a successful credential sign-in yields.
type AdminSession struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresInSec int64  `json:"expiresIn"`
}

type SessionUsecase interface {
	// Login exchanges credentials for a session; provider error codes are
	// mapped to the operator-facing messages.
	Login(ctx context.Context, email, password string) (*AdminSession, error)
	// VerifyAdmin checks the isAdmin claim on a fresh, non-cached claims
	// snapshot for the given ID token.
	VerifyAdmin(ctx context.Context, idToken string) (*AdminIdentity, error)
}
