package usecase

import (
	"context"
	"errors"
	"net/http"

	"jobboard-admin/internal/domain"
	"jobboard-admin/pkg/apperror"
	"jobboard-admin/pkg/auth"
	"jobboard-admin/pkg/logger"
)

// Operator-facing messages for the sign-in and privilege checks. The exact
// wording is part of the admin UI contract.
const (
	MsgAccessDenied       = "Access Denied: You do not have admin privileges."
	MsgVerifyError        = "Error verifying your credentials. Please try again."
	MsgInvalidCredentials = "Invalid email or password."
	MsgInvalidEmail       = "Please enter a valid email address."
	MsgLoginFailed        = "Login Failed. Please check your credentials."
)

// IdentityClient is the slice of the identity provider the session usecase
// needs: password sign-in and a fresh (non-cached) claims lookup.
type IdentityClient interface {
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)
	FreshClaims(ctx context.Context, idToken string) (*auth.Claims, error)
}

type sessionUsecase struct {
	identity IdentityClient
}

func NewSessionUsecase(identity IdentityClient) domain.SessionUsecase {
	return &sessionUsecase{identity: identity}
}

// Login signs the operator in and immediately verifies the admin claim. A
// successful password check without the claim is still a denied login; no
// session is handed out.
func (u *sessionUsecase) Login(ctx context.Context, email, password string) (*domain.AdminSession, error) {
	sess, err := u.identity.SignIn(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return nil, apperror.New(http.StatusUnauthorized, MsgInvalidCredentials, err)
		case errors.Is(err, auth.ErrInvalidEmail):
			return nil, apperror.New(http.StatusBadRequest, MsgInvalidEmail, err)
		case errors.Is(err, auth.ErrUserDisabled):
			return nil, apperror.New(http.StatusForbidden, MsgLoginFailed, err)
		default:
			return nil, apperror.New(http.StatusUnauthorized, MsgLoginFailed, err)
		}
	}

	if _, err := u.VerifyAdmin(ctx, sess.IDToken); err != nil {
		logger.Log.Warn("Login rejected: admin claim missing or unverifiable", "email", email)
		return nil, err
	}

	return &domain.AdminSession{
		UID:          sess.UID,
		Email:        sess.Email,
		IDToken:      sess.IDToken,
		RefreshToken: sess.RefreshToken,
		ExpiresInSec: sess.ExpiresInSec,
	}, nil
}

// VerifyAdmin re-reads the account's custom claims from the identity provider
// rather than trusting the copy cached inside the token. A missing or false
// isAdmin claim forces sign-out upstream.
func (u *sessionUsecase) VerifyAdmin(ctx context.Context, idToken string) (*domain.AdminIdentity, error) {
	claims, err := u.identity.FreshClaims(ctx, idToken)
	if err != nil {
		return nil, apperror.New(http.StatusUnauthorized, MsgVerifyError, err)
	}
	if !claims.IsAdmin {
		return nil, apperror.New(http.StatusForbidden, MsgAccessDenied, domain.ErrPrivilegeRevoked)
	}
	return &domain.AdminIdentity{UID: claims.UID, Email: claims.Email}, nil
}
