package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-admin/config"
	"jobboard-admin/internal/delivery/http/response"
	"jobboard-admin/internal/domain"
	"jobboard-admin/pkg/apperror"
	"jobboard-admin/pkg/auth"
	"jobboard-admin/pkg/logger"
)

// SessionGuard protects admin routes. The ID token is taken from the
// Authorization header or the session cookie, its signature is checked
// locally, and the admin claim is then re-read from the identity provider so
// a privilege revoked after the token was minted still locks the session out.
// Any failure clears the session cookie; the client is signed out, not left
// in a half-authenticated state.
func SessionGuard(verifier *auth.Verifier, cfg *config.Config, session domain.SessionUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c, cfg.CookieName)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or session cookie required", nil)
			c.Abort()
			return
		}

		if _, err := verifier.Verify(tokenString); err != nil {
			logger.Log.Warn("Session token rejected", "error", err)
			clearSessionCookie(c, cfg)
			response.Error(c, http.StatusUnauthorized, "Invalid session token", nil)
			c.Abort()
			return
		}

		ident, err := session.VerifyAdmin(c.Request.Context(), tokenString)
		if err != nil {
			clearSessionCookie(c, cfg)
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code == http.StatusForbidden {
					logger.Log.Warn("Admin claim denied, forcing sign-out", "path", c.FullPath())
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "Error verifying your credentials. Please try again.", nil)
			}
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), domain.KeyAdminUID, ident.UID)
		ctx = context.WithValue(ctx, domain.KeyAdminEmail, ident.Email)
		ctx = context.WithValue(ctx, domain.KeyIDToken, tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(domain.KeyAdminUID), ident.UID)
		c.Set(string(domain.KeyAdminEmail), ident.Email)

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

func clearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.CookieSecure, true)
}
