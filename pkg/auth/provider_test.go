package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func identityStub(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewProvider(srv.URL, "test-key")
}

func TestSignIn(t *testing.T) {
	t.Run("Should return a session on success", func(t *testing.T) {
		p := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "accounts:signInWithPassword")
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, true, body["returnSecureToken"])

			json.NewEncoder(w).Encode(map[string]string{
				"localId":      "u1",
				"email":        "a@x.dev",
				"idToken":      "tok",
				"refreshToken": "rt",
				"expiresIn":    "3600",
			})
		})

		sess, err := p.SignIn(context.Background(), "a@x.dev", "pw")
		assert.NoError(t, err)
		assert.Equal(t, "u1", sess.UID)
		assert.Equal(t, "tok", sess.IDToken)
		assert.Equal(t, int64(3600), sess.ExpiresInSec)
	})

	t.Run("Should map provider error codes to typed errors", func(t *testing.T) {
		cases := map[string]error{
			"EMAIL_NOT_FOUND":                          ErrInvalidCredentials,
			"INVALID_PASSWORD":                         ErrInvalidCredentials,
			"INVALID_LOGIN_CREDENTIALS":                ErrInvalidCredentials,
			"INVALID_PASSWORD : The password is wrong": ErrInvalidCredentials,
			"INVALID_EMAIL":                            ErrInvalidEmail,
			"USER_DISABLED":                            ErrUserDisabled,
		}
		for code, want := range cases {
			p := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error": map[string]string{"message": code},
				})
			})
			_, err := p.SignIn(context.Background(), "a@x.dev", "pw")
			assert.ErrorIs(t, err, want, "code %s", code)
		}
	})

	t.Run("Should surface unknown codes without mapping", func(t *testing.T) {
		p := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"message": "QUOTA_EXCEEDED"},
			})
		})
		_, err := p.SignIn(context.Background(), "a@x.dev", "pw")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.Contains(t, err.Error(), "QUOTA_EXCEEDED")
	})
}

func TestFreshClaims(t *testing.T) {
	t.Run("Should parse isAdmin from the custom attributes string", func(t *testing.T) {
		p := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "accounts:lookup")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"users": []map[string]interface{}{{
					"localId":          "u1",
					"email":            "a@x.dev",
					"customAttributes": `{"isAdmin":true}`,
				}},
			})
		})

		claims, err := p.FreshClaims(context.Background(), "tok")
		assert.NoError(t, err)
		assert.True(t, claims.IsAdmin)
		assert.Equal(t, "u1", claims.UID)
	})

	t.Run("Should report no admin claim when attributes are absent", func(t *testing.T) {
		p := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"users": []map[string]interface{}{{"localId": "u1"}},
			})
		})

		claims, err := p.FreshClaims(context.Background(), "tok")
		assert.NoError(t, err)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("Should tolerate malformed custom attributes", func(t *testing.T) {
		p := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"users": []map[string]interface{}{{
					"localId":          "u1",
					"customAttributes": "{not json",
				}},
			})
		})

		claims, err := p.FreshClaims(context.Background(), "tok")
		assert.NoError(t, err)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("Should reject disabled accounts", func(t *testing.T) {
		p := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"users": []map[string]interface{}{{"localId": "u1", "disabled": true}},
			})
		})

		_, err := p.FreshClaims(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Should error when no account matches the token", func(t *testing.T) {
		p := identityStub(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"users": []interface{}{}})
		})

		_, err := p.FreshClaims(context.Background(), "tok")
		assert.Error(t, err)
	})
}
