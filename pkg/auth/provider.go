package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Typed sign-in failures; callers map these to operator-facing messages.
var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrInvalidEmail       = errors.New("auth: invalid email address")
	ErrUserDisabled       = errors.New("auth: account disabled")
)

// Claims is a claims snapshot for one account.
type Claims struct {
	UID     string
	Email   string
	IsAdmin bool
}

// Session is the result of a successful credential sign-in.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresInSec int64
}

// Provider is a REST client for a Firebase-compatible identity toolkit API:
// password sign-in and account lookup, keyed by a server-side API key.
type Provider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewProvider(baseURL, apiKey string) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SignIn exchanges email+password for a session. Provider error codes for
// unknown users, wrong passwords and malformed emails surface as the typed
// errors above; anything else comes back as a generic failure.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var result struct {
		LocalID      string `json:"localId"`
		Email        string `json:"email"`
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
		ExpiresIn    string `json:"expiresIn"`
	}
	if err := p.post(ctx, "accounts:signInWithPassword", body, &result); err != nil {
		return nil, err
	}

	expires, _ := strconv.ParseInt(result.ExpiresIn, 10, 64)
	return &Session{
		UID:          result.LocalID,
		Email:        result.Email,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresInSec: expires,
	}, nil
}

// FreshClaims fetches the account's current claims snapshot for the given
// ID token, bypassing whatever the signed token itself carries. This is the
// server-side analog of a forced token refresh: a privilege revoked after
// the token was minted is visible here immediately.
func (p *Provider) FreshClaims(ctx context.Context, idToken string) (*Claims, error) {
	body := map[string]interface{}{"idToken": idToken}

	var result struct {
		Users []struct {
			LocalID          string `json:"localId"`
			Email            string `json:"email"`
			Disabled         bool   `json:"disabled"`
			CustomAttributes string `json:"customAttributes"`
		} `json:"users"`
	}
	if err := p.post(ctx, "accounts:lookup", body, &result); err != nil {
		return nil, err
	}
	if len(result.Users) == 0 {
		return nil, errors.New("auth: account not found for token")
	}

	u := result.Users[0]
	if u.Disabled {
		return nil, ErrUserDisabled
	}

	claims := &Claims{UID: u.LocalID, Email: u.Email}
	if u.CustomAttributes != "" {
		var attrs struct {
			IsAdmin bool `json:"isAdmin"`
		}
		// Custom attributes arrive as a JSON string; a malformed payload
		// just means no admin claim.
		if err := json.Unmarshal([]byte(u.CustomAttributes), &attrs); err == nil {
			claims.IsAdmin = attrs.IsAdmin
		}
	}
	return claims, nil
}

func (p *Provider) post(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("auth: provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return mapErrorCode(errResp.Error.Message, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// mapErrorCode translates identity-toolkit error codes. Codes sometimes
// arrive with a trailing reason ("INVALID_PASSWORD : ..."); only the leading
// token matters.
func mapErrorCode(code string, status int) error {
	if i := strings.IndexAny(code, " :"); i > 0 {
		code = code[:i]
	}
	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return ErrInvalidCredentials
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return ErrInvalidEmail
	case "USER_DISABLED":
		return ErrUserDisabled
	case "":
		return fmt.Errorf("auth: provider request failed with status %d", status)
	default:
		return fmt.Errorf("auth: provider request failed: %s", code)
	}
}
