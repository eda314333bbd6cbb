package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type jwks struct {
	Keys []JSONWebKey `json:"keys"`
}

type JSONWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// KeySet caches the identity provider's JWKS document and resolves signing
// keys by kid. Refreshes are rate limited to once a minute.
type KeySet struct {
	mu        sync.RWMutex
	keys      map[string]*JSONWebKey
	url       string
	refreshed time.Time
}

func NewKeySet(jwksURL string) *KeySet {
	return &KeySet{
		url:  jwksURL,
		keys: make(map[string]*JSONWebKey),
	}
}

// KeyFunc is the jwt.Keyfunc used to verify RS256 ID tokens.
func (s *KeySet) KeyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, fmt.Errorf("kid header not found")
	}

	key, err := s.getKey(kid)
	if err != nil {
		return nil, err
	}

	return key.publicKey()
}

func (s *KeySet) getKey(kid string) (*JSONWebKey, error) {
	s.mu.RLock()
	key, exists := s.keys[kid]
	s.mu.RUnlock()

	if exists {
		return key, nil
	}

	if err := s.fetchKeys(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	key, exists = s.keys[kid]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("signing key %q not found", kid)
	}
	return key, nil
}

func (s *KeySet) fetchKeys() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.refreshed) < time.Minute && len(s.keys) > 0 {
		return nil
	}

	resp, err := http.Get(s.url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var doc jwks
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return err
	}

	s.keys = make(map[string]*JSONWebKey)
	for _, k := range doc.Keys {
		k := k
		s.keys[k.Kid] = &k
	}
	s.refreshed = time.Now()
	return nil
}

func (k *JSONWebKey) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).SetBytes(nBytes)

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{N: n, E: e}, nil
}
