package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements auth token creation/verification using HMAC signatures.
// Tokens are "body.signature" where body is base64url JSON claims with expiry.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type tokenClaims struct {
	model.UserPayload
	ExpiresAt int64 `json:"exp"`
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken generates a signed session token embedding the identity claims.
func (s *HMACStrategy) IssueToken(payload model.UserPayload) (string, error) {
	claims := tokenClaims{UserPayload: payload, ExpiresAt: s.now().Add(s.ttl).Unix()}
	raw, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	body := base64.RawURLEncoding.EncodeToString(raw)
	return body + "." + s.sign(body), nil
}

// ParseToken validates token and returns the embedded claims. Malformed,
// tampered and expired tokens all collapse to ErrInvalidToken.
func (s *HMACStrategy) ParseToken(token string) (*model.UserPayload, error) {
	body, sig, ok := strings.Cut(token, ".")
	if !ok || body == "" {
		return nil, ErrInvalidToken
	}

	if !hmac.Equal([]byte(s.sign(body)), []byte(sig)) {
		return nil, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims tokenClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if time.Unix(claims.ExpiresAt, 0).Before(s.now()) {
		return nil, ErrInvalidToken
	}

	payload := claims.UserPayload
	return &payload, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(body string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
