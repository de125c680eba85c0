package test

import (
	"errors"

	"github.com/nafru/exportdesk/internal/domain/model"
	pkgAuth "github.com/nafru/exportdesk/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(model.UserPayload) (string, error)
	ParseFn func(string) (*model.UserPayload, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(payload model.UserPayload) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(payload)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (*model.UserPayload, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &model.UserPayload{ID: 1, Role: model.RoleAdmin}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub resolves every token to a fixed payload or error.
type TokenParserStub struct {
	Payload *model.UserPayload
	Err     error
}

// ParseToken returns the configured payload or error.
func (s TokenParserStub) ParseToken(token string) (*model.UserPayload, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Payload != nil {
		return s.Payload, nil
	}
	return &model.UserPayload{ID: 1, Email: "stub@example.com", Role: model.RoleTeam}, nil
}

// RendererStub returns a fixed artifact for document generation tests.
type RendererStub struct {
	RenderFn func(*model.Order, model.DocumentType) ([]byte, error)
}

// Render returns the configured artifact or a placeholder PDF prefix.
func (s RendererStub) Render(order *model.Order, docType model.DocumentType) ([]byte, error) {
	if s.RenderFn != nil {
		return s.RenderFn(order, docType)
	}
	return []byte("%PDF-stub"), nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
