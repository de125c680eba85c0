package auth

import (
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// Strategy issues and verifies signed session tokens carrying identity claims.
type Strategy interface {
	IssueToken(payload model.UserPayload) (string, error)
	ParseToken(token string) (*model.UserPayload, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
