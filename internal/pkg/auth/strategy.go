package auth

import (
	"time"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

// Session is the authenticated identity carried by a token.
type Session struct {
	UserID int64
	Role   model.Role
}

// Strategy issues and validates session tokens.
type Strategy interface {
	IssueToken(session Session) (string, error)
	ParseToken(token string) (Session, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
