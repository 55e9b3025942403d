package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements session token creation/verification using HMAC
// signatures over an "id:role:expiry" payload.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed session token.
func (s *HMACStrategy) IssueToken(session Session) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d:%s:%d", session.UserID, session.Role, expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token and returns the encoded session.
func (s *HMACStrategy) ParseToken(token string) (Session, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return Session{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[3])) {
		return Session{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	role := model.Role(parts[1])
	switch role {
	case model.RoleBuyer, model.RoleSeller, model.RoleAdmin:
	default:
		return Session{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Session{}, ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(time.Now()) {
		return Session{}, ErrInvalidToken
	}

	return Session{UserID: userID, Role: role}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
