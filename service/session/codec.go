package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/algobasket/hissabbook-admin/model"
)

var ErrNoSession = errors.New("no session")

// Codec signs and reads the session cookie. The cookie is a JWT carrying the
// backend token plus the serialized user; note it says nothing about whether
// the backend token is still accepted. That is discovered lazily through a
// 401 on the next API call.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

func (c *Codec) Secret() []byte     { return c.secret }
func (c *Codec) TTL() time.Duration { return c.ttl }

func (c *Codec) Issue(s Session) (string, error) {
	userJSON, err := json.Marshal(s.User)
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"tok":  s.Token,
		"user": string(userJSON),
		"exp":  time.Now().Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Parse reads a session cookie value. Any failure, including an unparseable
// persisted user, yields ErrNoSession rather than a panic or partial session.
func (c *Codec) Parse(raw string) (*Session, error) {
	if raw == "" {
		return nil, ErrNoSession
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return nil, ErrNoSession
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}
	return FromClaims(mc)
}

// FromClaims rebuilds a Session from already-verified claims, as handed over
// by the JWT middleware.
func FromClaims(mc jwt.MapClaims) (*Session, error) {
	token, _ := mc["tok"].(string)
	if token == "" {
		return nil, ErrNoSession
	}
	s := &Session{Token: token}
	if raw, _ := mc["user"].(string); raw != "" {
		var u model.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return nil, ErrNoSession
		}
		s.User = u
	}
	return s, nil
}
