package authsvc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	"github.com/algobasket/hissabbook-admin/service/session"
)

var ErrBadInput = errors.New("bad input")

type API interface {
	Login(ctx context.Context, req model.LoginReq) (*model.LoginResp, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*model.User, error)
}

type Service interface {
	Login(ctx context.Context, req model.LoginReq) (*session.Session, error)
	Logout(ctx context.Context, token, email string)
	TokenAlive(ctx context.Context, token string) bool
}

type service struct {
	api API
	au  audit.Repo
	log *slog.Logger
}

func New(api API, au audit.Repo, log *slog.Logger) Service {
	return &service{api: api, au: au, log: log}
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*session.Session, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, ErrBadInput
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.au.Write(ctx, audit.Entry{
		ActorEmail: resp.User.Email,
		Action:     "auth.login",
		EntityType: "user",
		EntityID:   resp.User.ID,
	}); err != nil {
		s.log.Warn("audit write failed", "action", "auth.login", "err", err)
	}

	return &session.Session{Token: resp.Token, User: resp.User}, nil
}

// TokenAlive asks the backend whether the token still authenticates. Only a
// definite 401 counts as dead; an unreachable backend does not log anyone
// out.
func (s *service) TokenAlive(ctx context.Context, token string) bool {
	if _, err := s.api.Me(ctx, token); err != nil {
		return !ledger.IsUnauthorized(err)
	}
	return true
}

// Logout tells the backend to drop the token. Failures are ignored: the
// local session is cleared by the caller either way.
func (s *service) Logout(ctx context.Context, token, email string) {
	if err := s.api.Logout(ctx, token); err != nil {
		s.log.Warn("backend logout failed", "err", err)
	}
	if err := s.au.Write(ctx, audit.Entry{
		ActorEmail: email,
		Action:     "auth.logout",
		EntityType: "user",
	}); err != nil {
		s.log.Warn("audit write failed", "action", "auth.logout", "err", err)
	}
}
