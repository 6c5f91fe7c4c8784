package usersvc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	"github.com/algobasket/hissabbook-admin/util/inflight"
)

var (
	ErrBusy     = errors.New("an action for this user is already in progress")
	ErrBadInput = errors.New("bad input")
)

type API interface {
	ListEndUsers(ctx context.Context, token, role string) ([]model.EndUser, error)
	ListAllUsers(ctx context.Context, token string) ([]model.EndUser, error)
	ListAdmins(ctx context.Context, token string) ([]model.AdminUser, error)
	CreateUser(ctx context.Context, token string, req model.CreateUserReq) (*model.EndUser, error)
	UpdateUser(ctx context.Context, token, id string, req model.CreateUserReq) (*model.EndUser, error)
	BanUser(ctx context.Context, token, id string, banned bool) (string, error)
	DeleteUser(ctx context.Context, token, id string) error
	ListWallets(ctx context.Context, token string) ([]model.Wallet, error)
	ListRoles(ctx context.Context, token string) ([]model.Role, error)
	PermissionsMatrix(ctx context.Context, token string) ([]model.PermissionRow, []string, error)
}

type Service interface {
	List(ctx context.Context, token, role string) ([]model.EndUser, error)
	ListAdmins(ctx context.Context, token string) ([]model.AdminUser, error)
	Create(ctx context.Context, token, actorEmail string, req model.CreateUserReq) (*model.EndUser, error)
	Update(ctx context.Context, token, actorEmail, id string, req model.CreateUserReq) (*model.EndUser, error)
	SetBanned(ctx context.Context, token, actorEmail, id string, banned bool) (string, error)
	Delete(ctx context.Context, token, actorEmail, id string) error
	Wallets(ctx context.Context, token string) ([]model.Wallet, error)
	RolesOverview(ctx context.Context, token string) (*RolesOverview, error)
}

// RolesOverview joins the role listing with the capability matrix for the
// roles & permissions page. Both fetches run concurrently; either half may
// be missing when its fetch failed and the other succeeded.
type RolesOverview struct {
	Roles     []model.Role
	Matrix    []model.PermissionRow
	Notes     []string
	RolesErr  error
	MatrixErr error
}

type service struct {
	api   API
	guard *inflight.Guard
	au    audit.Repo
	log   *slog.Logger
}

func New(api API, au audit.Repo, log *slog.Logger) Service {
	return &service{api: api, guard: inflight.New(), au: au, log: log}
}

func (s *service) List(ctx context.Context, token, role string) ([]model.EndUser, error) {
	return s.api.ListEndUsers(ctx, token, role)
}

func (s *service) ListAdmins(ctx context.Context, token string) ([]model.AdminUser, error) {
	return s.api.ListAdmins(ctx, token)
}

func (s *service) Create(ctx context.Context, token, actorEmail string, req model.CreateUserReq) (*model.EndUser, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Role == "" || len(req.Password) < 6 {
		return nil, ErrBadInput
	}
	u, err := s.api.CreateUser(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.writeAudit(ctx, actorEmail, "user.create", u.ID, map[string]any{"email": u.Email})
	return u, nil
}

func (s *service) Update(ctx context.Context, token, actorEmail, id string, req model.CreateUserReq) (*model.EndUser, error) {
	if id == "" {
		return nil, ErrBadInput
	}
	u, err := s.api.UpdateUser(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.writeAudit(ctx, actorEmail, "user.update", id, nil)
	return u, nil
}

func (s *service) SetBanned(ctx context.Context, token, actorEmail, id string, banned bool) (string, error) {
	if !s.guard.Begin(id) {
		return "", ErrBusy
	}
	defer s.guard.End(id)

	status, err := s.api.BanUser(ctx, token, id, banned)
	if err != nil {
		return "", err
	}
	action := "user.unban"
	if banned {
		action = "user.ban"
	}
	s.writeAudit(ctx, actorEmail, action, id, nil)
	return status, nil
}

func (s *service) Delete(ctx context.Context, token, actorEmail, id string) error {
	if !s.guard.Begin(id) {
		return ErrBusy
	}
	defer s.guard.End(id)

	if err := s.api.DeleteUser(ctx, token, id); err != nil {
		return err
	}
	s.writeAudit(ctx, actorEmail, "user.delete", id, nil)
	return nil
}

func (s *service) Wallets(ctx context.Context, token string) ([]model.Wallet, error) {
	return s.api.ListWallets(ctx, token)
}

func (s *service) RolesOverview(ctx context.Context, token string) (*RolesOverview, error) {
	var (
		ov RolesOverview
		wg sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		ov.Roles, ov.RolesErr = s.api.ListRoles(ctx, token)
	}()
	go func() {
		defer wg.Done()
		ov.Matrix, ov.Notes, ov.MatrixErr = s.api.PermissionsMatrix(ctx, token)
	}()
	wg.Wait()

	if ov.RolesErr != nil && ov.MatrixErr != nil {
		return nil, ov.RolesErr
	}
	return &ov, nil
}

func (s *service) writeAudit(ctx context.Context, actorEmail, action, id string, md map[string]any) {
	if err := s.au.Write(ctx, audit.Entry{
		ActorEmail: actorEmail,
		Action:     action,
		EntityType: "user",
		EntityID:   id,
		Metadata:   md,
	}); err != nil {
		s.log.Warn("audit write failed", "action", action, "err", err)
	}
}
