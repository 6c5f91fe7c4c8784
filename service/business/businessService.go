package bizsvc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	"github.com/algobasket/hissabbook-admin/util/inflight"
)

var (
	ErrNameRequired = errors.New("Business name is required")
	ErrBusy         = errors.New("an action for this business is already in progress")
)

type API interface {
	ListBusinesses(ctx context.Context, token string) ([]model.Business, error)
	ListBusinessesWithWallets(ctx context.Context, token string) ([]model.Business, error)
	CreateBusiness(ctx context.Context, token string, req model.CreateBusinessReq) (*model.Business, error)
	UpdateBusiness(ctx context.Context, token, id string, req model.UpdateBusinessReq) (*model.Business, error)
	DeleteBusiness(ctx context.Context, token, id string) error
}

type Service interface {
	List(ctx context.Context, token string) ([]model.Business, error)
	ListWithWallets(ctx context.Context, token string) ([]model.Business, error)
	Create(ctx context.Context, token, actorEmail string, req model.CreateBusinessReq) (*model.Business, error)
	Update(ctx context.Context, token, actorEmail, id string, req model.UpdateBusinessReq) (*model.Business, error)
	Delete(ctx context.Context, token, actorEmail, id string) error
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

func (s *service) List(ctx context.Context, token string) ([]model.Business, error) {
	return s.api.ListBusinesses(ctx, token)
}

func (s *service) ListWithWallets(ctx context.Context, token string) ([]model.Business, error) {
	return s.api.ListBusinessesWithWallets(ctx, token)
}

// Create rejects an empty name before anything goes over the wire.
func (s *service) Create(ctx context.Context, token, actorEmail string, req model.CreateBusinessReq) (*model.Business, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	req.Description = strings.TrimSpace(req.Description)
	req.MasterWalletUpi = strings.TrimSpace(req.MasterWalletUpi)

	b, err := s.api.CreateBusiness(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.writeAudit(ctx, actorEmail, "business.create", b.ID, map[string]any{"name": b.Name})
	return b, nil
}

func (s *service) Update(ctx context.Context, token, actorEmail, id string, req model.UpdateBusinessReq) (*model.Business, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	b, err := s.api.UpdateBusiness(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.writeAudit(ctx, actorEmail, "business.update", id, nil)
	return b, nil
}

func (s *service) Delete(ctx context.Context, token, actorEmail, id string) error {
	if !s.guard.Begin(id) {
		return ErrBusy
	}
	defer s.guard.End(id)

	if err := s.api.DeleteBusiness(ctx, token, id); err != nil {
		return err
	}
	s.writeAudit(ctx, actorEmail, "business.delete", id, nil)
	return nil
}

func (s *service) writeAudit(ctx context.Context, actorEmail, action, id string, md map[string]any) {
	if err := s.au.Write(ctx, audit.Entry{
		ActorEmail: actorEmail,
		Action:     action,
		EntityType: "business",
		EntityID:   id,
		Metadata:   md,
	}); err != nil {
		s.log.Warn("audit write failed", "action", action, "err", err)
	}
}
