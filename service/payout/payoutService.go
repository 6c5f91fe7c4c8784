package payoutsvc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	"github.com/algobasket/hissabbook-admin/repository/notify"
	"github.com/algobasket/hissabbook-admin/util/inflight"
)

var (
	ErrBusy      = errors.New("this request is already being processed")
	ErrBadStatus = errors.New("invalid payout status")
)

const (
	notesAccepted = "Approved by admin"
	notesRejected = "Rejected by admin"
)

type API interface {
	ListPayoutRequests(ctx context.Context, token, status string) ([]model.PayoutRequest, error)
	UpdatePayoutStatus(ctx context.Context, token, id string, req model.UpdatePayoutStatusReq) (*model.PayoutRequest, error)
}

type Service interface {
	List(ctx context.Context, token, status string) ([]model.PayoutRequest, error)
	Decide(ctx context.Context, token, actorEmail, id, status string) (*model.PayoutRequest, error)
}

type service struct {
	api   API
	guard *inflight.Guard
	au    audit.Repo
	nt    notify.Notifier
	log   *slog.Logger
}

func New(api API, au audit.Repo, nt notify.Notifier, log *slog.Logger) Service {
	return &service{api: api, guard: inflight.New(), au: au, nt: nt, log: log}
}

func (s *service) List(ctx context.Context, token, status string) ([]model.PayoutRequest, error) {
	return s.api.ListPayoutRequests(ctx, token, status)
}

// Decide transitions a pending payout request to accepted or rejected.
// Exactly one PATCH goes out per request id at a time; a duplicate submission
// while the first is outstanding returns ErrBusy.
func (s *service) Decide(ctx context.Context, token, actorEmail, id, status string) (*model.PayoutRequest, error) {
	var notes string
	switch status {
	case string(model.PayoutAccepted):
		notes = notesAccepted
	case string(model.PayoutRejected):
		notes = notesRejected
	default:
		return nil, ErrBadStatus
	}

	if !s.guard.Begin(id) {
		return nil, ErrBusy
	}
	defer s.guard.End(id)

	req, err := s.api.UpdatePayoutStatus(ctx, token, id, model.UpdatePayoutStatusReq{
		Status: status,
		Notes:  notes,
	})
	if err != nil {
		return nil, err
	}

	if err := s.au.Write(ctx, audit.Entry{
		ActorEmail: actorEmail,
		Action:     "payout." + status,
		EntityType: "payout_request",
		EntityID:   id,
		Metadata:   map[string]any{"reference": req.Reference, "amount": req.Amount},
	}); err != nil {
		s.log.Warn("audit write failed", "action", "payout."+status, "err", err)
	}

	if s.nt != nil {
		if err := s.nt.PayoutDecided(req.Reference, req.Amount, status, actorEmail); err != nil {
			s.log.Warn("payout notification failed", "reference", req.Reference, "err", err)
		}
	}

	return req, nil
}
