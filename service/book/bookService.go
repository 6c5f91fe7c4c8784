package booksvc

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
	ErrBadInput = errors.New("bad input")
	ErrBusy     = errors.New("a membership change for this user is already in progress")
)

type API interface {
	ListBooks(ctx context.Context, token string, f model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, token, id string) (*model.Book, error)
	CreateBook(ctx context.Context, token string, req model.CreateBookReq) (*model.Book, error)
	ListBookUsers(ctx context.Context, token, bookID string) ([]model.EndUser, error)
	AddBookUser(ctx context.Context, token, bookID, userID string) (*model.EndUser, error)
	RemoveBookUser(ctx context.Context, token, bookID, userID string) error
	ListAllUsers(ctx context.Context, token string) ([]model.EndUser, error)
	ListBookTransactions(ctx context.Context, token, bookID string, f model.TxnFilter) ([]model.Transaction, error)
}

// Detail is everything the cashbook page shows. The secondary fetches are
// independent of each other and fail soft: a missing member list or
// transaction list comes back as its Err with the rest intact.
type Detail struct {
	Book       *model.Book
	Members    []model.EndUser
	Candidates []model.EndUser
	Txns       []model.Transaction
	MembersErr error
	TxnsErr    error
}

type Service interface {
	List(ctx context.Context, token string, f model.BookFilter) ([]model.Book, error)
	Create(ctx context.Context, token, actorEmail string, req model.CreateBookReq) (*model.Book, error)
	Detail(ctx context.Context, token, id string, f model.TxnFilter) (*Detail, error)
	AddMember(ctx context.Context, token, actorEmail, bookID, userID string) error
	RemoveMember(ctx context.Context, token, actorEmail, bookID, userID string) error
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

func (s *service) List(ctx context.Context, token string, f model.BookFilter) ([]model.Book, error) {
	return s.api.ListBooks(ctx, token, f)
}

func (s *service) Create(ctx context.Context, token, actorEmail string, req model.CreateBookReq) (*model.Book, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.OwnerUserID == "" {
		return nil, ErrBadInput
	}
	b, err := s.api.CreateBook(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.writeAudit(ctx, actorEmail, "book.create", b.ID, map[string]any{"name": b.Name})
	return b, nil
}

// Detail fetches the book, its members, the full user list and its
// transactions concurrently. The book itself is load-bearing; everything
// else degrades to an inline error on the page.
func (s *service) Detail(ctx context.Context, token, id string, f model.TxnFilter) (*Detail, error) {
	var (
		d       Detail
		all     []model.EndUser
		bookErr error
		allErr  error
		wg      sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		d.Book, bookErr = s.api.GetBook(ctx, token, id)
	}()
	go func() {
		defer wg.Done()
		d.Members, d.MembersErr = s.api.ListBookUsers(ctx, token, id)
	}()
	go func() {
		defer wg.Done()
		all, allErr = s.api.ListAllUsers(ctx, token)
	}()
	go func() {
		defer wg.Done()
		d.Txns, d.TxnsErr = s.api.ListBookTransactions(ctx, token, id, f)
	}()
	wg.Wait()

	if bookErr != nil {
		return nil, bookErr
	}

	// The add-member dropdown is only complete once both user fetches have
	// resolved; with either missing it stays empty rather than wrong.
	if allErr == nil && d.MembersErr == nil {
		d.Candidates = excludeMembers(all, d.Members)
	} else if allErr != nil && d.MembersErr == nil {
		d.MembersErr = allErr
	}

	return &d, nil
}

func excludeMembers(all, members []model.EndUser) []model.EndUser {
	in := make(map[string]struct{}, len(members))
	for _, m := range members {
		in[m.ID] = struct{}{}
	}
	out := make([]model.EndUser, 0, len(all))
	for _, u := range all {
		if _, ok := in[u.ID]; !ok {
			out = append(out, u)
		}
	}
	return out
}

func (s *service) AddMember(ctx context.Context, token, actorEmail, bookID, userID string) error {
	if bookID == "" || userID == "" {
		return ErrBadInput
	}
	key := bookID + "/" + userID
	if !s.guard.Begin(key) {
		return ErrBusy
	}
	defer s.guard.End(key)

	if _, err := s.api.AddBookUser(ctx, token, bookID, userID); err != nil {
		return err
	}
	s.writeAudit(ctx, actorEmail, "book.member.add", bookID, map[string]any{"userId": userID})
	return nil
}

func (s *service) RemoveMember(ctx context.Context, token, actorEmail, bookID, userID string) error {
	if bookID == "" || userID == "" {
		return ErrBadInput
	}
	key := bookID + "/" + userID
	if !s.guard.Begin(key) {
		return ErrBusy
	}
	defer s.guard.End(key)

	if err := s.api.RemoveBookUser(ctx, token, bookID, userID); err != nil {
		return err
	}
	s.writeAudit(ctx, actorEmail, "book.member.remove", bookID, map[string]any{"userId": userID})
	return nil
}

func (s *service) writeAudit(ctx context.Context, actorEmail, action, id string, md map[string]any) {
	if err := s.au.Write(ctx, audit.Entry{
		ActorEmail: actorEmail,
		Action:     action,
		EntityType: "book",
		EntityID:   id,
		Metadata:   md,
	}); err != nil {
		s.log.Warn("audit write failed", "action", action, "err", err)
	}
}
