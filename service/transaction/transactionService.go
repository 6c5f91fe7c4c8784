package txnsvc

import (
	"context"

	"github.com/algobasket/hissabbook-admin/model"
)

// DefaultLimit caps unpaged listings the way the all-transactions page does.
const DefaultLimit = 100

type API interface {
	ListTransactions(ctx context.Context, token string, f model.TxnFilter) ([]model.Transaction, error)
	ListBookTransactions(ctx context.Context, token, bookID string, f model.TxnFilter) ([]model.Transaction, error)
}

type Service interface {
	List(ctx context.Context, token string, f model.TxnFilter) ([]model.Transaction, error)
	ListForBook(ctx context.Context, token, bookID string, f model.TxnFilter) ([]model.Transaction, error)
}

type service struct{ api API }

func New(api API) Service { return &service{api: api} }

func (s *service) List(ctx context.Context, token string, f model.TxnFilter) ([]model.Transaction, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	return s.api.ListTransactions(ctx, token, f)
}

func (s *service) ListForBook(ctx context.Context, token, bookID string, f model.TxnFilter) ([]model.Transaction, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	return s.api.ListBookTransactions(ctx, token, bookID, f)
}
