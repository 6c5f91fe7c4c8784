package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/algobasket/hissabbook-admin/model"
)

type transactionsResp struct {
	Transactions []model.Transaction `json:"transactions"`
}

func txnQuery(f model.TxnFilter) url.Values {
	q := url.Values{}
	setFilter(q, "type", f.Type)
	setFilter(q, "status", f.Status)
	setPage(q, f.Limit, f.Offset)
	return q
}

func (c *Client) ListTransactions(ctx context.Context, token string, f model.TxnFilter) ([]model.Transaction, error) {
	var out transactionsResp
	if err := c.do(ctx, token, http.MethodGet, "/api/transactions", txnQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// ListBookTransactions lists transactions scoped to one cashbook.
func (c *Client) ListBookTransactions(ctx context.Context, token, bookID string, f model.TxnFilter) ([]model.Transaction, error) {
	var out transactionsResp
	if err := c.do(ctx, token, http.MethodGet, "/api/transactions/book/"+bookID, txnQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}
