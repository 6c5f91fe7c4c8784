package ledger

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/algobasket/hissabbook-admin/model"
)

func (c *Client) DashboardStats(ctx context.Context, token string) (*model.DashboardStats, error) {
	var out model.DashboardStats
	if err := c.do(ctx, token, http.MethodGet, "/api/dashboard/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PayoutQueue returns the live review queue shown on the dashboard. Unlike
// the list filters, a non-empty status here is always sent as given.
func (c *Client) PayoutQueue(ctx context.Context, token, status string, limit int) ([]model.QueueItem, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out struct {
		PayoutRequests []model.QueueItem `json:"payoutRequests"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/api/dashboard/payout-queue", q, nil, &out); err != nil {
		return nil, err
	}
	return out.PayoutRequests, nil
}
