package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/algobasket/hissabbook-admin/model"
)

func (c *Client) ListPayoutRequests(ctx context.Context, token, status string) ([]model.PayoutRequest, error) {
	q := url.Values{}
	setFilter(q, "status", status)
	var out struct {
		PayoutRequests []model.PayoutRequest `json:"payoutRequests"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/api/payout-requests", q, nil, &out); err != nil {
		return nil, err
	}
	return out.PayoutRequests, nil
}

// UpdatePayoutStatus moves a pending request to accepted or rejected. The
// ledger posting on acceptance happens server-side.
func (c *Client) UpdatePayoutStatus(ctx context.Context, token, id string, req model.UpdatePayoutStatusReq) (*model.PayoutRequest, error) {
	var out struct {
		Success bool                `json:"success"`
		Request model.PayoutRequest `json:"request"`
	}
	if err := c.do(ctx, token, http.MethodPatch, "/api/payout-requests/"+id+"/status", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Request, nil
}
