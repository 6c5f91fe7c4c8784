package ledger

import (
	"context"
	"net/http"

	"github.com/algobasket/hissabbook-admin/model"
)

type businessesResp struct {
	Businesses []model.Business `json:"businesses"`
}

func (c *Client) ListBusinesses(ctx context.Context, token string) ([]model.Business, error) {
	var out businessesResp
	if err := c.do(ctx, token, http.MethodGet, "/api/businesses", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Businesses, nil
}

// ListBusinessesWithWallets returns the wallet-joined listing used by the
// payment settings page.
func (c *Client) ListBusinessesWithWallets(ctx context.Context, token string) ([]model.Business, error) {
	var out businessesResp
	if err := c.do(ctx, token, http.MethodGet, "/api/businesses-wallets", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Businesses, nil
}

func (c *Client) CreateBusiness(ctx context.Context, token string, req model.CreateBusinessReq) (*model.Business, error) {
	var out struct {
		Success  bool           `json:"success"`
		Business model.Business `json:"business"`
	}
	if err := c.do(ctx, token, http.MethodPost, "/api/businesses", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Business, nil
}

func (c *Client) UpdateBusiness(ctx context.Context, token, id string, req model.UpdateBusinessReq) (*model.Business, error) {
	var out struct {
		Success  bool           `json:"success"`
		Business model.Business `json:"business"`
	}
	if err := c.do(ctx, token, http.MethodPatch, "/api/businesses/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Business, nil
}

func (c *Client) DeleteBusiness(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/api/businesses/"+id, nil, nil, nil)
}
