package ledger

import (
	"context"
	"net/http"

	"github.com/algobasket/hissabbook-admin/model"
)

func (c *Client) Login(ctx context.Context, req model.LoginReq) (*model.LoginResp, error) {
	var out model.LoginResp
	if err := c.do(ctx, "", http.MethodPost, "/api/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the token server-side. Best-effort: callers ignore the
// error and clear the local session regardless.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

func (c *Client) Me(ctx context.Context, token string) (*model.User, error) {
	var out model.MeResp
	if err := c.do(ctx, token, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
