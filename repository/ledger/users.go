package ledger

import (
	"context"
	"net/http"
	"net/url"

	"github.com/algobasket/hissabbook-admin/model"
)

type endUsersResp struct {
	Users []model.EndUser `json:"users"`
}

// ListEndUsers lists managed users, optionally narrowed by role ("All" or
// empty lists everyone).
func (c *Client) ListEndUsers(ctx context.Context, token, role string) ([]model.EndUser, error) {
	q := url.Values{}
	setFilter(q, "role", role)
	var out endUsersResp
	if err := c.do(ctx, token, http.MethodGet, "/api/users", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// ListAllUsers returns every user regardless of role, used to populate
// member pickers.
func (c *Client) ListAllUsers(ctx context.Context, token string) ([]model.EndUser, error) {
	var out endUsersResp
	if err := c.do(ctx, token, http.MethodGet, "/api/users/all", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) ListAdmins(ctx context.Context, token string) ([]model.AdminUser, error) {
	var out struct {
		Admins []model.AdminUser `json:"admins"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/api/users/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Admins, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, req model.CreateUserReq) (*model.EndUser, error) {
	var out struct {
		Success bool          `json:"success"`
		User    model.EndUser `json:"user"`
	}
	if err := c.do(ctx, token, http.MethodPost, "/api/users", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, req model.CreateUserReq) (*model.EndUser, error) {
	var out struct {
		Success bool          `json:"success"`
		User    model.EndUser `json:"user"`
	}
	if err := c.do(ctx, token, http.MethodPatch, "/api/users/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// BanUser toggles the banned flag; the backend reports the resulting status.
func (c *Client) BanUser(ctx context.Context, token, id string, banned bool) (string, error) {
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	body := map[string]bool{"banned": banned}
	if err := c.do(ctx, token, http.MethodPatch, "/api/users/"+id+"/ban", nil, body, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/api/users/"+id, nil, nil, nil)
}
