package ledger

import (
	"context"
	"net/http"

	"github.com/algobasket/hissabbook-admin/model"
)

func (c *Client) ListRoles(ctx context.Context, token string) ([]model.Role, error) {
	var out struct {
		Roles []model.Role `json:"roles"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/api/roles", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

func (c *Client) PermissionsMatrix(ctx context.Context, token string) ([]model.PermissionRow, []string, error) {
	var out struct {
		PermissionsMatrix []model.PermissionRow `json:"permissionsMatrix"`
		Notes             []string              `json:"notes"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/api/roles-permissions", nil, nil, &out); err != nil {
		return nil, nil, err
	}
	return out.PermissionsMatrix, out.Notes, nil
}
