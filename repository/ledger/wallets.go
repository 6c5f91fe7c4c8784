package ledger

import (
	"context"
	"net/http"

	"github.com/algobasket/hissabbook-admin/model"
)

func (c *Client) ListWallets(ctx context.Context, token string) ([]model.Wallet, error) {
	var out struct {
		Wallets []model.Wallet `json:"wallets"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/api/wallets", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Wallets, nil
}
