package ledger

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/algobasket/hissabbook-admin/model"
)

func (c *Client) ListBooks(ctx context.Context, token string, f model.BookFilter) ([]model.Book, error) {
	q := url.Values{}
	setFilter(q, "status", f.Status)
	if s := strings.TrimSpace(f.Search); s != "" {
		q.Set("search", s)
	}
	var out struct {
		Books []model.Book `json:"books"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/api/books", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Books, nil
}

func (c *Client) GetBook(ctx context.Context, token, id string) (*model.Book, error) {
	var out struct {
		Book model.Book `json:"book"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/api/books/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Book, nil
}

func (c *Client) CreateBook(ctx context.Context, token string, req model.CreateBookReq) (*model.Book, error) {
	var out struct {
		Success bool       `json:"success"`
		Book    model.Book `json:"book"`
	}
	if err := c.do(ctx, token, http.MethodPost, "/api/books", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Book, nil
}

// ListBookUsers returns the members of a cashbook.
func (c *Client) ListBookUsers(ctx context.Context, token, bookID string) ([]model.EndUser, error) {
	var out endUsersResp
	if err := c.do(ctx, token, http.MethodGet, "/api/books/"+bookID+"/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) AddBookUser(ctx context.Context, token, bookID, userID string) (*model.EndUser, error) {
	var out struct {
		Success bool          `json:"success"`
		User    model.EndUser `json:"user"`
	}
	body := map[string]string{"userId": userID}
	if err := c.do(ctx, token, http.MethodPost, "/api/books/"+bookID+"/users", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) RemoveBookUser(ctx context.Context, token, bookID, userID string) error {
	return c.do(ctx, token, http.MethodDelete, "/api/books/"+bookID+"/users/"+userID, nil, nil, nil)
}
