package ledger

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algobasket/hissabbook-admin/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client(), nil)
}

func TestDo_BearerAuth(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"users":[]}`))
	})

	_, err := c.ListEndUsers(context.Background(), "tok-123", "All")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", got)
}

func TestDo_NoAuthHeaderWithoutToken(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"token":"t","user":{"id":"1","email":"a@b.c"}}`))
	})

	_, err := c.Login(context.Background(), model.LoginReq{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDo_HTTPErrorUsesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"amount exceeds wallet balance"}`))
	})

	_, err := c.ListPayoutRequests(context.Background(), "t", "pending")
	require.Error(t, err)

	ae, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, KindHTTP, ae.Kind)
	require.Equal(t, http.StatusBadRequest, ae.Status)
	require.Equal(t, "amount exceeds wallet balance", Message(err))
}

func TestDo_HTTPErrorFallsBackToErrorFieldThenStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"duplicate email"}`))
	})
	_, err := c.ListAdmins(context.Background(), "t")
	require.Equal(t, "duplicate email", Message(err))

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`not json`))
	})
	_, err = c.ListAdmins(context.Background(), "t")
	require.Equal(t, http.StatusText(http.StatusBadGateway), Message(err))
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, nil, nil)
	_, err := c.ListAdmins(context.Background(), "t")
	require.Error(t, err)

	ae, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, KindTransport, ae.Kind)
	require.Zero(t, ae.Status)
	require.False(t, IsUnauthorized(err))
	require.Equal(t, GenericMessage, Message(&APIError{Kind: KindTransport}))
}

func TestDo_DecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": "not-a-list"`))
	})

	_, err := c.ListEndUsers(context.Background(), "t", "All")
	ae, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, KindDecode, ae.Kind)
}

func TestIsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	})

	_, err := c.ListEndUsers(context.Background(), "stale", "All")
	require.True(t, IsUnauthorized(err))
}

func TestFilters_AllAndBlankOmitted(t *testing.T) {
	cases := []string{"all", "All", "ALL", "", "  "}
	for _, val := range cases {
		var query string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			w.Write([]byte(`{"users":[]}`))
		})
		_, err := c.ListEndUsers(context.Background(), "t", val)
		require.NoError(t, err)
		require.Empty(t, query, "role=%q must not reach the wire", val)
	}
}

func TestFilters_ConcreteValueSent(t *testing.T) {
	var r *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		r = req
		w.Write([]byte(`{"transactions":[]}`))
	})

	_, err := c.ListTransactions(context.Background(), "t", model.TxnFilter{
		Type:   "credit",
		Status: "all",
		Limit:  100,
		Offset: 200,
	})
	require.NoError(t, err)

	q := r.URL.Query()
	require.Equal(t, "credit", q.Get("type"))
	require.False(t, q.Has("status"))
	require.Equal(t, "100", q.Get("limit"))
	require.Equal(t, "200", q.Get("offset"))
}

func TestFilters_ZeroPagingOmitted(t *testing.T) {
	var query string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"transactions":[]}`))
	})

	_, err := c.ListTransactions(context.Background(), "t", model.TxnFilter{})
	require.NoError(t, err)
	require.Empty(t, query)
}

func TestUpdatePayoutStatus_Wire(t *testing.T) {
	var (
		method, path string
		body         map[string]string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`{"success":true,"request":{"id":"pr-1","status":"accepted"}}`))
	})

	out, err := c.UpdatePayoutStatus(context.Background(), "t", "pr-1", model.UpdatePayoutStatusReq{
		Status: "accepted",
		Notes:  "Approved by admin",
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, method)
	require.Equal(t, "/api/payout-requests/pr-1/status", path)
	require.Equal(t, map[string]string{"status": "accepted", "notes": "Approved by admin"}, body)
	require.Equal(t, "accepted", out.Status)
}

func TestBanUser_Wire(t *testing.T) {
	var body map[string]bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`{"success":true,"status":"banned"}`))
	})

	status, err := c.BanUser(context.Background(), "t", "u-1", true)
	require.NoError(t, err)
	require.Equal(t, "banned", status)
	require.Equal(t, map[string]bool{"banned": true}, body)
}
