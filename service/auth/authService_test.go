package authsvc_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	authsvc "github.com/algobasket/hissabbook-admin/service/auth"
)

type apiMock struct {
	loginFn  func(ctx context.Context, req model.LoginReq) (*model.LoginResp, error)
	logoutFn func(ctx context.Context, token string) error
	meFn     func(ctx context.Context, token string) (*model.User, error)
}

var _ authsvc.API = (*apiMock)(nil)

func (m *apiMock) Login(ctx context.Context, req model.LoginReq) (*model.LoginResp, error) {
	return m.loginFn(ctx, req)
}
func (m *apiMock) Logout(ctx context.Context, token string) error {
	if m.logoutFn == nil {
		return nil
	}
	return m.logoutFn(ctx, token)
}
func (m *apiMock) Me(ctx context.Context, token string) (*model.User, error) {
	return m.meFn(ctx, token)
}

type auditMock struct{ entries []audit.Entry }

func (a *auditMock) Write(ctx context.Context, e audit.Entry) error {
	a.entries = append(a.entries, e)
	return nil
}

func TestLogin_NormalizesEmail(t *testing.T) {
	var got model.LoginReq
	m := &apiMock{
		loginFn: func(ctx context.Context, req model.LoginReq) (*model.LoginResp, error) {
			got = req
			return &model.LoginResp{Token: "tok", User: model.User{ID: "u-1", Email: req.Email}}, nil
		},
	}
	a := &auditMock{}
	s := authsvc.New(m, a, slog.Default())

	sess, err := s.Login(context.Background(), model.LoginReq{Email: " Admin@X.COM ", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "admin@x.com", got.Email)
	require.Equal(t, "tok", sess.Token)

	require.Len(t, a.entries, 1)
	require.Equal(t, "auth.login", a.entries[0].Action)
}

func TestLogin_BadInput(t *testing.T) {
	s := authsvc.New(&apiMock{}, &auditMock{}, slog.Default())

	_, err := s.Login(context.Background(), model.LoginReq{Email: "", Password: "x"})
	require.ErrorIs(t, err, authsvc.ErrBadInput)

	_, err = s.Login(context.Background(), model.LoginReq{Email: "a@b.c", Password: ""})
	require.ErrorIs(t, err, authsvc.ErrBadInput)
}

func TestTokenAlive(t *testing.T) {
	alive := &apiMock{meFn: func(ctx context.Context, token string) (*model.User, error) {
		return &model.User{ID: "u-1"}, nil
	}}
	require.True(t, authsvc.New(alive, &auditMock{}, slog.Default()).TokenAlive(context.Background(), "t"))

	dead := &apiMock{meFn: func(ctx context.Context, token string) (*model.User, error) {
		return nil, &ledger.APIError{Kind: ledger.KindHTTP, Status: http.StatusUnauthorized, Message: "expired"}
	}}
	require.False(t, authsvc.New(dead, &auditMock{}, slog.Default()).TokenAlive(context.Background(), "t"))

	// an unreachable backend must not log the admin out
	flaky := &apiMock{meFn: func(ctx context.Context, token string) (*model.User, error) {
		return nil, &ledger.APIError{Kind: ledger.KindTransport, Message: "backend unreachable"}
	}}
	require.True(t, authsvc.New(flaky, &auditMock{}, slog.Default()).TokenAlive(context.Background(), "t"))
}
