package usersvc_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	usersvc "github.com/algobasket/hissabbook-admin/service/user"
)

type apiMock struct {
	createFn func(ctx context.Context, token string, req model.CreateUserReq) (*model.EndUser, error)
	rolesFn  func(ctx context.Context, token string) ([]model.Role, error)
	matrixFn func(ctx context.Context, token string) ([]model.PermissionRow, []string, error)
}

var _ usersvc.API = (*apiMock)(nil)

func (m *apiMock) ListEndUsers(ctx context.Context, token, role string) ([]model.EndUser, error) {
	return nil, nil
}
func (m *apiMock) ListAllUsers(ctx context.Context, token string) ([]model.EndUser, error) {
	return nil, nil
}
func (m *apiMock) ListAdmins(ctx context.Context, token string) ([]model.AdminUser, error) {
	return nil, nil
}
func (m *apiMock) CreateUser(ctx context.Context, token string, req model.CreateUserReq) (*model.EndUser, error) {
	if m.createFn == nil {
		return &model.EndUser{ID: "u-1", Email: req.Email}, nil
	}
	return m.createFn(ctx, token, req)
}
func (m *apiMock) UpdateUser(ctx context.Context, token, id string, req model.CreateUserReq) (*model.EndUser, error) {
	return &model.EndUser{ID: id}, nil
}
func (m *apiMock) BanUser(ctx context.Context, token, id string, banned bool) (string, error) {
	if banned {
		return "banned", nil
	}
	return "active", nil
}
func (m *apiMock) DeleteUser(ctx context.Context, token, id string) error { return nil }
func (m *apiMock) ListWallets(ctx context.Context, token string) ([]model.Wallet, error) {
	return nil, nil
}
func (m *apiMock) ListRoles(ctx context.Context, token string) ([]model.Role, error) {
	if m.rolesFn == nil {
		return nil, nil
	}
	return m.rolesFn(ctx, token)
}
func (m *apiMock) PermissionsMatrix(ctx context.Context, token string) ([]model.PermissionRow, []string, error) {
	if m.matrixFn == nil {
		return nil, nil, nil
	}
	return m.matrixFn(ctx, token)
}

type auditMock struct{}

func (auditMock) Write(ctx context.Context, e audit.Entry) error { return nil }

func newService(m *apiMock) usersvc.Service {
	return usersvc.New(m, auditMock{}, slog.Default())
}

func TestCreate_BadInput(t *testing.T) {
	s := newService(&apiMock{})

	cases := []model.CreateUserReq{
		{Email: "", Role: "staff", Password: "secret1"},
		{Email: "a@x.com", Role: "", Password: "secret1"},
		{Email: "a@x.com", Role: "staff", Password: "short"},
	}
	for i, req := range cases {
		_, err := s.Create(context.Background(), "tok", "admin@x.com", req)
		require.ErrorIs(t, err, usersvc.ErrBadInput, "case %d", i)
	}
}

func TestCreate_NormalizesEmail(t *testing.T) {
	var got model.CreateUserReq
	m := &apiMock{
		createFn: func(ctx context.Context, token string, req model.CreateUserReq) (*model.EndUser, error) {
			got = req
			return &model.EndUser{ID: "u-1", Email: req.Email}, nil
		},
	}
	s := newService(m)

	_, err := s.Create(context.Background(), "tok", "admin@x.com", model.CreateUserReq{
		Email:    "  New.User@Example.COM ",
		Role:     "staff",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "new.user@example.com", got.Email)
}

func TestSetBanned(t *testing.T) {
	s := newService(&apiMock{})

	status, err := s.SetBanned(context.Background(), "tok", "admin@x.com", "u-1", true)
	require.NoError(t, err)
	require.Equal(t, "banned", status)

	status, err = s.SetBanned(context.Background(), "tok", "admin@x.com", "u-1", false)
	require.NoError(t, err)
	require.Equal(t, "active", status)
}

func TestRolesOverview_PartialFailure(t *testing.T) {
	matrixErr := errors.New("matrix endpoint down")
	m := &apiMock{
		rolesFn: func(ctx context.Context, token string) ([]model.Role, error) {
			return []model.Role{{Name: "auditor"}}, nil
		},
		matrixFn: func(ctx context.Context, token string) ([]model.PermissionRow, []string, error) {
			return nil, nil, matrixErr
		},
	}
	s := newService(m)

	ov, err := s.RolesOverview(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, ov.Roles, 1)
	require.ErrorIs(t, ov.MatrixErr, matrixErr)
}

func TestRolesOverview_TotalFailure(t *testing.T) {
	boom := errors.New("down")
	m := &apiMock{
		rolesFn: func(ctx context.Context, token string) ([]model.Role, error) { return nil, boom },
		matrixFn: func(ctx context.Context, token string) ([]model.PermissionRow, []string, error) {
			return nil, nil, boom
		},
	}

	_, err := newService(m).RolesOverview(context.Background(), "tok")
	require.ErrorIs(t, err, boom)
}
