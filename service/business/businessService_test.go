package bizsvc_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	bizsvc "github.com/algobasket/hissabbook-admin/service/business"
)

type apiMock struct {
	createCalls int
	createFn    func(ctx context.Context, token string, req model.CreateBusinessReq) (*model.Business, error)
	updateFn    func(ctx context.Context, token, id string, req model.UpdateBusinessReq) (*model.Business, error)
	deleteFn    func(ctx context.Context, token, id string) error
}

var _ bizsvc.API = (*apiMock)(nil)

func (m *apiMock) ListBusinesses(ctx context.Context, token string) ([]model.Business, error) {
	return nil, nil
}
func (m *apiMock) ListBusinessesWithWallets(ctx context.Context, token string) ([]model.Business, error) {
	return nil, nil
}
func (m *apiMock) CreateBusiness(ctx context.Context, token string, req model.CreateBusinessReq) (*model.Business, error) {
	m.createCalls++
	if m.createFn == nil {
		return &model.Business{ID: "b-1", Name: req.Name}, nil
	}
	return m.createFn(ctx, token, req)
}
func (m *apiMock) UpdateBusiness(ctx context.Context, token, id string, req model.UpdateBusinessReq) (*model.Business, error) {
	if m.updateFn == nil {
		return &model.Business{ID: id, Name: req.Name}, nil
	}
	return m.updateFn(ctx, token, id, req)
}
func (m *apiMock) DeleteBusiness(ctx context.Context, token, id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, token, id)
}

type auditMock struct{ entries []audit.Entry }

func (a *auditMock) Write(ctx context.Context, e audit.Entry) error {
	a.entries = append(a.entries, e)
	return nil
}

func TestCreate_EmptyNameNeverReachesBackend(t *testing.T) {
	m := &apiMock{}
	s := bizsvc.New(m, &auditMock{}, slog.Default())

	for _, name := range []string{"", "   ", "\t"} {
		_, err := s.Create(context.Background(), "tok", "a@x.com", model.CreateBusinessReq{Name: name})
		require.ErrorIs(t, err, bizsvc.ErrNameRequired, "name=%q", name)
	}
	require.Zero(t, m.createCalls)
}

func TestCreate_TrimsFields(t *testing.T) {
	var got model.CreateBusinessReq
	m := &apiMock{
		createFn: func(ctx context.Context, token string, req model.CreateBusinessReq) (*model.Business, error) {
			got = req
			return &model.Business{ID: "b-1", Name: req.Name}, nil
		},
	}
	a := &auditMock{}
	s := bizsvc.New(m, a, slog.Default())

	_, err := s.Create(context.Background(), "tok", "a@x.com", model.CreateBusinessReq{
		Name:            "  Sharma Traders  ",
		Description:     " wholesale ",
		MasterWalletUpi: " st@upi ",
	})
	require.NoError(t, err)
	require.Equal(t, "Sharma Traders", got.Name)
	require.Equal(t, "wholesale", got.Description)
	require.Equal(t, "st@upi", got.MasterWalletUpi)

	require.Len(t, a.entries, 1)
	require.Equal(t, "business.create", a.entries[0].Action)
}

func TestUpdate_RequiresName(t *testing.T) {
	s := bizsvc.New(&apiMock{}, &auditMock{}, slog.Default())

	_, err := s.Update(context.Background(), "tok", "a@x.com", "b-1", model.UpdateBusinessReq{Name: " "})
	require.ErrorIs(t, err, bizsvc.ErrNameRequired)
}

func TestDelete_GuardedPerBusiness(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	m := &apiMock{
		deleteFn: func(ctx context.Context, token, id string) error {
			close(started)
			<-release
			return nil
		},
	}
	s := bizsvc.New(m, &auditMock{}, slog.Default())

	done := make(chan error, 1)
	go func() { done <- s.Delete(context.Background(), "tok", "a@x.com", "b-1") }()
	<-started

	err := s.Delete(context.Background(), "tok", "a@x.com", "b-1")
	require.ErrorIs(t, err, bizsvc.ErrBusy)

	close(release)
	require.NoError(t, <-done)
}
