package booksvc_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/audit"
	booksvc "github.com/algobasket/hissabbook-admin/service/book"
)

type apiMock struct {
	getBookFn   func(ctx context.Context, token, id string) (*model.Book, error)
	membersFn   func(ctx context.Context, token, bookID string) ([]model.EndUser, error)
	allUsersFn  func(ctx context.Context, token string) ([]model.EndUser, error)
	bookTxnsFn  func(ctx context.Context, token, bookID string, f model.TxnFilter) ([]model.Transaction, error)
	addMemberFn func(ctx context.Context, token, bookID, userID string) (*model.EndUser, error)
}

var _ booksvc.API = (*apiMock)(nil)

func (m *apiMock) ListBooks(ctx context.Context, token string, f model.BookFilter) ([]model.Book, error) {
	return nil, nil
}
func (m *apiMock) GetBook(ctx context.Context, token, id string) (*model.Book, error) {
	if m.getBookFn == nil {
		return &model.Book{ID: id, Name: "Main Book"}, nil
	}
	return m.getBookFn(ctx, token, id)
}
func (m *apiMock) CreateBook(ctx context.Context, token string, req model.CreateBookReq) (*model.Book, error) {
	return &model.Book{ID: "bk-1", Name: req.Name}, nil
}
func (m *apiMock) ListBookUsers(ctx context.Context, token, bookID string) ([]model.EndUser, error) {
	if m.membersFn == nil {
		return nil, nil
	}
	return m.membersFn(ctx, token, bookID)
}
func (m *apiMock) AddBookUser(ctx context.Context, token, bookID, userID string) (*model.EndUser, error) {
	if m.addMemberFn == nil {
		return &model.EndUser{ID: userID}, nil
	}
	return m.addMemberFn(ctx, token, bookID, userID)
}
func (m *apiMock) RemoveBookUser(ctx context.Context, token, bookID, userID string) error {
	return nil
}
func (m *apiMock) ListAllUsers(ctx context.Context, token string) ([]model.EndUser, error) {
	if m.allUsersFn == nil {
		return nil, nil
	}
	return m.allUsersFn(ctx, token)
}
func (m *apiMock) ListBookTransactions(ctx context.Context, token, bookID string, f model.TxnFilter) ([]model.Transaction, error) {
	if m.bookTxnsFn == nil {
		return nil, nil
	}
	return m.bookTxnsFn(ctx, token, bookID, f)
}

type auditMock struct{}

func (auditMock) Write(ctx context.Context, e audit.Entry) error { return nil }

func users(ids ...string) []model.EndUser {
	out := make([]model.EndUser, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.EndUser{ID: id, Email: id + "@x.com"})
	}
	return out
}

func TestDetail_CandidatesExcludeMembers(t *testing.T) {
	m := &apiMock{
		membersFn: func(ctx context.Context, token, bookID string) ([]model.EndUser, error) {
			return users("u-1", "u-3"), nil
		},
		allUsersFn: func(ctx context.Context, token string) ([]model.EndUser, error) {
			return users("u-1", "u-2", "u-3", "u-4"), nil
		},
	}
	s := booksvc.New(m, auditMock{}, slog.Default())

	d, err := s.Detail(context.Background(), "tok", "bk-1", model.TxnFilter{})
	require.NoError(t, err)

	var ids []string
	for _, u := range d.Candidates {
		ids = append(ids, u.ID)
	}
	require.Equal(t, []string{"u-2", "u-4"}, ids)
}

func TestDetail_BookErrorIsFatal(t *testing.T) {
	m := &apiMock{
		getBookFn: func(ctx context.Context, token, id string) (*model.Book, error) {
			return nil, errors.New("not found")
		},
	}
	s := booksvc.New(m, auditMock{}, slog.Default())

	_, err := s.Detail(context.Background(), "tok", "bk-404", model.TxnFilter{})
	require.Error(t, err)
}

func TestDetail_SecondaryErrorsFailSoft(t *testing.T) {
	txnErr := errors.New("txn listing down")
	m := &apiMock{
		membersFn: func(ctx context.Context, token, bookID string) ([]model.EndUser, error) {
			return users("u-1"), nil
		},
		allUsersFn: func(ctx context.Context, token string) ([]model.EndUser, error) {
			return users("u-1", "u-2"), nil
		},
		bookTxnsFn: func(ctx context.Context, token, bookID string, f model.TxnFilter) ([]model.Transaction, error) {
			return nil, txnErr
		},
	}
	s := booksvc.New(m, auditMock{}, slog.Default())

	d, err := s.Detail(context.Background(), "tok", "bk-1", model.TxnFilter{})
	require.NoError(t, err)
	require.NotNil(t, d.Book)
	require.ErrorIs(t, d.TxnsErr, txnErr)
	require.Len(t, d.Candidates, 1)
}

func TestDetail_NoCandidatesWhenUserListMissing(t *testing.T) {
	userErr := errors.New("user listing down")
	m := &apiMock{
		membersFn: func(ctx context.Context, token, bookID string) ([]model.EndUser, error) {
			return users("u-1"), nil
		},
		allUsersFn: func(ctx context.Context, token string) ([]model.EndUser, error) {
			return nil, userErr
		},
	}
	s := booksvc.New(m, auditMock{}, slog.Default())

	d, err := s.Detail(context.Background(), "tok", "bk-1", model.TxnFilter{})
	require.NoError(t, err)
	require.Empty(t, d.Candidates)
	require.ErrorIs(t, d.MembersErr, userErr)
}

func TestCreate_Validation(t *testing.T) {
	s := booksvc.New(&apiMock{}, auditMock{}, slog.Default())

	_, err := s.Create(context.Background(), "tok", "a@x.com", model.CreateBookReq{Name: " ", OwnerUserID: "u-1"})
	require.ErrorIs(t, err, booksvc.ErrBadInput)

	_, err = s.Create(context.Background(), "tok", "a@x.com", model.CreateBookReq{Name: "Shop"})
	require.ErrorIs(t, err, booksvc.ErrBadInput)
}

func TestAddMember_DuplicateWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	m := &apiMock{
		addMemberFn: func(ctx context.Context, token, bookID, userID string) (*model.EndUser, error) {
			if userID == "u-1" {
				close(started)
				<-release
			}
			return &model.EndUser{ID: userID}, nil
		},
	}
	s := booksvc.New(m, auditMock{}, slog.Default())

	done := make(chan error, 1)
	go func() { done <- s.AddMember(context.Background(), "tok", "a@x.com", "bk-1", "u-1") }()
	<-started

	require.ErrorIs(t, s.AddMember(context.Background(), "tok", "a@x.com", "bk-1", "u-1"), booksvc.ErrBusy)

	// a different user in the same book is not blocked
	require.NoError(t, s.AddMember(context.Background(), "tok", "a@x.com", "bk-1", "u-2"))

	close(release)
	require.NoError(t, <-done)
}
