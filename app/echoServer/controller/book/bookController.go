package book

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer/ctlx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/sessionx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/validation"
	"github.com/algobasket/hissabbook-admin/app/echoServer/view"
	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	booksvc "github.com/algobasket/hissabbook-admin/service/book"
	usersvc "github.com/algobasket/hissabbook-admin/service/user"
)

type Controller struct {
	ctlx.Base
	Svc   booksvc.Service
	Users usersvc.Service
}

type listPage struct {
	view.Page
	Filter model.BookFilter
	Books  []model.Book
}

type formPage struct {
	view.Page
	Form   model.CreateBookReq
	Owners []model.EndUser
}

type detailPage struct {
	view.Page
	Book       *model.Book
	Members    []model.EndUser
	Candidates []model.EndUser
	Txns       []model.Transaction
	MembersErr string
	TxnsErr    string
}

// GET /cashbooks
func (ct *Controller) List(c echo.Context) error {
	s := sessionx.Get(c)
	f := model.BookFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}
	if f.Status == "" {
		f.Status = "all"
	}

	p := listPage{Page: ct.Page(c, "Cashbooks", "cashbooks"), Filter: f}

	books, err := ct.Svc.List(c.Request().Context(), s.Token, f)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "cashbooks", p)
	}
	p.Books = books
	return c.Render(http.StatusOK, "cashbooks", p)
}

// GET /cashbooks/new
func (ct *Controller) NewForm(c echo.Context) error {
	s := sessionx.Get(c)
	p := formPage{
		Page: ct.Page(c, "Add New Cashbook", "cashbooks"),
		Form: model.CreateBookReq{CurrencyCode: "INR"},
	}

	owners, err := ct.Users.List(c.Request().Context(), s.Token, "All")
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "cashbook_form", p)
	}
	p.Owners = owners
	return c.Render(http.StatusOK, "cashbook_form", p)
}

// POST /cashbooks
func (ct *Controller) Create(c echo.Context) error {
	s := sessionx.Get(c)

	var req model.CreateBookReq
	if err := c.Bind(&req); err != nil {
		return ct.RedirectErr(c, "/cashbooks/new", "invalid form submission")
	}
	if err := ct.V.Struct(req); err != nil {
		return ct.RedirectErr(c, "/cashbooks/new", validation.Describe(err))
	}

	b, err := ct.Svc.Create(c.Request().Context(), s.Token, s.User.Email, req)
	if err != nil {
		if errors.Is(err, booksvc.ErrBadInput) {
			return ct.RedirectErr(c, "/cashbooks/new", "name and owner are required")
		}
		return ct.Fail(c, "/cashbooks/new", err)
	}
	return ct.Redirect(c, "/cashbooks/"+b.ID)
}

// GET /cashbooks/:id
func (ct *Controller) Show(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")

	d, err := ct.Svc.Detail(c.Request().Context(), s.Token, id, model.TxnFilter{})
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		return ct.RedirectErr(c, "/cashbooks", ledger.Message(err))
	}
	if ledger.IsUnauthorized(d.MembersErr) || ledger.IsUnauthorized(d.TxnsErr) {
		return ct.Expired(c)
	}

	p := detailPage{
		Page:       ct.Page(c, d.Book.Name, "cashbooks"),
		Book:       d.Book,
		Members:    d.Members,
		Candidates: d.Candidates,
		Txns:       d.Txns,
	}
	if d.MembersErr != nil {
		p.MembersErr = ledger.Message(d.MembersErr)
	}
	if d.TxnsErr != nil {
		p.TxnsErr = ledger.Message(d.TxnsErr)
	}
	return c.Render(http.StatusOK, "cashbook_detail", p)
}

// POST /cashbooks/:id/users
func (ct *Controller) AddMember(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")
	back := "/cashbooks/" + id
	userID := c.FormValue("userId")

	if userID == "" {
		return ct.RedirectErr(c, back, "select a user to add")
	}
	if err := ct.Svc.AddMember(c.Request().Context(), s.Token, s.User.Email, id, userID); err != nil {
		if errors.Is(err, booksvc.ErrBusy) {
			return ct.RedirectErr(c, back, err.Error())
		}
		return ct.Fail(c, back, err)
	}
	return ct.Redirect(c, back)
}

// POST /cashbooks/:id/users/:userId/remove
func (ct *Controller) RemoveMember(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")
	back := "/cashbooks/" + id

	if err := ct.Svc.RemoveMember(c.Request().Context(), s.Token, s.User.Email, id, c.Param("userId")); err != nil {
		if errors.Is(err, booksvc.ErrBusy) {
			return ct.RedirectErr(c, back, err.Error())
		}
		return ct.Fail(c, back, err)
	}
	return ct.Redirect(c, back)
}
