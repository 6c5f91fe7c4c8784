package user

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer/ctlx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/sessionx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/validation"
	"github.com/algobasket/hissabbook-admin/app/echoServer/view"
	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	usersvc "github.com/algobasket/hissabbook-admin/service/user"
)

type Controller struct {
	ctlx.Base
	Svc usersvc.Service
}

type usersPage struct {
	view.Page
	RoleFilter    string
	Users         []model.EndUser
	ConfirmDelete string
}

type userFormPage struct {
	view.Page
	Edit   bool
	ID     string
	Action string
	Form   model.CreateUserReq
}

type adminsPage struct {
	view.Page
	Admins []model.AdminUser
}

type walletsPage struct {
	view.Page
	Wallets []model.Wallet
}

type rolesPage struct {
	view.Page
	Roles     []model.Role
	Matrix    []model.PermissionRow
	Notes     []string
	RolesErr  string
	MatrixErr string
}

// GET /end-users
func (ct *Controller) List(c echo.Context) error {
	s := sessionx.Get(c)
	role := c.QueryParam("role")
	if role == "" {
		role = "All"
	}

	p := usersPage{
		Page:          ct.Page(c, "End Users", "end-users"),
		RoleFilter:    role,
		ConfirmDelete: c.QueryParam("confirm"),
	}

	users, err := ct.Svc.List(c.Request().Context(), s.Token, role)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "end_users", p)
	}
	p.Users = users
	return c.Render(http.StatusOK, "end_users", p)
}

// GET /end-users/new
func (ct *Controller) NewForm(c echo.Context) error {
	p := userFormPage{
		Page:   ct.Page(c, "Add New User", "end-users"),
		Action: ct.Href("/end-users"),
		Form:   model.CreateUserReq{Role: "staff"},
	}
	return c.Render(http.StatusOK, "user_form", p)
}

// POST /end-users
func (ct *Controller) Create(c echo.Context) error {
	s := sessionx.Get(c)

	var req model.CreateUserReq
	if err := c.Bind(&req); err != nil {
		return ct.RedirectErr(c, "/end-users/new", "invalid form submission")
	}
	if err := ct.V.Struct(req); err != nil {
		return ct.RedirectErr(c, "/end-users/new", validation.Describe(err))
	}

	if _, err := ct.Svc.Create(c.Request().Context(), s.Token, s.User.Email, req); err != nil {
		if errors.Is(err, usersvc.ErrBadInput) {
			return ct.RedirectErr(c, "/end-users/new", "email, role and a password of at least 6 characters are required")
		}
		return ct.Fail(c, "/end-users/new", err)
	}
	return ct.Redirect(c, "/end-users")
}

// GET /end-users/:id/edit
func (ct *Controller) EditForm(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")

	u, err := ct.findUser(c.Request().Context(), s.Token, id)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		return ct.RedirectErr(c, "/end-users", ledger.Message(err))
	}
	if u == nil {
		return ct.RedirectErr(c, "/end-users", "user not found")
	}

	form := model.CreateUserReq{
		Email: u.Email,
		Role:  u.PrimaryRole,
	}
	if u.FirstName != nil {
		form.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		form.LastName = *u.LastName
	}
	if u.Phone != nil {
		form.Phone = *u.Phone
	}
	if u.UpiID != nil {
		form.UpiID = *u.UpiID
	}

	p := userFormPage{
		Page:   ct.Page(c, "Edit User", "end-users"),
		Edit:   true,
		ID:     id,
		Action: ct.Href("/end-users/" + id),
		Form:   form,
	}
	return c.Render(http.StatusOK, "user_form", p)
}

// The backend has no single-user GET; the edit form loads the listing and
// picks the row, same as the original console did.
func (ct *Controller) findUser(ctx context.Context, token, id string) (*model.EndUser, error) {
	users, err := ct.Svc.List(ctx, token, "All")
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// POST /end-users/:id
func (ct *Controller) Update(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")
	back := "/end-users/" + id + "/edit"

	var req model.CreateUserReq
	if err := c.Bind(&req); err != nil {
		return ct.RedirectErr(c, back, "invalid form submission")
	}
	if err := ct.V.Struct(req); err != nil {
		return ct.RedirectErr(c, back, validation.Describe(err))
	}

	if _, err := ct.Svc.Update(c.Request().Context(), s.Token, s.User.Email, id, req); err != nil {
		return ct.Fail(c, back, err)
	}
	return ct.Redirect(c, "/end-users")
}

// POST /end-users/:id/ban
func (ct *Controller) Ban(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")
	banned, _ := strconv.ParseBool(c.FormValue("banned"))

	if _, err := ct.Svc.SetBanned(c.Request().Context(), s.Token, s.User.Email, id, banned); err != nil {
		if errors.Is(err, usersvc.ErrBusy) {
			return ct.RedirectErr(c, "/end-users", err.Error())
		}
		return ct.Fail(c, "/end-users", err)
	}
	return ct.Redirect(c, "/end-users")
}

// POST /end-users/:id/delete
//
// Destructive, so the first click only arms the row; the delete happens on
// the confirming second click.
func (ct *Controller) Delete(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")

	if c.FormValue("confirm") != "1" {
		return ct.Redirect(c, "/end-users?confirm="+id)
	}

	if err := ct.Svc.Delete(c.Request().Context(), s.Token, s.User.Email, id); err != nil {
		if errors.Is(err, usersvc.ErrBusy) {
			return ct.RedirectErr(c, "/end-users", err.Error())
		}
		return ct.Fail(c, "/end-users", err)
	}
	return ct.Redirect(c, "/end-users")
}

// GET /business-owners
func (ct *Controller) Admins(c echo.Context) error {
	s := sessionx.Get(c)
	p := adminsPage{Page: ct.Page(c, "Business Owners", "business-owners")}

	admins, err := ct.Svc.ListAdmins(c.Request().Context(), s.Token)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "business_owners", p)
	}
	p.Admins = admins
	return c.Render(http.StatusOK, "business_owners", p)
}

// GET /wallets
func (ct *Controller) Wallets(c echo.Context) error {
	s := sessionx.Get(c)
	p := walletsPage{Page: ct.Page(c, "Wallets", "wallets")}

	wallets, err := ct.Svc.Wallets(c.Request().Context(), s.Token)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "wallets", p)
	}
	p.Wallets = wallets
	return c.Render(http.StatusOK, "wallets", p)
}

// GET /roles-permissions
func (ct *Controller) Roles(c echo.Context) error {
	s := sessionx.Get(c)
	p := rolesPage{Page: ct.Page(c, "Roles & Permissions", "roles")}

	ov, err := ct.Svc.RolesOverview(c.Request().Context(), s.Token)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "roles", p)
	}
	if ledger.IsUnauthorized(ov.RolesErr) || ledger.IsUnauthorized(ov.MatrixErr) {
		return ct.Expired(c)
	}
	p.Roles = ov.Roles
	p.Matrix = ov.Matrix
	p.Notes = ov.Notes
	if ov.RolesErr != nil {
		p.RolesErr = ledger.Message(ov.RolesErr)
	}
	if ov.MatrixErr != nil {
		p.MatrixErr = ledger.Message(ov.MatrixErr)
	}
	return c.Render(http.StatusOK, "roles", p)
}
