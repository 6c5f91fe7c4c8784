package business

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer/ctlx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/sessionx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/validation"
	"github.com/algobasket/hissabbook-admin/app/echoServer/view"
	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	bizsvc "github.com/algobasket/hissabbook-admin/service/business"
)

type Controller struct {
	ctlx.Base
	Svc bizsvc.Service
}

type listPage struct {
	view.Page
	Businesses    []model.Business
	ConfirmDelete string
}

type formPage struct {
	view.Page
	Edit   bool
	ID     string
	Action string
	Form   model.UpdateBusinessReq
}

// GET /businesses
func (ct *Controller) List(c echo.Context) error {
	s := sessionx.Get(c)
	p := listPage{
		Page:          ct.Page(c, "Businesses", "businesses"),
		ConfirmDelete: c.QueryParam("confirm"),
	}

	bs, err := ct.Svc.List(c.Request().Context(), s.Token)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "businesses", p)
	}
	p.Businesses = bs
	return c.Render(http.StatusOK, "businesses", p)
}

// GET /businesses/new
func (ct *Controller) NewForm(c echo.Context) error {
	p := formPage{
		Page:   ct.Page(c, "Add New Business", "businesses"),
		Action: ct.Href("/businesses"),
	}
	return c.Render(http.StatusOK, "business_form", p)
}

// POST /businesses
func (ct *Controller) Create(c echo.Context) error {
	s := sessionx.Get(c)

	var req model.CreateBusinessReq
	if err := c.Bind(&req); err != nil {
		return ct.RedirectErr(c, "/businesses/new", "invalid form submission")
	}

	if _, err := ct.Svc.Create(c.Request().Context(), s.Token, s.User.Email, req); err != nil {
		if errors.Is(err, bizsvc.ErrNameRequired) {
			return ct.RedirectErr(c, "/businesses/new", err.Error())
		}
		return ct.Fail(c, "/businesses/new", err)
	}
	return ct.Redirect(c, "/businesses")
}

// GET /businesses/:id/edit
func (ct *Controller) EditForm(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")

	b, err := ct.findBusiness(c.Request().Context(), s.Token, id)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		return ct.RedirectErr(c, "/businesses", ledger.Message(err))
	}
	if b == nil {
		return ct.RedirectErr(c, "/businesses", "business not found")
	}

	form := model.UpdateBusinessReq{Name: b.Name, Status: b.Status}
	if b.Description != nil {
		form.Description = *b.Description
	}
	if b.MasterWalletUpi != nil {
		form.MasterWalletUpi = *b.MasterWalletUpi
	}

	p := formPage{
		Page:   ct.Page(c, "Edit Business", "businesses"),
		Edit:   true,
		ID:     id,
		Action: ct.Href("/businesses/" + id),
		Form:   form,
	}
	return c.Render(http.StatusOK, "business_form", p)
}

func (ct *Controller) findBusiness(ctx context.Context, token, id string) (*model.Business, error) {
	bs, err := ct.Svc.List(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range bs {
		if bs[i].ID == id {
			return &bs[i], nil
		}
	}
	return nil, nil
}

// POST /businesses/:id
func (ct *Controller) Update(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")
	back := "/businesses/" + id + "/edit"

	var req model.UpdateBusinessReq
	if err := c.Bind(&req); err != nil {
		return ct.RedirectErr(c, back, "invalid form submission")
	}
	if err := ct.V.Struct(req); err != nil {
		return ct.RedirectErr(c, back, validation.Describe(err))
	}

	if _, err := ct.Svc.Update(c.Request().Context(), s.Token, s.User.Email, id, req); err != nil {
		if errors.Is(err, bizsvc.ErrNameRequired) {
			return ct.RedirectErr(c, back, err.Error())
		}
		return ct.Fail(c, back, err)
	}
	return ct.Redirect(c, "/businesses")
}

// POST /businesses/:id/delete
func (ct *Controller) Delete(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")

	if c.FormValue("confirm") != "1" {
		return ct.Redirect(c, "/businesses?confirm="+id)
	}

	if err := ct.Svc.Delete(c.Request().Context(), s.Token, s.User.Email, id); err != nil {
		if errors.Is(err, bizsvc.ErrBusy) {
			return ct.RedirectErr(c, "/businesses", err.Error())
		}
		return ct.Fail(c, "/businesses", err)
	}
	// Deleting the selected business leaves a dangling cookie.
	if sessionx.SelectedBusiness(c) == id {
		sessionx.SetSelectedBusiness(c, "")
	}
	return ct.Redirect(c, "/businesses")
}

// POST /businesses/:id/select
//
// Remembers the working business in its own cookie so every page can show
// it without refetching the listing.
func (ct *Controller) Select(c echo.Context) error {
	sessionx.SetSelectedBusiness(c, c.Param("id"))
	return ct.Redirect(c, "/businesses")
}

// GET /payment-settings
func (ct *Controller) PaymentSettings(c echo.Context) error {
	s := sessionx.Get(c)
	p := listPage{Page: ct.Page(c, "Payment Settings", "payment-settings")}

	bs, err := ct.Svc.ListWithWallets(c.Request().Context(), s.Token)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "payment_settings", p)
	}
	p.Businesses = bs
	return c.Render(http.StatusOK, "payment_settings", p)
}
