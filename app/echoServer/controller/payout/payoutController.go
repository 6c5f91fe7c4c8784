package payout

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer/ctlx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/sessionx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/view"
	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	payoutsvc "github.com/algobasket/hissabbook-admin/service/payout"
)

type Controller struct {
	ctlx.Base
	Svc payoutsvc.Service
}

type approvalsPage struct {
	view.Page
	Status   string
	Requests []model.PayoutRequest
}

// GET /approvals
func (ct *Controller) List(c echo.Context) error {
	s := sessionx.Get(c)
	status := c.QueryParam("status")
	if status == "" {
		status = "all"
	}

	p := approvalsPage{
		Page:   ct.Page(c, "Approvals", "approvals"),
		Status: status,
	}

	reqs, err := ct.Svc.List(c.Request().Context(), s.Token, status)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "approvals", p)
	}
	p.Requests = reqs
	return c.Render(http.StatusOK, "approvals", p)
}

// POST /approvals/:id/decision
func (ct *Controller) Decide(c echo.Context) error {
	s := sessionx.Get(c)
	id := c.Param("id")
	status := c.FormValue("status")
	back := "/approvals"

	_, err := ct.Svc.Decide(c.Request().Context(), s.Token, s.User.Email, id, status)
	if err != nil {
		switch {
		case errors.Is(err, payoutsvc.ErrBusy), errors.Is(err, payoutsvc.ErrBadStatus):
			return ct.RedirectErr(c, back, err.Error())
		default:
			return ct.Fail(c, back, err)
		}
	}

	// Back to the list, which re-fetches and shows the new terminal state.
	return ct.Redirect(c, back)
}
