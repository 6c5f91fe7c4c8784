// app/echoServer/controller/auth/authController.go
package auth

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
	authsvc "github.com/algobasket/hissabbook-admin/service/auth"
	"github.com/algobasket/hissabbook-admin/service/session"
)

type Controller struct {
	ctlx.Base
	Svc   authsvc.Service
	Codec *session.Codec
}

type loginPage struct {
	view.Page
}

// GET /login
func (ct *Controller) LoginForm(c echo.Context) error {
	// An already-valid session skips the form entirely, but only after the
	// backend confirms the token it carries is still alive.
	if ck, err := c.Cookie(sessionx.CookieName); err == nil {
		if s, perr := ct.Codec.Parse(ck.Value); perr == nil {
			if ct.Svc.TokenAlive(c.Request().Context(), s.Token) {
				return ct.Redirect(c, "/dashboard")
			}
			sessionx.Clear(c)
		}
	}

	p := loginPage{Page: view.Page{Title: "Login", Root: ct.Root}}
	if c.QueryParam("expired") == "1" {
		p.Notice = "Session expired. Please log in again."
	}
	if msg := c.QueryParam("error"); msg != "" {
		p.Error = msg
	}
	return c.Render(http.StatusOK, "login", p)
}

// POST /login
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return ct.RedirectErr(c, "/login", "invalid form submission")
	}
	if err := ct.V.Struct(req); err != nil {
		return ct.RedirectErr(c, "/login", validation.Describe(err))
	}

	sess, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, authsvc.ErrBadInput) {
			return ct.RedirectErr(c, "/login", "email and password are required")
		}
		return ct.RedirectErr(c, "/login", ledger.Message(err))
	}

	if err := sessionx.Set(c, ct.Codec, *sess); err != nil {
		ct.Log.Error("session issue failed", "err", err)
		return ct.RedirectErr(c, "/login", "could not start session")
	}
	return ct.Redirect(c, "/dashboard")
}

// POST /logout
func (ct *Controller) Logout(c echo.Context) error {
	if s := sessionx.Get(c); s != nil {
		ct.Svc.Logout(c.Request().Context(), s.Token, s.User.Email)
	}
	sessionx.Clear(c)
	return ct.Redirect(c, "/login")
}
