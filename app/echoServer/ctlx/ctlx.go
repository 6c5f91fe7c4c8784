// app/echoServer/ctlx/ctlx.go
//
// Base is embedded by every page controller and carries the one error-path
// every page shares: a backend 401 always expires the session and lands on
// the login page with the "session expired" notice, everything else becomes
// an inline message on the page the user was on.
package ctlx

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer/sessionx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/view"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
)

type Base struct {
	V    *validator.Validate
	Log  *slog.Logger
	Root string // URL prefix the console is mounted under, e.g. "/admin"
}

func (b *Base) Href(p string) string { return b.Root + p }

// Page seeds the template data every view shares, picking up flash messages
// from the query string and identity from the session.
func (b *Base) Page(c echo.Context, title, active string) view.Page {
	p := view.Page{
		Title:    title,
		Root:     b.Root,
		Active:   active,
		Business: sessionx.SelectedBusiness(c),
		Error:    c.QueryParam("error"),
		Notice:   c.QueryParam("notice"),
	}
	if s := sessionx.Get(c); s != nil {
		p.Email = s.User.Email
		p.Role = s.PrimaryRole()
	}
	return p
}

func (b *Base) Redirect(c echo.Context, p string) error {
	return c.Redirect(http.StatusSeeOther, b.Href(p))
}

// RedirectErr sends the user back with the display message near the action
// that failed.
func (b *Base) RedirectErr(c echo.Context, p string, msg string) error {
	sep := "?"
	if u, err := url.Parse(p); err == nil && u.RawQuery != "" {
		sep = "&"
	}
	return c.Redirect(http.StatusSeeOther, b.Href(p)+sep+"error="+url.QueryEscape(msg))
}

// Expired clears the session and redirects to login with the distinct
// session-expired notice.
func (b *Base) Expired(c echo.Context) error {
	sessionx.Clear(c)
	return c.Redirect(http.StatusSeeOther, b.Href("/login?expired=1"))
}

// Fail resolves a mutation error: 401 expires the session, anything else
// returns to back with an inline message.
func (b *Base) Fail(c echo.Context, back string, err error) error {
	if ledger.IsUnauthorized(err) {
		return b.Expired(c)
	}
	return b.RedirectErr(c, back, ledger.Message(err))
}
