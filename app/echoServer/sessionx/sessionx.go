// app/echoServer/sessionx/sessionx.go
package sessionx

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/service/session"
)

const (
	// CookieName holds the signed session JWT (token + user together).
	CookieName = "hb_admin_session"
	// businessCookie persists the business selected in the header switcher.
	businessCookie = "hb_selected_business"

	ctxKey = "sess"
)

// Set writes the session cookie: the setAuth of this console. Token and user
// travel in one cookie, so no reader can observe a partial pair.
func Set(c echo.Context, codec *session.Codec, s session.Session) error {
	val, err := codec.Issue(s)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    val,
		Path:     "/",
		Expires:  time.Now().Add(codec.TTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the session and the business selection.
func Clear(c echo.Context) {
	for _, name := range []string{CookieName, businessCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// Get returns the session placed in context by Middleware, or nil on
// unauthenticated routes.
func Get(c echo.Context) *session.Session {
	s, _ := c.Get(ctxKey).(*session.Session)
	return s
}

// Middleware turns the claims verified by the JWT middleware into a
// *session.Session in context. A cookie that verifies but does not carry a
// usable session counts as unauthenticated.
func Middleware(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := c.Get("user").(*jwt.Token)
			if !ok || tok == nil {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			s, err := session.FromClaims(claims)
			if err != nil {
				Clear(c)
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			c.Set(ctxKey, s)
			return next(c)
		}
	}
}

// SelectedBusiness reads the persisted switcher selection, "" when none.
func SelectedBusiness(c echo.Context) string {
	ck, err := c.Cookie(businessCookie)
	if err != nil {
		return ""
	}
	return ck.Value
}

func SetSelectedBusiness(c echo.Context, id string) {
	c.SetCookie(&http.Cookie{
		Name:     businessCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
