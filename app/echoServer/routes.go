package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer/controller/auth"
	"github.com/algobasket/hissabbook-admin/app/echoServer/controller/book"
	"github.com/algobasket/hissabbook-admin/app/echoServer/controller/business"
	"github.com/algobasket/hissabbook-admin/app/echoServer/controller/dashboard"
	"github.com/algobasket/hissabbook-admin/app/echoServer/controller/payout"
	"github.com/algobasket/hissabbook-admin/app/echoServer/controller/txn"
	"github.com/algobasket/hissabbook-admin/app/echoServer/controller/user"
	"github.com/algobasket/hissabbook-admin/app/echoServer/sessionx"
	"github.com/algobasket/hissabbook-admin/service/session"
)

type C struct {
	Auth      *auth.Controller
	Dashboard *dashboard.Controller
	Payout    *payout.Controller
	User      *user.Controller
	Business  *business.Controller
	Book      *book.Controller
	Txn       *txn.Controller
	Codec     *session.Codec
	BasePath  string
}

func Register(e *echo.Echo, c C) {
	root := e.Group(c.BasePath)
	loginPath := c.BasePath + "/login"

	// Public
	root.GET("/login", c.Auth.LoginForm)
	root.POST("/login", c.Auth.Login)

	// Auth
	authed := root.Group("")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    c.Codec.Secret(),
		TokenLookup:   "cookie:" + sessionx.CookieName,
		NewClaimsFunc: func(echo.Context) jwt.Claims { return jwt.MapClaims{} },
		// A missing or invalid cookie is a browser without a session, not
		// an API caller; send it to the form instead of a 401 body.
		ErrorHandler: func(ctx echo.Context, _ error) error {
			sessionx.Clear(ctx)
			return ctx.Redirect(http.StatusSeeOther, loginPath)
		},
	}))
	authed.Use(sessionx.Middleware(loginPath))

	authed.GET("", func(ctx echo.Context) error {
		return ctx.Redirect(http.StatusSeeOther, c.BasePath+"/dashboard")
	})
	authed.POST("/logout", c.Auth.Logout)

	authed.GET("/dashboard", c.Dashboard.Show)

	authed.GET("/approvals", c.Payout.List)
	authed.POST("/approvals/:id/decision", c.Payout.Decide)

	authed.GET("/end-users", c.User.List)
	authed.GET("/end-users/new", c.User.NewForm)
	authed.POST("/end-users", c.User.Create)
	authed.GET("/end-users/:id/edit", c.User.EditForm)
	authed.POST("/end-users/:id", c.User.Update)
	authed.POST("/end-users/:id/ban", c.User.Ban)
	authed.POST("/end-users/:id/delete", c.User.Delete)
	authed.GET("/business-owners", c.User.Admins)
	authed.GET("/wallets", c.User.Wallets)
	authed.GET("/roles-permissions", c.User.Roles)

	authed.GET("/businesses", c.Business.List)
	authed.GET("/businesses/new", c.Business.NewForm)
	authed.POST("/businesses", c.Business.Create)
	authed.GET("/businesses/:id/edit", c.Business.EditForm)
	authed.POST("/businesses/:id", c.Business.Update)
	authed.POST("/businesses/:id/delete", c.Business.Delete)
	authed.POST("/businesses/:id/select", c.Business.Select)
	authed.GET("/payment-settings", c.Business.PaymentSettings)

	authed.GET("/cashbooks", c.Book.List)
	authed.GET("/cashbooks/new", c.Book.NewForm)
	authed.POST("/cashbooks", c.Book.Create)
	authed.GET("/cashbooks/:id", c.Book.Show)
	authed.POST("/cashbooks/:id/users", c.Book.AddMember)
	authed.POST("/cashbooks/:id/users/:userId/remove", c.Book.RemoveMember)

	authed.GET("/all-transactions", c.Txn.List)
	authed.GET("/all-transactions/statement.pdf", c.Txn.Statement)
}
