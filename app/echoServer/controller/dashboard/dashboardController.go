package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer/ctlx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/sessionx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/view"
	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	dashsvc "github.com/algobasket/hissabbook-admin/service/dashboard"
)

type Controller struct {
	ctlx.Base
	Svc dashsvc.Service
}

type dashPage struct {
	view.Page
	Stats    *model.DashboardStats
	StatsErr string
	Queue    []model.QueueItem
	QueueErr string
}

// GET /dashboard
func (ct *Controller) Show(c echo.Context) error {
	s := sessionx.Get(c)

	ov, err := ct.Svc.Overview(c.Request().Context(), s.Token)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p := dashPage{Page: ct.Page(c, "Dashboard", "dashboard")}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "dashboard", p)
	}

	p := dashPage{
		Page:  ct.Page(c, "Dashboard", "dashboard"),
		Stats: ov.Stats,
		Queue: ov.Queue,
	}
	// Either half may have failed on its own; a dead token still wins over
	// a partial render.
	if ledger.IsUnauthorized(ov.StatsErr) || ledger.IsUnauthorized(ov.QueueErr) {
		return ct.Expired(c)
	}
	if ov.StatsErr != nil {
		p.StatsErr = ledger.Message(ov.StatsErr)
	}
	if ov.QueueErr != nil {
		p.QueueErr = ledger.Message(ov.QueueErr)
	}
	return c.Render(http.StatusOK, "dashboard", p)
}
