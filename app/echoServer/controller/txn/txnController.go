package txn

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/algobasket/hissabbook-admin/app/echoServer/ctlx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/sessionx"
	"github.com/algobasket/hissabbook-admin/app/echoServer/view"
	"github.com/algobasket/hissabbook-admin/model"
	"github.com/algobasket/hissabbook-admin/repository/ledger"
	reportsvc "github.com/algobasket/hissabbook-admin/service/report"
	txnsvc "github.com/algobasket/hissabbook-admin/service/transaction"
)

type Controller struct {
	ctlx.Base
	Svc     txnsvc.Service
	Reports reportsvc.Service
}

type listPage struct {
	view.Page
	Filter   model.TxnFilter
	Txns     []model.Transaction
	HasMore  bool
	PrevHref string
	NextHref string
}

// GET /all-transactions
func (ct *Controller) List(c echo.Context) error {
	s := sessionx.Get(c)
	f := parseFilter(c)

	p := listPage{Page: ct.Page(c, "All Transactions", "transactions"), Filter: f}

	txns, err := ct.Svc.List(c.Request().Context(), s.Token, f)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		p.Error = ledger.Message(err)
		return c.Render(http.StatusOK, "transactions", p)
	}

	p.Txns = txns
	// A full page suggests there is another one; the backend has no count
	// endpoint, so the pager probes rather than knows.
	p.HasMore = len(txns) == f.Limit
	if f.Offset > 0 {
		prev := f.Offset - f.Limit
		if prev < 0 {
			prev = 0
		}
		p.PrevHref = ct.pageHref(f, prev)
	}
	if p.HasMore {
		p.NextHref = ct.pageHref(f, f.Offset+f.Limit)
	}
	return c.Render(http.StatusOK, "transactions", p)
}

// GET /all-transactions/statement.pdf
func (ct *Controller) Statement(c echo.Context) error {
	s := sessionx.Get(c)
	f := parseFilter(c)
	f.Offset = 0

	pdf, err := ct.Reports.Statement(c.Request().Context(), s.Token, f)
	if err != nil {
		if ledger.IsUnauthorized(err) {
			return ct.Expired(c)
		}
		return ct.RedirectErr(c, "/all-transactions", ledger.Message(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="transactions.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func parseFilter(c echo.Context) model.TxnFilter {
	f := model.TxnFilter{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
		Limit:  txnsvc.DefaultLimit,
	}
	if f.Type == "" {
		f.Type = "all"
	}
	if f.Status == "" {
		f.Status = "all"
	}
	if off, err := strconv.Atoi(c.QueryParam("offset")); err == nil && off > 0 {
		f.Offset = off
	}
	return f
}

func (ct *Controller) pageHref(f model.TxnFilter, offset int) string {
	q := url.Values{}
	q.Set("type", f.Type)
	q.Set("status", f.Status)
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return ct.Href("/all-transactions?" + q.Encode())
}
