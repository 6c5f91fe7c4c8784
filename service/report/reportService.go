package reportsvc

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/algobasket/hissabbook-admin/model"
)

const statementLimit = 500

type API interface {
	ListTransactions(ctx context.Context, token string, f model.TxnFilter) ([]model.Transaction, error)
}

type Service interface {
	Statement(ctx context.Context, token string, f model.TxnFilter) ([]byte, error)
}

type service struct{ api API }

func New(api API) Service { return &service{api: api} }

// Statement renders the filtered transaction listing as a PDF for offline
// reconciliation.
func (s *service) Statement(ctx context.Context, token string, f model.TxnFilter) ([]byte, error) {
	if f.Limit <= 0 || f.Limit > statementLimit {
		f.Limit = statementLimit
	}
	txns, err := s.api.ListTransactions(ctx, token, f)
	if err != nil {
		return nil, err
	}
	return buildStatement(txns, f), nil
}

func buildStatement(txns []model.Transaction, f model.TxnFilter) []byte {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, "HissabBook Transaction Statement")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	line := "Generated " + time.Now().Format("2006-01-02 15:04")
	if f.Type != "" && f.Type != "all" {
		line += "  |  type: " + f.Type
	}
	if f.Status != "" && f.Status != "all" {
		line += "  |  status: " + f.Status
	}
	pdf.Cell(0, 6, line)
	pdf.Ln(9)

	w := []float64{28, 22, 22, 28, 18, 58, 50, 30}
	head := []string{"Date", "Type", "Status", "Amount", "Ccy", "User", "Cashbook", "ID"}

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range head {
		pdf.CellFormat(w[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	if len(txns) == 0 {
		pdf.CellFormat(sum(w), 8, "No transactions found", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	for _, t := range txns {
		book := ""
		if t.BookName != nil {
			book = *t.BookName
		}
		cells := []string{
			shortDate(t.OccurredAt),
			t.Type,
			t.Status,
			amount(t.Amount),
			t.CurrencyCode,
			clip(t.UserFullName, 34),
			clip(book, 30),
			clip(t.ID, 18),
		}
		for i, v := range cells {
			pdf.CellFormat(w[i], 7, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	// gofpdf keeps its first error internally; Output surfaces it, and an
	// empty document is still returned so the handler can log and move on.
	_ = pdf.Output(&buf)
	return buf.Bytes()
}

func sum(w []float64) float64 {
	var t float64
	for _, v := range w {
		t += v
	}
	return t
}

func shortDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("02-01-2006 15:04")
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
