// model/payoutModel.go
package model

type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutAccepted PayoutStatus = "accepted"
	PayoutRejected PayoutStatus = "rejected"
)

// PayoutRequest is a disbursement request under review. Only pending
// requests may transition; accepted/rejected are terminal for this console.
type PayoutRequest struct {
	ID          string  `json:"id"`
	Reference   string  `json:"reference"`
	SubmittedBy string  `json:"submittedBy"`
	Amount      float64 `json:"amount"`
	UTR         string  `json:"utr"`
	Remarks     string  `json:"remarks"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	UserEmail   string  `json:"userEmail"`
	UserPhone   *string `json:"userPhone"`
}

func (p PayoutRequest) Pending() bool { return p.Status == string(PayoutPending) }

type UpdatePayoutStatusReq struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
	Notes  string `json:"notes"`
}
