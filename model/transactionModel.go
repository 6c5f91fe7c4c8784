// model/transactionModel.go
package model

import "encoding/json"

type TxnType string

const (
	TxnCredit   TxnType = "credit"
	TxnDebit    TxnType = "debit"
	TxnTransfer TxnType = "transfer"
	TxnPayment  TxnType = "payment"
)

type TxnStatus string

const (
	TxnPending   TxnStatus = "pending"
	TxnCompleted TxnStatus = "completed"
	TxnFailed    TxnStatus = "failed"
	TxnCancelled TxnStatus = "cancelled"
)

type Transaction struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Amount        float64         `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Description   *string         `json:"description"`
	Metadata      json.RawMessage `json:"metadata"`
	OccurredAt    string          `json:"occurredAt"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
	UserID        *string         `json:"userId"`
	BookID        *string         `json:"bookId"`
	WalletID      *string         `json:"walletId"`
	UserEmail     *string         `json:"userEmail"`
	UserFirstName *string         `json:"userFirstName"`
	UserLastName  *string         `json:"userLastName"`
	UserFullName  string          `json:"userFullName"`
	UserPhone     *string         `json:"userPhone"`
	BookName      *string         `json:"bookName"`
}

// TxnFilter narrows transaction listings. Type/Status "all" means no
// filter; Limit/Offset are sent only when positive.
type TxnFilter struct {
	Type   string
	Status string
	Limit  int
	Offset int
}
