// model/bookModel.go
package model

// Book is a cashbook: a named ledger owned by one user with additional
// members. Counts and balance are aggregated server-side.
type Book struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	CurrencyCode     string  `json:"currencyCode"`
	OwnerID          string  `json:"ownerId"`
	OwnerEmail       string  `json:"ownerEmail"`
	OwnerName        string  `json:"ownerName"`
	OwnerFirstName   *string `json:"ownerFirstName"`
	OwnerLastName    *string `json:"ownerLastName"`
	OwnerPhone       *string `json:"ownerPhone"`
	TransactionCount int     `json:"transactionCount"`
	TotalBalance     float64 `json:"totalBalance"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

type CreateBookReq struct {
	Name         string `json:"name" form:"name" validate:"required"`
	Description  string `json:"description,omitempty" form:"description"`
	CurrencyCode string `json:"currencyCode,omitempty" form:"currencyCode"`
	OwnerUserID  string `json:"ownerUserId" form:"ownerUserId" validate:"required"`
}

// BookFilter narrows the cashbook listing. Status "all" means no filter.
type BookFilter struct {
	Status string
	Search string
}
