// model/walletModel.go
package model

type Wallet struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	Email        string  `json:"email"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	FullName     string  `json:"fullName"`
	Phone        *string `json:"phone"`
	UpiID        *string `json:"upiId"`
	Balance      float64 `json:"balance"`
	CurrencyCode string  `json:"currencyCode"`
	UserStatus   string  `json:"userStatus"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}
