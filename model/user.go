// model/user.go
package model

// User is the authenticated admin identity as returned by the backend on
// login and /api/auth/me. The backend sends either a role list or a single
// role depending on account age, so both fields are kept.
type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Status      string   `json:"status"`
	Roles       []string `json:"roles,omitempty"`
	Role        string   `json:"role,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	LastLoginAt string   `json:"lastLoginAt,omitempty"`
}

// EndUser is a managed platform user row.
type EndUser struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	FirstName       *string  `json:"firstName"`
	LastName        *string  `json:"lastName"`
	Phone           *string  `json:"phone"`
	UpiID           *string  `json:"upiId"`
	Status          string   `json:"status"`
	Roles           []string `json:"roles"`
	PrimaryRole     string   `json:"primaryRole"`
	PendingRequests int      `json:"pendingRequests"`
	CreatedAt       string   `json:"createdAt"`
	LastLoginAt     *string  `json:"lastLoginAt"`
}

// AdminUser is a business-owner/admin row, joined with wallet data.
type AdminUser struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	FirstName     *string     `json:"firstName"`
	LastName      *string     `json:"lastName"`
	FullName      string      `json:"fullName"`
	Phone         *string     `json:"phone"`
	UpiID         *string     `json:"upiId"`
	UpiQrCode     *string     `json:"upiQrCode"`
	Status        string      `json:"status"`
	Roles         []AdminRole `json:"roles"`
	WalletBalance float64     `json:"walletBalance"`
	WalletCcy     string      `json:"walletCurrency"`
	CreatedAt     string      `json:"createdAt"`
	LastLoginAt   *string     `json:"lastLoginAt"`
}

type AdminRole struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// LoginReq is the login form payload forwarded to the backend.
type LoginReq struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginResp struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type MeResp struct {
	User User `json:"user"`
}

// CreateUserReq creates or (with zero-valued fields dropped) patches an
// end user.
type CreateUserReq struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password,omitempty" form:"password"`
	FirstName string `json:"firstName,omitempty" form:"firstName"`
	LastName  string `json:"lastName,omitempty" form:"lastName"`
	Phone     string `json:"phone,omitempty" form:"phone"`
	UpiID     string `json:"upiId,omitempty" form:"upiId"`
	Role      string `json:"role" form:"role" validate:"required,oneof=staff agents managers auditor"`
}
