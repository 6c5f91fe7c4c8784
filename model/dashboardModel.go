// model/dashboardModel.go
package model

type DashboardStats struct {
	PendingReviews int `json:"pendingReviews"`
	ApprovedToday  int `json:"approvedToday"`
	Exceptions     int `json:"exceptions"`
}

// QueueItem is a payout row as shaped by the dashboard queue endpoint
// (slightly different field names than the approvals listing).
type QueueItem struct {
	ID        string  `json:"id"`
	RequestID string  `json:"requestId"`
	Amount    float64 `json:"amount"`
	UTR       string  `json:"utr"`
	Remarks   string  `json:"remarks"`
	Status    string  `json:"status"`
	UserEmail *string `json:"userEmail"`
	UserName  string  `json:"userName"`
	UserRole  string  `json:"userRole"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}
