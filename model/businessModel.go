// model/businessModel.go
package model

type BusinessStatus string

const (
	BusinessActive   BusinessStatus = "active"
	BusinessInactive BusinessStatus = "inactive"
)

type Business struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description"`
	OwnerID            string  `json:"ownerId"`
	OwnerEmail         string  `json:"ownerEmail"`
	OwnerName          string  `json:"ownerName"`
	MasterWalletUpi    *string `json:"masterWalletUpi"`
	MasterWalletQrCode *string `json:"masterWalletQrCode"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

type CreateBusinessReq struct {
	Name            string `json:"name" form:"name"`
	Description     string `json:"description,omitempty" form:"description"`
	MasterWalletUpi string `json:"masterWalletUpi,omitempty" form:"masterWalletUpi"`
}

type UpdateBusinessReq struct {
	Name            string `json:"name,omitempty" form:"name"`
	Description     string `json:"description,omitempty" form:"description"`
	MasterWalletUpi string `json:"masterWalletUpi,omitempty" form:"masterWalletUpi"`
	Status          string `json:"status,omitempty" form:"status" validate:"omitempty,oneof=active inactive"`
}
