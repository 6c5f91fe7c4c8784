// model/roleModel.go
package model

type Role struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	UserCount   int     `json:"userCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// PermissionRow is one row of the capability matrix: what each role may do
// for a given capability.
type PermissionRow struct {
	Capability    string `json:"capability"`
	EndUser       string `json:"endUser"`
	BusinessOwner string `json:"businessOwner"`
	Auditor       string `json:"auditor"`
	PlatformAdmin string `json:"platformAdmin"`
}
