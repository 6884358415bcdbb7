package model

// Role represents user roles in the system
type Role struct {
	BaseModel
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // ADMIN, STAFF, VIEWER
	Name string `gorm:"type:varchar(100)" json:"name"`
}

// Role codes as constants
const (
	RoleAdmin  = "ADMIN"
	RoleStaff  = "STAFF"
	RoleViewer = "VIEWER"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{Code: RoleAdmin, Name: "Administrator"},
	{Code: RoleStaff, Name: "Staff"},
	{Code: RoleViewer, Name: "Viewer"},
}

// ValidRoleCode reports whether code is one of the known role codes.
func ValidRoleCode(code string) bool {
	switch code {
	case RoleAdmin, RoleStaff, RoleViewer:
		return true
	}
	return false
}
