package models

// Role represents the application-wide role of a user account.
// Role drives every authorization decision in the API.
type Role string

const (
	RoleCaminante     Role = "caminante"
	RoleCoordinador   Role = "coordinador"
	RoleAdministrador Role = "administrador"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleCaminante, RoleCoordinador, RoleAdministrador:
		return true
	}
	return false
}

// User represents an account that can authenticate against the API
type User struct {
	BaseModel
	Email          string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	HashedPassword string `json:"-" gorm:"not null;size:255"`
	Role           Role   `json:"role" gorm:"type:varchar(20);not null;default:'caminante'" validate:"required"`

	// Relationships
	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
