package models

import (
	"github.com/google/uuid"
)

// Membership links a profile to a team. A profile may belong to multiple
// teams and no uniqueness is enforced on the (team, profile) pair.
type Membership struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;index" validate:"required"`
	PerfilID uuid.UUID `json:"perfil_id" gorm:"type:uuid;index" validate:"required"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
