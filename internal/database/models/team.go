package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a team led by a coordinator within a scout group.
// CoordinadorID is expected to reference a user with role coordinador;
// the store does not enforce that.
type Team struct {
	BaseModel
	Nombre                    string     `json:"nombre" gorm:"not null;size:100" validate:"required,max=100"`
	Descripcion               string     `json:"descripcion" gorm:"type:text"`
	CoordinadorID             uuid.UUID  `json:"coordinador_id" gorm:"type:uuid;index"`
	ScoutGroupID              uuid.UUID  `json:"grupo_scout_id" gorm:"type:uuid;index"`
	AvatarURL                 string     `json:"avatar_url" gorm:"size:500"`
	History                   string     `json:"history" gorm:"type:text"`
	CreationDate              *time.Time `json:"creation_date" gorm:"type:date"`
	CommunityName             string     `json:"community_name" gorm:"size:100"`
	UnlockedAchievementsCount int        `json:"unlocked_achievements_count" gorm:"not null;default:0"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
