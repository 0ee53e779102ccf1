package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the member-facing data attached to exactly one User.
// JSON field names keep the wire names the frontend already speaks.
type Profile struct {
	BaseModel
	UserID        uuid.UUID  `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Nombre        string     `json:"nombre" gorm:"not null;size:100" validate:"required,max=100"`
	Apellido      string     `json:"apellido" gorm:"not null;size:100" validate:"required,max=100"`
	Telefono      string     `json:"telefono" gorm:"size:30"`
	FechaNac      *time.Time `json:"fecha_nac" gorm:"type:date"`
	FotoURL       string     `json:"foto_url" gorm:"size:500"`
	GrupoScout    string     `json:"grupo_scout" gorm:"size:100"`
	Comunidad     string     `json:"comunidad" gorm:"size:100"`
	Direccion     string     `json:"direccion" gorm:"size:200"`
	RedesSociales string     `json:"redes_sociales" gorm:"size:200"`
	Departamento  string     `json:"departamento" gorm:"size:100"`
	Distrito      string     `json:"distrito" gorm:"size:100"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
