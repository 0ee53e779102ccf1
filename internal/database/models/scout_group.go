package models

// ScoutGroup represents a scout group with its district and leader contact data
type ScoutGroup struct {
	BaseModel
	Name             string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Region           string `json:"region" gorm:"size:100"`
	Localidad        string `json:"localidad" gorm:"size:100"`
	District         string `json:"district" gorm:"size:100"`
	Numeral          string `json:"numeral" gorm:"size:20"`
	Address          string `json:"address" gorm:"size:200"`
	OfficeHours      string `json:"office_hours" gorm:"size:100"`
	GroupLeaderName  string `json:"group_leader_name" gorm:"size:100"`
	GroupLeaderEmail string `json:"group_leader_email" gorm:"size:255" validate:"omitempty,email"`
	GroupLeaderPhone string `json:"group_leader_phone" gorm:"size:30"`
}

// TableName returns the table name for ScoutGroup
func (ScoutGroup) TableName() string {
	return "scoutgroups"
}
