package models

// Appearance stores site-wide presentation settings such as the cover
// image. Only the first row is ever read or updated.
type Appearance struct {
	BaseModel
	PortadaURL string `json:"portada_url" gorm:"size:500"`
}

// TableName returns the table name for Appearance
func (Appearance) TableName() string {
	return "appearance"
}
