package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Champion is reference data imported from Data Dragon. The JSON field
// names follow the original wire contract consumed by the frontend.
type Champion struct {
	ID        string         `json:"id" gorm:"primaryKey"`                   // Data Dragon key, e.g. "Aatrox"
	Name      string         `json:"nom" gorm:"not null"`                    // French display name
	NameEN    string         `json:"nom_en" gorm:"not null"`                 // English display name
	ImageURL  string         `json:"image" gorm:"not null"`                  // Full URL to champion image
	Role      string         `json:"role" gorm:"not null;default:'Inconnu'"` // Primary tag
	Tags      datatypes.JSON `json:"tags" gorm:"type:jsonb;default:'[]'"`    // ["Fighter", "Tank"]
	Active    bool           `json:"actif" gorm:"not null;default:true"`
	CreatedAt time.Time      `json:"dateAjout"`
}

func (Champion) TableName() string {
	return "champions"
}
