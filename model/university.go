package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// University represents an institution in the public directory
type University struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null;index" json:"name"`
	Country       string         `gorm:"type:varchar(100);not null;index" json:"country"`
	Ranking       *int           `json:"ranking,omitempty"`
	TuitionFee    string         `gorm:"type:varchar(100)" json:"tuition_fee"` // display string, e.g. "$25,000/year"
	Scholarships  datatypes.JSON `gorm:"type:jsonb" json:"scholarships,omitempty"`
	RequiresGRE   bool           `gorm:"default:false" json:"requires_gre"`
	RequiresGMAT  bool           `gorm:"default:false" json:"requires_gmat"`
	RequiresIELTS bool           `gorm:"default:false" json:"requires_ielts"`
	RequiresTOEFL bool           `gorm:"default:false" json:"requires_toefl"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Website       string         `gorm:"type:varchar(255)" json:"website,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
