package model

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken stores JTIs of tokens invalidated before their expiry
type RevokedToken struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	JTI       string         `gorm:"uniqueIndex;not null;type:varchar(64)" json:"jti"`
	UserID    uint           `gorm:"index" json:"user_id"`
	Reason    string         `gorm:"type:varchar(100)" json:"reason"` // logout, security
	ExpiresAt time.Time      `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for RevokedToken
func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
