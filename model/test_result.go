package model

import (
	"time"
)

// TestResult records one completed practice test for a user.
// Results are immutable once stored; there are no update/delete routes.
type TestResult struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index:idx_test_results_user" json:"user_id"`
	TestType       string    `gorm:"type:varchar(50);not null" json:"test_type"` // e.g., "gre", "ielts"
	Section        string    `gorm:"type:varchar(50);not null" json:"section"`
	Score          int       `gorm:"not null" json:"score"` // 0-100
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CorrectAnswers int       `gorm:"not null" json:"correct_answers"`
	TimeSpent      int       `gorm:"default:0" json:"time_spent"` // minutes
	CreatedAt      time.Time `gorm:"index:idx_test_results_created" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for TestResult
func (TestResult) TableName() string {
	return "test_results"
}
