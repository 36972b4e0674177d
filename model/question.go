package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Question difficulty levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question represents a practice-test question.
// CorrectAnswer and Explanation are never serialized; answer-checking
// callers get them only through the check-answer response projection.
type Question struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	TestType      string         `gorm:"type:varchar(50);not null;index:idx_questions_type_section" json:"test_type"`
	Section       string         `gorm:"type:varchar(50);not null;index:idx_questions_type_section" json:"section"`
	QuestionText  string         `gorm:"type:text;not null" json:"question_text"`
	Options       pq.StringArray `gorm:"type:text[];not null" json:"options"`
	CorrectAnswer int            `gorm:"not null" json:"-"` // index into Options
	Explanation   string         `gorm:"type:text" json:"-"`
	Difficulty    string         `gorm:"type:varchar(20);default:'medium'" json:"difficulty"` // easy, medium, hard
	CreatedAt     time.Time      `gorm:"index:idx_questions_created" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasValidAnswer reports whether CorrectAnswer addresses Options
func (q *Question) HasValidAnswer() bool {
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}

// IsValidDifficulty reports whether d is a known difficulty level
func IsValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
