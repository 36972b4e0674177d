package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sahilchouksey/testprep-api/model"
	"github.com/sahilchouksey/testprep-api/utils/cache"
	"gorm.io/gorm"
)

const (
	// DefaultQuestionLimit bounds unfiltered question listings
	DefaultQuestionLimit = 10
	// MaxQuestionLimit is the hard ceiling for the limit query param
	MaxQuestionLimit = 50

	questionCacheTTL = 5 * time.Minute
)

// ErrQuestionNotFound is returned when a question id does not exist
var ErrQuestionNotFound = gorm.ErrRecordNotFound

// QuestionService handles question listing and answer grading
type QuestionService struct {
	db         *gorm.DB
	redisCache *cache.RedisCache // optional; nil disables caching
}

// NewQuestionService creates a new question service
func NewQuestionService(db *gorm.DB, redisCache *cache.RedisCache) *QuestionService {
	return &QuestionService{
		db:         db,
		redisCache: redisCache,
	}
}

// ListQuestions returns questions for a test type and section, newest
// first. Difficulty filters when non-empty; limit is clamped to
// [1, MaxQuestionLimit]. Listings are cached briefly in Redis.
func (s *QuestionService) ListQuestions(ctx context.Context, testType, section, difficulty string, limit int) ([]model.Question, error) {
	if limit <= 0 {
		limit = DefaultQuestionLimit
	}
	if limit > MaxQuestionLimit {
		limit = MaxQuestionLimit
	}

	cacheKey := fmt.Sprintf("questions:%s:%s:%s:%d", testType, section, difficulty, limit)
	if s.redisCache != nil {
		var cached []model.Question
		if err := s.redisCache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	query := s.db.WithContext(ctx).
		Where("test_type = ? AND section = ?", testType, section)

	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []model.Question
	err := query.Order("created_at DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}

	if s.redisCache != nil {
		_ = s.redisCache.SetJSON(ctx, cacheKey, questions, questionCacheTTL)
	}

	return questions, nil
}

// AnswerCheck is the outcome of grading a submitted option index
type AnswerCheck struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// CheckAnswer grades the submitted option index against the stored
// question. The correct index and explanation are revealed only here,
// after an attempt.
func (s *QuestionService) CheckAnswer(ctx context.Context, questionID uint, userAnswer int) (*AnswerCheck, error) {
	var question model.Question
	if err := s.db.WithContext(ctx).First(&question, questionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to fetch question: %w", err)
	}

	return GradeAnswer(&question, userAnswer), nil
}

// GradeAnswer compares a submitted option index to the stored correct index
func GradeAnswer(question *model.Question, userAnswer int) *AnswerCheck {
	return &AnswerCheck{
		Correct:       userAnswer == question.CorrectAnswer,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}
}

// CreateQuestion persists a question after checking the answer index
func (s *QuestionService) CreateQuestion(ctx context.Context, question *model.Question) error {
	if !question.HasValidAnswer() {
		return fmt.Errorf("correct answer index %d is out of range for %d options", question.CorrectAnswer, len(question.Options))
	}

	if err := s.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	// Stale listings would hide the new question for the TTL window
	if s.redisCache != nil {
		_ = s.redisCache.DeletePattern(ctx, "questions:*")
	}

	return nil
}
