package services

import (
	"context"
	"fmt"
	"math"

	"github.com/sahilchouksey/testprep-api/model"
	"gorm.io/gorm"
)

// StatsService computes per-user dashboard statistics
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// DashboardStats represents one user's study statistics
type DashboardStats struct {
	TestsCompleted int64 `json:"testsCompleted"`
	AverageScore   int   `json:"averageScore"`
	TotalStudyTime int   `json:"totalStudyTime"` // minutes
}

// GetDashboardStats aggregates the user's results in a single query.
// Averaging is pushed to the database rather than loading result rows.
func (s *StatsService) GetDashboardStats(ctx context.Context, userID uint) (*DashboardStats, error) {
	var row struct {
		Count     int64
		AvgScore  float64
		TotalTime int64
	}

	err := s.db.WithContext(ctx).
		Model(&model.TestResult{}).
		Select("COUNT(*) as count, COALESCE(AVG(score), 0) as avg_score, COALESCE(SUM(time_spent), 0) as total_time").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate test results: %w", err)
	}

	return &DashboardStats{
		TestsCompleted: row.Count,
		AverageScore:   RoundScore(row.AvgScore),
		TotalStudyTime: int(row.TotalTime),
	}, nil
}

// RecentResults returns the user's most recent results, newest first
func (s *StatsService) RecentResults(ctx context.Context, userID uint, limit int) ([]model.TestResult, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []model.TestResult
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch test results: %w", err)
	}

	return results, nil
}

// RoundScore rounds a mean score to the nearest whole point
func RoundScore(avg float64) int {
	return int(math.Round(avg))
}
