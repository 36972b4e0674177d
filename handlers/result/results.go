package result

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/model"
	"github.com/sahilchouksey/testprep-api/services"
	"github.com/sahilchouksey/testprep-api/utils/middleware"
	"github.com/sahilchouksey/testprep-api/utils/response"
	"github.com/sahilchouksey/testprep-api/utils/validation"
	"gorm.io/gorm"
)

// RecentResultsLimit caps the result-history listing
const RecentResultsLimit = 10

// ResultHandler handles test result requests
type ResultHandler struct {
	db           *gorm.DB
	statsService *services.StatsService
	validator    *validation.Validator
}

// NewResultHandler creates a new result handler
func NewResultHandler(db *gorm.DB, statsService *services.StatsService) *ResultHandler {
	return &ResultHandler{
		db:           db,
		statsService: statsService,
		validator:    validation.NewValidator(),
	}
}

// SubmitResultRequest represents a test result submission
type SubmitResultRequest struct {
	TestType       string `json:"test_type" validate:"required,min=2,max=50"`
	Section        string `json:"section" validate:"required,min=2,max=50"`
	Score          int    `json:"score" validate:"gte=0,lte=100"`
	TotalQuestions int    `json:"total_questions" validate:"required,gte=1"`
	CorrectAnswers int    `json:"correct_answers" validate:"gte=0"`
	TimeSpent      int    `json:"time_spent" validate:"gte=0"` // minutes, defaults to 0
}

// SubmitResult handles POST /api/v1/test-results.
// The result is tied to the token's account, never a client-supplied id.
func (h *ResultHandler) SubmitResult(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req SubmitResultRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.CorrectAnswers > req.TotalQuestions {
		return response.BadRequest(c, "Correct answers cannot exceed total questions")
	}

	result := model.TestResult{
		UserID:         userID,
		TestType:       validation.SanitizeString(req.TestType),
		Section:        validation.SanitizeString(req.Section),
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		TimeSpent:      req.TimeSpent,
	}

	if err := h.db.Create(&result).Error; err != nil {
		return response.InternalServerError(c, "Failed to save test result")
	}

	return response.Created(c, result)
}

// ListResults handles GET /api/v1/test-results.
// Returns the ten most recent results of the token's account, newest first.
func (h *ResultHandler) ListResults(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	results, err := h.statsService.RecentResults(c.Context(), userID, RecentResultsLimit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch test results")
	}

	return response.Success(c, results)
}

// DashboardStats handles GET /api/v1/dashboard-stats
func (h *ResultHandler) DashboardStats(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	stats, err := h.statsService.GetDashboardStats(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to compute dashboard stats")
	}

	return response.Success(c, stats)
}
