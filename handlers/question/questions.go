package question

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/model"
	"github.com/sahilchouksey/testprep-api/services"
	"github.com/sahilchouksey/testprep-api/utils/response"
	"github.com/sahilchouksey/testprep-api/utils/validation"
	"gorm.io/gorm"
)

// QuestionHandler handles practice question requests
type QuestionHandler struct {
	db              *gorm.DB
	questionService *services.QuestionService
	validator       *validation.Validator
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(db *gorm.DB, questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		db:              db,
		questionService: questionService,
		validator:       validation.NewValidator(),
	}
}

// QuestionResponse is the public projection of a question. The correct
// answer index and explanation stay server-side until an attempt.
type QuestionResponse struct {
	ID           uint      `json:"id"`
	TestType     string    `json:"test_type"`
	Section      string    `json:"section"`
	QuestionText string    `json:"question_text"`
	Options      []string  `json:"options"`
	Difficulty   string    `json:"difficulty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toQuestionResponses(questions []model.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionResponse{
			ID:           q.ID,
			TestType:     q.TestType,
			Section:      q.Section,
			QuestionText: q.QuestionText,
			Options:      q.Options,
			Difficulty:   q.Difficulty,
			CreatedAt:    q.CreatedAt,
		})
	}
	return out
}

// ListQuestions handles GET /api/v1/questions/:testType/:section
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	testType := c.Params("testType")
	section := c.Params("section")

	difficulty := c.Query("difficulty", "")
	if difficulty != "" && !model.IsValidDifficulty(difficulty) {
		return response.BadRequest(c, "Difficulty must be one of: easy, medium, hard")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	questions, err := h.questionService.ListQuestions(c.Context(), testType, section, difficulty, limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch questions")
	}

	return response.Success(c, toQuestionResponses(questions))
}

// CheckAnswerRequest represents an answer submission
type CheckAnswerRequest struct {
	QuestionID uint `json:"questionId" validate:"required"`
	UserAnswer *int `json:"userAnswer" validate:"required,gte=0"`
}

// CheckAnswer handles POST /api/v1/check-answer
func (h *QuestionHandler) CheckAnswer(c *fiber.Ctx) error {
	var req CheckAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	check, err := h.questionService.CheckAnswer(c.Context(), req.QuestionID, *req.UserAnswer)
	if err != nil {
		if err == services.ErrQuestionNotFound {
			return response.NotFound(c, "Question not found")
		}
		return response.InternalServerError(c, "Failed to check answer")
	}

	return response.Success(c, check)
}

// CreateQuestionRequest represents the request body for adding a question
type CreateQuestionRequest struct {
	TestType      string   `json:"test_type" validate:"required,min=2,max=50"`
	Section       string   `json:"section" validate:"required,min=2,max=50"`
	QuestionText  string   `json:"question_text" validate:"required,min=5"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer int      `json:"correct_answer" validate:"gte=0"`
	Explanation   string   `json:"explanation" validate:"omitempty,max=2000"`
	Difficulty    string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// CreateQuestion handles POST /api/v1/questions.
// Routed behind RequireAdmin; only admins reach this handler.
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.CorrectAnswer >= len(req.Options) {
		return response.BadRequest(c, "Correct answer index is out of range")
	}

	if req.Difficulty == "" {
		req.Difficulty = model.DifficultyMedium
	}

	question := model.Question{
		TestType:      validation.SanitizeString(req.TestType),
		Section:       validation.SanitizeString(req.Section),
		QuestionText:  validation.SanitizeString(req.QuestionText),
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   validation.SanitizeString(req.Explanation),
		Difficulty:    req.Difficulty,
	}

	if err := h.questionService.CreateQuestion(c.Context(), &question); err != nil {
		return response.InternalServerError(c, "Failed to create question")
	}

	return response.Created(c, toQuestionResponses([]model.Question{question})[0])
}
