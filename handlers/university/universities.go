package university

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/model"
	"github.com/sahilchouksey/testprep-api/utils/response"
	"github.com/sahilchouksey/testprep-api/utils/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UniversityHandler handles university directory requests
type UniversityHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(db *gorm.DB) *UniversityHandler {
	return &UniversityHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateUniversityRequest represents the request body for creating a university
type CreateUniversityRequest struct {
	Name          string   `json:"name" validate:"required,min=3,max=255"`
	Country       string   `json:"country" validate:"required,min=2,max=100"`
	Ranking       *int     `json:"ranking" validate:"omitempty,gte=1"`
	TuitionFee    string   `json:"tuition_fee" validate:"omitempty,max=100"`
	Scholarships  []string `json:"scholarships" validate:"omitempty,dive,max=255"`
	RequiresGRE   bool     `json:"requires_gre"`
	RequiresGMAT  bool     `json:"requires_gmat"`
	RequiresIELTS bool     `json:"requires_ielts"`
	RequiresTOEFL bool     `json:"requires_toefl"`
	Description   string   `json:"description" validate:"omitempty,max=2000"`
	Website       string   `json:"website" validate:"omitempty,url,max=255"`
}

// ListUniversities handles GET /api/v1/universities.
// Filters: country (exact), search (case-insensitive substring on name).
// Ordered by ranking ascending with unranked entries last.
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	country := c.Query("country", "")
	search := c.Query("search", "")

	query := h.db.Model(&model.University{})

	if country != "" {
		query = query.Where("country = ?", country)
	}

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var universities []model.University
	if err := query.Order("ranking ASC NULLS LAST").
		Find(&universities).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	return response.Success(c, universities)
}

// GetUniversity handles GET /api/v1/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	id := c.Params("id")

	var university model.University
	if err := h.db.First(&university, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	return response.Success(c, university)
}

// CreateUniversity handles POST /api/v1/universities.
// Routed behind RequireAdmin; only admins reach this handler.
func (h *UniversityHandler) CreateUniversity(c *fiber.Ctx) error {
	var req CreateUniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	scholarships, err := json.Marshal(req.Scholarships)
	if err != nil {
		return response.BadRequest(c, "Invalid scholarships list")
	}

	university := model.University{
		Name:          validation.SanitizeString(req.Name),
		Country:       validation.SanitizeString(req.Country),
		Ranking:       req.Ranking,
		TuitionFee:    validation.SanitizeString(req.TuitionFee),
		Scholarships:  datatypes.JSON(scholarships),
		RequiresGRE:   req.RequiresGRE,
		RequiresGMAT:  req.RequiresGMAT,
		RequiresIELTS: req.RequiresIELTS,
		RequiresTOEFL: req.RequiresTOEFL,
		Description:   validation.SanitizeString(req.Description),
		Website:       validation.SanitizeString(req.Website),
	}

	if err := h.db.Create(&university).Error; err != nil {
		return response.InternalServerError(c, "Failed to create university")
	}

	return response.Created(c, university)
}
