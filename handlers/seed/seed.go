package seed

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/database"
	"github.com/sahilchouksey/testprep-api/utils/response"
	"gorm.io/gorm"
)

// SeedHandler exposes the sample-data fixture endpoint
type SeedHandler struct {
	seeder  *database.Seeder
	enabled bool
}

// NewSeedHandler creates a new seed handler. The endpoint is disabled
// in production because re-invocation duplicates fixture rows.
func NewSeedHandler(db *gorm.DB, enabled bool) *SeedHandler {
	return &SeedHandler{
		seeder:  database.NewSeeder(db),
		enabled: enabled,
	}
}

// SeedData handles POST /api/v1/seed-data
func (h *SeedHandler) SeedData(c *fiber.Ctx) error {
	if !h.enabled {
		return response.Forbidden(c, "Seeding is disabled in this environment")
	}

	if err := h.seeder.SeedSampleData(); err != nil {
		return response.InternalServerError(c, "Failed to seed sample data")
	}

	return response.SuccessWithMessage(c, "Sample data seeded successfully", nil)
}
