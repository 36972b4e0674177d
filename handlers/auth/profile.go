package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/utils/middleware"
	"github.com/sahilchouksey/testprep-api/utils/response"
)

// GetProfile returns the authenticated user's public profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	return response.Success(c, toUserResponse(user))
}
