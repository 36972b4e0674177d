package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/utils/middleware"
	"github.com/sahilchouksey/testprep-api/utils/response"
)

// Logout revokes the presented token. The blacklist entry lives until
// the token would have expired; the cron job purges it afterwards.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	jti, ok := middleware.GetTokenJTI(c)
	if !ok || jti == "" {
		return response.Unauthorized(c, "Invalid token")
	}

	if err := h.blacklistService.RevokeToken(c.Context(), jti, claims.UserID, claims.ExpiresAt.Time, "logout"); err != nil {
		return response.InternalServerError(c, "Failed to revoke token")
	}

	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}
