package server

import (
	"jobhive/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByID(c.Context(), s.currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/profile. Accepts multipart form data so
// the avatar can be uploaded together with the name change.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	avatar, err := s.formUpload(c, "avatar")
	if err != nil {
		return respondServiceError(c, err)
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID: s.currentUserID(c),
		Name:   c.FormValue("name"),
		Avatar: avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
