package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetBookmarks handles GET /api/bookmarks
func (s *Server) GetBookmarks(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	page, err := s.bookmarkService.ListBookmarks(c.Context(), s.currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// AddBookmark handles POST /api/bookmarks/:jobId
func (s *Server) AddBookmark(c *fiber.Ctx) error {
	jobID, err := s.parseID(c, "jobId")
	if err != nil {
		return nil
	}

	if err := s.bookmarkService.AddBookmark(c.Context(), s.currentUserID(c), jobID); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Job bookmarked"})
}

// RemoveBookmark handles DELETE /api/bookmarks/:jobId
func (s *Server) RemoveBookmark(c *fiber.Ctx) error {
	jobID, err := s.parseID(c, "jobId")
	if err != nil {
		return nil
	}

	if err := s.bookmarkService.RemoveBookmark(c.Context(), s.currentUserID(c), jobID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Bookmark removed"})
}
