package server

import (
	"jobhive/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ApplyToJob handles POST /api/jobs/:id/apply
func (s *Server) ApplyToJob(c *fiber.Ctx) error {
	jobID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	resume, err := s.formUpload(c, "resume")
	if err != nil {
		return respondServiceError(c, err)
	}

	applicant, err := s.applicantService.Apply(c.Context(), service.ApplyInput{
		JobID:        jobID,
		UserID:       s.currentUserID(c),
		FullName:     c.FormValue("full_name"),
		ContactPhone: c.FormValue("contact_phone"),
		ContactEmail: c.FormValue("contact_email"),
		Message:      c.FormValue("message"),
		Location:     c.FormValue("location"),
		Resume:       resume,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(applicant)
}

// DeleteApplicant handles DELETE /api/applicants/:id
func (s *Server) DeleteApplicant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.applicantService.DeleteApplicant(c.Context(), s.currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Applicant deleted successfully"})
}
