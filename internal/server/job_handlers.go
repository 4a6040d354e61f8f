package server

import (
	"strconv"

	"jobhive/internal/models"
	"jobhive/internal/service"

	"github.com/gofiber/fiber/v2"
)

// jobInputFromForm parses the multipart listing form into a service input.
// Field-level type errors (non-numeric salary) are reported the same way the
// service reports its own validation failures.
func (s *Server) jobInputFromForm(c *fiber.Ctx) (service.JobInput, error) {
	in := service.JobInput{
		Title:              c.FormValue("title"),
		Description:        c.FormValue("description"),
		Tags:               c.FormValue("tags"),
		JobType:            c.FormValue("job_type"),
		Requirements:       c.FormValue("requirements"),
		Benefits:           c.FormValue("benefits"),
		Address:            c.FormValue("address"),
		City:               c.FormValue("city"),
		ContactEmail:       c.FormValue("contact_email"),
		ContactPhone:       c.FormValue("contact_phone"),
		CompanyName:        c.FormValue("company_name"),
		CompanyDescription: c.FormValue("company_description"),
		CompanyWebsite:     c.FormValue("company_website"),
	}

	if raw := c.FormValue("salary"); raw != "" {
		salary, err := strconv.Atoi(raw)
		if err != nil {
			return in, models.NewFieldValidationError(map[string][]string{
				"salary": {"Salary must be a number"},
			})
		}
		in.Salary = salary
	}
	if raw := c.FormValue("remote"); raw != "" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			return in, models.NewFieldValidationError(map[string][]string{
				"remote": {"Remote must be true or false"},
			})
		}
		in.Remote = remote
	}

	logo, err := s.formUpload(c, "company_logo")
	if err != nil {
		return in, err
	}
	in.Logo = logo

	return in, nil
}

// GetJobs handles GET /api/jobs
func (s *Server) GetJobs(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	page, err := s.jobService.ListJobs(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// SearchJobs handles GET /api/jobs/search?keywords=...&location=...
func (s *Server) SearchJobs(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	page, err := s.jobService.SearchJobs(c.Context(),
		c.Query("keywords"), c.Query("location"), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetJob handles GET /api/jobs/:id
func (s *Server) GetJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	job, err := s.jobService.GetJob(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(job)
}

// CreateJob handles POST /api/jobs
func (s *Server) CreateJob(c *fiber.Ctx) error {
	in, err := s.jobInputFromForm(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	job, err := s.jobService.CreateJob(c.Context(), s.currentUserID(c), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// UpdateJob handles PUT /api/jobs/:id
func (s *Server) UpdateJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	in, err := s.jobInputFromForm(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	job, err := s.jobService.UpdateJob(c.Context(), s.currentUserID(c), id, in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(job)
}

// DeleteJob handles DELETE /api/jobs/:id
func (s *Server) DeleteJob(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.jobService.DeleteJob(c.Context(), s.currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

// Dashboard handles GET /api/dashboard, returning the authenticated user's
// listings with their applicants.
func (s *Server) Dashboard(c *fiber.Ctx) error {
	jobs, err := s.jobService.ListByOwner(c.Context(), s.currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}
