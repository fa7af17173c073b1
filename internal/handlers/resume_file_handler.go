package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gunjansingh/smart-ats/internal/repositories"
	"gunjansingh/smart-ats/internal/services"
)

type ResumeFileHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
}

func NewResumeFileHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
) *ResumeFileHandler {
	return &ResumeFileHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
	}
}

// HandleGetFile handles GET /resume/:id/file. It serves the stored PDF
// inline so the client can preview or download the uploaded resume. A
// missing file only affects this endpoint, never the evaluation itself.
func (h *ResumeFileHandler) HandleGetFile(c *fiber.Ctx) error {
	idParam := c.Params("id")
	resumeID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	data, err := h.storageService.ReadFile(resume.FilePath)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume file is no longer available",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%q", resume.OriginalFileName))

	return c.Send(data)
}
