package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gunjansingh/smart-ats/internal/models"
	"gunjansingh/smart-ats/internal/repositories"
	"gunjansingh/smart-ats/internal/services"
)

type EvaluationHandler struct {
	evalRepo   repositories.EvaluationRepository
	resumeRepo repositories.ResumeRepository
	worker     services.Worker
}

func NewEvaluationHandler(
	evalRepo repositories.EvaluationRepository,
	resumeRepo repositories.ResumeRepository,
	worker services.Worker,
) *EvaluationHandler {
	return &EvaluationHandler{
		evalRepo:   evalRepo,
		resumeRepo: resumeRepo,
		worker:     worker,
	}
}

// HandleEvaluate handles POST /evaluate. The job description is optional;
// the evaluation mode is fixed here, from that field alone, before the
// model is ever involved.
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_id is required",
		})
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_id format",
		})
	}

	// Verify the resume exists
	if _, err := h.resumeRepo.FindByID(resumeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	// Create evaluation record
	evaluation := &models.Evaluation{
		ID:             uuid.New(),
		ResumeID:       resumeID,
		JobDescription: req.JobDescription,
		Mode:           models.ModeFor(req.JobDescription),
		Status:         models.StatusQueued,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.evalRepo.Create(evaluation); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create evaluation job",
		})
	}

	// Enqueue job to worker
	h.worker.EnqueueJob(evaluation.ID)

	// Return job ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.EvaluateResponse{
		ID:     evaluation.ID.String(),
		Mode:   string(evaluation.Mode),
		Status: string(models.StatusQueued),
	})
}
