package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gunjansingh/smart-ats/internal/models"
	"gunjansingh/smart-ats/internal/repositories"
	"gunjansingh/smart-ats/internal/services"
)

type ResultHandler struct {
	evalRepo repositories.EvaluationRepository
}

func NewResultHandler(evalRepo repositories.EvaluationRepository) *ResultHandler {
	return &ResultHandler{
		evalRepo: evalRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	// Parse ID from params
	idParam := c.Params("id")
	evalID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	// Get evaluation
	evaluation, err := h.evalRepo.FindByID(evalID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evaluation not found",
		})
	}

	// Build response based on status
	response := models.ResultResponse{
		ID:     evaluation.ID.String(),
		Mode:   string(evaluation.Mode),
		Status: string(evaluation.Status),
	}

	// If completed, include results plus the gauge hints
	if evaluation.Status == models.StatusCompleted {
		response.Result = buildEvaluationData(evaluation)
	}

	// If failed, include error message
	if evaluation.Status == models.StatusFailed && evaluation.ErrorMessage != "" {
		response.ErrorMessage = &evaluation.ErrorMessage
	}

	return c.JSON(response)
}

// buildEvaluationData fills the result payload for whichever mode the
// evaluation ran in. Categorization happens here, at render time, so an
// out-of-range percentage turns into an "unclassified" tag instead of
// breaking the page.
func buildEvaluationData(evaluation *models.Evaluation) *models.EvaluationData {
	data := &models.EvaluationData{}

	var percent int
	if evaluation.Mode == models.ModeWithJobDescription {
		data.MatchPercent = evaluation.MatchPercent
		data.ProfileSummary = evaluation.ProfileSummary
		if evaluation.MissingKeywords != nil {
			data.MissingKeywords = *evaluation.MissingKeywords
		}
		if evaluation.MatchPercent != nil {
			percent = *evaluation.MatchPercent
		}
	} else {
		data.ATSScore = evaluation.ATSScore
		data.Suggestions = evaluation.Suggestions
		data.Conclusion = evaluation.Conclusion
		if evaluation.StrongPoints != nil {
			data.StrongPoints = *evaluation.StrongPoints
		}
		if evaluation.ATSScore != nil {
			percent = *evaluation.ATSScore
		}
	}

	tag := services.Categorize(percent)
	data.StatusTag = string(tag)
	data.StatusMessage = services.StatusMessage(tag)
	data.GaugeColor = services.GaugeColor(percent)

	return data
}
