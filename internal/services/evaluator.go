package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gunjansingh/smart-ats/internal/models"
	"gunjansingh/smart-ats/internal/repositories"
)

type EvaluatorService interface {
	EvaluateResume(ctx context.Context, evalID uuid.UUID) error
}

type evaluatorService struct {
	evalRepo     repositories.EvaluationRepository
	resumeRepo   repositories.ResumeRepository
	generator    CachedGenerator
	pdfParser    PDFParserService
	modelTimeout time.Duration
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	resumeRepo repositories.ResumeRepository,
	generator CachedGenerator,
	pdfParser PDFParserService,
	modelTimeout time.Duration,
) EvaluatorService {
	return &evaluatorService{
		evalRepo:     evalRepo,
		resumeRepo:   resumeRepo,
		generator:    generator,
		pdfParser:    pdfParser,
		modelTimeout: modelTimeout,
	}
}

// EvaluateResume runs one evaluation end to end: extract the resume text,
// ask the model through the reply cache, normalize and parse the reply for
// the mode fixed at submission time, and persist the outcome. Every
// failure is recorded on the evaluation record; nothing is retried.
func (e *evaluatorService) EvaluateResume(ctx context.Context, evalID uuid.UUID) error {
	if err := e.evalRepo.UpdateStatus(evalID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting evaluation for job ID: %s\n", evalID)

	evaluation, err := e.evalRepo.FindByID(evalID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, err.Error())
		return fmt.Errorf("failed to get evaluation: %w", err)
	}

	resume, err := e.resumeRepo.FindByID(evaluation.ResumeID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Resume not found: %v", err))
		return fmt.Errorf("failed to get resume: %w", err)
	}

	// Step 1: Extract resume text
	log.Println("📄 Extracting resume text...")
	content, err := e.pdfParser.ExtractText(resume.FilePath)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Failed to read resume: %v", err))
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	resumeText := CleanText(content.Text)

	// Step 2: Ask the model (cached by the exact JD/resume pair). The
	// external call has no timeout of its own, so one is imposed here.
	log.Println("🤖 Evaluating resume with LLM...")
	callCtx, cancel := context.WithTimeout(ctx, e.modelTimeout)
	defer cancel()

	rawReply, err := e.generator.Generate(callCtx, evaluation.JobDescription, resumeText)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("Failed to evaluate resume: %v", err))
		return fmt.Errorf("failed to generate evaluation: %w", err)
	}

	// Step 3: Normalize and parse for the mode decided at submission
	result, err := ParseResult(Normalize(rawReply), evaluation.Mode)
	if err != nil {
		// The ParseError message carries the offending reply text so the
		// result page can show it for diagnosis.
		e.evalRepo.UpdateError(evalID, err.Error())
		return fmt.Errorf("failed to parse evaluation reply: %w", err)
	}

	// Step 4: Save results
	log.Println("💾 Saving evaluation results...")
	updateData := &repositories.EvaluationUpdateData{}
	if result.Match != nil {
		updateData.MatchPercent = &result.Match.MatchPercent
		updateData.MissingKeywords = &result.Match.MissingKeywords
		updateData.ProfileSummary = &result.Match.ProfileSummary
	}
	if result.Score != nil {
		updateData.ATSScore = &result.Score.ATSScore
		updateData.StrongPoints = &result.Score.StrongPoints
		updateData.Suggestions = &result.Score.Suggestions
		updateData.Conclusion = &result.Score.Conclusion
	}

	if err := e.evalRepo.UpdateResult(evalID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Evaluation completed successfully for job ID: %s\n", evalID)
	return nil
}
