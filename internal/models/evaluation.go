package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type EvaluationStatus string

const (
	StatusQueued     EvaluationStatus = "queued"
	StatusProcessing EvaluationStatus = "processing"
	StatusCompleted  EvaluationStatus = "completed"
	StatusFailed     EvaluationStatus = "failed"
)

// EvaluationMode selects which prompt template and which result shape an
// evaluation uses. It is fixed when the evaluation is created and depends
// only on whether a job description was supplied, never on the model reply.
type EvaluationMode string

const (
	ModeWithJobDescription    EvaluationMode = "with_job_description"
	ModeWithoutJobDescription EvaluationMode = "without_job_description"
)

// ModeFor derives the evaluation mode from the job description alone.
// A blank or whitespace-only job description means the JD-less mode.
func ModeFor(jobDescription string) EvaluationMode {
	if strings.TrimSpace(jobDescription) == "" {
		return ModeWithoutJobDescription
	}
	return ModeWithJobDescription
}

type Evaluation struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeID       uuid.UUID        `gorm:"type:uuid;not null" json:"resume_id"`
	JobDescription string           `gorm:"type:text" json:"job_description"`
	Mode           EvaluationMode   `gorm:"type:text;not null" json:"mode"`
	Status         EvaluationStatus `gorm:"not null;default:'queued'" json:"status"`

	// JD-match mode results
	MatchPercent    *int      `gorm:"type:int" json:"match_percent,omitempty"`
	MissingKeywords *[]string `gorm:"type:text;serializer:json" json:"missing_keywords,omitempty"`
	ProfileSummary  *string   `gorm:"type:text" json:"profile_summary,omitempty"`

	// No-JD mode results
	ATSScore     *int      `gorm:"type:int" json:"ats_score,omitempty"`
	StrongPoints *[]string `gorm:"type:text;serializer:json" json:"strong_points,omitempty"`
	Suggestions  *string   `gorm:"type:text" json:"suggestions,omitempty"`
	Conclusion   *string   `gorm:"type:text" json:"conclusion,omitempty"`

	ErrorMessage string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
