package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	PageCount    int    `json:"page_count"`
}

type EvaluateRequest struct {
	ResumeID       string `json:"resume_id" validate:"required,uuid"`
	JobDescription string `json:"job_description"`
}

type EvaluateResponse struct {
	ID     string `json:"id"`
	Mode   string `json:"mode"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string          `json:"id"`
	Mode         string          `json:"mode"`
	Status       string          `json:"status"`
	Result       *EvaluationData `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

// EvaluationData carries the fields the result page renders. Only the
// fields for the evaluation's mode are populated; the gauge section is
// shared by both modes.
type EvaluationData struct {
	// JD-match mode
	MatchPercent    *int     `json:"match_percent,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
	ProfileSummary  *string  `json:"profile_summary,omitempty"`

	// No-JD mode
	ATSScore     *int     `json:"ats_score,omitempty"`
	StrongPoints []string `json:"strong_points,omitempty"`
	Suggestions  *string  `json:"suggestions,omitempty"`
	Conclusion   *string  `json:"conclusion,omitempty"`

	// Gauge rendering hints
	StatusTag     string `json:"status_tag"`
	StatusMessage string `json:"status_message"`
	GaugeColor    string `json:"gauge_color"`
}
