package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"gunjansingh/smart-ats/internal/models"
)

// MatchResult is the JD-match verdict: how well the resume fits the pasted
// job description.
type MatchResult struct {
	MatchPercent    int      `json:"match_percent"`
	MissingKeywords []string `json:"missing_keywords"`
	ProfileSummary  string   `json:"profile_summary"`
}

// ScoreResult is the standalone verdict used when no job description was
// supplied.
type ScoreResult struct {
	ATSScore     int      `json:"ats_score"`
	StrongPoints []string `json:"strong_points"`
	Suggestions  string   `json:"suggestions"`
	Conclusion   string   `json:"conclusion"`
}

// EvaluationResult is a tagged union over the two modes. Exactly one of
// Match and Score is set, and the tag always equals the mode the request
// was created with.
type EvaluationResult struct {
	Mode  models.EvaluationMode
	Match *MatchResult
	Score *ScoreResult
}

// Percent returns the gauge value for either branch.
func (r *EvaluationResult) Percent() int {
	if r.Match != nil {
		return r.Match.MatchPercent
	}
	if r.Score != nil {
		return r.Score.ATSScore
	}
	return 0
}

const (
	defaultProfileSummary = "No summary provided."
	defaultSuggestions    = "No suggestions provided."
	defaultConclusion     = "No conclusion provided."
)

// ParseResult parses a normalized model reply and routes its fields
// according to mode. Routing is strictly by mode: a reply carrying the
// other mode's keys contributes nothing, it never flips the branch.
// Malformed JSON is a ParseError carrying the offending text; fields the
// reply omits fall back to per-field defaults instead of failing.
func ParseResult(normalized string, mode models.EvaluationMode) (*EvaluationResult, error) {
	var reply map[string]any
	if err := json.Unmarshal([]byte(normalized), &reply); err != nil {
		return nil, &ParseError{Raw: normalized, Cause: err}
	}

	result := &EvaluationResult{Mode: mode}

	switch mode {
	case models.ModeWithJobDescription:
		result.Match = &MatchResult{
			MatchPercent:    percentField(reply, "JD Match"),
			MissingKeywords: stringListField(reply, "MissingKeywords"),
			ProfileSummary:  stringField(reply, "Profile Summary", defaultProfileSummary),
		}
	default:
		result.Score = &ScoreResult{
			ATSScore:     percentField(reply, "ATS Score"),
			StrongPoints: stringListField(reply, "StrongPoints"),
			Suggestions:  stringField(reply, "Suggestions", defaultSuggestions),
			Conclusion:   stringField(reply, "Conclusion", defaultConclusion),
		}
	}

	return result, nil
}

// percentField reads a percentage that the model may emit as "85%", "85"
// or a bare number. Absent or unreadable values become 0. The value is not
// clamped here; the presenter's categorizer decides what to do with
// out-of-range numbers.
func percentField(reply map[string]any, key string) int {
	value, ok := reply[key]
	if !ok {
		return 0
	}

	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	case float64:
		return int(v)
	default:
		return 0
	}
}

func stringListField(reply map[string]any, key string) []string {
	items := []string{}

	value, ok := reply[key]
	if !ok {
		return items
	}

	list, ok := value.([]any)
	if !ok {
		return items
	}

	for _, item := range list {
		if s, ok := item.(string); ok {
			items = append(items, s)
		}
	}

	return items
}

func stringField(reply map[string]any, key, fallback string) string {
	if value, ok := reply[key]; ok {
		if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fallback
}
