package services

// StatusTag classifies the gauge percentage into the role-status bands the
// result page shows.
type StatusTag string

const (
	StatusNotEligible  StatusTag = "not_eligible"
	StatusNeedsUpdate  StatusTag = "needs_update"
	StatusGood         StatusTag = "good"
	StatusExcellent    StatusTag = "excellent"
	StatusUnclassified StatusTag = "unclassified"
)

// Categorize maps a percentage onto a status band. Values outside 0-100
// (a model can return "120%") fall through every band and come back as
// StatusUnclassified instead of being dropped.
func Categorize(percent int) StatusTag {
	switch {
	case percent >= 0 && percent <= 30:
		return StatusNotEligible
	case percent >= 31 && percent <= 60:
		return StatusNeedsUpdate
	case percent >= 61 && percent <= 80:
		return StatusGood
	case percent >= 81 && percent <= 100:
		return StatusExcellent
	default:
		return StatusUnclassified
	}
}

// StatusMessage is the user-facing line for a status band.
func StatusMessage(tag StatusTag) string {
	switch tag {
	case StatusNotEligible:
		return "You are not eligible for this job role."
	case StatusNeedsUpdate:
		return "Please update your resume for this job role."
	case StatusGood:
		return "Good, but you need to update your resume."
	case StatusExcellent:
		return "Congrats, you are perfect for this job role!"
	default:
		return "The evaluation score could not be classified."
	}
}

// GaugeColor picks the progress-bar color band for the percentage gauge.
func GaugeColor(percent int) string {
	switch {
	case percent <= 40:
		return "darkred"
	case percent <= 60:
		return "lightcoral"
	case percent <= 80:
		return "orange"
	case percent <= 90:
		return "lightgreen"
	default:
		return "darkgreen"
	}
}
