package services

import (
	"fmt"

	"gunjansingh/smart-ats/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build selects a template from the job description alone and interpolates
// the inputs verbatim. Pure function; the same inputs always yield the
// same prompt.
func (pb *PromptBuilder) Build(resumeText, jobDescription string) string {
	if models.ModeFor(jobDescription) == models.ModeWithJobDescription {
		return pb.buildMatchPrompt(resumeText, jobDescription)
	}
	return pb.buildScorePrompt(resumeText)
}

// buildMatchPrompt asks the model to score the resume against the pasted
// job description. The key set here is a prompt convention, not a schema
// the model is forced to honor; the parser tolerates deviations.
func (pb *PromptBuilder) buildMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Hey Act Like a skilled or very experienced ATS (Application Tracking System)
with a deep understanding of the tech field, software engineering, data science, data analytics,
and big data engineering. Your task is to evaluate the resume based on the given job description.
You must consider the job market is very competitive, and you should provide
the best assistance for improving the resumes. Assign the percentage matching based
on JD and the missing keywords with high accuracy.
resume:%s
description:%s

I want the response in one single string having the structure
{"JD Match":"%%","MissingKeywords":[],"Profile Summary":""}`,
		resumeText, jobDescription)
}

// buildScorePrompt is the JD-less variant: a standalone ATS quality score
// with strengths and suggestions instead of a match percentage.
func (pb *PromptBuilder) buildScorePrompt(resumeText string) string {
	return fmt.Sprintf(`Hey Act Like a skilled or very experienced ATS (Application Tracking System)
with a deep understanding of the tech field, software engineering, data science, data analytics,
and big data engineering. Your task is to evaluate the resume on its own merits, with no job
description provided. You must consider the job market is very competitive, and you should
provide the best assistance for improving the resumes. Assign an overall ATS score, list the
strong points of the resume, and give concrete suggestions with high accuracy.
resume:%s

I want the response in one single string having the structure
{"ATS Score":"%%","StrongPoints":[],"Suggestions":"","Conclusion":""}`,
		resumeText)
}
