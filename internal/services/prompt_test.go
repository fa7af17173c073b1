package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSelectsTemplateFromJobDescription(t *testing.T) {
	pb := NewPromptBuilder()

	t.Run("with job description", func(t *testing.T) {
		prompt := pb.Build("Python developer with 5 years experience", "Looking for a Senior Python Engineer")

		assert.Contains(t, prompt, "resume:Python developer with 5 years experience")
		assert.Contains(t, prompt, "description:Looking for a Senior Python Engineer")
		assert.Contains(t, prompt, `"JD Match"`)
		assert.Contains(t, prompt, `"MissingKeywords"`)
		assert.Contains(t, prompt, `"Profile Summary"`)
		assert.NotContains(t, prompt, `"ATS Score"`)
	})

	t.Run("without job description", func(t *testing.T) {
		prompt := pb.Build("Python developer with 5 years experience", "")

		assert.Contains(t, prompt, "resume:Python developer with 5 years experience")
		assert.NotContains(t, prompt, "description:")
		assert.Contains(t, prompt, `"ATS Score"`)
		assert.Contains(t, prompt, `"StrongPoints"`)
		assert.Contains(t, prompt, `"Suggestions"`)
		assert.Contains(t, prompt, `"Conclusion"`)
		assert.NotContains(t, prompt, `"JD Match"`)
	})

	t.Run("whitespace job description means no-JD template", func(t *testing.T) {
		prompt := pb.Build("some resume", "   \n\t")
		assert.Contains(t, prompt, `"ATS Score"`)
		assert.NotContains(t, prompt, `"JD Match"`)
	})
}

func TestBuildInterpolatesVerbatim(t *testing.T) {
	pb := NewPromptBuilder()

	// Inputs containing format-looking sequences must land unchanged
	resume := `weird resume with 100%% literals and {"braces": true}`
	jd := "JD with %s and %d placeholders"

	prompt := pb.Build(resume, jd)
	assert.Contains(t, prompt, "resume:"+resume)
	assert.Contains(t, prompt, "description:"+jd)
}

func TestBuildIsPure(t *testing.T) {
	pb := NewPromptBuilder()

	first := pb.Build("resume text", "job description")
	second := pb.Build("resume text", "job description")
	assert.Equal(t, first, second)

	// Resume text never influences template selection
	withJD := pb.Build("completely different resume", "job description")
	assert.True(t, strings.Contains(withJD, `"JD Match"`))
}
