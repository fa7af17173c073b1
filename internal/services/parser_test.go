package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gunjansingh/smart-ats/internal/models"
)

func TestParseResultWithJobDescription(t *testing.T) {
	reply := `{"JD Match":"85%","MissingKeywords":["Kubernetes"],"Profile Summary":"Strong backend profile"}`

	result, err := ParseResult(reply, models.ModeWithJobDescription)
	require.NoError(t, err)
	require.NotNil(t, result.Match)
	assert.Nil(t, result.Score)
	assert.Equal(t, models.ModeWithJobDescription, result.Mode)

	assert.Equal(t, 85, result.Match.MatchPercent)
	assert.Equal(t, []string{"Kubernetes"}, result.Match.MissingKeywords)
	assert.Equal(t, "Strong backend profile", result.Match.ProfileSummary)
	assert.Equal(t, 85, result.Percent())
}

func TestParseResultWithoutJobDescription(t *testing.T) {
	reply := `{"ATS Score":"45%","StrongPoints":["Python","SQL"],"Suggestions":"Add more metrics","Conclusion":"Decent entry-level resume"}`

	result, err := ParseResult(reply, models.ModeWithoutJobDescription)
	require.NoError(t, err)
	require.NotNil(t, result.Score)
	assert.Nil(t, result.Match)

	assert.Equal(t, 45, result.Score.ATSScore)
	assert.Equal(t, []string{"Python", "SQL"}, result.Score.StrongPoints)
	assert.Equal(t, "Add more metrics", result.Score.Suggestions)
	assert.Equal(t, "Decent entry-level resume", result.Score.Conclusion)
	assert.Equal(t, 45, result.Percent())
}

func TestParseResultRoutesByModeNotByKeys(t *testing.T) {
	// A reply carrying both key sets must never flip the branch.
	reply := `{"JD Match":"85%","ATS Score":"45%","MissingKeywords":["Go"],"StrongPoints":["SQL"]}`

	result, err := ParseResult(reply, models.ModeWithoutJobDescription)
	require.NoError(t, err)
	require.NotNil(t, result.Score)
	assert.Nil(t, result.Match)
	assert.Equal(t, 45, result.Score.ATSScore)
	assert.Equal(t, []string{"SQL"}, result.Score.StrongPoints)

	result, err = ParseResult(reply, models.ModeWithJobDescription)
	require.NoError(t, err)
	require.NotNil(t, result.Match)
	assert.Nil(t, result.Score)
	assert.Equal(t, 85, result.Match.MatchPercent)
	assert.Equal(t, []string{"Go"}, result.Match.MissingKeywords)
}

func TestParseResultMalformedJSON(t *testing.T) {
	raw := "I am sorry, I cannot evaluate this resume."

	result, err := ParseResult(raw, models.ModeWithJobDescription)
	assert.Nil(t, result)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, raw, parseErr.Raw)
}

func TestParseResultDefaults(t *testing.T) {
	t.Run("empty object with JD", func(t *testing.T) {
		result, err := ParseResult(`{}`, models.ModeWithJobDescription)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Match.MatchPercent)
		assert.Empty(t, result.Match.MissingKeywords)
		assert.Equal(t, "No summary provided.", result.Match.ProfileSummary)
	})

	t.Run("empty object without JD", func(t *testing.T) {
		result, err := ParseResult(`{}`, models.ModeWithoutJobDescription)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score.ATSScore)
		assert.Empty(t, result.Score.StrongPoints)
		assert.Equal(t, "No suggestions provided.", result.Score.Suggestions)
		assert.Equal(t, "No conclusion provided.", result.Score.Conclusion)
	})

	t.Run("blank strings fall back too", func(t *testing.T) {
		result, err := ParseResult(`{"Profile Summary":"  "}`, models.ModeWithJobDescription)
		require.NoError(t, err)
		assert.Equal(t, "No summary provided.", result.Match.ProfileSummary)
	})
}

func TestPercentField(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected int
	}{
		{"percent string", `{"JD Match":"85%"}`, 85},
		{"bare digit string", `{"JD Match":"85"}`, 85},
		{"padded percent string", `{"JD Match":" 85 % "}`, 85},
		{"number instead of string", `{"JD Match":85}`, 85},
		{"out of range passes through", `{"JD Match":"120%"}`, 120},
		{"negative passes through", `{"JD Match":"-5"}`, -5},
		{"unreadable value", `{"JD Match":"high"}`, 0},
		{"wrong type", `{"JD Match":["85"]}`, 0},
		{"absent", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult(tt.reply, models.ModeWithJobDescription)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Match.MatchPercent)
		})
	}
}

func TestStringListFieldSkipsNonStrings(t *testing.T) {
	reply := `{"MissingKeywords":["Kubernetes",42,"Terraform",null]}`

	result, err := ParseResult(reply, models.ModeWithJobDescription)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, result.Match.MissingKeywords)
}

func TestNormalizeThenParseEndToEnd(t *testing.T) {
	t.Run("fenced JD-match reply", func(t *testing.T) {
		raw := "```json\n{\"JD Match\":\"85%\",\"MissingKeywords\":[\"Kubernetes\"],\"Profile Summary\":\"Strong backend profile\"}\n```"

		result, err := ParseResult(Normalize(raw), models.ModeWithJobDescription)
		require.NoError(t, err)
		assert.Equal(t, 85, result.Match.MatchPercent)
		assert.Equal(t, []string{"Kubernetes"}, result.Match.MissingKeywords)
		assert.Equal(t, "Strong backend profile", result.Match.ProfileSummary)
		assert.Equal(t, StatusExcellent, Categorize(result.Percent()))
	})

	t.Run("unfenced no-JD reply", func(t *testing.T) {
		raw := `{"ATS Score":"45%","StrongPoints":["Python","SQL"],"Suggestions":"Add more metrics","Conclusion":"Decent entry-level resume"}`

		result, err := ParseResult(Normalize(raw), models.ModeWithoutJobDescription)
		require.NoError(t, err)
		assert.Equal(t, 45, result.Score.ATSScore)
		assert.Equal(t, []string{"Python", "SQL"}, result.Score.StrongPoints)
		assert.Equal(t, "Add more metrics", result.Score.Suggestions)
		assert.Equal(t, "Decent entry-level resume", result.Score.Conclusion)
	})
}
