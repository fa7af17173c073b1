package services

import (
	"context"
	"log"
	"sync"
)

// CachedGenerator memoizes model replies so resubmitting the same resume
// and job description does not spend another API call.
type CachedGenerator interface {
	Generate(ctx context.Context, jobDescription, resumeText string) (string, error)
}

type cachedGenerator struct {
	gemini  GeminiService
	prompts *PromptBuilder

	mu      sync.Mutex
	replies map[string]string
}

func NewCachedGenerator(gemini GeminiService, prompts *PromptBuilder) CachedGenerator {
	return &cachedGenerator{
		gemini:  gemini,
		prompts: prompts,
		replies: make(map[string]string),
	}
}

// Generate implements CachedGenerator. The key is the exact
// (jobDescription, resumeText) pair; any one-character change is a miss.
// Entries live for the process lifetime with no eviction. The lock is not
// held across the model call, so two concurrent misses on the same key may
// both invoke the service; the second reply simply overwrites the first.
func (c *cachedGenerator) Generate(ctx context.Context, jobDescription, resumeText string) (string, error) {
	key := cacheKey(jobDescription, resumeText)

	c.mu.Lock()
	if reply, ok := c.replies[key]; ok {
		c.mu.Unlock()
		log.Println("💾 Reply cache hit, skipping model call")
		return reply, nil
	}
	c.mu.Unlock()

	prompt := c.prompts.Build(resumeText, jobDescription)

	reply, err := c.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.replies[key] = reply
	c.mu.Unlock()

	return reply, nil
}

// cacheKey joins the pair with a separator that cannot appear in either
// part by accident, so ("a", "b c") and ("a b", "c") never collide.
func cacheKey(jobDescription, resumeText string) string {
	return jobDescription + "\x1f" + resumeText
}
