package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	mu    sync.Mutex
	calls int
	reply string
	err   error
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGemini) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestCachedGeneratorMemoizesExactPairs(t *testing.T) {
	gemini := &fakeGemini{reply: `{"JD Match":"85%"}`}
	generator := NewCachedGenerator(gemini, NewPromptBuilder())
	ctx := context.Background()

	first, err := generator.Generate(ctx, "Senior Engineer", "resume text")
	require.NoError(t, err)

	second, err := generator.Generate(ctx, "Senior Engineer", "resume text")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gemini.callCount(), "identical inputs should invoke the model once")
}

func TestCachedGeneratorMissesOnAnyChange(t *testing.T) {
	gemini := &fakeGemini{reply: `{"JD Match":"85%"}`}
	generator := NewCachedGenerator(gemini, NewPromptBuilder())
	ctx := context.Background()

	_, err := generator.Generate(ctx, "Senior Engineer", "resume text")
	require.NoError(t, err)

	// One character of drift in the resume is a different key
	_, err = generator.Generate(ctx, "Senior Engineer", "resume text!")
	require.NoError(t, err)
	assert.Equal(t, 2, gemini.callCount())

	// So is a changed job description, including going blank
	_, err = generator.Generate(ctx, "", "resume text")
	require.NoError(t, err)
	assert.Equal(t, 3, gemini.callCount())
}

func TestCachedGeneratorKeysDoNotCollide(t *testing.T) {
	gemini := &fakeGemini{reply: "reply"}
	generator := NewCachedGenerator(gemini, NewPromptBuilder())
	ctx := context.Background()

	_, err := generator.Generate(ctx, "ab", "c")
	require.NoError(t, err)
	_, err = generator.Generate(ctx, "a", "bc")
	require.NoError(t, err)

	assert.Equal(t, 2, gemini.callCount(), "shifted pair boundaries must be distinct keys")
}

func TestCachedGeneratorDoesNotCacheFailures(t *testing.T) {
	gemini := &fakeGemini{err: &TransportError{Cause: fmt.Errorf("quota exceeded")}}
	generator := NewCachedGenerator(gemini, NewPromptBuilder())
	ctx := context.Background()

	_, err := generator.Generate(ctx, "jd", "resume")
	require.Error(t, err)

	// The failure must not be memoized; a retry by the user reaches the model
	gemini.mu.Lock()
	gemini.err = nil
	gemini.reply = "recovered"
	gemini.mu.Unlock()

	reply, err := generator.Generate(ctx, "jd", "resume")
	require.NoError(t, err)
	assert.Equal(t, "recovered", reply)
	assert.Equal(t, 2, gemini.callCount())
}

func TestCachedGeneratorConcurrentAccess(t *testing.T) {
	gemini := &fakeGemini{reply: "reply"}
	generator := NewCachedGenerator(gemini, NewPromptBuilder())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			// Mix of shared and distinct keys
			jd := fmt.Sprintf("jd-%d", n%4)
			_, err := generator.Generate(ctx, jd, "resume")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Concurrent misses on the same key may each call the model, but the
	// call count can never exceed the number of requests.
	assert.GreaterOrEqual(t, gemini.callCount(), 4)
	assert.LessOrEqual(t, gemini.callCount(), 16)
}
