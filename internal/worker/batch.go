package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/culturecoders/culturebot/internal/model"
)

// Answerer answers one chat request. chat.Service satisfies it.
type Answerer interface {
	Respond(ctx context.Context, req model.ChatRequest) model.ChatResponse
}

// QuestionJob answers a single question from a batch
type QuestionJob struct {
	Index    int
	Question string
	UserID   string
	Answerer Answerer
}

// Execute answers the question unless the batch was cancelled first
func (j *QuestionJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &QuestionResult{Index: j.Index, Question: j.Question, Error: err}
	}

	resp := j.Answerer.Respond(ctx, model.ChatRequest{Message: j.Question, UserID: j.UserID})
	return &QuestionResult{
		Index:    j.Index,
		Question: j.Question,
		Response: resp,
	}
}

// QuestionResult is the answer to one batch question
type QuestionResult struct {
	Index    int
	Question string
	Response model.ChatResponse
	Error    error
}

// GetError returns the error from the question result
func (r *QuestionResult) GetError() error {
	return r.Error
}

// BatchProcessor answers many questions concurrently
type BatchProcessor struct {
	answerer    Answerer
	concurrency int
	userID      string
}

// NewBatchProcessor creates a batch processor. Every question is asked as
// userID, so the per-user limiter applies to the batch as a whole.
func NewBatchProcessor(answerer Answerer, concurrency int, userID string) *BatchProcessor {
	if userID == "" {
		userID = model.DefaultUserID
	}
	return &BatchProcessor{
		answerer:    answerer,
		concurrency: concurrency,
		userID:      userID,
	}
}

// ProcessQuestions answers questions concurrently; results keep input order
func (b *BatchProcessor) ProcessQuestions(ctx context.Context, questions []string) []*QuestionResult {
	if len(questions) == 0 {
		return []*QuestionResult{}
	}

	jobs := make([]Job, len(questions))
	for i, q := range questions {
		jobs[i] = &QuestionJob{
			Index:    i,
			Question: q,
			UserID:   b.userID,
			Answerer: b.answerer,
		}
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	results := pool.Run(jobs)

	answers := make([]*QuestionResult, len(questions))
	for _, result := range results {
		r := result.(*QuestionResult)
		answers[r.Index] = r
	}

	// Jobs never started because the batch was cancelled
	for i, a := range answers {
		if a == nil {
			answers[i] = &QuestionResult{Index: i, Question: questions[i], Error: context.Cause(ctx)}
		}
	}

	return answers
}

// ProcessFile reads questions from a file and answers them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*QuestionResult, error) {
	questions, err := ReadQuestionsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	return b.ProcessQuestions(ctx, questions), nil
}

// ReadQuestionsFromFile reads one question per line, skipping blank lines
// and # comments and dropping repeats
func ReadQuestionsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var questions []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			questions = append(questions, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return questions, nil
}
