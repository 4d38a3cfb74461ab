package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hireloop/radar/pkg/logx"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultModel balances latency against extraction quality.
	DefaultModel = "gpt-4o-mini"

	// requestTimeout bounds a single completion call; with one retry the
	// worst case stays around twice this before the caller falls back.
	requestTimeout = 8 * time.Second

	maxRetries = 1
)

// Client is the text-completion capability used by the requirement
// parser and the AI ranker.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new completion client.
func NewClient(apiKey, model string) *Client {
	c := openai.NewClient(
		option.WithAPIKey(apiKey),
	)
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: &c,
		model:  model,
	}
}

// Generate sends the prompt and returns the raw model text. Transient
// failures are retried once before the error is surfaced so callers can
// degrade to deterministic paths.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			logx.Warnf("completion attempt %d after transient error: %v", attempt+1, lastErr)
		}

		text, err := c.complete(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !isTransient(err) {
			break
		}
	}

	return "", lastErr
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(2000),
	})
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from model")
	}

	return completion.Choices[0].Message.Content, nil
}

// isTransient matches the failure signatures worth one retry: overload,
// rate limiting and timeouts.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range []string{"503", "overloaded", "rate limit", "429", "timeout", "deadline", "unavailable"} {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
