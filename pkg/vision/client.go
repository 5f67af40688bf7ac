// Package vision wraps the Anthropic API for PDF transcription and text
// completion. Scanned proposal forms and ECM portfolio statements are sent
// as base64 document blocks and come back as structured text.
package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Vkdel001/underwriter/internal/resilience"
)

// Client defines the model operations used by the assessment workflow.
type Client interface {
	// TranscribePDF sends a PDF with an extraction prompt and returns the
	// model's text output.
	TranscribePDF(ctx context.Context, pdf []byte, prompt string) (string, error)

	// Complete sends a plain text prompt and returns the model's text output.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Option configures a vision client.
type Option func(*sdkClient)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *sdkClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithMaxTokens overrides the default output token limit.
func WithMaxTokens(n int64) Option {
	return func(c *sdkClient) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithMaxAttempts overrides the retry attempt count.
func WithMaxAttempts(n int) Option {
	return func(c *sdkClient) {
		if n > 0 {
			c.retry.MaxAttempts = n
		}
	}
}

// sdkClient implements Client using the official anthropic-sdk-go.
type sdkClient struct {
	client    sdk.Client
	model     string
	maxTokens int64
	retry     resilience.RetryConfig
}

// NewClient creates a vision client backed by the SDK.
func NewClient(apiKey string, opts ...Option) Client {
	c := &sdkClient{
		client: sdk.NewClient(
			option.WithAPIKey(apiKey),
		),
		model:     "claude-sonnet-4-5-20250929",
		maxTokens: 8192,
		retry:     resilience.DefaultRetryConfig(),
	}
	c.retry.ShouldRetry = isTransient
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *sdkClient) TranscribePDF(ctx context.Context, pdf []byte, prompt string) (string, error) {
	if len(pdf) == 0 {
		return "", eris.New("vision: empty pdf")
	}

	doc := sdk.NewDocumentBlock(sdk.Base64PDFSourceParam{
		Data: base64.StdEncoding.EncodeToString(pdf),
	})
	msg := sdk.NewUserMessage(doc, sdk.NewTextBlock(prompt))

	text, err := c.createMessage(ctx, "transcribe_pdf", []sdk.MessageParam{msg})
	if err != nil {
		return "", eris.Wrap(err, "vision: transcribe pdf")
	}
	return text, nil
}

func (c *sdkClient) Complete(ctx context.Context, prompt string) (string, error) {
	msg := sdk.NewUserMessage(sdk.NewTextBlock(prompt))

	text, err := c.createMessage(ctx, "complete", []sdk.MessageParam{msg})
	if err != nil {
		return "", eris.Wrap(err, "vision: complete")
	}
	return text, nil
}

func (c *sdkClient) createMessage(ctx context.Context, phase string, msgs []sdk.MessageParam) (string, error) {
	cfg := c.retry
	cfg.OnRetry = resilience.RetryLogger("anthropic", phase)

	resp, err := resilience.DoVal(ctx, cfg, func(ctx context.Context) (*sdk.Message, error) {
		return c.client.Messages.New(ctx, sdk.MessageNewParams{
			Model:     sdk.Model(c.model),
			MaxTokens: c.maxTokens,
			Messages:  msgs,
		})
	})
	if err != nil {
		return "", err
	}

	usage := TokenUsage{
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}
	usage.LogCost(c.model, phase)

	return collectText(resp), nil
}

// collectText concatenates the text blocks of a response.
func collectText(msg *sdk.Message) string {
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// isTransient treats API rate limits and server errors as retryable on top
// of the usual network failures.
func isTransient(err error) bool {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		// 529 is Anthropic's overloaded status.
		return apiErr.StatusCode == 529 || resilience.IsTransientHTTPStatus(apiErr.StatusCode)
	}
	return resilience.IsTransient(err)
}

// TokenUsage tracks token consumption for a single call.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
}

// modelPricing holds per-million-token pricing for known models.
var modelPricing = map[string][2]float64{
	// model → {input $/MTok, output $/MTok}
	"claude-haiku-4-5-20251001":  {0.80, 4.00},
	"claude-sonnet-4-5-20250929": {3.00, 15.00},
}

// EstimateCost computes an estimated cost in USD from a TokenUsage and model
// ID. Returns 0 for unknown models.
func (u TokenUsage) EstimateCost(model string) float64 {
	pricing, ok := modelPricing[model]
	if !ok {
		return 0
	}
	inCost := (float64(u.InputTokens) / 1e6) * pricing[0]
	outCost := (float64(u.OutputTokens) / 1e6) * pricing[1]
	return inCost + outCost
}

// LogCost logs token usage and estimated cost with structured zap fields.
func (u TokenUsage) LogCost(model, phase string) {
	cost := u.EstimateCost(model)
	zap.L().Info("cost attribution",
		zap.String("model", model),
		zap.String("phase", phase),
		zap.Int64("input_tokens", u.InputTokens),
		zap.Int64("output_tokens", u.OutputTokens),
		zap.Float64("estimated_cost_usd", cost),
	)
}
