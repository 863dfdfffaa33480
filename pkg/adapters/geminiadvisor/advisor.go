// Package geminiadvisor implements ports.Advisor on the Gemini API.
package geminiadvisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/user/reframe/pkg/ports"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-1.5-pro"

// DefaultBackoff is the base delay between rate-limited attempts.
const DefaultBackoff = 2 * time.Second

// Config holds the advisor settings. Nothing is read from the environment.
type Config struct {
	APIKey     string
	Model      string
	MaxRetries int           // Extra attempts after a rate-limited response
	Backoff    time.Duration // Attempt n waits n*Backoff
}

// generator is the subset of *genai.Models used by the advisor.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Advisor asks a Gemini model how to extend an image's background.
type Advisor struct {
	models generator
	config Config
	logger ports.Logger
}

// New creates an advisor backed by the Gemini API.
func New(ctx context.Context, config Config, logger ports.Logger) (*Advisor, error) {
	if config.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newWithGenerator(client.Models, config, logger), nil
}

func newWithGenerator(models generator, config Config, logger ports.Logger) *Advisor {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.Backoff <= 0 {
		config.Backoff = DefaultBackoff
	}
	return &Advisor{
		models: models,
		config: config,
		logger: logger.WithComponent("gemini"),
	}
}

// Advise implements ports.Advisor.
func (a *Advisor) Advise(ctx context.Context, req ports.AdviceRequest) ports.Advice {
	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(BuildPrompt(req.Layouts)),
		{InlineData: &genai.Blob{MIMEType: req.MIMEType, Data: req.ImageData}},
	}, genai.RoleUser)}

	for attempt := 0; ; attempt++ {
		resp, err := a.models.GenerateContent(ctx, a.config.Model, contents, nil)
		if err == nil {
			text := responseText(resp)
			if text == "" {
				return ports.Advice{ImageName: req.ImageName, Text: "no text returned by model", Status: ports.AdviceFailed}
			}
			return ports.Advice{ImageName: req.ImageName, Text: text, Status: ports.AdviceOK}
		}

		if !IsRateLimited(err) {
			return ports.Advice{ImageName: req.ImageName, Text: err.Error(), Status: ports.AdviceFailed}
		}
		if attempt >= a.config.MaxRetries {
			return ports.Advice{ImageName: req.ImageName, Text: err.Error(), Status: ports.AdviceRateLimited}
		}

		wait := time.Duration(attempt+1) * a.config.Backoff
		a.logger.Debug("Rate limited on %s, retrying in %s (%d/%d)", req.ImageName, wait, attempt+1, a.config.MaxRetries)

		select {
		case <-ctx.Done():
			return ports.Advice{ImageName: req.ImageName, Text: ctx.Err().Error(), Status: ports.AdviceFailed}
		case <-time.After(wait):
		}
	}
}

// IsRateLimited reports whether err is a Gemini quota rejection.
func IsRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code == http.StatusTooManyRequests
	}
	return false
}

// BuildPrompt describes the outpainting task for the given placements.
func BuildPrompt(layouts []string) string {
	var b strings.Builder
	b.WriteString("This image will be centred on fixed-size canvases for these social media placements:\n")
	for _, l := range layouts {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("Analyse its visual style, lighting, texture and main subject. ")
	b.WriteString("Describe how to extend the empty area around it so the fill joins seamlessly, ")
	b.WriteString("keeps the original content unchanged and matches the style closely.")
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && p.Text != "" {
			out.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(out.String())
}

var _ ports.Advisor = (*Advisor)(nil)
