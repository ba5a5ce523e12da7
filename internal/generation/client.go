// Package generation talks to the hosted text-generation backend.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/planner"
)

const generativeLanguageScope = "https://www.googleapis.com/auth/generative-language"

// Client implements planner.Generator on top of the Generative Language API.
type Client struct {
	svc   *generativelanguage.Service
	model string
}

var _ planner.Generator = (*Client)(nil)

// New builds a client from cfg. It returns planner.ErrCredentialMissing when
// neither an API key nor a credentials file is configured.
func New(ctx context.Context, cfg config.GenerationConfig) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case cfg.CredentialsFile != "":
		ts, err := tokenSource(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithTokenSource(ts))
	default:
		return nil, planner.ErrCredentialMissing
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative language service: %w", err)
	}

	log.Printf("[generation] client ready (model=%s)", modelName(cfg.Model))
	return &Client{svc: svc, model: modelName(cfg.Model)}, nil
}

func tokenSource(ctx context.Context, path string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, generativeLanguageScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return oauth2.ReuseTokenSource(nil, creds.TokenSource), nil
}

func modelName(model string) string {
	model = strings.TrimSpace(model)
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}
	return model
}

// Model returns the fully qualified model name used for requests.
func (c *Client) Model() string {
	return c.model
}

// Generate sends a single prompt and returns the concatenated text of the
// first candidate.
func (c *Client) Generate(ctx context.Context, prompt string, format planner.ResponseFormat) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: prompt}},
			},
		},
	}
	if format.MIMEType != "" || format.Schema != nil {
		req.GenerationConfig = &generativelanguage.GenerationConfig{
			ResponseMimeType: format.MIMEType,
			ResponseSchema:   toSchema(format.Schema),
		}
	}

	resp, err := c.svc.Models.GenerateContent(c.model, req).Context(ctx).Do()
	if err != nil {
		return "", classify(err)
	}

	text := responseText(resp)
	if text == "" {
		reason := "no candidates returned"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = "prompt blocked: " + resp.PromptFeedback.BlockReason
		}
		return "", &planner.BackendError{Kind: planner.KindTransport, Message: reason}
	}
	return text, nil
}

func responseText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range cand.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

// classify maps API failures onto planner error kinds. Quota exhaustion is
// recognised from the status code or structured error reasons only.
func classify(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return &planner.BackendError{Kind: planner.KindTransport, Message: err.Error(), Err: err}
	}

	kind := planner.KindTransport
	if isQuota(gerr) {
		kind = planner.KindQuotaExceeded
	}
	msg := gerr.Message
	if msg == "" {
		msg = http.StatusText(gerr.Code)
	}
	return &planner.BackendError{Kind: kind, HTTPStatus: gerr.Code, Message: msg, Err: err}
}

func isQuota(gerr *googleapi.Error) bool {
	if gerr.Code == http.StatusTooManyRequests {
		return true
	}
	for _, item := range gerr.Errors {
		reason := strings.ToLower(item.Reason)
		if strings.Contains(reason, "quota") || strings.Contains(reason, "ratelimit") {
			return true
		}
	}
	return strings.Contains(gerr.Body, `"RESOURCE_EXHAUSTED"`)
}

func toSchema(h *planner.SchemaHint) *generativelanguage.Schema {
	if h == nil {
		return nil
	}
	s := &generativelanguage.Schema{
		Type:        h.Type,
		Description: h.Description,
		Required:    h.Required,
		Enum:        h.Enum,
		Items:       toSchema(h.Items),
	}
	if len(h.Properties) > 0 {
		s.Properties = make(map[string]generativelanguage.Schema, len(h.Properties))
		for name, prop := range h.Properties {
			if converted := toSchema(prop); converted != nil {
				s.Properties[name] = *converted
			}
		}
	}
	return s
}
