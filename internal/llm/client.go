package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/metrics"
)

const DefaultModel = "gemini-2.5-flash"

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini endpoint. Empty means the public API
	BaseURL    string
	HTTPClient *http.Client
}

// Request is a single-turn prompt. Image is optional and sent before the text part.
// When Schema is set the model is asked for JSON matching it.
type Request struct {
	Prompt    string
	Image     []byte
	ImageMIME string
	Schema    *genai.Schema
}

type Client struct {
	client  *genai.Client
	model   string
	metrics *metrics.Manager
}

// NewClient returns a client that answers ErrAIUnavailable on every call when no key is configured.
func NewClient(ctx context.Context, cfg Config, mgr *metrics.Manager) (*Client, error) {
	c := &Client{model: cfg.Model, metrics: mgr}
	if c.model == "" {
		c.model = DefaultModel
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return c, nil
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, err
	}
	c.client = gc
	return c, nil
}

func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Generate returns the text of the first candidate.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if !c.Enabled() {
		c.count("unavailable")
		return "", errorvalues.ErrAIUnavailable
	}

	parts := make([]*genai.Part, 0, 2)
	if len(req.Image) > 0 {
		mime := req.ImageMIME
		if mime == "" {
			mime = http.DetectContentType(req.Image)
		}
		parts = append(parts, genai.NewPartFromBytes(req.Image, mime))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var gcfg *genai.GenerateContentConfig
	if req.Schema != nil {
		gcfg = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   req.Schema,
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, gcfg)
	if err != nil {
		c.count("error")
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		c.count("empty")
		return "", errors.New("model returned no text")
	}
	c.count("ok")
	return text, nil
}

func (c *Client) count(outcome string) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.CounterAIRequests.WithLabelValues(outcome).Inc()
}
