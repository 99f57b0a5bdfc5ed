package exercisedb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/entity"
)

const (
	defaultBaseURL = "https://exercisedb.p.rapidapi.com"
	rapidHost      = "exercisedb.p.rapidapi.com"
	searchLimit    = 8
	maxImageBytes  = 8 << 20
)

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type exercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Target    string `json:"target"`
	Equipment string `json:"equipment"`
	GifURL    string `json:"gifUrl"`
}

func (c *Client) Configured() bool {
	return c != nil && c.APIKey != ""
}

// SearchByName returns up to 8 exercises whose english name contains term.
func (c *Client) SearchByName(ctx context.Context, term string) ([]entity.ExerciseMatch, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	endpoint := fmt.Sprintf("%s/exercises/name/%s?limit=%d", c.base(), url.PathEscape(term), searchLimit)

	body, _, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	var raw []exercise
	if err = sonic.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode exercisedb response: %w", err)
	}
	if len(raw) > searchLimit {
		raw = raw[:searchLimit]
	}
	out := make([]entity.ExerciseMatch, 0, len(raw))
	for _, e := range raw {
		out = append(out, entity.ExerciseMatch{
			ID:           e.ID,
			Name:         e.Name,
			TargetMuscle: e.Target,
			Equipment:    e.Equipment,
			GifURL:       e.GifURL,
		})
	}
	return out, nil
}

// Image downloads the animation of an exercise at 360px. Returns bytes and content type.
func (c *Client) Image(ctx context.Context, exerciseID string) ([]byte, string, error) {
	params := url.Values{}
	params.Set("exerciseId", exerciseID)
	params.Set("resolution", "360")
	return c.get(ctx, c.base()+"/image?"+params.Encode())
}

func (c *Client) base() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return defaultBaseURL
	}
	return base
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, string, error) {
	if !c.Configured() {
		return nil, "", errorvalues.ErrProviderUnavailable
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create exercisedb request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.APIKey)
	req.Header.Set("X-RapidAPI-Host", rapidHost)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("execute exercisedb request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read exercisedb response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &StatusError{Code: resp.StatusCode}
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// StatusError carries the upstream status so the image proxy can forward it.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("exercisedb request failed with status %d", e.Code)
}
