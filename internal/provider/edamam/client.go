package edamam

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/entity"
)

const (
	defaultBaseURL = "https://api.edamam.com"
	maxResults     = 8
)

type Client struct {
	BaseURL    string
	AppID      string
	AppKey     string
	HTTPClient *http.Client
}

type parserResponse struct {
	Hints []struct {
		Food struct {
			Label     string `json:"label"`
			Image     string `json:"image"`
			Nutrients struct {
				Kcal    float64 `json:"ENERC_KCAL"`
				Protein float64 `json:"PROCNT"`
				Carbs   float64 `json:"CHOCDF"`
				Fat     float64 `json:"FAT"`
			} `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

func (c *Client) Configured() bool {
	return c != nil && c.AppID != "" && c.AppKey != ""
}

// SearchFoods queries the food-database parser with an english term. Values are per 100g, rounded.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]entity.FoodMatch, error) {
	if !c.Configured() {
		return nil, errorvalues.ErrProviderUnavailable
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	params := url.Values{}
	params.Set("app_id", c.AppID)
	params.Set("app_key", c.AppKey)
	params.Set("ingr", query)
	params.Set("nutrition-type", "logging")
	endpoint := base + "/api/food-database/v2/parser?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create edamam request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute edamam request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read edamam response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("edamam request failed with status %d", resp.StatusCode)
	}

	var parsed parserResponse
	if err = sonic.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode edamam response: %w", err)
	}

	hints := parsed.Hints
	if len(hints) > maxResults {
		hints = hints[:maxResults]
	}
	out := make([]entity.FoodMatch, 0, len(hints))
	for _, h := range hints {
		out = append(out, entity.FoodMatch{
			Name:     h.Food.Label,
			Calories: math.Round(h.Food.Nutrients.Kcal),
			Protein:  math.Round(h.Food.Nutrients.Protein),
			Carbs:    math.Round(h.Food.Nutrients.Carbs),
			Fat:      math.Round(h.Food.Nutrients.Fat),
			Unit:     "100g",
			Image:    h.Food.Image,
		})
	}
	return out, nil
}
