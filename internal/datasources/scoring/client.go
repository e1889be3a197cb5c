package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/George-20m/Sip-Match2/internal/datasources"
	"github.com/George-20m/Sip-Match2/internal/domain"
)

var _ datasources.Scorer = (*Client)(nil)

const requestTimeout = 10 * time.Second

// Client calls the external ML scoring service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new scoring client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// ScoreDrinks sends one scoring request. A single attempt, no retries; the
// caller surfaces failures to the user.
func (c *Client) ScoreDrinks(
	ctx context.Context,
	req domain.ScoringRequest,
) (domain.ScoringResponse, error) {
	jsonBody, err := json.Marshal(req)
	if err != nil {
		return domain.ScoringResponse{}, fmt.Errorf("marshalling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/recommend",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return domain.ScoringResponse{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.ScoringResponse{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.ScoringResponse{}, fmt.Errorf(
			"scoring service error (status %d): %s", resp.StatusCode, string(body))
	}

	var result domain.ScoringResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.ScoringResponse{}, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}

// Health checks the scoring service's health endpoint.
func (c *Client) Health(ctx context.Context) (domain.ScorerHealth, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return domain.ScorerHealth{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.ScorerHealth{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.ScorerHealth{}, fmt.Errorf(
			"scoring service health check failed (status %d)", resp.StatusCode)
	}

	var health domain.ScorerHealth
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return domain.ScorerHealth{}, fmt.Errorf("decoding response: %w", err)
	}

	return health, nil
}
