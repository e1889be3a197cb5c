package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/George-20m/Sip-Match2/internal/datasources"
)

var _ datasources.IdentityChecker = (*Client)(nil)

// Client checks account existence against the identity provider's management
// API. A freshly created account can lag behind the token that proves it, so
// callers poll this with a bounded retry.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) IdentityExists(ctx context.Context, externalID string) (bool, error) {
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/v1/users/"+url.PathEscape(externalID),
		nil,
	)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("identity provider error (status %d)", resp.StatusCode)
	}
}
