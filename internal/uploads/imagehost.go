package uploads

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultImageHostEndpoint = "https://api.imgbb.com/1/upload"

// HostClient relays uploaded bytes to the external image host, which owns
// storage and transformation and hands back a public URL.
type HostClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewHostClient returns nil when no API key is configured.
func NewHostClient(apiKey, endpoint string) *HostClient {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultImageHostEndpoint
	}
	return &HostClient{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HostClient) Upload(ctx context.Context, data []byte) (string, error) {
	if c == nil {
		return "", errors.New("image host client is nil")
	}
	if len(data) == 0 {
		return "", errors.New("empty image payload")
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("image host create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image host request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("image host upload failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out imageHostResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("image host decode response: %w", err)
	}
	if strings.TrimSpace(out.Data.URL) == "" {
		return "", errors.New("image host response missing url")
	}
	return out.Data.URL, nil
}

type imageHostResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}
