package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Version is the figma-codegen release version.
const Version = "0.3.0"

const (
	figmaAPIBase = "https://api.figma.com/v1"
	maxRetries   = 3
)

// Client represents a Figma API client with configured HTTP settings for reliable communication
// with the Figma API. It includes retry logic and optimized transport settings for handling large files.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
	retryDelay  time.Duration
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with optimized HTTP transport settings including connection pooling,
// disabled HTTP/2 (for large file stability), and a 10-minute timeout for very large files.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		retryDelay:  2 * time.Second,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
}

// WithBaseURL points the client at another API root (used by tests and proxies).
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimRight(base, "/")
	return c
}

var fileKeyPattern = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$|\?|#)`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
// Returns an error if the URL format is invalid or if the URL doesn't match the expected Figma domain pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileKeyPattern.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

var (
	nodeIDQueryPattern = regexp.MustCompile(`[?&]node-id=([^&#]*)`)
	nodeIDHashPattern  = regexp.MustCompile(`#([0-9]+[:-][0-9]+(?:\s*,\s*[0-9]+[:-][0-9]+)*)$`)
	nodeIDPathPattern  = regexp.MustCompile(`/nodes/([^?#]+)`)
)

// ExtractNodeIDs returns the node IDs referenced by a Figma URL, from the node-id
// query parameter, a #id fragment or a /nodes/ path segment. URL-encoded IDs
// ("123-456") are normalized to the API form ("123:456"). Duplicates are removed.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	var raw string
	if m := nodeIDQueryPattern.FindStringSubmatch(figmaURL); m != nil {
		unescaped, err := url.QueryUnescape(m[1])
		if err != nil {
			return nil, fmt.Errorf("decode node-id parameter: %w", err)
		}
		raw = unescaped
	} else if m := nodeIDHashPattern.FindStringSubmatch(figmaURL); m != nil {
		raw = m[1]
	} else if m := nodeIDPathPattern.FindStringSubmatch(figmaURL); m != nil {
		raw = m[1]
	}

	ids := []string{}
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		ids = append(ids, strings.ReplaceAll(id, "-", ":"))
	}

	return deduplicateNodeIDs(ids), nil
}

// deduplicateNodeIDs removes repeated IDs, preserving first-seen order.
func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

// GetFile retrieves complete file data from the Figma API including document structure, styles, and metadata.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	var fileResp FileResponse
	if err := c.getJSON(fmt.Sprintf("%s/files/%s", c.baseURL, fileKey), &fileResp); err != nil {
		return nil, err
	}
	return &fileResp, nil
}

// GetFileNodes retrieves specific nodes (and their component/style dictionaries) from a file.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	endpoint := fmt.Sprintf("%s/files/%s/nodes?ids=%s", c.baseURL, fileKey, url.QueryEscape(strings.Join(nodeIDs, ",")))

	var nodesResp NodesResponse
	if err := c.getJSON(endpoint, &nodesResp); err != nil {
		return nil, err
	}
	return &nodesResp, nil
}

// GetLocalVariables retrieves the variables and variable collections defined in a file.
func (c *Client) GetLocalVariables(fileKey string) (*LocalVariablesResponse, error) {
	var varsResp LocalVariablesResponse
	if err := c.getJSON(fmt.Sprintf("%s/files/%s/variables/local", c.baseURL, fileKey), &varsResp); err != nil {
		return nil, err
	}
	return &varsResp, nil
}

// getJSON performs a GET request and decodes the body into v.
// Implements automatic retry logic (up to 3 attempts) with linear backoff for handling rate limits
// and temporary failures. The request retries on 429 (rate limit) and 5xx (server error) responses.
func (c *Client) getJSON(endpoint string, v any) error {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		body, retry, err := c.do(endpoint, attempt)
		if err == nil {
			if err := json.Unmarshal(body, v); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			return nil
		}

		lastErr = err
		if !retry || attempt == maxRetries {
			break
		}
		time.Sleep(time.Duration(attempt) * c.retryDelay)
	}

	return lastErr
}

// do executes one attempt. The boolean result reports whether the failure is retryable.
func (c *Client) do(endpoint string, attempt int) ([]byte, bool, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Figma-Token", c.accessToken)
	// Disable HTTP/2 to avoid stream errors with large files
	req.Header.Set("Connection", "close")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("attempt %d failed to execute request: %w", attempt, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("attempt %d failed to read response body: %w", attempt, err)
	}

	return body, false, nil
}
