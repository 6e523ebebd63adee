// Package regcore is the HTTP adapter for a regulations-core API server.
package regcore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"regstub/internal/application"
	"regstub/internal/ports"
)

// Client implements ports.RegulationAPI against a regulations-core server
type Client struct {
	base *url.URL
	http *http.Client
}

// Ensure Client implements RegulationAPI
var _ ports.RegulationAPI = (*Client)(nil)

// NewClient creates a client for the given API base URL
func NewClient(apiBase string) (*Client, error) {
	return NewClientWithConfig(apiBase, DefaultClientConfig())
}

// NewClientWithConfig creates a client with explicit transport settings
func NewClientWithConfig(apiBase string, cfg ClientConfig) (*Client, error) {
	apiBase = strings.TrimSpace(apiBase)
	if apiBase == "" {
		return nil, application.ErrMissingAPIBase
	}

	// Relative paths resolve against the base, so it must end with a slash
	if !strings.HasSuffix(apiBase, "/") {
		apiBase += "/"
	}

	base, err := url.Parse(apiBase)
	if err != nil {
		return nil, fmt.Errorf("invalid api base %q: %w", apiBase, err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("api base must be an absolute URL: %q", apiBase)
	}

	return &Client{
		base: base,
		http: newHTTPClient(cfg),
	}, nil
}

// Notices queries regulation/{part} and returns its notice version tokens
func (c *Client) Notices(ctx context.Context, part string) ([]string, error) {
	var reg struct {
		Versions []struct {
			Version string `json:"version"`
		} `json:"versions"`
	}

	if err := c.getJSON(ctx, "regulation/"+part, &reg); err != nil {
		return nil, err
	}

	notices := make([]string, 0, len(reg.Versions))
	for _, v := range reg.Versions {
		notices = append(notices, v.Version)
	}
	return notices, nil
}

// Document fetches the JSON document at the given relative path
func (c *Client) Document(ctx context.Context, path string) (any, error) {
	var doc any
	if err := c.getJSON(ctx, path, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(path), nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid JSON from %s: %w", path, err)
	}
	return nil
}

func (c *Client) resolve(path string) string {
	ref := &url.URL{Path: strings.TrimPrefix(path, "/")}
	return c.base.ResolveReference(ref).String()
}

// statusError turns a non-200 response into a FetchError, scraping the
// title and message from an HTML error page when there is one.
func (c *Client) statusError(path string, resp *http.Response) error {
	ferr := &application.FetchError{
		Path:       path,
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorPageBytes))
	if err != nil {
		return ferr
	}

	if title, detail, ok := parseErrorPage(body); ok {
		ferr.Title = title
		ferr.Detail = detail
	}
	return ferr
}
