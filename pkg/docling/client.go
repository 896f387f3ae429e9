package docling

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to a docling-serve instance. It keeps no per-task state and
// is safe for concurrent use.
type Client struct {
	client  *http.Client
	logger  *slog.Logger
	limiter *rate.Limiter

	url   string
	token string

	userAgent string
}

func New(baseURL string, options ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)

	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: strings.TrimRight(baseURL, "/"),
	}

	for _, option := range options {
		option(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c, nil
}

// Health reports the server health. The endpoint is public, so no token is sent.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)

	if err != nil {
		return nil, err
	}

	var result HealthStatus

	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	if result.Status == "" {
		result.Status = "ok"
	}

	return &result, nil
}

func (c *Client) Version(ctx context.Context) (Version, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/version", nil)

	if err != nil {
		return nil, err
	}

	c.authorize(req)

	var result Version

	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) do(req *http.Request, result any) error {
	ctx := req.Context()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	start := time.Now()

	resp, err := c.client.Do(req)

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return &NetworkError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "docling request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return convertError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return &NetworkError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	if err := json.Unmarshal(data, result); err != nil {
		return &DecodeError{Body: data, Err: err}
	}

	return nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(data),
	}
}
