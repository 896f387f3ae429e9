package docling

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// Convert converts the request's sources and waits for the server to finish.
func (c *Client) Convert(ctx context.Context, input ConvertRequest) (*ConvertResult, error) {
	var result ConvertResult

	if err := c.postSource(ctx, "/v1/convert/source", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) ConvertURL(ctx context.Context, url string, options *ConvertOptions) (*ConvertResult, error) {
	return c.Convert(ctx, urlRequest(url, options))
}

// ConvertAsync submits the request as a background task on the server.
func (c *Client) ConvertAsync(ctx context.Context, input ConvertRequest) (*Task, error) {
	var task Task

	if err := c.postSource(ctx, "/v1/convert/source/async", input, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (c *Client) ConvertURLAsync(ctx context.Context, url string, options *ConvertOptions) (*Task, error) {
	return c.ConvertAsync(ctx, urlRequest(url, options))
}

func (c *Client) postSource(ctx context.Context, path string, input ConvertRequest, result any) error {
	if len(input.Sources) == 0 {
		return errors.New("no sources")
	}

	if err := input.Options.Validate(); err != nil {
		return err
	}

	var data bytes.Buffer

	if err := json.NewEncoder(&data).Encode(input); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &data)

	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	c.authorize(req)

	return c.do(req, result)
}

func urlRequest(url string, options *ConvertOptions) ConvertRequest {
	return ConvertRequest{
		Sources: []Source{
			HTTPSource(url),
		},

		Options: options,
	}
}
