package docling

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PollTask fetches the current status of a task. A positive wait is passed
// to the server as a long-poll hint; the server may hold the request open
// for up to that long before answering.
func (c *Client) PollTask(ctx context.Context, taskID string, wait time.Duration) (*Task, error) {
	if taskID == "" {
		return nil, errors.New("invalid task id")
	}

	path := "/v1/status/poll/" + url.PathEscape(taskID)

	if wait > 0 {
		path += "?wait=" + strconv.FormatFloat(wait.Seconds(), 'f', -1, 64)
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)

	if err != nil {
		return nil, err
	}

	c.authorize(req)

	var task Task

	if err := c.do(req, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// TaskResult fetches the result of a task that reported success.
func (c *Client) TaskResult(ctx context.Context, taskID string) (*ConvertResult, error) {
	if taskID == "" {
		return nil, errors.New("invalid task id")
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/result/"+url.PathEscape(taskID), nil)

	if err != nil {
		return nil, err
	}

	c.authorize(req)

	var result ConvertResult

	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
