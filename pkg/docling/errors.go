package docling

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error kinds, matched with errors.Is.
var (
	ErrNetwork    = errors.New("network error")
	ErrAPI        = errors.New("api error")
	ErrDecode     = errors.New("decode error")
	ErrFile       = errors.New("file error")
	ErrTaskFailed = errors.New("task failed")
	ErrTimeout    = errors.New("task timed out")

	ErrInvalidOptions = errors.New("invalid options")
)

// NetworkError wraps a transport failure (dns, connect, tls, reset).
type NetworkError struct {
	Method string
	URL    string

	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// APIError is a non-2xx response. Body holds the raw response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body

	if body == "" {
		body = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("api error (HTTP %d): %s", e.StatusCode, body)
}

// ValidationError decodes the body of a 422 response.
func (e *APIError) ValidationError() (*ValidationError, bool) {
	if e.StatusCode != http.StatusUnprocessableEntity {
		return nil, false
	}

	var result ValidationError

	if err := json.Unmarshal([]byte(e.Body), &result); err != nil {
		return nil, false
	}

	return &result, true
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// DecodeError means the response body did not match the expected schema.
type DecodeError struct {
	Body []byte

	Err error
}

func (e *DecodeError) Error() string {
	return "decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// FileError is a local file that could not be read for upload.
type FileError struct {
	Path string

	Err error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == ErrFile
}

type TaskFailedError struct {
	TaskID string
	Status TaskStatus
}

func (e *TaskFailedError) Error() string {
	return fmt.Sprintf("task %s failed with status: %s", e.TaskID, e.Status)
}

func (e *TaskFailedError) Is(target error) bool {
	return target == ErrTaskFailed
}

// TimeoutError means the local wait budget ran out. The task may still be
// running on the server.
type TimeoutError struct {
	TaskID  string
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("task %s timed out after %.1fs", e.TaskID, e.Elapsed.Seconds())
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// Retryable reports whether resubmitting the same call may succeed.
// Only transport failures qualify.
func Retryable(err error) bool {
	return errors.Is(err, ErrNetwork)
}
