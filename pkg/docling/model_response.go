package docling

import (
	"encoding/json"
	"strings"
)

// TaskStatus is the job state string reported by the server. Values outside
// the known constants are kept as-is.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "PENDING"
	TaskStatusStarted TaskStatus = "STARTED"
	TaskStatusSuccess TaskStatus = "SUCCESS"
	TaskStatusFailure TaskStatus = "FAILURE"
)

func (s TaskStatus) IsSuccess() bool {
	return strings.EqualFold(string(s), string(TaskStatusSuccess))
}

func (s TaskStatus) IsFailure() bool {
	return strings.EqualFold(string(s), string(TaskStatusFailure))
}

func (s TaskStatus) IsTerminal() bool {
	return s.IsSuccess() || s.IsFailure()
}

type Task struct {
	TaskID     string     `json:"task_id"`
	TaskType   TaskType   `json:"task_type,omitempty"`
	TaskStatus TaskStatus `json:"task_status"`

	TaskPosition *int      `json:"task_position,omitempty"`
	TaskMeta     *TaskMeta `json:"task_meta,omitempty"`
}

type TaskMeta struct {
	NumDocs      int `json:"num_docs"`
	NumProcessed int `json:"num_processed"`
	NumSucceeded int `json:"num_succeeded"`
	NumFailed    int `json:"num_failed"`
}

type Document struct {
	Filename string `json:"filename"`

	Markdown *string         `json:"md_content,omitempty"`
	JSON     json.RawMessage `json:"json_content,omitempty"`
	HTML     *string         `json:"html_content,omitempty"`
	Text     *string         `json:"text_content,omitempty"`
	DocTags  *string         `json:"doctags_content,omitempty"`
}

type ErrorItem struct {
	ComponentType ComponentType `json:"component_type"`
	ModuleName    string        `json:"module_name"`
	ErrorMessage  string        `json:"error_message"`
}

type ProfilingItem struct {
	Scope ProfilingScope `json:"scope"`
	Count int            `json:"count"`

	Times           []float64 `json:"times,omitempty"`
	StartTimestamps []string  `json:"start_timestamps,omitempty"`
}

type ConvertResult struct {
	Document Document         `json:"document"`
	Status   ConversionStatus `json:"status"`

	Errors []ErrorItem `json:"errors,omitempty"`

	ProcessingTime float64                  `json:"processing_time"`
	Timings        map[string]ProfilingItem `json:"timings,omitempty"`
}

// PresignedURLResult is returned instead of ConvertResult when the target
// is not in-body.
type PresignedURLResult struct {
	ProcessingTime float64 `json:"processing_time"`

	NumConverted int `json:"num_converted"`
	NumSucceeded int `json:"num_succeeded"`
	NumFailed    int `json:"num_failed"`
}

type HealthStatus struct {
	Status string `json:"status"`
}

type Version map[string]any

// ValidationError is the body of a 422 response.
type ValidationError struct {
	Detail []ValidationErrorDetail `json:"detail"`
}

type ValidationErrorDetail struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}
