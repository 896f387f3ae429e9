package docling

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultTimeout      = 5 * time.Minute
	DefaultPollInterval = 5 * time.Second
)

type TaskState int

const (
	StateSubmitting TaskState = iota
	StateSubmitted
	StatePolling
	StateSucceeded
	StateFailed
	StateTimedOut

	// StateError covers submission, transport and result fetch errors as
	// well as cancellation.
	StateError
)

func (s TaskState) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StatePolling:
		return "polling"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed_out"
	case StateError:
		return "error"
	}

	return "unknown"
}

// Sleeper suspends the wait loop between polls.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext sleeps for d or until ctx is done, whichever comes first.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SleepBlocking blocks the calling goroutine for the full duration and only
// checks ctx afterwards.
func SleepBlocking(ctx context.Context, d time.Duration) error {
	time.Sleep(d)
	return ctx.Err()
}

type WaitOptions struct {
	// Timeout is the overall budget, measured from submission.
	Timeout time.Duration

	// PollInterval is the local pause after a non-terminal poll.
	PollInterval time.Duration

	// LongPoll, when positive, is sent as the server-side wait hint and
	// replaces the local pause.
	LongPoll time.Duration

	Sleep Sleeper

	// OnPoll observes every status returned by the server.
	OnPoll func(task Task)
}

func (o *WaitOptions) withDefaults() WaitOptions {
	var result WaitOptions

	if o != nil {
		result = *o
	}

	if result.Timeout <= 0 {
		result.Timeout = DefaultTimeout
	}

	if result.PollInterval <= 0 {
		result.PollInterval = DefaultPollInterval
	}

	if result.Sleep == nil {
		result.Sleep = SleepContext
	}

	return result
}

type taskAPI interface {
	PollTask(ctx context.Context, taskID string, wait time.Duration) (*Task, error)
	TaskResult(ctx context.Context, taskID string) (*ConvertResult, error)
}

// Await polls a submitted task until it succeeds, fails or the budget counted
// from start runs out. The result is fetched exactly once, after a success
// status. Poll and fetch errors are returned as they are. A timeout only
// stops local waiting; the task keeps running on the server.
func (c *Client) Await(ctx context.Context, taskID string, start time.Time, options *WaitOptions) (*ConvertResult, error) {
	return awaitTask(ctx, c, taskID, start, options, nil)
}

func awaitTask(ctx context.Context, api taskAPI, taskID string, start time.Time, options *WaitOptions, track func(TaskState)) (*ConvertResult, error) {
	o := options.withDefaults()

	if track == nil {
		track = func(TaskState) {}
	}

	for {
		wait := o.LongPoll

		if wait > 0 {
			wait = max(min(wait, o.Timeout-time.Since(start)), 0)
		}

		track(StatePolling)

		task, err := api.PollTask(ctx, taskID, wait)

		if err != nil {
			return nil, err
		}

		if o.OnPoll != nil {
			o.OnPoll(*task)
		}

		if task.TaskStatus.IsSuccess() {
			track(StateSucceeded)
			return api.TaskResult(ctx, taskID)
		}

		if task.TaskStatus.IsFailure() {
			track(StateFailed)
			return nil, &TaskFailedError{TaskID: taskID, Status: task.TaskStatus}
		}

		elapsed := time.Since(start)

		if elapsed >= o.Timeout {
			track(StateTimedOut)
			return nil, &TimeoutError{TaskID: taskID, Elapsed: elapsed}
		}

		if o.LongPoll > 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			continue
		}

		if err := o.Sleep(ctx, min(o.PollInterval, o.Timeout-elapsed)); err != nil {
			return nil, err
		}
	}
}

// WaitForConversion submits the request as a task and waits for its result.
func (c *Client) WaitForConversion(ctx context.Context, input ConvertRequest, options *WaitOptions) (*ConvertResult, error) {
	start := time.Now()

	task, err := c.ConvertAsync(ctx, input)

	if err != nil {
		return nil, err
	}

	return c.Await(ctx, task.TaskID, start, options)
}

func (c *Client) WaitForURL(ctx context.Context, url string, convert *ConvertOptions, options *WaitOptions) (*ConvertResult, error) {
	return c.WaitForConversion(ctx, urlRequest(url, convert), options)
}

// WaitForFile uploads local files as a task and waits for its result.
func (c *Client) WaitForFile(ctx context.Context, input FileRequest, options *WaitOptions) (*ConvertResult, error) {
	start := time.Now()

	task, err := c.ConvertFileAsync(ctx, input)

	if err != nil {
		return nil, err
	}

	return c.Await(ctx, task.TaskID, start, options)
}

// Job is a conversion running on its own goroutine. It drives the same
// state machine as WaitForConversion.
type Job struct {
	done chan struct{}

	mu     sync.Mutex
	state  TaskState
	taskID string

	result *ConvertResult
	err    error
}

// Start submits the request and waits for it in the background.
func (c *Client) Start(ctx context.Context, input ConvertRequest, options *WaitOptions) *Job {
	return c.start(ctx, func(ctx context.Context) (*Task, error) {
		return c.ConvertAsync(ctx, input)
	}, options)
}

// StartFile uploads local files and waits for them in the background.
func (c *Client) StartFile(ctx context.Context, input FileRequest, options *WaitOptions) *Job {
	return c.start(ctx, func(ctx context.Context) (*Task, error) {
		return c.ConvertFileAsync(ctx, input)
	}, options)
}

func (c *Client) start(ctx context.Context, submit func(context.Context) (*Task, error), options *WaitOptions) *Job {
	j := &Job{
		done: make(chan struct{}),
	}

	go func() {
		defer close(j.done)

		start := time.Now()

		task, err := submit(ctx)

		if err != nil {
			j.finish(nil, err)
			return
		}

		j.mu.Lock()
		j.taskID = task.TaskID
		j.state = StateSubmitted
		j.mu.Unlock()

		j.finish(awaitTask(ctx, c, task.TaskID, start, options, j.setState))
	}()

	return j
}

func (j *Job) finish(result *ConvertResult, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err != nil && j.state != StateFailed && j.state != StateTimedOut {
		j.state = StateError
	}

	j.result = result
	j.err = err
}

func (j *Job) setState(s TaskState) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.state = s
}

func (j *Job) State() TaskState {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.state
}

// TaskID is empty until the server accepted the submission.
func (j *Job) TaskID() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.taskID
}

func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Result blocks until the job finished.
func (j *Job) Result() (*ConvertResult, error) {
	<-j.done
	return j.result, j.err
}
