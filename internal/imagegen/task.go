package imagegen

import (
	"context"
	"sync"
	"time"
)

// Status is a task's lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Done reports whether the status is terminal.
func (s Status) Done() bool {
	return s == StatusSucceeded || s == StatusFailed || s == StatusCancelled
}

// Task is one generation request.
type Task struct {
	id        string
	sessionID string
	prompt    string
	style     string
	createdAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}

	mu         sync.RWMutex
	status     Status
	urls       []string
	err        error
	finishedAt time.Time
}

// Snapshot is a point-in-time copy of a task for callers outside the package.
type Snapshot struct {
	ID         string
	SessionID  string
	Prompt     string
	Style      string
	Status     Status
	URLs       []string
	Err        error
	CreatedAt  time.Time
	FinishedAt time.Time
}

func newTask(id, sessionID, prompt, style string, now time.Time, cancel context.CancelFunc) *Task {
	return &Task{
		id:        id,
		sessionID: sessionID,
		prompt:    prompt,
		style:     style,
		createdAt: now,
		cancel:    cancel,
		done:      make(chan struct{}),
		status:    StatusPending,
	}
}

func (t *Task) ID() string        { return t.id }
func (t *Task) SessionID() string { return t.sessionID }

// Status returns the current status.
func (t *Task) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// Result returns the image URLs or the failure. Both are nil while running.
func (t *Task) Result() ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	urls := make([]string, len(t.urls))
	copy(urls, t.urls)
	return urls, t.err
}

// Snapshot copies the task state.
func (t *Task) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	urls := make([]string, len(t.urls))
	copy(urls, t.urls)
	return Snapshot{
		ID:         t.id,
		SessionID:  t.sessionID,
		Prompt:     t.prompt,
		Style:      t.style,
		Status:     t.status,
		URLs:       urls,
		Err:        t.err,
		CreatedAt:  t.createdAt,
		FinishedAt: t.finishedAt,
	}
}

// Wait blocks until the task finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when the task reaches a terminal status.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel asks the task to stop. It is safe to call more than once.
func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) markRunning() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status == StatusPending {
		t.status = StatusRunning
	}
}

func (t *Task) finish(status Status, urls []string, err error, at time.Time) {
	t.mu.Lock()
	t.status = status
	t.urls = urls
	t.err = err
	t.finishedAt = at
	t.mu.Unlock()
	close(t.done)
}

func (t *Task) releaseContext() {
	t.cancel()
}
