package generate_images

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/imagegen"
)

// StartRequest submits a design idea.
type StartRequest struct {
	SessionID string
	Prompt    string
	Style     string
}

// TaskRequest addresses an existing task.
type TaskRequest struct {
	SessionID string
	TaskID    string
}

// Interactor handles the AI Studio generation use cases.
type Interactor struct {
	sessions  contracts.SessionRepository
	generator *imagegen.Generator
}

// NewInteractor creates a new generate images interactor.
func NewInteractor(sessions contracts.SessionRepository, generator *imagegen.Generator) *Interactor {
	return &Interactor{
		sessions:  sessions,
		generator: generator,
	}
}

// Start launches a background generation for the session and returns the
// pending task.
func (i *Interactor) Start(ctx context.Context, req *StartRequest) (imagegen.Snapshot, error) {
	if err := i.requireSession(ctx, req.SessionID); err != nil {
		return imagegen.Snapshot{}, err
	}

	task, err := i.generator.Start(req.SessionID, req.Prompt, req.Style)
	if err != nil {
		return imagegen.Snapshot{}, err
	}
	return task.Snapshot(), nil
}

// Get returns the task's current state.
func (i *Interactor) Get(ctx context.Context, req *TaskRequest) (imagegen.Snapshot, error) {
	if err := i.requireSession(ctx, req.SessionID); err != nil {
		return imagegen.Snapshot{}, err
	}

	task, err := i.generator.Get(req.SessionID, req.TaskID)
	if err != nil {
		return imagegen.Snapshot{}, err
	}
	return task.Snapshot(), nil
}

// Cancel stops a running task. The returned state may still be running
// until the provider call unwinds.
func (i *Interactor) Cancel(ctx context.Context, req *TaskRequest) (imagegen.Snapshot, error) {
	if err := i.requireSession(ctx, req.SessionID); err != nil {
		return imagegen.Snapshot{}, err
	}

	task, err := i.generator.Cancel(req.SessionID, req.TaskID)
	if err != nil {
		return imagegen.Snapshot{}, err
	}
	return task.Snapshot(), nil
}

func (i *Interactor) requireSession(ctx context.Context, id string) error {
	return i.sessions.View(ctx, id, func(*domain.Session) error { return nil })
}
