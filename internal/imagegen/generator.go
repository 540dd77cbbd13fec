// Package imagegen runs AI design generations as cancellable background tasks.
package imagegen

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// DefaultMaxRetained caps how many finished tasks are kept for polling.
const DefaultMaxRetained = 1000

// Options configures a Generator.
type Options struct {
	Count       int           // images per request
	Size        string        // provider size string
	Timeout     time.Duration // per task; 0 means no deadline
	MaxRetained int
}

// Generator starts generation tasks. A session has at most one task in flight.
type Generator struct {
	backend Backend
	opts    Options
	clock   clock.Clock
	logger  *zap.Logger

	root   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	closed   bool
	tasks    map[string]*Task
	order    []string          // task IDs, oldest first
	inFlight map[string]string // session ID -> task ID
}

// NewGenerator creates a generator. Call Close to cancel running tasks.
func NewGenerator(backend Backend, opts Options, clk clock.Clock, logger *zap.Logger) *Generator {
	if opts.Count <= 0 {
		opts.Count = 1
	}
	if opts.MaxRetained <= 0 {
		opts.MaxRetained = DefaultMaxRetained
	}
	root, cancel := context.WithCancel(context.Background())
	return &Generator{
		backend:  backend,
		opts:     opts,
		clock:    clk,
		logger:   logger,
		root:     root,
		cancel:   cancel,
		tasks:    make(map[string]*Task),
		inFlight: make(map[string]string),
	}
}

// Start validates the prompt and style and launches a task for sessionID.
func (g *Generator) Start(sessionID, prompt, style string) (*Task, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	style, err := ParseStyle(style)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil, ErrGeneratorClosed
	}
	if id, ok := g.inFlight[sessionID]; ok {
		g.mu.Unlock()
		return nil, errors.Wrapf(ErrGenerationInFlight, "task %s", id)
	}

	ctx, cancel := context.WithCancel(g.root)
	if g.opts.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, g.opts.Timeout)
		parentCancel := cancel
		cancel = func() {
			timeoutCancel()
			parentCancel()
		}
	}

	task := newTask(uuid.New().String(), sessionID, strings.TrimSpace(prompt), style, g.clock.Now(), cancel)
	g.tasks[task.id] = task
	g.order = append(g.order, task.id)
	g.inFlight[sessionID] = task.id
	g.pruneLocked()
	g.wg.Add(1)
	g.mu.Unlock()

	g.logger.Info("image generation started",
		zap.String("task_id", task.id),
		zap.String("session_id", sessionID),
		zap.String("style", style),
		zap.String("backend", g.backend.Name()),
	)

	go g.run(ctx, task)
	return task, nil
}

// Get returns a task owned by sessionID.
func (g *Generator) Get(sessionID, taskID string) (*Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	task, ok := g.tasks[taskID]
	if !ok || task.sessionID != sessionID {
		return nil, errors.Wrapf(ErrTaskNotFound, "id %s", taskID)
	}
	return task, nil
}

// Cancel stops a task owned by sessionID. Finished tasks are unaffected.
func (g *Generator) Cancel(sessionID, taskID string) (*Task, error) {
	task, err := g.Get(sessionID, taskID)
	if err != nil {
		return nil, err
	}
	task.Cancel()
	return task, nil
}

// Close cancels every running task and waits for them to finish.
func (g *Generator) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.cancel()
	g.wg.Wait()
}

func (g *Generator) run(ctx context.Context, task *Task) {
	defer g.wg.Done()
	defer task.releaseContext()

	task.markRunning()

	urls, err := g.backend.Generate(ctx, Request{
		Prompt: BuildPrompt(task.prompt, task.style),
		Count:  g.opts.Count,
		Size:   g.opts.Size,
	})

	status := StatusSucceeded
	switch {
	case err == nil:
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		status = StatusFailed
		err = errors.Wrapf(ErrExternalService, "timed out after %s", g.opts.Timeout)
	case ctx.Err() != nil:
		status = StatusCancelled
		err = context.Canceled
	default:
		status = StatusFailed
	}

	g.mu.Lock()
	if g.inFlight[task.sessionID] == task.id {
		delete(g.inFlight, task.sessionID)
	}
	g.mu.Unlock()

	task.finish(status, urls, err, g.clock.Now())

	fields := []zap.Field{
		zap.String("task_id", task.id),
		zap.String("session_id", task.sessionID),
		zap.String("status", string(status)),
	}
	switch status {
	case StatusSucceeded:
		g.logger.Info("image generation finished", append(fields, zap.Int("images", len(urls)))...)
	case StatusCancelled:
		g.logger.Info("image generation cancelled", fields...)
	default:
		g.logger.Warn("image generation failed", append(fields, zap.Error(err))...)
	}
}

// pruneLocked drops the oldest finished tasks beyond MaxRetained.
func (g *Generator) pruneLocked() {
	excess := len(g.order) - g.opts.MaxRetained
	if excess <= 0 {
		return
	}

	kept := g.order[:0]
	for _, id := range g.order {
		if excess > 0 && g.tasks[id].Status().Done() {
			delete(g.tasks, id)
			excess--
			continue
		}
		kept = append(kept, id)
	}
	g.order = kept
}
