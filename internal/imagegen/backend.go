package imagegen

import "context"

// Request is one provider call.
type Request struct {
	Prompt string // fully templated prompt
	Count  int
	Size   string // e.g. "512x512"
}

// Backend calls an image provider and returns image URLs. Failures wrap
// ErrExternalService. There are no retries.
type Backend interface {
	Generate(ctx context.Context, req Request) ([]string, error)
	Name() string
}
