// Package pipeline provides the stage infrastructure and shared types for reframe.
package pipeline

import (
	"context"
)

// Stage is one step of a reframe run: it turns an input into an output.
// Stages hold no per-run state, so a single Stage may serve concurrent callers.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc adapts a plain function to the Stage interface.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage interface.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
