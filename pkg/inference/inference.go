package inference

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoContent is returned when the provider answers successfully but yields
// zero candidates.
var ErrNoContent = errors.New("no content generated")

// Params are the sampling knobs for one completion call. Safety toggles the
// fixed harm thresholds; side-channel narrative calls run without them, the
// same as the primary calls always run with them.
type Params struct {
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
	Safety          bool
}

// UpstreamError carries the provider's error payload for a non-2xx response.
type UpstreamError struct {
	StatusCode int
	Message    string
	Details    any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream completion error (status %d): %s", e.StatusCode, e.Message)
}

// Inferencer dispatches a single completion prompt. Implementations make
// exactly one network call per invocation and never retry; recovery is the
// caller's responsibility.
type Inferencer interface {
	Complete(ctx context.Context, params Params, prompt string) (string, error)
}
