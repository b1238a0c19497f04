package llm

import (
	"context"
	"fmt"
)

// Client is the seam between the recommendation flow and a generative model
// provider. Complete sends a single prompt and returns the raw reply text,
// surrounding prose and all.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// StatusError is returned when a provider answers with a non-success HTTP
// status. The reply body is never inspected for JSON in that case.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("model endpoint returned status %d: %s", e.Code, e.Body)
}
