package service

import "context"

// LLMClientInterface is the single contract the pipeline services have with
// the hosted model backend: one prompt in, free-form text out. Transport
// errors and malformed content are handled by the callers.
type LLMClientInterface interface {
	GenerateText(ctx context.Context, model string, prompt string, temperature float32) (string, error)
}
