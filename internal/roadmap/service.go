package roadmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/telemetry"
)

const defaultTimeout = 90 * time.Second

// Service runs the prompt -> model -> validate pipeline. Each call is a
// single sequential unit of work; nothing is persisted server-side.
type Service struct {
	LLM     llm.Client
	Timeout time.Duration
}

// NewService constructs a Service with the given client and upstream timeout.
func NewService(client llm.Client, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{LLM: client, Timeout: timeout}
}

// Generate produces a validated roadmap for the request. A single upstream
// attempt is made; every failure is surfaced once to the caller.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobRole) == "" {
		return Result{}, ErrMissingFields
	}
	if s == nil || s.LLM == nil {
		return Result{}, llm.ErrNotConfigured
	}

	prompt := BuildPrompt(req.ResumeText, req.JobRole)

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	raw, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	result, err := Validate(raw)
	if err != nil {
		// Keep the raw text in server logs for diagnosis; it is never
		// forwarded to the client.
		telemetry.Error("roadmap.validate.rejected", map[string]any{
			"job_role": req.JobRole,
			"reason":   err.Error(),
			"raw":      raw,
		})
		return Result{}, err
	}

	return result, nil
}
