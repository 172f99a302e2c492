package roadmap

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"skillgap-backend/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func TestServiceGenerateSuccess(t *testing.T) {
	client := &fakeClient{response: "```json\n" + validPayload + "\n```"}
	svc := NewService(client, time.Second)

	result, err := svc.Generate(context.Background(), Request{ResumeText: "resume text", JobRole: "data-analyst"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.FitPercentage != 72 {
		t.Fatalf("expected fitPercentage 72, got %d", result.FitPercentage)
	}
	if !strings.Contains(client.prompt, "data-analyst") {
		t.Fatalf("prompt did not include job role")
	}
}

func TestServiceGenerateMissingFields(t *testing.T) {
	svc := NewService(&fakeClient{}, time.Second)

	for _, req := range []Request{
		{ResumeText: "", JobRole: "data-analyst"},
		{ResumeText: "resume", JobRole: ""},
		{ResumeText: "   ", JobRole: "data-analyst"},
	} {
		if _, err := svc.Generate(context.Background(), req); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %+v, got %v", req, err)
		}
	}
}

func TestServiceGenerateUpstreamFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection reset")}
	svc := NewService(client, time.Second)

	_, err := svc.Generate(context.Background(), Request{ResumeText: "resume", JobRole: "role"})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestServiceGenerateNotConfigured(t *testing.T) {
	svc := NewService(llm.PlaceholderClient{}, time.Second)

	_, err := svc.Generate(context.Background(), Request{ResumeText: "resume", JobRole: "role"})
	if !errors.Is(err, llm.ErrNotImplemented) {
		t.Fatalf("expected placeholder error to surface, got %v", err)
	}
}

func TestServiceGenerateRejectsInvalidModelOutput(t *testing.T) {
	client := &fakeClient{response: "Sorry, I cannot help with that."}
	svc := NewService(client, time.Second)

	_, err := svc.Generate(context.Background(), Request{ResumeText: "resume", JobRole: "role"})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
