package roadmap

import "errors"

var (
	// ErrMissingFields is returned when resumeText or jobRole is empty.
	ErrMissingFields = errors.New("Both resumeText and jobRole are required")
	// ErrMalformedResponse is returned when the model output is not parseable JSON.
	ErrMalformedResponse = errors.New("Failed to parse AI response. Please try again.")
	// ErrInvalidShape is returned when parsed JSON is missing or mistypes a required field.
	ErrInvalidShape = errors.New("Invalid response structure from AI")
	// ErrUpstream wraps transport or API failures from the model provider.
	ErrUpstream = errors.New("upstream model failure")
)
