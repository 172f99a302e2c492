package roadmap

import (
	"encoding/json"
	"math"
	"strings"
)

// StripFences removes markdown code-fence tokens the model sometimes wraps
// around its JSON despite instructions.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// resultShape mirrors Result with pointer fields so that absent and null
// fields are distinguishable from empty ones.
type resultShape struct {
	SkillsExtracted    *[]string `json:"skillsExtracted"`
	MissingSkills      *[]string `json:"missingSkills"`
	SuggestedProjects  *[]string `json:"suggestedProjects"`
	Roadmap            *[]Phase  `json:"roadmap"`
	EstimatedTimeframe *string   `json:"estimatedTimeframe"`
	FitPercentage      *float64  `json:"fitPercentage"`
}

// Validate strips fencing, parses the raw model text, and checks presence and
// type of every Result field. The model is untrusted input: a response that
// does not match the contract exactly is rejected whole, never repaired or
// partially accepted.
func Validate(raw string) (Result, error) {
	clean := StripFences(raw)

	var probe any
	if err := json.Unmarshal([]byte(clean), &probe); err != nil {
		return Result{}, ErrMalformedResponse
	}
	if _, ok := probe.(map[string]any); !ok {
		return Result{}, ErrInvalidShape
	}

	var shape resultShape
	if err := json.Unmarshal([]byte(clean), &shape); err != nil {
		// Parseable JSON that fails typed decoding is a shape problem.
		return Result{}, ErrInvalidShape
	}

	if shape.SkillsExtracted == nil ||
		shape.MissingSkills == nil ||
		shape.SuggestedProjects == nil ||
		shape.Roadmap == nil ||
		shape.EstimatedTimeframe == nil ||
		shape.FitPercentage == nil {
		return Result{}, ErrInvalidShape
	}

	fit := *shape.FitPercentage
	if fit != math.Trunc(fit) || fit < 0 || fit > 100 {
		return Result{}, ErrInvalidShape
	}

	return Result{
		SkillsExtracted:    *shape.SkillsExtracted,
		MissingSkills:      *shape.MissingSkills,
		SuggestedProjects:  *shape.SuggestedProjects,
		Roadmap:            *shape.Roadmap,
		EstimatedTimeframe: *shape.EstimatedTimeframe,
		FitPercentage:      int(fit),
	}, nil
}
