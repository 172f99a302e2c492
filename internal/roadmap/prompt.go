package roadmap

import (
	_ "embed"
	"strings"
)

//go:embed prompts/roadmap.txt
var roadmapPrompt string

// BuildPrompt renders the fixed instruction template with both inputs embedded
// verbatim. Pure and deterministic.
func BuildPrompt(resumeText, jobRole string) string {
	prompt := strings.ReplaceAll(roadmapPrompt, "{{RESUME_TEXT}}", resumeText)
	return strings.ReplaceAll(prompt, "{{JOB_ROLE}}", jobRole)
}
