package roadmap

// Request is the input contract for roadmap generation.
type Request struct {
	ResumeText string `json:"resumeText"`
	JobRole    string `json:"jobRole"`
}

// Phase is one labeled period of the learning roadmap.
type Phase struct {
	Period    string   `json:"period"`
	Title     string   `json:"title"`
	Goals     []string `json:"goals"`
	Resources []string `json:"resources"`
}

// Result is the validated analysis returned by the model. All six fields are
// required; a response missing any of them is rejected outright.
type Result struct {
	SkillsExtracted    []string `json:"skillsExtracted"`
	MissingSkills      []string `json:"missingSkills"`
	SuggestedProjects  []string `json:"suggestedProjects"`
	Roadmap            []Phase  `json:"roadmap"`
	EstimatedTimeframe string   `json:"estimatedTimeframe"`
	FitPercentage      int      `json:"fitPercentage"`
}
