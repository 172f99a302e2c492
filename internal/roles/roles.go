package roles

// Role is one entry of the static role catalog.
type Role struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// List returns the role catalog offered for analysis.
func List() []Role {
	return []Role{
		{ID: "data-analyst", Title: "Data Analyst", Category: "Analytics"},
		{ID: "software-engineer", Title: "Software Engineer", Category: "Engineering"},
		{ID: "product-manager", Title: "Product Manager", Category: "Management"},
		{ID: "cloud-engineer", Title: "Cloud Engineer", Category: "Engineering"},
		{ID: "devops-engineer", Title: "DevOps Engineer", Category: "Engineering"},
		{ID: "data-scientist", Title: "Data Scientist", Category: "Analytics"},
		{ID: "frontend-developer", Title: "Frontend Developer", Category: "Engineering"},
		{ID: "backend-developer", Title: "Backend Developer", Category: "Engineering"},
		{ID: "fullstack-developer", Title: "Full Stack Developer", Category: "Engineering"},
		{ID: "ux-designer", Title: "UX Designer", Category: "Design"},
		{ID: "ui-designer", Title: "UI Designer", Category: "Design"},
		{ID: "project-manager", Title: "Project Manager", Category: "Management"},
		{ID: "business-analyst", Title: "Business Analyst", Category: "Analytics"},
		{ID: "qa-engineer", Title: "QA Engineer", Category: "Engineering"},
		{ID: "security-engineer", Title: "Security Engineer", Category: "Engineering"},
	}
}

// ByID looks a role up by its identifier.
func ByID(id string) (Role, bool) {
	for _, r := range List() {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}
