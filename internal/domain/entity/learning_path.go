package entity

// LearningStep is one stage of a learning path.
type LearningStep struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Skills      []string `json:"skills"`
}

// LearningPath is a generated roadmap toward a user goal.
type LearningPath struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Level          string         `json:"level"`
	TimeCommitment string         `json:"timeCommitment"`
	TotalDuration  string         `json:"totalDuration"`
	Outcomes       []string       `json:"outcomes"`
	Steps          []LearningStep `json:"steps"`
}
