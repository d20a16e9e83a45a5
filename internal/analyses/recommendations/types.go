package recommendations

// Recommendation represents a deterministic suggestion derived from a score result.
type Recommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Why      string `json:"why"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
	Order    int    `json:"order"`
}

// Finding is a minimal penalty representation used by the recommendation engine.
type Finding struct {
	Rule       string
	Section    string
	Penalty    int
	Problem    string
	Suggestion string
}

// Input is the data needed for recommendation generation.
type Input struct {
	Findings        []Finding
	FoundKeywords   []string
	MissingKeywords []string
}
