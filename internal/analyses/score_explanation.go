package analyses

// ScoreExplanation breaks the points lost down by résumé section.
type ScoreExplanation struct {
	Components []ScoreComponent `json:"components"`
}

// ScoreComponent is one section of the breakdown.
type ScoreComponent struct {
	Key        Section  `json:"key"`
	Label      string   `json:"label"`
	PointsLost int      `json:"pointsLost"`
	Rules      []Rule   `json:"rules"`
	Dragged    []string `json:"dragged"`
}

var scoreExplanationOrder = []struct {
	key   Section
	label string
}{
	{SectionPersonal, "Contact Details"},
	{SectionSummary, "Professional Summary"},
	{SectionExperience, "Work Experience"},
	{SectionEducation, "Education"},
	{SectionSkills, "Skills"},
	{SectionKeywords, "Keyword Coverage"},
	{SectionContent, "Content Length"},
}

// Explain groups findings by section. Every section is listed, including those with no
// findings, so the components always sum to 100 minus the unclamped score.
func Explain(findings []Finding) ScoreExplanation {
	bySection := make(map[Section]*ScoreComponent, len(scoreExplanationOrder))
	out := ScoreExplanation{Components: make([]ScoreComponent, 0, len(scoreExplanationOrder))}
	for _, entry := range scoreExplanationOrder {
		out.Components = append(out.Components, ScoreComponent{
			Key:     entry.key,
			Label:   entry.label,
			Rules:   []Rule{},
			Dragged: []string{},
		})
	}
	for i := range out.Components {
		bySection[out.Components[i].Key] = &out.Components[i]
	}
	for _, f := range findings {
		c, ok := bySection[f.Section]
		if !ok {
			continue
		}
		c.PointsLost += f.Penalty
		c.Rules = appendUniqueRule(c.Rules, f.Rule)
		text := f.Issue
		if text == "" {
			text = f.Suggestion
		}
		if text != "" {
			c.Dragged = append(c.Dragged, text)
		}
	}
	return out
}

// PointsLost sums the penalties of all components.
func (e ScoreExplanation) PointsLost() int {
	total := 0
	for _, c := range e.Components {
		total += c.PointsLost
	}
	return total
}

func appendUniqueRule(rules []Rule, r Rule) []Rule {
	for _, existing := range rules {
		if existing == r {
			return rules
		}
	}
	return append(rules, r)
}
