package game

// ScoreBreakdown is a derived, read-only view of a position's score,
// decomposed into the three scoring categories with per-category reason
// strings grounding each awarded (or pending) component.
type ScoreBreakdown struct {
	Total         int      `json:"total"`
	CatScore      int      `json:"cat_score"`
	GoalScore     int      `json:"goal_score"`
	ButtonScore   int      `json:"button_score"`
	CatReasons    []string `json:"cat_reasons,omitempty"`
	GoalReasons   []string `json:"goal_reasons,omitempty"`
	ButtonReasons []string `json:"button_reasons,omitempty"`
}

// Evaluate scores the current position. It is referentially pure: the
// grid is never mutated, and repeated calls yield identical breakdowns.
func (s *GameState) Evaluate() ScoreBreakdown {
	var b ScoreBreakdown
	for _, cat := range s.cats {
		score, _, reasons := cat.Evaluate(s.grid)
		b.CatScore += score
		b.CatReasons = append(b.CatReasons, reasons...)
	}
	for _, goal := range s.goals {
		score, reasons := goal.Evaluate(s.grid)
		b.GoalScore += score
		b.GoalReasons = append(b.GoalReasons, reasons...)
	}
	buttonScore, buttonReasons := EvaluateButtons(s.grid)
	b.ButtonScore = buttonScore
	b.ButtonReasons = buttonReasons

	b.Total = b.CatScore + b.GoalScore + b.ButtonScore
	return b
}
