package screening

// Result is the outcome of comparing a resume against a job description.
// Score is an integer percentage in 0-100.
type Result struct {
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}
