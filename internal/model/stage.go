package model

// Stage is a named, score-range-bound classification of operating
// maturity. Stages are never persisted; they are recomputed from the
// score at read time.
type Stage struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	MinScore    int    `json:"minScore"`
	MaxScore    int    `json:"maxScore"`
}
