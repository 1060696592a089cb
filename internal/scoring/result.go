package scoring

import (
	"mmgp/internal/model"
	"mmgp/internal/questionnaire"
)

// LevelResult is one row of the results table.
type LevelResult struct {
	Level       model.Level `json:"level"`
	Title       string      `json:"title"`
	Score       float64     `json:"score"`
	Tier        Tier        `json:"tier"`
	Description string      `json:"description"`
}

// Result is everything the results screen shows.
type Result struct {
	MaturityIndex  float64       `json:"maturityIndex"`
	MaturityLevel  MaturityLevel `json:"maturityLevel"`
	Interpretation string        `json:"interpretation"`
	Scores         Scores        `json:"scores"`
	Levels         []LevelResult `json:"levels"`
}

// Evaluate scores a form state.
func Evaluate(s model.FormState) Result {
	return FromScores(ScoreState(s))
}

// FromScores builds the result view from already computed level scores, as
// stored on persisted records.
func FromScores(scores Scores) Result {
	index := MaturityIndex(scores)
	res := Result{
		MaturityIndex:  index,
		MaturityLevel:  Classify(index),
		Interpretation: Interpretation(index),
		Scores:         scores,
		Levels:         make([]LevelResult, 0, len(model.Levels)),
	}
	for _, l := range model.Levels {
		score := scores.Of(l)
		title := string(l)
		if sec, ok := questionnaire.SectionFor(l); ok {
			title = sec.Title
		}
		res.Levels = append(res.Levels, LevelResult{
			Level:       l,
			Title:       title,
			Score:       score,
			Tier:        TierFor(score),
			Description: Description(l, score),
		})
	}
	return res
}
