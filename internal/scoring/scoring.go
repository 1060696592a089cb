// Package scoring computes MMGP level percentages and the composite maturity
// index (Prado-MMGP model), and maps them onto the fixed result bands.
//
// None of the functions fail: nil or partial answer maps score as empty.
package scoring

import "mmgp/internal/model"

// PointsPerYes is awarded for every question answered "sim".
const PointsPerYes = 5

// LevelScore returns the percentage (0-100) of answered questions that meet
// the requirement. Unanswered entries affect neither numerator nor denominator;
// a level with nothing answered scores 0.
func LevelScore(answers model.LevelAnswers) float64 {
	points := 0
	answered := 0
	for _, r := range answers {
		switch r.MeetsRequirement {
		case model.AnswerYes:
			points += PointsPerYes
			answered++
		case model.AnswerNo:
			answered++
		}
	}
	if answered == 0 {
		return 0
	}
	return float64(points) / float64(answered*PointsPerYes) * 100
}

// Scores holds the four level percentages.
type Scores struct {
	Level2 float64 `json:"level2"`
	Level3 float64 `json:"level3"`
	Level4 float64 `json:"level4"`
	Level5 float64 `json:"level5"`
}

// Of returns the score of level l.
func (s Scores) Of(l model.Level) float64 {
	switch l {
	case model.Level2:
		return s.Level2
	case model.Level3:
		return s.Level3
	case model.Level4:
		return s.Level4
	case model.Level5:
		return s.Level5
	}
	return 0
}

// ScoreState scores every level of a form state.
func ScoreState(s model.FormState) Scores {
	return Scores{
		Level2: LevelScore(s.Level2),
		Level3: LevelScore(s.Level3),
		Level4: LevelScore(s.Level4),
		Level5: LevelScore(s.Level5),
	}
}

// MaturityIndex is (100 + sum of level scores) / 100, in [1, 5] when every
// score is in [0, 100].
func MaturityIndex(s Scores) float64 {
	return (100 + s.Level2 + s.Level3 + s.Level4 + s.Level5) / 100
}
