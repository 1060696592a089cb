package wizard

import (
	"errors"
	"math"
	"strings"

	"mmgp/internal/model"
)

var (
	ErrEmailRequired = errors.New("respondent email is required")
	ErrUnknownStep   = errors.New("unknown step")
	ErrLastStep      = errors.New("already at the last step")
)

// Steps is the fixed wizard sequence.
var Steps = []model.Step{
	model.StepEmail,
	model.StepClassification,
	model.StepLevel2,
	model.StepLevel3,
	model.StepLevel4,
	model.StepLevel5,
	model.StepResults,
}

// StepIndex returns the position of step, or -1.
func StepIndex(step model.Step) int {
	for i, s := range Steps {
		if s == step {
			return i
		}
	}
	return -1
}

// Progress is the completion percentage shown for step.
func Progress(step model.Step) int {
	i := StepIndex(step)
	if i < 0 {
		return 0
	}
	return int(math.Round(float64(i) / float64(len(Steps)-1) * 100))
}

// LevelOf returns the graded level a question step shows.
func LevelOf(step model.Step) (model.Level, bool) {
	l := model.Level(step)
	return l, l.Valid()
}

// CanProceed reports whether Next is allowed from step.
func CanProceed(step model.Step, s model.FormState) bool {
	switch step {
	case model.StepEmail:
		return strings.TrimSpace(s.Respondent.Email) != ""
	case model.StepResults:
		return false
	}
	return StepIndex(step) >= 0
}

// Next returns the step after step. Leaving the e-mail step requires a
// non-empty e-mail.
func Next(step model.Step, s model.FormState) (model.Step, error) {
	i := StepIndex(step)
	switch {
	case i < 0:
		return step, ErrUnknownStep
	case i == len(Steps)-1:
		return step, ErrLastStep
	case step == model.StepEmail && !CanProceed(step, s):
		return step, ErrEmailRequired
	}
	return Steps[i+1], nil
}

// Previous returns the step before step. It is always permitted and stays
// put on the first step.
func Previous(step model.Step) (model.Step, error) {
	i := StepIndex(step)
	if i < 0 {
		return step, ErrUnknownStep
	}
	if i == 0 {
		return step, nil
	}
	return Steps[i-1], nil
}
