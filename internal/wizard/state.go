// Package wizard is the assessment form state machine: a pure reducer over
// model.FormState plus the fixed step sequence and its navigation rules.
package wizard

import (
	"errors"
	"fmt"

	"mmgp/internal/model"
	"mmgp/internal/questionnaire"
)

var (
	ErrUnknownLevel          = errors.New("unknown level")
	ErrQuestionLevelMismatch = errors.New("question does not belong to level")
	ErrUnknownAction         = errors.New("unknown action")
	ErrInvalidAnswer         = errors.New("answer must be sim, nao or empty")
)

// Action is one of the four state transitions.
type Action interface {
	apply(s model.FormState) (model.FormState, error)
}

// UpdateEmail replaces the respondent e-mail.
type UpdateEmail struct {
	Email string
}

// UpdateClassification upserts one classification field. Field names are
// stored verbatim; validation belongs to the caller.
type UpdateClassification struct {
	Field string
	Value string
}

// UpdateQuestion replaces the whole response of one question.
type UpdateQuestion struct {
	Level      model.Level
	QuestionID string
	Response   model.QuestionResponse
}

// SetSubmitted sets the terminal flag.
type SetSubmitted struct {
	Submitted bool
}

// Apply returns the state produced by action. The input state is never
// modified; on error the input is returned unchanged.
func Apply(s model.FormState, a Action) (model.FormState, error) {
	if a == nil {
		return s, ErrUnknownAction
	}
	next, err := a.apply(s.Clone())
	if err != nil {
		return s, err
	}
	return next, nil
}

func (a UpdateEmail) apply(s model.FormState) (model.FormState, error) {
	s.Respondent.Email = a.Email
	return s, nil
}

func (a UpdateClassification) apply(s model.FormState) (model.FormState, error) {
	if s.Classification == nil {
		s.Classification = map[string]string{}
	}
	s.Classification[a.Field] = a.Value
	return s, nil
}

func (a UpdateQuestion) apply(s model.FormState) (model.FormState, error) {
	if !a.Level.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownLevel, a.Level)
	}
	if !questionnaire.Belongs(a.Level, a.QuestionID) {
		return s, fmt.Errorf("%w: %s not in %s", ErrQuestionLevelMismatch, a.QuestionID, a.Level)
	}
	if !validAnswer(a.Response.MeetsRequirement) {
		return s, fmt.Errorf("%w: %s=%q", ErrInvalidAnswer, a.QuestionID, a.Response.MeetsRequirement)
	}
	answers := s.Answers(a.Level)
	if answers == nil {
		answers = model.LevelAnswers{}
	}
	answers[a.QuestionID] = a.Response
	return s.WithAnswers(a.Level, answers), nil
}

func (a SetSubmitted) apply(s model.FormState) (model.FormState, error) {
	s.Submitted = a.Submitted
	return s, nil
}

// ValidateAnswers checks a state built outside the reducer: every question
// id must belong to the level holding it and every answer must be sim, nao
// or unset.
func ValidateAnswers(s model.FormState) error {
	for _, l := range model.Levels {
		for id, resp := range s.Answers(l) {
			if !questionnaire.Belongs(l, id) {
				return fmt.Errorf("%w: %s not in %s", ErrQuestionLevelMismatch, id, l)
			}
			if !validAnswer(resp.MeetsRequirement) {
				return fmt.Errorf("%w: %s=%q", ErrInvalidAnswer, id, resp.MeetsRequirement)
			}
		}
	}
	return nil
}

func validAnswer(a model.Answer) bool {
	return a == model.AnswerUnset || a.Answered()
}

// MergeDetails copies forward the detail fields of prev that next leaves
// untouched. The answer itself always comes from next.
func MergeDetails(prev, next model.QuestionResponse) model.QuestionResponse {
	if len(prev.Details) == 0 {
		return next
	}
	merged := make(map[string]string, len(prev.Details)+len(next.Details))
	for k, v := range prev.Details {
		merged[k] = v
	}
	for k, v := range next.Details {
		merged[k] = v
	}
	next.Details = merged
	return next
}

// Unanswered lists, per level, the ids of questions without a sim/nao answer,
// in catalog order. Levels with everything answered are omitted.
func Unanswered(s model.FormState) map[model.Level][]string {
	out := map[model.Level][]string{}
	for _, l := range model.Levels {
		if ids := UnansweredIn(s, l); len(ids) > 0 {
			out[l] = ids
		}
	}
	return out
}

// UnansweredIn lists the unanswered question ids of one level.
func UnansweredIn(s model.FormState, l model.Level) []string {
	answers := s.Answers(l)
	var ids []string
	for _, id := range questionnaire.QuestionIDs(l) {
		if !answers[id].MeetsRequirement.Answered() {
			ids = append(ids, id)
		}
	}
	return ids
}

// UnansweredCount is the total number of unanswered questions.
func UnansweredCount(s model.FormState) int {
	n := 0
	for _, ids := range Unanswered(s) {
		n += len(ids)
	}
	return n
}
