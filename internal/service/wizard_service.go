package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"mmgp/internal/cache"
	"mmgp/internal/model"
	"mmgp/internal/scoring"
	"mmgp/internal/wizard"
)

// WizardService drives server-held assessment wizards
type WizardService struct {
	sessions    cache.WizardCache
	submissions *SubmissionService
	notifier    Notifier
}

// NewWizardService creates a new wizard service
func NewWizardService(sessions cache.WizardCache, submissions *SubmissionService) *WizardService {
	return &WizardService{
		sessions:    sessions,
		submissions: submissions,
		notifier:    nopNotifier{},
	}
}

// SetNotifier sets the notification sink (called after hub is created)
func (s *WizardService) SetNotifier(n Notifier) {
	if n == nil {
		n = nopNotifier{}
	}
	s.notifier = n
}

// StepOutcome is the result of a navigation or submission request.
type StepOutcome struct {
	Session *model.WizardSession `json:"session"`
	// Advanced is false when the cursor did not move.
	Advanced bool `json:"advanced"`
	// ConfirmationRequired asks the caller to repeat with confirmUnanswered.
	ConfirmationRequired bool                     `json:"confirmationRequired,omitempty"`
	Unanswered           map[model.Level][]string `json:"unanswered,omitempty"`
	Submission           *model.SubmitResult      `json:"submission,omitempty"`
	Notification         *model.Notification      `json:"notification,omitempty"`
}

// Start creates a session on the e-mail step. A signed-in actor's e-mail is pre-filled.
func (s *WizardService) Start(ctx context.Context, actor model.Actor) (*model.WizardSession, error) {
	now := time.Now().UTC()
	sess := &model.WizardSession{
		ID:        uuid.NewString(),
		OwnerID:   actor.UserID,
		Step:      model.StepEmail,
		State:     model.NewFormState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if actor.Authenticated() {
		sess.State.Respondent.Email = actor.Email
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns a live session.
func (s *WizardService) Get(ctx context.Context, id string) (*model.WizardSession, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// update applies fn to the freshest copy of the session and stores it
// unless another writer got in first, in which case fn runs again.
func (s *WizardService) update(ctx context.Context, id string, fn func(*model.WizardSession) error) (*model.WizardSession, error) {
	sess, err := s.sessions.Update(ctx, id, func(sess *model.WizardSession) error {
		if err := fn(sess); err != nil {
			return err
		}
		sess.UpdatedAt = time.Now().UTC()
		return nil
	})
	switch {
	case errors.Is(err, cache.ErrSessionMissing):
		return nil, ErrSessionNotFound
	case errors.Is(err, cache.ErrUpdateConflict):
		return nil, ErrEditConflict
	case err != nil:
		return nil, err
	}
	return sess, nil
}

// Dispatch applies one reducer action to the session state.
func (s *WizardService) Dispatch(ctx context.Context, id string, action wizard.Action) (*model.WizardSession, error) {
	return s.update(ctx, id, func(sess *model.WizardSession) error {
		state, err := wizard.Apply(sess.State, action)
		if err != nil {
			return err
		}
		sess.State = state
		return nil
	})
}

// AnswerQuestion records a response. With mergeDetails, detail fields the
// new response leaves out are copied from the previous response.
func (s *WizardService) AnswerQuestion(ctx context.Context, id string, level model.Level, questionID string, resp model.QuestionResponse, mergeDetails bool) (*model.WizardSession, error) {
	return s.update(ctx, id, func(sess *model.WizardSession) error {
		action := wizard.UpdateQuestion{Level: level, QuestionID: questionID, Response: resp}
		if mergeDetails {
			action.Response = wizard.MergeDetails(sess.State.Answers(level)[questionID], resp)
		}
		state, err := wizard.Apply(sess.State, action)
		if err != nil {
			return err
		}
		sess.State = state
		return nil
	})
}

// Next moves forward. Leaving level5 submits the assessment first.
func (s *WizardService) Next(ctx context.Context, id string, confirmUnanswered bool, actor model.Actor) (*StepOutcome, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Step == model.StepLevel5 {
		return s.submit(ctx, sess, confirmUnanswered, actor)
	}

	sess, err = s.update(ctx, id, func(cur *model.WizardSession) error {
		if cur.Step == model.StepLevel5 {
			// moved onto level5 since the read above; leaving it must submit
			return ErrEditConflict
		}
		next, err := wizard.Next(cur.Step, cur.State)
		if err != nil {
			return err
		}
		cur.Step = next
		return nil
	})
	if err != nil {
		if errors.Is(err, wizard.ErrEmailRequired) {
			s.notifier.Notify(id, EmailRequiredNotification())
		}
		return nil, err
	}
	return &StepOutcome{Session: sess, Advanced: true}, nil
}

// Previous moves back one step without side effects.
func (s *WizardService) Previous(ctx context.Context, id string) (*model.WizardSession, error) {
	return s.update(ctx, id, func(sess *model.WizardSession) error {
		prev, err := wizard.Previous(sess.Step)
		if err != nil {
			return err
		}
		sess.Step = prev
		return nil
	})
}

// Resubmit saves the assessment again from the results step.
func (s *WizardService) Resubmit(ctx context.Context, id string, actor model.Actor) (*StepOutcome, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Step != model.StepResults {
		return nil, ErrNotAtResults
	}
	return s.submit(ctx, sess, true, actor)
}

// Results scores the live state.
func (s *WizardService) Results(ctx context.Context, id string) (*scoring.Result, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res := scoring.Evaluate(sess.State)
	return &res, nil
}

// submit runs one save attempt. The cursor ends on results whenever the
// attempt completes, including a rejection by the store; it stays put on
// validation errors and store failures.
func (s *WizardService) submit(ctx context.Context, sess *model.WizardSession, confirmed bool, actor model.Actor) (*StepOutcome, error) {
	if strings.TrimSpace(sess.State.Respondent.Email) == "" {
		s.notifier.Notify(sess.ID, EmailRequiredNotification())
		return nil, wizard.ErrEmailRequired
	}

	if !confirmed {
		if n := wizard.UnansweredCount(sess.State); n > 0 {
			warn := UnansweredNotification(n)
			s.notifier.Notify(sess.ID, warn)
			return &StepOutcome{
				Session:              sess,
				ConfirmationRequired: true,
				Unanswered:           wizard.Unanswered(sess.State),
				Notification:         &warn,
			}, nil
		}
	}

	locked, err := s.sessions.AcquireSaveLock(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrSaveInProgress
	}
	defer func() {
		if err := s.sessions.ReleaseSaveLock(context.WithoutCancel(ctx), sess.ID); err != nil {
			log.Printf("wizard: release save lock for %s: %v", sess.ID, err)
		}
	}()

	result, err := s.submissions.Submit(ctx, sess.State, actor)
	if err != nil {
		if errors.Is(err, ErrSaveFailed) {
			s.notifier.Notify(sess.ID, ErroredNotification())
		}
		return nil, err
	}

	var advanced bool
	sess, err = s.update(ctx, sess.ID, func(cur *model.WizardSession) error {
		state, err := wizard.Apply(cur.State, wizard.SetSubmitted{Submitted: result.Success})
		if err != nil {
			return err
		}
		cur.State = state
		advanced = cur.Step != model.StepResults
		cur.Step = model.StepResults
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Notification != nil {
		s.notifier.Notify(sess.ID, *result.Notification)
	}
	return &StepOutcome{
		Session:      sess,
		Advanced:     advanced,
		Submission:   result,
		Notification: result.Notification,
	}, nil
}
