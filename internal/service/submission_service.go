package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mmgp/internal/cache"
	"mmgp/internal/model"
	"mmgp/internal/repository"
	"mmgp/internal/scoring"
	"mmgp/internal/wizard"
)

// insertTimeout keeps a wizard insert inside its save lock.
const insertTimeout = cache.SaveLockTTL - 5*time.Second

// SubmissionService persists completed assessments
type SubmissionService struct {
	responses repository.ResponseRepo
	history   cache.HistoryCache
}

// NewSubmissionService creates a submission service. history may be nil.
func NewSubmissionService(responses repository.ResponseRepo, history cache.HistoryCache) *SubmissionService {
	return &SubmissionService{
		responses: responses,
		history:   history,
	}
}

// Submit scores state and inserts exactly one record.
//
// A missing e-mail, answers outside the catalog or an invalid classification
// are returned as errors before the store is called. A rejection reported by the store yields a
// result with Success false and the store's message. Any other store failure
// is returned wrapped in ErrSaveFailed.
func (s *SubmissionService) Submit(ctx context.Context, state model.FormState, actor model.Actor) (*model.SubmitResult, error) {
	email := NormalizeEmail(state.Respondent.Email)
	if email == "" && actor.Authenticated() {
		email = NormalizeEmail(actor.Email)
	}
	if email == "" {
		return nil, wizard.ErrEmailRequired
	}

	if err := wizard.ValidateAnswers(state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
	}

	classification, err := model.ParseClassification(state.Classification)
	if err != nil {
		return nil, err
	}

	scores := scoring.ScoreState(state)
	rec := &model.ResponseRecord{
		Email:          email,
		Classification: classification,
		Level2:         state.Level2.Clone(),
		Level3:         state.Level3.Clone(),
		Level4:         state.Level4.Clone(),
		Level5:         state.Level5.Clone(),
		MaturityIndex:  scoring.MaturityIndex(scores),
		Level2Score:    scores.Level2,
		Level3Score:    scores.Level3,
		Level4Score:    scores.Level4,
		Level5Score:    scores.Level5,
	}
	if actor.Authenticated() {
		rec.SubmittedBy = actor.Email
	}

	insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()
	if err := s.responses.Create(insertCtx, rec); err != nil {
		var ce *repository.ConstraintError
		if errors.As(err, &ce) {
			log.Printf("submission: rejected for %s: %s", email, ce.Message)
			n := RejectedNotification(ce.Message)
			return &model.SubmitResult{Success: false, Error: ce.Message, Notification: &n}, nil
		}
		log.Printf("submission: insert failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if s.history != nil {
		if err := s.history.Invalidate(ctx, email); err != nil {
			log.Printf("submission: history cache invalidate failed: %v", err)
		}
	}

	n := SavedNotification()
	return &model.SubmitResult{Success: true, Data: rec, Notification: &n}, nil
}
