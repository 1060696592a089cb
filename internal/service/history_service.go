package service

import (
	"context"
	"log"
	"strings"

	"mmgp/internal/cache"
	"mmgp/internal/model"
	"mmgp/internal/repository"
	"mmgp/internal/scoring"
	"mmgp/internal/wizard"
)

// HistoryService serves a signed-in respondent's past submissions
type HistoryService struct {
	responses repository.ResponseRepo
	cache     cache.HistoryCache
}

// NewHistoryService creates a new history service. historyCache may be nil.
func NewHistoryService(responses repository.ResponseRepo, historyCache cache.HistoryCache) *HistoryService {
	return &HistoryService{
		responses: responses,
		cache:     historyCache,
	}
}

// ResponseDetail is a stored record plus its derived result view.
type ResponseDetail struct {
	Record     *model.ResponseRecord    `json:"record"`
	Result     scoring.Result           `json:"result"`
	Unanswered map[model.Level][]string `json:"unanswered"`
}

// List returns the actor's summaries, most recent first.
func (s *HistoryService) List(ctx context.Context, actor model.Actor) ([]model.ResponseSummary, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}
	email := NormalizeEmail(actor.Email)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, email)
		if err != nil {
			log.Printf("history: cache get failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	list, err := s.responses.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].MaturityLevel = string(scoring.Classify(list[i].MaturityIndex))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, email, list); err != nil {
			log.Printf("history: cache set failed: %v", err)
		}
	}
	return list, nil
}

// Get returns one of the actor's records. Records of other respondents are
// reported as not found.
func (s *HistoryService) Get(ctx context.Context, id string, actor model.Actor) (*model.ResponseRecord, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}
	rec, err := s.responses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || !strings.EqualFold(rec.Email, actor.Email) {
		return nil, ErrResponseNotFound
	}
	return rec, nil
}

// Detail returns a record with its scores rendered through the result bands.
func (s *HistoryService) Detail(ctx context.Context, id string, actor model.Actor) (*ResponseDetail, error) {
	rec, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	state := rec.FormState()
	return &ResponseDetail{
		Record: rec,
		Result: scoring.FromScores(scoring.Scores{
			Level2: rec.Level2Score,
			Level3: rec.Level3Score,
			Level4: rec.Level4Score,
			Level5: rec.Level5Score,
		}),
		Unanswered: wizard.Unanswered(state),
	}, nil
}
