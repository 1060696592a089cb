package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"mmgp/internal/cache"
	"mmgp/internal/model"
	"mmgp/internal/repository"
)

type fakeResponses struct {
	mu       sync.Mutex
	records  []*model.ResponseRecord
	err      error
	calls    int
	deadline time.Time
	// onCreate runs before the insert, outside the lock.
	onCreate func()
}

func (f *fakeResponses) Create(ctx context.Context, rec *model.ResponseRecord) error {
	if f.onCreate != nil {
		f.onCreate()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.deadline, _ = ctx.Deadline()
	if f.err != nil {
		return f.err
	}
	rec.ID = fmt.Sprintf("r%d", len(f.records)+1)
	rec.SubmittedAt = time.Date(2026, 1, 1, 0, len(f.records), 0, 0, time.UTC)
	cp := *rec
	f.records = append(f.records, &cp)
	return nil
}

func (f *fakeResponses) GetByID(_ context.Context, id string) (*model.ResponseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeResponses) ListByEmail(_ context.Context, email string) ([]model.ResponseSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.ResponseSummary{}
	for _, r := range f.records {
		if r.Email == email {
			out = append(out, r.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (f *fakeResponses) Ping(context.Context) error { return f.err }

type fakeUsers struct {
	byEmail map[string]*model.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byEmail: map[string]*model.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = "u-" + strings.Split(u.Email, "@")[0]
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type fakeWizardCache struct {
	mu       sync.Mutex
	sessions map[string][]byte
	locks    map[string]bool
}

func newFakeWizardCache() *fakeWizardCache {
	return &fakeWizardCache{sessions: map[string][]byte{}, locks: map[string]bool{}}
}

func (f *fakeWizardCache) Set(_ context.Context, s *model.WizardSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	f.sessions[s.ID] = data
	return nil
}

func (f *fakeWizardCache) Get(_ context.Context, id string) (*model.WizardSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	var s model.WizardSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *fakeWizardCache) Update(_ context.Context, id string, fn func(*model.WizardSession) error) (*model.WizardSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.sessions[id]
	if !ok {
		return nil, cache.ErrSessionMissing
	}
	var s model.WizardSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := fn(&s); err != nil {
		return nil, err
	}
	data, err := json.Marshal(&s)
	if err != nil {
		return nil, err
	}
	f.sessions[id] = data
	return &s, nil
}

func (f *fakeWizardCache) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

func (f *fakeWizardCache) AcquireSaveLock(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locks[id] {
		return false, nil
	}
	f.locks[id] = true
	return true, nil
}

func (f *fakeWizardCache) ReleaseSaveLock(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locks, id)
	return nil
}

type fakeHistoryCache struct {
	entries     map[string][]model.ResponseSummary
	invalidated []string
}

func newFakeHistoryCache() *fakeHistoryCache {
	return &fakeHistoryCache{entries: map[string][]model.ResponseSummary{}}
}

func (f *fakeHistoryCache) Get(_ context.Context, email string) ([]model.ResponseSummary, error) {
	return f.entries[email], nil
}

func (f *fakeHistoryCache) Set(_ context.Context, email string, list []model.ResponseSummary) error {
	f.entries[email] = list
	return nil
}

func (f *fakeHistoryCache) Invalidate(_ context.Context, email string) error {
	delete(f.entries, email)
	f.invalidated = append(f.invalidated, email)
	return nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	sent  []model.Notification
	byKey map[string]int
}

func (r *recordingNotifier) Notify(sessionID string, n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byKey == nil {
		r.byKey = map[string]int{}
	}
	r.sent = append(r.sent, n)
	r.byKey[sessionID]++
}

func (r *recordingNotifier) last() model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return model.Notification{}
	}
	return r.sent[len(r.sent)-1]
}
