package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"mmgp/internal/model"
	"mmgp/internal/questionnaire"
	"mmgp/internal/repository"
	"mmgp/internal/wizard"
)

type wizardFixture struct {
	svc      *WizardService
	repo     *fakeResponses
	cache    *fakeWizardCache
	notifier *recordingNotifier
}

func newWizardFixture() *wizardFixture {
	repo := &fakeResponses{}
	wc := newFakeWizardCache()
	n := &recordingNotifier{}
	svc := NewWizardService(wc, NewSubmissionService(repo, nil))
	svc.SetNotifier(n)
	return &wizardFixture{svc: svc, repo: repo, cache: wc, notifier: n}
}

// walkTo starts a session with email set and moves it to step.
func (f *wizardFixture) walkTo(t *testing.T, step model.Step) *model.WizardSession {
	t.Helper()
	ctx := context.Background()
	sess, err := f.svc.Start(ctx, model.Actor{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.svc.Dispatch(ctx, sess.ID, wizard.UpdateEmail{Email: "ana@example.com"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	for sess.Step != step {
		out, err := f.svc.Next(ctx, sess.ID, false, model.Actor{})
		if err != nil {
			t.Fatalf("Next from %s: %v", sess.Step, err)
		}
		sess = out.Session
	}
	return sess
}

func (f *wizardFixture) answerAll(t *testing.T, id string) {
	t.Helper()
	for _, l := range model.Levels {
		for i := 1; i <= 10; i++ {
			qid := fmt.Sprintf("q%d", levelOffset(l)+i)
			_, err := f.svc.AnswerQuestion(context.Background(), id, l, qid,
				model.QuestionResponse{MeetsRequirement: model.AnswerYes}, false)
			if err != nil {
				t.Fatalf("AnswerQuestion %s: %v", qid, err)
			}
		}
	}
}

func levelOffset(l model.Level) int {
	for i, lv := range model.Levels {
		if lv == l {
			return i * 10
		}
	}
	return 0
}

func TestWizardStartPrefillsActorEmail(t *testing.T) {
	f := newWizardFixture()
	sess, err := f.svc.Start(context.Background(), model.Actor{UserID: "u1", Email: "bia@example.com"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.Step != model.StepEmail || sess.State.Respondent.Email != "bia@example.com" || sess.OwnerID != "u1" {
		t.Errorf("session = %+v", sess)
	}
}

func TestWizardNextRequiresEmail(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess, _ := f.svc.Start(ctx, model.Actor{})

	if _, err := f.svc.Next(ctx, sess.ID, false, model.Actor{}); !errors.Is(err, wizard.ErrEmailRequired) {
		t.Fatalf("err = %v, want ErrEmailRequired", err)
	}
	if got := f.notifier.last(); got.Title != "E-mail obrigatório" {
		t.Errorf("notification = %+v", got)
	}
	got, _ := f.svc.Get(ctx, sess.ID)
	if got.Step != model.StepEmail {
		t.Errorf("step = %s, want email", got.Step)
	}
}

func TestWizardUnknownSession(t *testing.T) {
	f := newWizardFixture()
	if _, err := f.svc.Get(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestWizardAnswerQuestionMerge(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess, _ := f.svc.Start(ctx, model.Actor{})

	first := model.QuestionResponse{MeetsRequirement: model.AnswerYes, Details: map[string]string{"a": "1", "b": "2"}}
	if _, err := f.svc.AnswerQuestion(ctx, sess.ID, model.Level2, "q4", first, false); err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	edit := model.QuestionResponse{MeetsRequirement: model.AnswerYes, Details: map[string]string{"b": "3"}}
	got, err := f.svc.AnswerQuestion(ctx, sess.ID, model.Level2, "q4", edit, true)
	if err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	d := got.State.Level2["q4"].Details
	if d["a"] != "1" || d["b"] != "3" {
		t.Errorf("merged details = %v", d)
	}

	got, _ = f.svc.AnswerQuestion(ctx, sess.ID, model.Level2, "q4", edit, false)
	if len(got.State.Level2["q4"].Details) != 1 {
		t.Errorf("overwrite details = %v", got.State.Level2["q4"].Details)
	}

	if _, err := f.svc.AnswerQuestion(ctx, sess.ID, model.Level2, "q40", edit, false); !errors.Is(err, wizard.ErrQuestionLevelMismatch) {
		t.Errorf("err = %v, want ErrQuestionLevelMismatch", err)
	}
}

func TestWizardUnansweredNeedsConfirmation(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess := f.walkTo(t, model.StepLevel5)

	out, err := f.svc.Next(ctx, sess.ID, false, model.Actor{})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !out.ConfirmationRequired || out.Advanced {
		t.Errorf("outcome = %+v", out)
	}
	if len(out.Unanswered[model.Level3]) != 10 {
		t.Errorf("unanswered level3 = %v", out.Unanswered[model.Level3])
	}
	if out.Notification == nil || out.Notification.Kind != model.NotifyWarning {
		t.Errorf("notification = %+v", out.Notification)
	}
	if f.repo.calls != 0 {
		t.Errorf("store called %d times", f.repo.calls)
	}

	out, err = f.svc.Next(ctx, sess.ID, true, model.Actor{})
	if err != nil {
		t.Fatalf("confirmed Next: %v", err)
	}
	if !out.Advanced || out.Session.Step != model.StepResults || !out.Session.State.Submitted {
		t.Errorf("outcome = %+v", out)
	}
	if len(f.repo.records) != 1 {
		t.Errorf("records = %d, want 1", len(f.repo.records))
	}
}

func TestWizardFullFlow(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess := f.walkTo(t, model.StepLevel5)
	f.answerAll(t, sess.ID)

	out, err := f.svc.Next(ctx, sess.ID, false, model.Actor{})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if out.Submission == nil || !out.Submission.Success {
		t.Fatalf("submission = %+v", out.Submission)
	}
	if out.Submission.Data.MaturityIndex != 5 {
		t.Errorf("MaturityIndex = %v, want 5", out.Submission.Data.MaturityIndex)
	}
	if got := f.notifier.last(); got.Kind != model.NotifySuccess {
		t.Errorf("last notification = %+v", got)
	}

	res, err := f.svc.Results(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if res.MaturityLevel != "Otimizado" {
		t.Errorf("MaturityLevel = %s", res.MaturityLevel)
	}
	if f.cache.locks[sess.ID] {
		t.Error("save lock not released")
	}
}

func TestWizardStoreRejectionStillAdvances(t *testing.T) {
	f := newWizardFixture()
	f.repo.err = &repository.ConstraintError{Message: "rejected"}
	sess := f.walkTo(t, model.StepLevel5)

	out, err := f.svc.Next(context.Background(), sess.ID, true, model.Actor{})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !out.Advanced || out.Session.Step != model.StepResults {
		t.Errorf("outcome = %+v", out)
	}
	if out.Session.State.Submitted {
		t.Error("Submitted set after rejection")
	}
	if out.Notification == nil || out.Notification.Description != "rejected" {
		t.Errorf("notification = %+v", out.Notification)
	}
}

func TestWizardStoreFailureDoesNotAdvance(t *testing.T) {
	f := newWizardFixture()
	f.repo.err = errors.New("timeout")
	sess := f.walkTo(t, model.StepLevel5)

	_, err := f.svc.Next(context.Background(), sess.ID, true, model.Actor{})
	if !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("err = %v, want ErrSaveFailed", err)
	}
	got, _ := f.svc.Get(context.Background(), sess.ID)
	if got.Step != model.StepLevel5 {
		t.Errorf("step = %s, want level5", got.Step)
	}
	if n := f.notifier.last(); n.Description != ErroredNotification().Description {
		t.Errorf("notification = %+v", n)
	}
	if f.cache.locks[sess.ID] {
		t.Error("save lock not released")
	}
}

func TestWizardMissingEmailAtLevel5(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess := f.walkTo(t, model.StepLevel5)
	if _, err := f.svc.Dispatch(ctx, sess.ID, wizard.UpdateEmail{Email: ""}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if _, err := f.svc.Next(ctx, sess.ID, true, model.Actor{}); !errors.Is(err, wizard.ErrEmailRequired) {
		t.Fatalf("err = %v, want ErrEmailRequired", err)
	}
	got, _ := f.svc.Get(ctx, sess.ID)
	if got.Step != model.StepLevel5 {
		t.Errorf("step = %s, want level5", got.Step)
	}
	if f.repo.calls != 0 {
		t.Errorf("store called %d times", f.repo.calls)
	}
}

func TestWizardSaveInProgress(t *testing.T) {
	f := newWizardFixture()
	sess := f.walkTo(t, model.StepLevel5)
	f.cache.locks[sess.ID] = true

	if _, err := f.svc.Next(context.Background(), sess.ID, true, model.Actor{}); !errors.Is(err, ErrSaveInProgress) {
		t.Errorf("err = %v, want ErrSaveInProgress", err)
	}
	if f.repo.calls != 0 {
		t.Errorf("store called %d times", f.repo.calls)
	}
}

func TestWizardResubmit(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess := f.walkTo(t, model.StepLevel4)

	if _, err := f.svc.Resubmit(ctx, sess.ID, model.Actor{}); !errors.Is(err, ErrNotAtResults) {
		t.Errorf("err = %v, want ErrNotAtResults", err)
	}

	sess = f.walkTo(t, model.StepLevel5)
	if _, err := f.svc.Next(ctx, sess.ID, true, model.Actor{}); err != nil {
		t.Fatalf("Next: %v", err)
	}
	out, err := f.svc.Resubmit(ctx, sess.ID, model.Actor{})
	if err != nil {
		t.Fatalf("Resubmit: %v", err)
	}
	if out.Advanced || out.Session.Step != model.StepResults {
		t.Errorf("outcome = %+v", out)
	}
	if len(f.repo.records) != 2 {
		t.Errorf("records = %d, want 2", len(f.repo.records))
	}
}

func TestWizardRejectedResubmitClearsSubmitted(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess := f.walkTo(t, model.StepLevel5)
	out, err := f.svc.Next(ctx, sess.ID, true, model.Actor{})
	if err != nil || !out.Session.State.Submitted {
		t.Fatalf("first submit = %+v, %v", out, err)
	}

	f.repo.err = &repository.ConstraintError{Message: "rejected"}
	out, err = f.svc.Resubmit(ctx, sess.ID, model.Actor{})
	if err != nil {
		t.Fatalf("Resubmit: %v", err)
	}
	if out.Submission.Success || out.Session.State.Submitted {
		t.Errorf("after rejection: success=%v submitted=%v", out.Submission.Success, out.Session.State.Submitted)
	}
}

func TestWizardAnswerDuringSubmitIsKept(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess := f.walkTo(t, model.StepLevel5)

	f.repo.onCreate = func() {
		f.repo.onCreate = nil
		_, err := f.svc.AnswerQuestion(ctx, sess.ID, model.Level5, "q31",
			model.QuestionResponse{MeetsRequirement: model.AnswerNo}, false)
		if err != nil {
			t.Errorf("AnswerQuestion during submit: %v", err)
		}
	}
	out, err := f.svc.Next(ctx, sess.ID, true, model.Actor{})
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if out.Session.Step != model.StepResults {
		t.Errorf("step = %s, want results", out.Session.Step)
	}

	got, err := f.svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.State.Level5["q31"].MeetsRequirement != model.AnswerNo {
		t.Errorf("answer written during submit was lost: %+v", got.State.Level5["q31"])
	}
}

func TestWizardConcurrentAnswersAllKept(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess := f.walkTo(t, model.StepLevel2)

	var wg sync.WaitGroup
	for _, id := range questionnaire.QuestionIDs(model.Level2) {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := f.svc.AnswerQuestion(ctx, sess.ID, model.Level2, id,
				model.QuestionResponse{MeetsRequirement: model.AnswerYes}, false); err != nil {
				t.Errorf("AnswerQuestion %s: %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	got, _ := f.svc.Get(ctx, sess.ID)
	if n := len(wizard.UnansweredIn(got.State, model.Level2)); n != 0 {
		t.Errorf("unanswered in level2 = %d, want 0", n)
	}
}

func TestWizardPrevious(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	sess := f.walkTo(t, model.StepLevel3)

	got, err := f.svc.Previous(ctx, sess.ID)
	if err != nil || got.Step != model.StepLevel2 {
		t.Errorf("Previous = %v, %v", got, err)
	}
	if f.repo.calls != 0 {
		t.Error("Previous touched the store")
	}
}
