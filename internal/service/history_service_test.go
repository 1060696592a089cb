package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mmgp/internal/model"
)

func seedRecords(t *testing.T, repo *fakeResponses, emails ...string) []string {
	t.Helper()
	sub := NewSubmissionService(repo, nil)
	var ids []string
	for _, e := range emails {
		res, err := sub.Submit(context.Background(), filledState(e), model.Actor{})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		ids = append(ids, res.Data.ID)
	}
	return ids
}

func TestHistoryListOwnOnly(t *testing.T) {
	repo := &fakeResponses{}
	ids := seedRecords(t, repo, "ana@example.com", "bob@example.com", "ana@example.com")
	hc := newFakeHistoryCache()
	svc := NewHistoryService(repo, hc)
	ana := model.Actor{UserID: "u1", Email: "Ana@example.com"}

	list, err := svc.List(context.Background(), ana)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != ids[2] || list[1].ID != ids[0] {
		t.Errorf("order = %s, %s", list[0].ID, list[1].ID)
	}
	if list[0].MaturityLevel != "Conhecido" {
		t.Errorf("MaturityLevel = %q, want Conhecido", list[0].MaturityLevel)
	}
	if _, ok := hc.entries["ana@example.com"]; !ok {
		t.Error("history not cached")
	}

	if _, err := svc.List(context.Background(), model.Actor{}); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("anonymous err = %v, want ErrUnauthenticated", err)
	}
}

func TestHistoryListServesCache(t *testing.T) {
	repo := &fakeResponses{}
	hc := newFakeHistoryCache()
	hc.entries["ana@example.com"] = []model.ResponseSummary{{ID: "cached"}}
	svc := NewHistoryService(repo, hc)

	list, err := svc.List(context.Background(), model.Actor{UserID: "u1", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != "cached" {
		t.Errorf("list = %+v", list)
	}
}

func TestHistoryDetailOwnership(t *testing.T) {
	repo := &fakeResponses{}
	ids := seedRecords(t, repo, "ana@example.com")
	svc := NewHistoryService(repo, nil)
	ctx := context.Background()

	d, err := svc.Detail(ctx, ids[0], model.Actor{UserID: "u1", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if d.Result.MaturityIndex != 2.5 {
		t.Errorf("MaturityIndex = %v, want 2.5", d.Result.MaturityIndex)
	}
	if len(d.Unanswered[model.Level2]) != 8 || len(d.Unanswered[model.Level5]) != 10 {
		t.Errorf("unanswered = %v", d.Unanswered)
	}

	if _, err := svc.Detail(ctx, ids[0], model.Actor{UserID: "u2", Email: "bob@example.com"}); !errors.Is(err, ErrResponseNotFound) {
		t.Errorf("foreign err = %v, want ErrResponseNotFound", err)
	}
	if _, err := svc.Detail(ctx, "nope", model.Actor{UserID: "u1", Email: "ana@example.com"}); !errors.Is(err, ErrResponseNotFound) {
		t.Errorf("missing err = %v, want ErrResponseNotFound", err)
	}
}

func TestReportRendering(t *testing.T) {
	repo := &fakeResponses{}
	ids := seedRecords(t, repo, "ana@example.com")
	svc := NewReportService(NewHistoryService(repo, nil))
	ana := model.Actor{UserID: "u1", Email: "ana@example.com"}

	md, err := svc.Markdown(context.Background(), ids[0], ana)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	for _, want := range []string{
		"**Índice de maturidade:** 2.50",
		"**Nível de maturidade:** Conhecido",
		"| Nível 3 – Padronizado | 100% | Bom |",
		"Nível Conhecido (2-2.9)",
		"Existem 37 perguntas",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	html, err := svc.HTML(context.Background(), ids[0], ana)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<table>") || !strings.Contains(html, "<h1>") {
		t.Errorf("html lacks table or heading: %s", html)
	}
}
