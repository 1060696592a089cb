package wizard

import (
	"errors"
	"fmt"
	"testing"

	"mmgp/internal/model"
)

func TestApplyUpdateQuestionLastWriteWins(t *testing.T) {
	s := model.NewFormState()
	var err error
	writes := []model.QuestionResponse{
		{MeetsRequirement: model.AnswerYes, Details: map[string]string{"Qual?": "PMBOK"}},
		{MeetsRequirement: model.AnswerNo},
		{MeetsRequirement: model.AnswerYes},
	}
	for _, w := range writes {
		s, err = Apply(s, UpdateQuestion{Level: model.Level2, QuestionID: "q3", Response: w})
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		got := s.Level2["q3"]
		if got.MeetsRequirement != w.MeetsRequirement || len(got.Details) != len(w.Details) {
			t.Errorf("q3 = %+v, want %+v", got, w)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := model.NewFormState()
	before.Classification["estado"] = "SP"
	after, err := Apply(before, UpdateClassification{Field: "estado", Value: "RJ"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if before.Classification["estado"] != "SP" {
		t.Errorf("input mutated: estado = %q", before.Classification["estado"])
	}
	if after.Classification["estado"] != "RJ" {
		t.Errorf("estado = %q, want RJ", after.Classification["estado"])
	}

	after, _ = Apply(before, UpdateQuestion{Level: model.Level4, QuestionID: "q21", Response: model.QuestionResponse{MeetsRequirement: model.AnswerYes}})
	if len(before.Level4) != 0 {
		t.Errorf("input level4 mutated: %v", before.Level4)
	}
	if len(after.Level4) != 1 {
		t.Errorf("len(level4) = %d, want 1", len(after.Level4))
	}
}

func TestApplyErrors(t *testing.T) {
	s := model.NewFormState()
	tests := []struct {
		name   string
		action Action
		want   error
	}{
		{"nil action", nil, ErrUnknownAction},
		{"unknown level", UpdateQuestion{Level: "level1", QuestionID: "q1"}, ErrUnknownLevel},
		{"wrong decade", UpdateQuestion{Level: model.Level2, QuestionID: "q11"}, ErrQuestionLevelMismatch},
		{"unknown id", UpdateQuestion{Level: model.Level5, QuestionID: "q99"}, ErrQuestionLevelMismatch},
		{"bad answer", UpdateQuestion{Level: model.Level2, QuestionID: "q1", Response: model.QuestionResponse{MeetsRequirement: "talvez"}}, ErrInvalidAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(s, tt.action)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateAnswers(t *testing.T) {
	yes := model.QuestionResponse{MeetsRequirement: model.AnswerYes}
	tests := []struct {
		name  string
		level model.Level
		id    string
		resp  model.QuestionResponse
		want  error
	}{
		{"own level", model.Level3, "q15", yes, nil},
		{"unset answer", model.Level2, "q1", model.QuestionResponse{}, nil},
		{"id from another level", model.Level2, "q15", yes, ErrQuestionLevelMismatch},
		{"unknown id", model.Level2, "q999", yes, ErrQuestionLevelMismatch},
		{"unknown answer", model.Level2, "q1", model.QuestionResponse{MeetsRequirement: "talvez"}, ErrInvalidAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := model.NewFormState()
			s.Answers(tt.level)[tt.id] = tt.resp
			err := ValidateAnswers(s)
			if tt.want == nil && err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyClassificationVerbatim(t *testing.T) {
	s, err := Apply(model.NewFormState(), UpdateClassification{Field: "somethingElse", Value: "x"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Classification["somethingElse"] != "x" {
		t.Errorf("classification = %v", s.Classification)
	}
}

func TestApplyEmailAndSubmitted(t *testing.T) {
	s, _ := Apply(model.NewFormState(), UpdateEmail{Email: "ana@example.com"})
	s, _ = Apply(s, SetSubmitted{Submitted: true})
	if s.Respondent.Email != "ana@example.com" || !s.Submitted {
		t.Errorf("state = %+v", s)
	}
}

func TestMergeDetails(t *testing.T) {
	prev := model.QuestionResponse{MeetsRequirement: model.AnswerYes, Details: map[string]string{"a": "1", "b": "2"}}
	next := model.QuestionResponse{MeetsRequirement: model.AnswerYes, Details: map[string]string{"b": "3"}}
	got := MergeDetails(prev, next)
	if got.Details["a"] != "1" || got.Details["b"] != "3" {
		t.Errorf("merged details = %v", got.Details)
	}
	if prev.Details["b"] != "2" {
		t.Errorf("prev mutated: %v", prev.Details)
	}
}

func TestUnansweredCount(t *testing.T) {
	s := model.NewFormState()
	if got := UnansweredCount(s); got != 40 {
		t.Errorf("empty UnansweredCount = %d, want 40", got)
	}
	for i := 1; i <= 4; i++ {
		s.Level2[fmt.Sprintf("q%d", i)] = model.QuestionResponse{MeetsRequirement: model.AnswerNo}
	}
	s.Level2["q5"] = model.QuestionResponse{Details: map[string]string{"x": "y"}}
	if got := len(UnansweredIn(s, model.Level2)); got != 6 {
		t.Errorf("level2 unanswered = %d, want 6", got)
	}
	if got := UnansweredCount(s); got != 36 {
		t.Errorf("UnansweredCount = %d, want 36", got)
	}

	for i := 1; i <= 10; i++ {
		s.Level2[fmt.Sprintf("q%d", i)] = model.QuestionResponse{MeetsRequirement: model.AnswerYes}
	}
	if _, ok := Unanswered(s)[model.Level2]; ok {
		t.Error("fully answered level2 still reported")
	}
}
