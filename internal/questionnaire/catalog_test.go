package questionnaire

import (
	"fmt"
	"testing"

	"mmgp/internal/model"
)

func TestSections_FourLevelsInOrder(t *testing.T) {
	got := Sections()
	if len(got) != 4 {
		t.Fatalf("Sections() returned %d levels, want 4", len(got))
	}
	for i, l := range model.Levels {
		if got[i].Level != l {
			t.Errorf("Sections()[%d].Level = %s, want %s", i, got[i].Level, l)
		}
		if got[i].Number != i+2 {
			t.Errorf("Sections()[%d].Number = %d, want %d", i, got[i].Number, i+2)
		}
	}
}

func TestQuestionIDs_PartitionedByDecade(t *testing.T) {
	for i, l := range model.Levels {
		ids := QuestionIDs(l)
		if len(ids) != QuestionsPerLevel {
			t.Fatalf("QuestionIDs(%s) = %d ids, want %d", l, len(ids), QuestionsPerLevel)
		}
		for j, id := range ids {
			want := fmt.Sprintf("q%d", i*10+j+1)
			if id != want {
				t.Errorf("QuestionIDs(%s)[%d] = %s, want %s", l, j, id, want)
			}
		}
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		id   string
		want model.Level
		ok   bool
	}{
		{"q1", model.Level2, true},
		{"q10", model.Level2, true},
		{"q11", model.Level3, true},
		{"q25", model.Level4, true},
		{"q40", model.Level5, true},
		{"q41", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := LevelOf(tt.id)
			if got != tt.want || ok != tt.ok {
				t.Errorf("LevelOf(%q) = (%s, %v), want (%s, %v)", tt.id, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBelongs(t *testing.T) {
	if !Belongs(model.Level3, "q12") {
		t.Error("q12 should belong to level3")
	}
	if Belongs(model.Level2, "q12") {
		t.Error("q12 should not belong to level2")
	}
	if Belongs(model.Level("level9"), "q1") {
		t.Error("unknown level should own nothing")
	}
}

func TestQuestions_HaveDetailPrompts(t *testing.T) {
	for _, s := range Sections() {
		for _, q := range s.Questions {
			if q.Text == "" {
				t.Errorf("%s has empty text", q.ID)
			}
			if len(q.DetailFields) == 0 {
				t.Errorf("%s has no detail prompts", q.ID)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	q, ok := Lookup("q12")
	if !ok {
		t.Fatal("Lookup(q12) not found")
	}
	if q.Number != 12 || len(q.DetailFields) != 2 {
		t.Errorf("Lookup(q12) = number %d, %d prompts; want 12, 2", q.Number, len(q.DetailFields))
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}
