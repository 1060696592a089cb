// Package questionnaire holds the fixed MMGP question catalog: four graded
// levels of ten yes/no questions each, with the prompts used to collect
// supplemental details when a requirement is met.
package questionnaire

import (
	"fmt"

	"mmgp/internal/model"
)

// Question is one yes/no requirement of a level.
type Question struct {
	ID           string   `json:"id"`
	Number       int      `json:"number"`
	Text         string   `json:"text"`
	DetailFields []string `json:"detailFields"`
}

// Section is a graded level and its questions.
type Section struct {
	Level     model.Level `json:"level"`
	Number    int         `json:"number"`
	Name      string      `json:"name"`
	Title     string      `json:"title"`
	Questions []Question  `json:"questions"`
}

// QuestionsPerLevel is the size of every level.
const QuestionsPerLevel = 10

var (
	bySection = map[model.Level]*Section{}
	byID      = map[string]model.Level{}
	questions = map[string]Question{}
)

func init() {
	for i := range sections {
		s := &sections[i]
		if len(s.Questions) != QuestionsPerLevel {
			panic(fmt.Sprintf("questionnaire: %s has %d questions", s.Level, len(s.Questions)))
		}
		bySection[s.Level] = s
		for _, q := range s.Questions {
			if _, dup := byID[q.ID]; dup {
				panic("questionnaire: duplicate question id " + q.ID)
			}
			byID[q.ID] = s.Level
			questions[q.ID] = q
		}
	}
}

// Sections returns the four levels in order. Callers must not modify the result.
func Sections() []Section {
	return sections
}

// SectionFor returns the section of level l.
func SectionFor(l model.Level) (Section, bool) {
	s, ok := bySection[l]
	if !ok {
		return Section{}, false
	}
	return *s, true
}

// QuestionIDs returns the fixed id set of level l in display order.
func QuestionIDs(l model.Level) []string {
	s, ok := bySection[l]
	if !ok {
		return nil
	}
	ids := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		ids[i] = q.ID
	}
	return ids
}

// LevelOf returns the level that owns question id.
func LevelOf(id string) (model.Level, bool) {
	l, ok := byID[id]
	return l, ok
}

// Lookup returns the question with the given id.
func Lookup(id string) (Question, bool) {
	q, ok := questions[id]
	return q, ok
}

// Belongs reports whether question id is part of level l.
func Belongs(l model.Level, id string) bool {
	owner, ok := byID[id]
	return ok && owner == l
}
