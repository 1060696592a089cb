package model

// Level names one of the four graded question groups.
type Level string

const (
	Level2 Level = "level2" // Conhecido
	Level3 Level = "level3" // Padronizado
	Level4 Level = "level4" // Gerenciado
	Level5 Level = "level5" // Otimizado
)

// Levels is the fixed order in which levels are presented and scored.
var Levels = []Level{Level2, Level3, Level4, Level5}

// Valid reports whether l is one of the four graded levels.
func (l Level) Valid() bool {
	switch l {
	case Level2, Level3, Level4, Level5:
		return true
	}
	return false
}

// Answer is the yes/no value of a question. The empty value means unanswered.
type Answer string

const (
	AnswerUnset Answer = ""
	AnswerYes   Answer = "sim"
	AnswerNo    Answer = "nao"
)

// Answered reports whether a counts toward a level's denominator.
func (a Answer) Answered() bool {
	return a == AnswerYes || a == AnswerNo
}

// QuestionResponse is a single question's answer plus optional elaboration.
// Details are keyed by the question's detail prompt label and only collected
// when the requirement is met.
type QuestionResponse struct {
	MeetsRequirement Answer            `json:"meetsRequirement,omitempty" bson:"meetsRequirement,omitempty"`
	Details          map[string]string `json:"details,omitempty" bson:"details,omitempty"`
}

// LevelAnswers maps question id (q1..q40) to its response.
type LevelAnswers map[string]QuestionResponse

// Clone returns a deep copy of the map.
func (a LevelAnswers) Clone() LevelAnswers {
	out := make(LevelAnswers, len(a))
	for id, resp := range a {
		out[id] = resp.clone()
	}
	return out
}

func (r QuestionResponse) clone() QuestionResponse {
	if r.Details == nil {
		return r
	}
	details := make(map[string]string, len(r.Details))
	for k, v := range r.Details {
		details[k] = v
	}
	r.Details = details
	return r
}

// Respondent identifies who is filling in the assessment.
type Respondent struct {
	Email string `json:"email"`
}

// FormState is the whole wizard aggregate for one session.
type FormState struct {
	Respondent     Respondent        `json:"respondent"`
	Classification map[string]string `json:"classification"`
	Level2         LevelAnswers      `json:"level2"`
	Level3         LevelAnswers      `json:"level3"`
	Level4         LevelAnswers      `json:"level4"`
	Level5         LevelAnswers      `json:"level5"`
	Submitted      bool              `json:"submitted"`
}

// NewFormState returns the initial state: empty email, empty maps.
func NewFormState() FormState {
	return FormState{
		Classification: map[string]string{},
		Level2:         LevelAnswers{},
		Level3:         LevelAnswers{},
		Level4:         LevelAnswers{},
		Level5:         LevelAnswers{},
	}
}

// Answers returns the map for level l, or nil for an unknown level.
func (s FormState) Answers(l Level) LevelAnswers {
	switch l {
	case Level2:
		return s.Level2
	case Level3:
		return s.Level3
	case Level4:
		return s.Level4
	case Level5:
		return s.Level5
	}
	return nil
}

// WithAnswers returns a copy of s whose level l map is replaced by answers.
func (s FormState) WithAnswers(l Level, answers LevelAnswers) FormState {
	switch l {
	case Level2:
		s.Level2 = answers
	case Level3:
		s.Level3 = answers
	case Level4:
		s.Level4 = answers
	case Level5:
		s.Level5 = answers
	}
	return s
}

// Clone returns a deep copy so reducers never share maps between states.
func (s FormState) Clone() FormState {
	out := s
	out.Classification = make(map[string]string, len(s.Classification))
	for k, v := range s.Classification {
		out.Classification[k] = v
	}
	out.Level2 = s.Level2.Clone()
	out.Level3 = s.Level3.Clone()
	out.Level4 = s.Level4.Clone()
	out.Level5 = s.Level5.Clone()
	return out
}
