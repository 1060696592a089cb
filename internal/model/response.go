package model

import "time"

// ResponseRecord is one persisted submission. Records are append-only.
type ResponseRecord struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	Email          string         `json:"email" bson:"email"`
	SubmittedBy    string         `json:"submitted_by,omitempty" bson:"submitted_by,omitempty"`
	Classification Classification `json:"classification" bson:"classification"`
	Level2         LevelAnswers   `json:"level2" bson:"level2"`
	Level3         LevelAnswers   `json:"level3" bson:"level3"`
	Level4         LevelAnswers   `json:"level4" bson:"level4"`
	Level5         LevelAnswers   `json:"level5" bson:"level5"`
	SubmittedAt    time.Time      `json:"submitted_at" bson:"submitted_at"`

	MaturityIndex float64 `json:"maturity_index" bson:"maturity_index"`
	Level2Score   float64 `json:"level2_score" bson:"level2_score"`
	Level3Score   float64 `json:"level3_score" bson:"level3_score"`
	Level4Score   float64 `json:"level4_score" bson:"level4_score"`
	Level5Score   float64 `json:"level5_score" bson:"level5_score"`
}

// Answers returns the stored map for level l.
func (r *ResponseRecord) Answers(l Level) LevelAnswers {
	switch l {
	case Level2:
		return r.Level2
	case Level3:
		return r.Level3
	case Level4:
		return r.Level4
	case Level5:
		return r.Level5
	}
	return nil
}

// FormState rebuilds the wizard aggregate a record was created from.
func (r *ResponseRecord) FormState() FormState {
	s := NewFormState()
	s.Respondent.Email = r.Email
	for field, value := range r.Classification.Map() {
		s.Classification[field] = value
	}
	for _, l := range Levels {
		if answers := r.Answers(l); answers != nil {
			s = s.WithAnswers(l, answers.Clone())
		}
	}
	s.Submitted = true
	return s
}

// Summary projects the record onto its history row.
func (r *ResponseRecord) Summary() ResponseSummary {
	return ResponseSummary{
		ID:            r.ID,
		Email:         r.Email,
		SubmittedAt:   r.SubmittedAt,
		MaturityIndex: r.MaturityIndex,
		Level2Score:   r.Level2Score,
		Level3Score:   r.Level3Score,
		Level4Score:   r.Level4Score,
		Level5Score:   r.Level5Score,
	}
}

// ResponseSummary is a history row.
type ResponseSummary struct {
	ID            string    `json:"id" bson:"_id,omitempty" db:"id"`
	Email         string    `json:"email" bson:"email" db:"email"`
	SubmittedAt   time.Time `json:"submitted_at" bson:"submitted_at" db:"submitted_at"`
	MaturityIndex float64   `json:"maturity_index" bson:"maturity_index" db:"maturity_index"`
	Level2Score   float64   `json:"level2_score" bson:"level2_score" db:"level2_score"`
	Level3Score   float64   `json:"level3_score" bson:"level3_score" db:"level3_score"`
	Level4Score   float64   `json:"level4_score" bson:"level4_score" db:"level4_score"`
	Level5Score   float64   `json:"level5_score" bson:"level5_score" db:"level5_score"`
	MaturityLevel string    `json:"maturity_level,omitempty" bson:"-" db:"-"`
}

// SubmitResult is the outcome of one submission attempt.
type SubmitResult struct {
	Success      bool            `json:"success"`
	Data         *ResponseRecord `json:"data,omitempty"`
	Error        string          `json:"error,omitempty"`
	Notification *Notification   `json:"notification,omitempty"`
}

// Map returns the classification as the wizard's field map, omitting unspecified values.
func (c Classification) Map() map[string]string {
	out := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	set(FieldParticipatedInProjects, string(c.ParticipatedInProjects))
	set(FieldIsPharmaceuticalIndustry, string(c.IsPharmaceuticalIndustry))
	set(FieldProductType, string(c.ProductType))
	set(FieldCompanySize, string(c.CompanySize))
	set(FieldEstado, string(c.Estado))
	return out
}
