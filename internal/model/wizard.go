package model

import "time"

// Step is one screen of the assessment wizard.
type Step string

const (
	StepEmail          Step = "email"
	StepClassification Step = "classification"
	StepLevel2         Step = "level2"
	StepLevel3         Step = "level3"
	StepLevel4         Step = "level4"
	StepLevel5         Step = "level5"
	StepResults        Step = "results"
)

// WizardSession is the server-held state of one respondent's wizard.
type WizardSession struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId,omitempty"` // user id when started by a signed-in user
	Step      Step      `json:"step"`
	State     FormState `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
