package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"mmgp/internal/model"
	"mmgp/internal/service"
	"mmgp/internal/transport/rest/middleware"
	"mmgp/internal/wizard"
)

// WizardHandler handles the server-driven assessment wizard
type WizardHandler struct {
	wizardSvc *service.WizardService
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(wizardSvc *service.WizardService) *WizardHandler {
	return &WizardHandler{wizardSvc: wizardSvc}
}

// SessionView is a wizard session plus the derived navigation state.
type SessionView struct {
	*model.WizardSession
	Progress        int                      `json:"progress"`
	CanProceed      bool                     `json:"canProceed"`
	Unanswered      map[model.Level][]string `json:"unanswered"`
	UnansweredCount int                      `json:"unansweredCount"`
}

func newSessionView(sess *model.WizardSession) SessionView {
	return SessionView{
		WizardSession:   sess,
		Progress:        wizard.Progress(sess.Step),
		CanProceed:      wizard.CanProceed(sess.Step, sess.State),
		Unanswered:      wizard.Unanswered(sess.State),
		UnansweredCount: wizard.UnansweredCount(sess.State),
	}
}

// OutcomeView is the body of next/submit responses.
type OutcomeView struct {
	SessionView
	Advanced             bool                     `json:"advanced"`
	ConfirmationRequired bool                     `json:"confirmationRequired,omitempty"`
	PendingQuestions     map[model.Level][]string `json:"pendingQuestions,omitempty"`
	Submission           *model.SubmitResult      `json:"submission,omitempty"`
	Notification         *model.Notification      `json:"notification,omitempty"`
}

func newOutcomeView(o *service.StepOutcome) OutcomeView {
	return OutcomeView{
		SessionView:          newSessionView(o.Session),
		Advanced:             o.Advanced,
		ConfirmationRequired: o.ConfirmationRequired,
		PendingQuestions:     o.Unanswered,
		Submission:           o.Submission,
		Notification:         o.Notification,
	}
}

// Start handles POST /v1/wizard/sessions
//
// @Summary Start an assessment
// @Tags wizard
// @Produce json
// @Success 201 {object} SessionView
// @Router /wizard/sessions [post]
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess, err := h.wizardSvc.Start(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSessionView(sess))
}

// Get handles GET /v1/wizard/sessions/{id}
//
// @Summary Wizard state
// @Tags wizard
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} SessionView
// @Failure 404 {object} map[string]string
// @Router /wizard/sessions/{id} [get]
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.wizardSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess))
}

// UpdateEmailRequest is the body of PUT .../email
type UpdateEmailRequest struct {
	Email string `json:"email"`
}

// UpdateEmail handles PUT /v1/wizard/sessions/{id}/email
//
// @Summary Set the respondent e-mail
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body UpdateEmailRequest true "e-mail"
// @Success 200 {object} SessionView
// @Router /wizard/sessions/{id}/email [put]
func (h *WizardHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req UpdateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.dispatch(w, r, wizard.UpdateEmail{Email: req.Email})
}

// UpdateClassificationRequest is the body of PUT .../classification/{field}
type UpdateClassificationRequest struct {
	Value string `json:"value"`
}

// UpdateClassification handles PUT /v1/wizard/sessions/{id}/classification/{field}
//
// @Summary Set one classification field
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param field path string true "participatedInProjects | isPharmaceuticalIndustry | productType | companySize | estado"
// @Param body body UpdateClassificationRequest true "value"
// @Success 200 {object} SessionView
// @Failure 400 {object} map[string]string
// @Router /wizard/sessions/{id}/classification/{field} [put]
func (h *WizardHandler) UpdateClassification(w http.ResponseWriter, r *http.Request) {
	field := mux.Vars(r)["field"]
	var req UpdateClassificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.ValidateClassificationField(field, req.Value); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.dispatch(w, r, wizard.UpdateClassification{Field: field, Value: req.Value})
}

// UpdateQuestionRequest is the body of PUT .../levels/{level}/questions/{questionId}
type UpdateQuestionRequest struct {
	model.QuestionResponse
	// MergeDetails copies forward detail fields the request leaves out.
	MergeDetails bool `json:"mergeDetails"`
}

// UpdateQuestion handles PUT /v1/wizard/sessions/{id}/levels/{level}/questions/{questionId}
//
// @Summary Answer one question
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param level path string true "level2 | level3 | level4 | level5"
// @Param questionId path string true "q1..q40"
// @Param body body UpdateQuestionRequest true "response"
// @Success 200 {object} SessionView
// @Failure 400 {object} map[string]string
// @Router /wizard/sessions/{id}/levels/{level}/questions/{questionId} [put]
func (h *WizardHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.wizardSvc.AnswerQuestion(r.Context(), vars["id"], model.Level(vars["level"]), vars["questionId"], req.QuestionResponse, req.MergeDetails)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess))
}

// NextRequest is the optional body of POST .../next
type NextRequest struct {
	ConfirmUnanswered bool `json:"confirmUnanswered"`
}

// Next handles POST /v1/wizard/sessions/{id}/next
//
// @Summary Advance the wizard; leaving level5 submits
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body NextRequest false "confirmation"
// @Success 200 {object} OutcomeView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /wizard/sessions/{id}/next [post]
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	var req NextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.wizardSvc.Next(r.Context(), mux.Vars(r)["id"], req.ConfirmUnanswered, middleware.GetActor(r.Context()))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOutcomeView(outcome))
}

// Previous handles POST /v1/wizard/sessions/{id}/previous
//
// @Summary Go back one step
// @Tags wizard
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} SessionView
// @Router /wizard/sessions/{id}/previous [post]
func (h *WizardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	sess, err := h.wizardSvc.Previous(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess))
}

// Submit handles POST /v1/wizard/sessions/{id}/submit
//
// @Summary Save the assessment again from the results step
// @Tags wizard
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} OutcomeView
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /wizard/sessions/{id}/submit [post]
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.wizardSvc.Resubmit(r.Context(), mux.Vars(r)["id"], middleware.GetActor(r.Context()))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOutcomeView(outcome))
}

// Results handles GET /v1/wizard/sessions/{id}/results
//
// @Summary Score the live answers
// @Tags wizard
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} scoring.Result
// @Router /wizard/sessions/{id}/results [get]
func (h *WizardHandler) Results(w http.ResponseWriter, r *http.Request) {
	res, err := h.wizardSvc.Results(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *WizardHandler) dispatch(w http.ResponseWriter, r *http.Request, action wizard.Action) {
	sess, err := h.wizardSvc.Dispatch(r.Context(), mux.Vars(r)["id"], action)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess))
}

// fail maps wizard errors onto HTTP responses.
func (h *WizardHandler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Sessão não encontrada")
	case errors.Is(err, wizard.ErrEmailRequired):
		n := service.EmailRequiredNotification()
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": n.Description, "notification": n})
	case errors.Is(err, wizard.ErrUnknownLevel),
		errors.Is(err, wizard.ErrQuestionLevelMismatch),
		errors.Is(err, wizard.ErrInvalidAnswer),
		errors.Is(err, wizard.ErrLastStep),
		errors.Is(err, model.ErrInvalidClassification):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEditConflict):
		writeError(w, http.StatusConflict, "Sessão alterada ao mesmo tempo, tente novamente")
	case errors.Is(err, service.ErrSaveInProgress):
		writeError(w, http.StatusConflict, "Salvamento em andamento")
	case errors.Is(err, service.ErrNotAtResults):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSaveFailed):
		log.Printf("wizard: %v", err)
		n := service.ErroredNotification()
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": n.Description, "notification": n})
	default:
		log.Printf("wizard: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno")
	}
}
