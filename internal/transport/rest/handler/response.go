package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"mmgp/internal/model"
	"mmgp/internal/service"
	"mmgp/internal/transport/rest/middleware"
	"mmgp/internal/wizard"
)

// ResponseHandler handles stored assessment records
type ResponseHandler struct {
	submissionSvc *service.SubmissionService
	historySvc    *service.HistoryService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(submissionSvc *service.SubmissionService, historySvc *service.HistoryService) *ResponseHandler {
	return &ResponseHandler{submissionSvc: submissionSvc, historySvc: historySvc}
}

// SaveResponse is the body returned by direct submission.
type SaveResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message,omitempty"`
	Data         *model.ResponseRecord `json:"data,omitempty"`
	Error        string                `json:"error,omitempty"`
	Notification *model.Notification   `json:"notification,omitempty"`
}

// Create handles POST /v1/responses
//
// @Summary Save a complete form state
// @Tags responses
// @Accept json
// @Produce json
// @Param body body model.FormState true "form state"
// @Success 200 {object} SaveResponse
// @Failure 400 {object} SaveResponse
// @Failure 500 {object} SaveResponse
// @Router /responses [post]
func (h *ResponseHandler) Create(w http.ResponseWriter, r *http.Request) {
	state := model.NewFormState()
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		log.Printf("responses: decode body: %v", err)
		writeJSON(w, http.StatusBadRequest, SaveResponse{Message: "Erro ao processar dados do formulário"})
		return
	}

	result, err := h.submissionSvc.Submit(r.Context(), state, middleware.GetActor(r.Context()))
	switch {
	case errors.Is(err, wizard.ErrEmailRequired):
		writeJSON(w, http.StatusBadRequest, SaveResponse{Message: "E-mail é obrigatório"})
		return
	case errors.Is(err, service.ErrInvalidAnswers):
		writeJSON(w, http.StatusBadRequest, SaveResponse{Message: "Respostas inválidas", Error: err.Error()})
		return
	case errors.Is(err, model.ErrInvalidClassification):
		writeJSON(w, http.StatusBadRequest, SaveResponse{Message: "Classificação inválida", Error: err.Error()})
		return
	case err != nil:
		log.Printf("responses: %v", err)
		n := service.ErroredNotification()
		writeJSON(w, http.StatusInternalServerError, SaveResponse{
			Message:      "Erro ao salvar dados no banco de dados",
			Error:        err.Error(),
			Notification: &n,
		})
		return
	}

	resp := SaveResponse{
		Success:      result.Success,
		Data:         result.Data,
		Error:        result.Error,
		Notification: result.Notification,
	}
	if !result.Success {
		resp.Message = "Erro ao salvar os dados"
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /v1/responses
//
// @Summary Submission history of the signed-in respondent
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ResponseSummary
// @Failure 401 {object} map[string]string
// @Router /responses [get]
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.historySvc.List(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		historyError(w, err)
		return
	}
	if list == nil {
		list = []model.ResponseSummary{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /v1/responses/{id}
//
// @Summary One stored submission with its result
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path string true "response id"
// @Success 200 {object} service.ResponseDetail
// @Failure 404 {object} map[string]string
// @Router /responses/{id} [get]
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.historySvc.Detail(r.Context(), mux.Vars(r)["id"], middleware.GetActor(r.Context()))
	if err != nil {
		historyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func historyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrResponseNotFound):
		writeError(w, http.StatusNotFound, "Resposta não encontrada")
	default:
		log.Printf("responses: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao carregar respostas")
	}
}
