package handler

import (
	"net/http"

	"mmgp/internal/model"
	"mmgp/internal/questionnaire"
)

// QuestionnaireHandler serves the static question catalog
type QuestionnaireHandler struct{}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler() *QuestionnaireHandler {
	return &QuestionnaireHandler{}
}

// ClassificationOptions lists the accepted classification values.
type ClassificationOptions struct {
	YesNo        []model.Option `json:"yesNo"`
	ProductTypes []model.Option `json:"productTypes"`
	CompanySizes []model.Option `json:"companySizes"`
	Estados      []model.Estado `json:"estados"`
}

// CatalogResponse is the full questionnaire.
type CatalogResponse struct {
	Levels         []questionnaire.Section `json:"levels"`
	Classification ClassificationOptions   `json:"classification"`
}

// Get handles GET /v1/questionnaire
//
// @Summary Question catalog and classification options
// @Tags questionnaire
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /questionnaire [get]
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{
		Levels: questionnaire.Sections(),
		Classification: ClassificationOptions{
			YesNo: []model.Option{
				{Value: string(model.YesNoSim), Label: "Sim"},
				{Value: string(model.YesNoNao), Label: "Não"},
			},
			ProductTypes: model.ProductTypes,
			CompanySizes: model.CompanySizes,
			Estados:      model.Estados,
		},
	})
}
