package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aarong11/ai-detect-api/internal/usecase"
)

// PredictHandler handles classification HTTP requests
type PredictHandler struct {
	predictUC usecase.PredictUsecase
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(predictUC usecase.PredictUsecase) *PredictHandler {
	return &PredictHandler{predictUC: predictUC}
}

// Predict handles POST /predict. The request body must carry a text field;
// a missing or wrongly typed field is rejected before any inference runs.
// The success body is the ranked label/score array itself.
func (h *PredictHandler) Predict(c *gin.Context) {
	var input usecase.PredictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.predictUC.Predict(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
