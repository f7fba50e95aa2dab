package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/aarong11/ai-detect-api/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
	}{
		{
			name:               "invalid request",
			err:                usecase.ErrInvalidRequest,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
		},
		{
			name:               "inference failure",
			err:                usecase.ErrInferenceFailed,
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INFERENCE_ERROR",
		},
		{
			name:               "wrapped inference failure",
			err:                fmt.Errorf("%w: tensor shape mismatch", usecase.ErrInferenceFailed),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INFERENCE_ERROR",
		},
		{
			name:               "unknown error",
			err:                errors.New("something odd"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errResp := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, errResp.StatusCode)
			assert.Equal(t, tt.expectedCode, errResp.Code)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestHandleUsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes mapped status and code", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			HandleUsecaseError(c, usecase.ErrInferenceFailed)
		})

		req, _ := http.NewRequest("GET", "/test", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INFERENCE_ERROR")
	})
}
