package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-app/mizan/internal/application/template/usecases"
	"github.com/mizan-app/mizan/internal/shared/logger"
)

type templateListEnvelope struct {
	Success bool `json:"success"`
	Data    []struct {
		Key           string `json:"key"`
		Label         string `json:"label"`
		HasHypothesis bool   `json:"has_hypothesis"`
	} `json:"data"`
}

func testTemplateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTemplateHandler(
		usecases.NewListTemplatesUseCase(logger.NewLogger()),
		nil,
	)
	r := gin.New()
	r.GET("/api/v1/templates", handler.ListTemplates)
	return r
}

func TestListTemplates_DefaultsToFrench(t *testing.T) {
	r := testTemplateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body templateListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 4)
	assert.Equal(t, "imprimerie", body.Data[0].Key)
	assert.Equal(t, "Café / Restaurant", body.Data[1].Label)
}

func TestListTemplates_ArabicQuery(t *testing.T) {
	r := testTemplateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates?language=ar", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body templateListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 4)
	assert.Equal(t, "مقهى / مطعم", body.Data[1].Label)
	assert.True(t, body.Data[1].HasHypothesis)
}
