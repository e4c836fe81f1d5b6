package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replenish-inc/replenish/internal/shared/utils"
)

func TestConfirmationHandler_Respond_MalformedBodyIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewConfirmationHandler(nil, nil, nil)

	router := gin.New()
	router.POST("/confirmations/respond", handler.Respond)

	req := httptest.NewRequest(http.MethodPost, "/confirmations/respond", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "bad_request", resp.Error.Type)
	assert.Equal(t, "invalid request body", resp.Error.Message)
}
