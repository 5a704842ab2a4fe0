package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockService struct {
	got EnforceRequest
}

func (m *mockService) Enforce(req EnforceRequest) (bool, error) {
	m.got = req
	return req.Role == "manager" && req.Resource == ResourceWriteUp && req.Action == ActionCreate, nil
}

func (m *mockService) Permissions(role string) ([]PermissionResponse, error) {
	return nil, nil
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := &mockService{}
	handler := NewHandler(service)

	router := gin.New()
	router.POST("/rbac/enforce", func(c *gin.Context) {
		c.Set("role", "manager")
		c.Next()
	}, handler.Enforce)

	jsonBody, _ := json.Marshal(map[string]string{
		"role":     "admin", // ignored, role comes from the token
		"resource": "writeup",
		"action":   "create",
	})

	req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "manager", service.got.Role)

	var resp struct {
		Data EnforceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Allowed)
}
