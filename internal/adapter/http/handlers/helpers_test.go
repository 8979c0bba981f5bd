package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/domain/entities"
	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var (
	author   = entities.User{ID: 1, Name: "acme", Role: entities.RoleEnterprise}
	employee = entities.User{ID: 2, Name: "joao", Role: entities.RoleEmployee}
	admin    = entities.User{ID: 3, Name: "root", Role: entities.RoleAdmin}
)

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

// newRouter authenticates every request as u.
func newRouter(u entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetCurrentUser(c, u)
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data any) pkg.Envelope {
	t.Helper()
	var raw struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	if data != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("invalid data %s: %v", raw.Data, err)
		}
	}
	return pkg.Envelope{Status: raw.Status, Message: raw.Message}
}
