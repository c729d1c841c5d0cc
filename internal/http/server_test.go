package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/lumenlearn-backend/internal/db"
	httpH "github.com/lumenlearn/lumenlearn-backend/internal/http/handlers"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

func TestServerServesHealthcheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	s := NewServer(RouterConfig{
		Log:           log,
		HealthHandler: httpH.NewHealthHandler(db.EngineRelational),
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	var body struct {
		Status        string `json:"status"`
		StorageEngine string `json:"storage_engine"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Status != "ok" || body.StorageEngine != "relational" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
