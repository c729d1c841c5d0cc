package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/lumenlearn-backend/internal/db"
	"github.com/lumenlearn/lumenlearn-backend/internal/http/response"
)

type HealthHandler struct {
	engine db.Engine
}

func NewHealthHandler(engine db.Engine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

func (hh *HealthHandler) HealthCheck(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"status":         "ok",
		"storage_engine": string(hh.engine),
	})
}
