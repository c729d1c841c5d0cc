package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/lumenlearn-backend/internal/http/response"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/ctxutil"
	"github.com/lumenlearn/lumenlearn-backend/internal/services"
)

type ModuleHandler struct {
	moduleService services.ModuleService
}

func NewModuleHandler(moduleService services.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

func (mh *ModuleHandler) Create(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		PDFText string `json:"pdf_text"`
		VideoID string `json:"video_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	module, err := mh.moduleService.Create(c.Request.Context(), rd.AccountID, services.CreateModuleInput{
		Title:   req.Title,
		Content: req.Content,
		PDFText: req.PDFText,
		VideoID: req.VideoID,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, module)
}

func (mh *ModuleHandler) ListOwn(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	modules, err := mh.moduleService.ListOwn(c.Request.Context(), rd.AccountID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, modules)
}

func (mh *ModuleHandler) Get(c *gin.Context) {
	module, err := mh.moduleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, module)
}

func (mh *ModuleHandler) GenerateAI(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	var req struct {
		PDFText string `json:"pdf_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	generated, err := mh.moduleService.GenerateFromText(c.Request.Context(), rd.AccountID, req.PDFText)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, generated)
}
