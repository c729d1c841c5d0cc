package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/lumenlearn-backend/internal/http/response"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/ctxutil"
	"github.com/lumenlearn/lumenlearn-backend/internal/services"
)

type ResultHandler struct {
	resultService services.ResultService
}

func NewResultHandler(resultService services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

func (rh *ResultHandler) SubmitMCQ(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())

	var req services.SubmitQuizInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result, err := rh.resultService.SubmitQuiz(c.Request.Context(), rd.AccountID, req)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, result)
}

func (rh *ResultHandler) MyResults(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	results, err := rh.resultService.ListMine(c.Request.Context(), rd.AccountID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, results)
}

func (rh *ResultHandler) ModuleResults(c *gin.Context) {
	results, err := rh.resultService.ListForModule(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, results)
}

func (rh *ResultHandler) Analytics(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	summary, err := rh.resultService.Analytics(c.Request.Context(), rd.AccountID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, summary)
}
