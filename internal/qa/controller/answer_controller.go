package controller

import (
	"qahub/internal/qa/service"
	pkgerrors "qahub/pkg/errors"
	"qahub/pkg/utils/response"

	"github.com/gin-gonic/gin"
)

// AnswerController handles answer HTTP endpoints.
type AnswerController struct {
	answerService *service.AnswerService
}

// NewAnswerController creates a new AnswerController.
func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// Create handles POST /answers with a url-encoded form body.
func (h *AnswerController) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		response.Error(c, pkgerrors.Transport(pkgerrors.BodyDeserializeError, err.Error()))
		return
	}

	if _, err := h.answerService.Add(c.Request.Context(), firstValues(c.Request.PostForm)); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "Answer added")
}
