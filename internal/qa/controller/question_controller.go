package controller

import (
	"qahub/internal/qa/model"
	"qahub/internal/qa/service"
	pkgerrors "qahub/pkg/errors"
	"qahub/pkg/utils/response"

	"github.com/gin-gonic/gin"
)

// QuestionController handles question HTTP endpoints.
type QuestionController struct {
	questionService *service.QuestionService
}

// NewQuestionController creates a new QuestionController.
func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// List handles GET /questions with optional start/end query parameters.
func (h *QuestionController) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context(), firstValues(c.Request.URL.Query()))
	if err != nil {
		response.Error(c, err)
		return
	}
	if questions == nil {
		questions = []model.Question{}
	}
	response.JSON(c, questions)
}

// Get handles GET /questions/:id.
func (h *QuestionController) Get(c *gin.Context) {
	q, err := h.questionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, q)
}

// Create handles POST /questions.
func (h *QuestionController) Create(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgerrors.Transport(pkgerrors.BodyDeserializeError, err.Error()))
		return
	}

	if err := h.questionService.Add(c.Request.Context(), req.toModel()); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "Question added")
}

// Update handles PUT /questions/:id.
func (h *QuestionController) Update(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgerrors.Transport(pkgerrors.BodyDeserializeError, err.Error()))
		return
	}

	if err := h.questionService.Update(c.Request.Context(), c.Param("id"), req.toModel()); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "Question updated")
}

// Delete handles DELETE /questions/:id.
func (h *QuestionController) Delete(c *gin.Context) {
	if err := h.questionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, "Question deleted")
}

// QuestionRequest defines the question payload for create and update.
// Pointers make required mean present, so empty strings are accepted.
type QuestionRequest struct {
	ID      *string  `json:"id" binding:"required"`
	Title   *string  `json:"title" binding:"required"`
	Content *string  `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

func (r QuestionRequest) toModel() model.Question {
	return model.Question{
		ID:      model.QuestionID(deref(r.ID)),
		Title:   deref(r.Title),
		Content: deref(r.Content),
		Tags:    r.Tags,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// firstValues collapses repeated query or form keys to their first value.
func firstValues(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}
