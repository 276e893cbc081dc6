package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nistq/internal/models/request_models"
	"nistq/internal/services"
	"nistq/pkg/utils"
)

type QuestionsController struct {
	questionService services.QuestionServiceInterface
}

func NewQuestionsController(questionService services.QuestionServiceInterface) *QuestionsController {
	return &QuestionsController{
		questionService: questionService,
	}
}

func (q *QuestionsController) CreateQuestion(c *gin.Context) {
	var req request_models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	question, err := q.questionService.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, question, "Question created")
}

func (q *QuestionsController) GetQuestion(c *gin.Context) {
	question, err := q.questionService.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, question, "Question fetched successfully")
}

func (q *QuestionsController) UpdateQuestion(c *gin.Context) {
	var req request_models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	question, err := q.questionService.UpdateQuestion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, question, "Question updated")
}

func (q *QuestionsController) DeleteQuestion(c *gin.Context) {
	if err := q.questionService.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Question deleted")
}
