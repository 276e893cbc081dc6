package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"nistq/internal/models/request_models"
	"nistq/internal/services"
	"nistq/pkg/utils"
)

type QuestionnairesController struct {
	questionnaireService services.QuestionnaireServiceInterface
}

func NewQuestionnairesController(questionnaireService services.QuestionnaireServiceInterface) *QuestionnairesController {
	return &QuestionnairesController{
		questionnaireService: questionnaireService,
	}
}

func (q *QuestionnairesController) CreateQuestionnaire(c *gin.Context) {
	var req request_models.CreateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	questionnaire, err := q.questionnaireService.CreateQuestionnaire(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, questionnaire, "Questionnaire created")
}

func (q *QuestionnairesController) ListQuestionnaires(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	activeOnly := c.DefaultQuery("activeOnly", "true") == "true"

	questionnaires, err := q.questionnaireService.ListQuestionnaires(c.Request.Context(), page, pageSize, activeOnly)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questionnaires, "Questionnaires fetched successfully")
}

func (q *QuestionnairesController) GetQuestionnaire(c *gin.Context) {
	questionnaire, err := q.questionnaireService.GetQuestionnaire(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questionnaire, "Questionnaire fetched successfully")
}

// GetCatalog returns the full ordered question list of one questionnaire.
func (q *QuestionnairesController) GetCatalog(c *gin.Context) {
	catalog, err := q.questionnaireService.GetCatalog(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, catalog, "Catalog fetched successfully")
}

func (q *QuestionnairesController) UpdateQuestionnaire(c *gin.Context) {
	var req request_models.UpdateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	questionnaire, err := q.questionnaireService.UpdateQuestionnaire(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questionnaire, "Questionnaire updated")
}

func (q *QuestionnairesController) DeactivateQuestionnaire(c *gin.Context) {
	if err := q.questionnaireService.DeactivateQuestionnaire(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Questionnaire deactivated")
}
