package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nistq/internal/models/request_models"
	"nistq/internal/services"
	"nistq/pkg/utils"
)

type AssessmentsController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewAssessmentsController(assessmentService services.AssessmentServiceInterface) *AssessmentsController {
	return &AssessmentsController{
		assessmentService: assessmentService,
	}
}

func (a *AssessmentsController) StartAssessment(c *gin.Context) {
	var req request_models.StartAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := a.assessmentService.StartAssessment(c.Request.Context(), req.QuestionnaireID, req.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "Assessment session started")
}

func (a *AssessmentsController) GetSession(c *gin.Context) {
	token := c.Param("token")

	session, err := a.assessmentService.GetSession(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session fetched successfully")
}

// GetNextQuestion resolves the next question to present. Empty data means the
// assessment has no more questions to ask.
func (a *AssessmentsController) GetNextQuestion(c *gin.Context) {
	token := c.Param("token")

	next, err := a.assessmentService.GetNextQuestion(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if next == nil {
		utils.RespondSuccess(c, nil, "No more questions")
		return
	}
	utils.RespondSuccess(c, next, "Next question resolved")
}

func (a *AssessmentsController) SubmitResponse(c *gin.Context) {
	var req request_models.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := a.assessmentService.SubmitResponse(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Response recorded")
}

func (a *AssessmentsController) ListResponses(c *gin.Context) {
	token := c.Param("token")

	responses, err := a.assessmentService.ListResponses(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, responses, "Responses fetched successfully")
}

func (a *AssessmentsController) GetProgress(c *gin.Context) {
	token := c.Param("token")

	progress, err := a.assessmentService.GetProgress(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Progress fetched successfully")
}

func (a *AssessmentsController) ResumeSession(c *gin.Context) {
	token := c.Param("token")

	session, err := a.assessmentService.ResumeSession(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session resumed")
}
