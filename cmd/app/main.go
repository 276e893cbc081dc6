package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"nistq/cmd/fx/assessment_fx"
	"nistq/cmd/fx/control_fx"
	"nistq/cmd/fx/controllers_fx"
	"nistq/cmd/fx/db_fx"
	"nistq/cmd/fx/memcache_fx"
	"nistq/cmd/fx/question_fx"
	"nistq/cmd/fx/questionnaire_fx"
	"nistq/internal/api/controllers"
	"nistq/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		questionnaire_fx.Module,
		question_fx.Module,
		assessment_fx.Module,
		control_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	questionnairesController *controllers.QuestionnairesController,
	questionsController *controllers.QuestionsController,
	assessmentsController *controllers.AssessmentsController,
	controlsController *controllers.ControlsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, questionnairesController, questionsController, assessmentsController, controlsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	questionnairesController *controllers.QuestionnairesController,
	questionsController *controllers.QuestionsController,
	assessmentsController *controllers.AssessmentsController,
	controlsController *controllers.ControlsController) {

	questionnairesGroup := r.Group("/api/questionnaires")
	questionnairesGroup.POST("", questionnairesController.CreateQuestionnaire)
	questionnairesGroup.GET("", questionnairesController.ListQuestionnaires)
	questionnairesGroup.GET("/:id", questionnairesController.GetQuestionnaire)
	questionnairesGroup.GET("/:id/questions", questionnairesController.GetCatalog)
	questionnairesGroup.PUT("/:id", questionnairesController.UpdateQuestionnaire)
	questionnairesGroup.DELETE("/:id", questionnairesController.DeactivateQuestionnaire)

	questionsGroup := r.Group("/api/questions")
	questionsGroup.POST("", questionsController.CreateQuestion)
	questionsGroup.GET("/:id", questionsController.GetQuestion)
	questionsGroup.PUT("/:id", questionsController.UpdateQuestion)
	questionsGroup.DELETE("/:id", questionsController.DeleteQuestion)

	assessmentsGroup := r.Group("/api/assessments")
	assessmentsGroup.POST("/start", assessmentsController.StartAssessment)
	assessmentsGroup.GET("/sessions/:token", assessmentsController.GetSession)
	assessmentsGroup.GET("/sessions/:token/next-question", assessmentsController.GetNextQuestion)
	assessmentsGroup.POST("/responses", assessmentsController.SubmitResponse)
	assessmentsGroup.GET("/sessions/:token/responses", assessmentsController.ListResponses)
	assessmentsGroup.GET("/sessions/:token/progress", assessmentsController.GetProgress)
	assessmentsGroup.POST("/sessions/:token/resume", assessmentsController.ResumeSession)

	controlsGroup := r.Group("/api/controls")
	controlsGroup.GET("", controlsController.ListFamilies)
	controlsGroup.GET("/:code", controlsController.GetFamily)
}
