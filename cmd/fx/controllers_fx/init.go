package controllers_fx

import (
	"go.uber.org/fx"
	"nistq/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuestionnairesController),
	fx.Provide(controllers.NewQuestionsController),
	fx.Provide(controllers.NewAssessmentsController),
	fx.Provide(controllers.NewControlsController))
