package question_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"nistq/internal/repositories"
	"nistq/internal/services"
)

var Module = fx.Provide(
	provideQuestionRepo, provideQuestionService)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepositoryInterface {
	return repositories.NewQuestionRepository(db)
}

func provideQuestionService(
	questionRepo repositories.QuestionRepositoryInterface,
	questionnaireRepo repositories.QuestionnaireRepositoryInterface,
	controlRepo repositories.ControlRepositoryInterface,
) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo, questionnaireRepo, controlRepo)
}
