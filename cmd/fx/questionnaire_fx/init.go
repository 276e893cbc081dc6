package questionnaire_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"nistq/internal/repositories"
	"nistq/internal/services"
)

var Module = fx.Provide(
	provideQuestionnaireRepo, provideQuestionnaireService)

func provideQuestionnaireRepo(db *gorm.DB) repositories.QuestionnaireRepositoryInterface {
	return repositories.NewQuestionnaireRepository(db)
}

func provideQuestionnaireService(
	questionnaireRepo repositories.QuestionnaireRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
) services.QuestionnaireServiceInterface {
	return services.NewQuestionnaireService(questionnaireRepo, questionRepo)
}
