package assessment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"nistq/internal/repositories"
	"nistq/internal/services"
	"nistq/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionRepo, provideResponseRepo, provideAssessmentService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepositoryInterface {
	return repositories.NewSessionRepository(db)
}

func provideResponseRepo(db *gorm.DB) repositories.ResponseRepositoryInterface {
	return repositories.NewResponseRepository(db)
}

func provideAssessmentService(
	sessionRepo repositories.SessionRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
	questionnaireRepo repositories.QuestionnaireRepositoryInterface,
	locks *memcache.SessionLocks,
) services.AssessmentServiceInterface {
	return services.NewAssessmentService(sessionRepo, responseRepo, questionRepo, questionnaireRepo, locks)
}
