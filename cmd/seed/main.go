package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"nistq/internal/infra"
	"nistq/internal/models/db_models"
	"nistq/internal/repositories"
	"nistq/internal/resolver"

	"gorm.io/gorm"
)

// Seeds the NIST CSF control taxonomy and a sample self-assessment
// questionnaire with dependency gating and branching examples.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	ctx := context.Background()

	if err := seedControls(ctx, db); err != nil {
		log.Fatalf("Failed to seed control taxonomy: %v", err)
	}
	if err := seedSampleQuestionnaire(ctx, db); err != nil {
		log.Fatalf("Failed to seed sample questionnaire: %v", err)
	}

	log.Println("Seeding complete")
}

func seedControls(ctx context.Context, db *gorm.DB) error {
	controlRepo := repositories.NewControlRepository(db)

	families := []db_models.ControlFamily{
		{
			Code:        "ID",
			Name:        "Identify",
			Description: "Develop the organizational understanding to manage cybersecurity risk.",
			OrderIndex:  0,
			Controls: []db_models.Control{
				{Code: "ID.AM-1", Name: "Asset inventory", Description: "Physical devices and systems within the organization are inventoried.", OrderIndex: 0},
				{Code: "ID.AM-2", Name: "Software inventory", Description: "Software platforms and applications within the organization are inventoried.", OrderIndex: 1},
			},
		},
		{
			Code:        "PR",
			Name:        "Protect",
			Description: "Develop and implement appropriate safeguards to ensure delivery of critical services.",
			OrderIndex:  1,
			Controls: []db_models.Control{
				{Code: "PR.AC-1", Name: "Identity management", Description: "Identities and credentials are managed for authorized devices and users.", OrderIndex: 0},
				{Code: "PR.AC-7", Name: "Authentication", Description: "Users, devices, and other assets are authenticated commensurate with the risk of the transaction.", OrderIndex: 1},
			},
		},
		{
			Code:        "DE",
			Name:        "Detect",
			Description: "Develop and implement appropriate activities to identify the occurrence of a cybersecurity event.",
			OrderIndex:  2,
			Controls: []db_models.Control{
				{Code: "DE.CM-1", Name: "Network monitoring", Description: "The network is monitored to detect potential cybersecurity events.", OrderIndex: 0},
			},
		},
	}

	for i := range families {
		existing, err := controlRepo.GetFamilyByCode(ctx, families[i].Code)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Printf("Control family %s already present, skipping", families[i].Code)
			continue
		}
		if err := controlRepo.CreateFamily(ctx, &families[i]); err != nil {
			return err
		}
		log.Printf("Seeded control family %s with %d controls", families[i].Code, len(families[i].Controls))
	}
	return nil
}

func seedSampleQuestionnaire(ctx context.Context, db *gorm.DB) error {
	questionnaireRepo := repositories.NewQuestionnaireRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)

	questionnaire := &db_models.Questionnaire{
		Title:       "NIST CSF Baseline Self-Assessment",
		Description: "Baseline security posture questionnaire following the NIST Cybersecurity Framework.",
		Category:    "security",
		Version:     "1.0",
		IsActive:    true,
	}
	if err := questionnaireRepo.CreateQuestionnaire(ctx, questionnaire); err != nil {
		return err
	}

	yes := "yes"
	questions := []db_models.Question{
		{
			QuestionnaireID: questionnaire.ID,
			Code:            "ID.AM-1.Q1",
			QuestionText:    "Do you maintain an up-to-date inventory of physical devices across the organization?",
			QuestionType:    "single_choice",
			OrderIndex:      0,
			IsRequired:      true,
			Options:         []string{"yes", "no"},
		},
		{
			QuestionnaireID: questionnaire.ID,
			Code:            "ID.AM-1.Q2",
			QuestionText:    "How frequently is your asset inventory reviewed and reconciled?",
			QuestionType:    "text",
			OrderIndex:      1,
			IsRequired:      true,
		},
		{
			QuestionnaireID: questionnaire.ID,
			Code:            "PR.AC-1.Q1",
			QuestionText:    "Do you enforce multi-factor authentication for privileged access?",
			QuestionType:    "single_choice",
			OrderIndex:      2,
			IsRequired:      true,
			Options:         []string{"yes", "no"},
		},
		{
			QuestionnaireID: questionnaire.ID,
			Code:            "PR.AC-1.Q2",
			QuestionText:    "Which multi-factor authentication mechanisms are in use?",
			QuestionType:    "text",
			OrderIndex:      3,
			IsRequired:      true,
		},
		{
			QuestionnaireID: questionnaire.ID,
			Code:            "DE.CM-1.Q1",
			QuestionText:    "Is network traffic monitored for potential cybersecurity events?",
			QuestionType:    "single_choice",
			OrderIndex:      4,
			IsRequired:      true,
			Options:         []string{"yes", "no"},
		},
	}

	// Assign ids upfront so gating and branching can reference them.
	for i := range questions {
		questions[i].ID = uuid.New()
	}

	// PR.AC-1.Q2 only makes sense when MFA is in place.
	questions[3].DependsOnQuestionID = &questions[2].ID
	questions[3].DependsOnAnswer = &yes

	// An affirmative asset inventory answer jumps straight to the MFA block.
	questions[0].BranchingRules = db_models.BranchingRules{{
		Condition:      db_models.ConditionEquals,
		Value:          "yes",
		NextQuestionID: &questions[2].ID,
	}}

	if err := resolver.ValidateCatalog(questions); err != nil {
		return err
	}

	for i := range questions {
		if err := questionRepo.CreateQuestion(ctx, &questions[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded questionnaire %q with %d questions", questionnaire.Title, len(questions))
	return nil
}
