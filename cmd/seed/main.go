package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mmgp/internal/config"
	"mmgp/internal/model"
	"mmgp/internal/questionnaire"
	"mmgp/internal/repository"
	"mmgp/internal/service"
	"mmgp/internal/wizard"
)

// Inserts one scored sample assessment. Levels 2 and 3 are fully met,
// level 4 half met and level 5 left unanswered.
func main() {
	email := flag.String("email", "demo@example.com", "respondent e-mail")
	flag.Parse()

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var responses repository.ResponseRepo
	if cfg.StoreBackend == config.BackendSQLite {
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite: %v", err)
		}
		defer db.Close()
		responses = repository.NewSQLiteResponseRepo(db)
	} else {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer client.Disconnect(ctx)
		responses = repository.NewResponseRepo(client.Database(cfg.MongoDB))
	}

	state, err := sampleState(*email)
	if err != nil {
		log.Fatalf("Failed to build sample: %v", err)
	}

	result, err := service.NewSubmissionService(responses, nil).Submit(ctx, state, model.Actor{})
	if err != nil {
		log.Fatalf("Failed to insert sample: %v", err)
	}
	if !result.Success {
		log.Fatalf("Sample rejected: %s", result.Error)
	}

	fmt.Printf("Inserted sample %s for %s (index %.2f)\n", result.Data.ID, result.Data.Email, result.Data.MaturityIndex)
}

func sampleState(email string) (model.FormState, error) {
	actions := []wizard.Action{
		wizard.UpdateEmail{Email: email},
		wizard.UpdateClassification{Field: model.FieldParticipatedInProjects, Value: string(model.YesNoSim)},
		wizard.UpdateClassification{Field: model.FieldIsPharmaceuticalIndustry, Value: string(model.YesNoSim)},
		wizard.UpdateClassification{Field: model.FieldProductType, Value: string(model.ProductGenerico)},
		wizard.UpdateClassification{Field: model.FieldCompanySize, Value: string(model.CompanySizeMedia)},
		wizard.UpdateClassification{Field: model.FieldEstado, Value: "SP"},
	}
	for _, l := range []model.Level{model.Level2, model.Level3, model.Level4} {
		for i, id := range questionnaire.QuestionIDs(l) {
			answer := model.AnswerYes
			if l == model.Level4 && i%2 == 1 {
				answer = model.AnswerNo
			}
			actions = append(actions, wizard.UpdateQuestion{
				Level:      l,
				QuestionID: id,
				Response:   model.QuestionResponse{MeetsRequirement: answer},
			})
		}
	}

	state := model.NewFormState()
	for _, a := range actions {
		next, err := wizard.Apply(state, a)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}
