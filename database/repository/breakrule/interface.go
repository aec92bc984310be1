package breakRepo

import (
	"context"

	"barberbook/database"
	"barberbook/models"
	"barberbook/services/scheduling"

	"go.mongodb.org/mongo-driver/mongo"
)

// BreakRepository persists weekly break rules. It doubles as the scheduling
// engine's BreakSource.
type BreakRepository interface {
	scheduling.BreakSource

	Create(ctx context.Context, rule *models.BreakRule) error
	Update(ctx context.Context, rule *models.BreakRule) error
	Deactivate(ctx context.Context, establishmentID, id string) error
	GetByID(ctx context.Context, establishmentID, id string) (*models.BreakRule, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]models.BreakRule, error)
}

type mongoBreakRepo struct {
	coll *mongo.Collection
}

// NewMongoBreakRepo constructs a new MongoDB BreakRepository.
func NewMongoBreakRepo() BreakRepository {
	return &mongoBreakRepo{
		coll: database.DB().Collection("breakrules"),
	}
}
