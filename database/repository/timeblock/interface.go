package timeblockRepo

import (
	"context"

	"barberbook/database"
	"barberbook/models"
	"barberbook/services/scheduling"

	"go.mongodb.org/mongo-driver/mongo"
)

// TimeBlockRepository persists absolute-time exclusions. It doubles as the
// scheduling engine's TimeBlockSource.
type TimeBlockRepository interface {
	scheduling.TimeBlockSource

	Create(ctx context.Context, block *models.TimeBlock) error
	Delete(ctx context.Context, establishmentID, id string) error
	GetByID(ctx context.Context, establishmentID, id string) (*models.TimeBlock, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]models.TimeBlock, error)
}

type mongoTimeBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeBlockRepo constructs a new MongoDB TimeBlockRepository.
func NewMongoTimeBlockRepo() TimeBlockRepository {
	return &mongoTimeBlockRepo{
		coll: database.DB().Collection("timeblocks"),
	}
}
