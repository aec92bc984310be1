package establishmentRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EstablishmentRepository persists tenant businesses.
type EstablishmentRepository interface {
	Create(ctx context.Context, est *models.Establishment) error
	Update(ctx context.Context, est *models.Establishment) error
	GetByID(ctx context.Context, id string) (*models.Establishment, error)
	List(ctx context.Context) ([]models.Establishment, error)
}

type mongoEstablishmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEstablishmentRepo constructs a new MongoDB EstablishmentRepository.
func NewMongoEstablishmentRepo() EstablishmentRepository {
	return &mongoEstablishmentRepo{
		coll: database.DB().Collection("establishments"),
	}
}

func (repo *mongoEstablishmentRepo) Create(ctx context.Context, est *models.Establishment) error {
	now := time.Now()
	est.CreatedAt = now
	est.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, est); err != nil {
		return fmt.Errorf("inserting establishment: %w", err)
	}
	return nil
}

func (repo *mongoEstablishmentRepo) Update(ctx context.Context, est *models.Establishment) error {
	est.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": est.ID}, est)
	if err != nil {
		return fmt.Errorf("updating establishment %s: %w", est.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoEstablishmentRepo) GetByID(ctx context.Context, id string) (*models.Establishment, error) {
	var est models.Establishment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&est); err != nil {
		return nil, fmt.Errorf("fetching establishment %s: %w", id, err)
	}
	return &est, nil
}

func (repo *mongoEstablishmentRepo) List(ctx context.Context) ([]models.Establishment, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("listing establishments: %w", err)
	}
	defer cursor.Close(ctx)

	var ests []models.Establishment
	if err := cursor.All(ctx, &ests); err != nil {
		return nil, fmt.Errorf("decoding establishments: %w", err)
	}
	return ests, nil
}
