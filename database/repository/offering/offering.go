package offeringRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OfferingRepository persists the service catalog of an establishment.
type OfferingRepository interface {
	Create(ctx context.Context, offering *models.Offering) error
	Update(ctx context.Context, offering *models.Offering) error
	Deactivate(ctx context.Context, establishmentID, id string) error
	GetByID(ctx context.Context, establishmentID, id string) (*models.Offering, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]models.Offering, error)
}

type mongoOfferingRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferingRepo constructs a new MongoDB OfferingRepository.
func NewMongoOfferingRepo() OfferingRepository {
	return &mongoOfferingRepo{
		coll: database.DB().Collection("offerings"),
	}
}

func (repo *mongoOfferingRepo) Create(ctx context.Context, offering *models.Offering) error {
	now := time.Now()
	offering.CreatedAt = now
	offering.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, offering); err != nil {
		return fmt.Errorf("inserting offering: %w", err)
	}
	return nil
}

func (repo *mongoOfferingRepo) Update(ctx context.Context, offering *models.Offering) error {
	offering.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{
		"id":              offering.ID,
		"establishmentId": offering.EstablishmentID,
	}, offering)
	if err != nil {
		return fmt.Errorf("updating offering %s: %w", offering.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoOfferingRepo) Deactivate(ctx context.Context, establishmentID, id string) error {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "establishmentId": establishmentID},
		bson.M{"$set": bson.M{"active": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("deactivating offering %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoOfferingRepo) GetByID(ctx context.Context, establishmentID, id string) (*models.Offering, error) {
	var offering models.Offering
	err := repo.coll.FindOne(ctx, bson.M{
		"id":              id,
		"establishmentId": establishmentID,
	}).Decode(&offering)
	if err != nil {
		return nil, fmt.Errorf("fetching offering %s: %w", id, err)
	}
	return &offering, nil
}

func (repo *mongoOfferingRepo) ListByEstablishment(ctx context.Context, establishmentID string) ([]models.Offering, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{
		"establishmentId": establishmentID,
		"active":          true,
	})
	if err != nil {
		return nil, fmt.Errorf("listing offerings for establishment %s: %w", establishmentID, err)
	}
	defer cursor.Close(ctx)

	var offerings []models.Offering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, fmt.Errorf("decoding offerings: %w", err)
	}
	return offerings, nil
}
