package barberRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BarberRepository persists barbers of an establishment.
type BarberRepository interface {
	Create(ctx context.Context, barber *models.Barber) error
	Update(ctx context.Context, barber *models.Barber) error
	Deactivate(ctx context.Context, establishmentID, id string) error
	GetByID(ctx context.Context, establishmentID, id string) (*models.Barber, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]models.Barber, error)
}

type mongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo constructs a new MongoDB BarberRepository.
func NewMongoBarberRepo() BarberRepository {
	return &mongoBarberRepo{
		coll: database.DB().Collection("barbers"),
	}
}

func (repo *mongoBarberRepo) Create(ctx context.Context, barber *models.Barber) error {
	now := time.Now()
	barber.CreatedAt = now
	barber.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, barber); err != nil {
		return fmt.Errorf("inserting barber: %w", err)
	}
	return nil
}

func (repo *mongoBarberRepo) Update(ctx context.Context, barber *models.Barber) error {
	barber.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{
		"id":              barber.ID,
		"establishmentId": barber.EstablishmentID,
	}, barber)
	if err != nil {
		return fmt.Errorf("updating barber %s: %w", barber.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoBarberRepo) Deactivate(ctx context.Context, establishmentID, id string) error {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "establishmentId": establishmentID},
		bson.M{"$set": bson.M{"active": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("deactivating barber %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoBarberRepo) GetByID(ctx context.Context, establishmentID, id string) (*models.Barber, error) {
	var barber models.Barber
	err := repo.coll.FindOne(ctx, bson.M{
		"id":              id,
		"establishmentId": establishmentID,
	}).Decode(&barber)
	if err != nil {
		return nil, fmt.Errorf("fetching barber %s: %w", id, err)
	}
	return &barber, nil
}

func (repo *mongoBarberRepo) ListByEstablishment(ctx context.Context, establishmentID string) ([]models.Barber, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{
		"establishmentId": establishmentID,
		"active":          true,
	})
	if err != nil {
		return nil, fmt.Errorf("listing barbers for establishment %s: %w", establishmentID, err)
	}
	defer cursor.Close(ctx)

	var barbers []models.Barber
	if err := cursor.All(ctx, &barbers); err != nil {
		return nil, fmt.Errorf("decoding barbers: %w", err)
	}
	return barbers, nil
}
