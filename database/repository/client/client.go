package clientRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository persists end customers.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, establishmentID, id string) (*models.Client, error)
	GetByPhone(ctx context.Context, establishmentID, phone string) (*models.Client, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]models.Client, error)
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{
		coll: database.DB().Collection("clients"),
	}
}

func (repo *mongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (repo *mongoClientRepo) Update(ctx context.Context, client *models.Client) error {
	client.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{
		"id":              client.ID,
		"establishmentId": client.EstablishmentID,
	}, client)
	if err != nil {
		return fmt.Errorf("updating client %s: %w", client.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoClientRepo) GetByID(ctx context.Context, establishmentID, id string) (*models.Client, error) {
	var client models.Client
	err := repo.coll.FindOne(ctx, bson.M{
		"id":              id,
		"establishmentId": establishmentID,
	}).Decode(&client)
	if err != nil {
		return nil, fmt.Errorf("fetching client %s: %w", id, err)
	}
	return &client, nil
}

func (repo *mongoClientRepo) GetByPhone(ctx context.Context, establishmentID, phone string) (*models.Client, error) {
	var client models.Client
	err := repo.coll.FindOne(ctx, bson.M{
		"establishmentId": establishmentID,
		"phone":           phone,
	}).Decode(&client)
	if err != nil {
		return nil, fmt.Errorf("fetching client by phone: %w", err)
	}
	return &client, nil
}

func (repo *mongoClientRepo) ListByEstablishment(ctx context.Context, establishmentID string) ([]models.Client, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"establishmentId": establishmentID})
	if err != nil {
		return nil, fmt.Errorf("listing clients for establishment %s: %w", establishmentID, err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decoding clients: %w", err)
	}
	return clients, nil
}
