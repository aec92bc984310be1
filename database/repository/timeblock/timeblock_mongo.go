package timeblockRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoTimeBlockRepo) BlocksInRange(ctx context.Context, q scheduling.TimeBlockQuery) ([]models.TimeBlock, error) {
	// Half-open range intersection: startTime < q.To && endTime > q.From.
	filter := bson.M{
		"establishmentId": q.EstablishmentID,
		"startTime":       bson.M{"$lt": q.To},
		"endTime":         bson.M{"$gt": q.From},
	}
	if q.BarberID != nil {
		filter["$or"] = bson.A{
			bson.M{"barberId": bson.M{"$exists": false}},
			bson.M{"barberId": nil},
			bson.M{"barberId": *q.BarberID},
		}
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding time blocks for establishment %s: %w", q.EstablishmentID, err)
	}
	defer cursor.Close(ctx)

	var blocks []models.TimeBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("decoding time blocks: %w", err)
	}
	return blocks, nil
}

func (repo *mongoTimeBlockRepo) Create(ctx context.Context, block *models.TimeBlock) error {
	block.CreatedAt = time.Now()
	if _, err := repo.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("inserting time block: %w", err)
	}
	return nil
}

func (repo *mongoTimeBlockRepo) Delete(ctx context.Context, establishmentID, id string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{
		"id":              id,
		"establishmentId": establishmentID,
	})
	if err != nil {
		return fmt.Errorf("deleting time block %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoTimeBlockRepo) GetByID(ctx context.Context, establishmentID, id string) (*models.TimeBlock, error) {
	var block models.TimeBlock
	err := repo.coll.FindOne(ctx, bson.M{
		"id":              id,
		"establishmentId": establishmentID,
	}).Decode(&block)
	if err != nil {
		return nil, fmt.Errorf("fetching time block %s: %w", id, err)
	}
	return &block, nil
}

func (repo *mongoTimeBlockRepo) ListByEstablishment(ctx context.Context, establishmentID string) ([]models.TimeBlock, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"establishmentId": establishmentID})
	if err != nil {
		return nil, fmt.Errorf("listing time blocks for establishment %s: %w", establishmentID, err)
	}
	defer cursor.Close(ctx)

	var blocks []models.TimeBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("decoding time blocks: %w", err)
	}
	return blocks, nil
}
