package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the range and queue queries lean on.
func (repo *mongoAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{
			{Key: "establishmentId", Value: 1},
			{Key: "scheduledTime", Value: 1},
			{Key: "endTime", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "establishmentId", Value: 1},
			{Key: "type", Value: 1},
			{Key: "status", Value: 1},
			{Key: "queuePosition", Value: 1},
		}},
	})
	if err != nil {
		return fmt.Errorf("creating appointment indexes: %w", err)
	}
	return nil
}
