package breakRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// barberScope matches records for the given barber plus establishment-wide
// records (no barberId). With no barber requested every record qualifies.
func barberScope(barberID *string) bson.M {
	if barberID == nil {
		return bson.M{}
	}
	return bson.M{"$or": bson.A{
		bson.M{"barberId": bson.M{"$exists": false}},
		bson.M{"barberId": nil},
		bson.M{"barberId": *barberID},
	}}
}

func (repo *mongoBreakRepo) ActiveBreaks(ctx context.Context, q scheduling.BreakQuery) ([]models.BreakRule, error) {
	filter := bson.M{
		"establishmentId": q.EstablishmentID,
		"active":          true,
	}
	for k, v := range barberScope(q.BarberID) {
		filter[k] = v
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding active breaks for establishment %s: %w", q.EstablishmentID, err)
	}
	defer cursor.Close(ctx)

	var rules []models.BreakRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("decoding break rules: %w", err)
	}
	return rules, nil
}

func (repo *mongoBreakRepo) Create(ctx context.Context, rule *models.BreakRule) error {
	now := time.Now()
	rule.CreatedAt = now
	rule.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, rule); err != nil {
		return fmt.Errorf("inserting break rule: %w", err)
	}
	return nil
}

func (repo *mongoBreakRepo) Update(ctx context.Context, rule *models.BreakRule) error {
	rule.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{
		"id":              rule.ID,
		"establishmentId": rule.EstablishmentID,
	}, rule)
	if err != nil {
		return fmt.Errorf("updating break rule %s: %w", rule.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Deactivate soft-deletes a rule; the engine only ever sees active ones.
func (repo *mongoBreakRepo) Deactivate(ctx context.Context, establishmentID, id string) error {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "establishmentId": establishmentID},
		bson.M{"$set": bson.M{"active": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("deactivating break rule %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoBreakRepo) GetByID(ctx context.Context, establishmentID, id string) (*models.BreakRule, error) {
	var rule models.BreakRule
	err := repo.coll.FindOne(ctx, bson.M{
		"id":              id,
		"establishmentId": establishmentID,
	}).Decode(&rule)
	if err != nil {
		return nil, fmt.Errorf("fetching break rule %s: %w", id, err)
	}
	return &rule, nil
}

func (repo *mongoBreakRepo) ListByEstablishment(ctx context.Context, establishmentID string) ([]models.BreakRule, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"establishmentId": establishmentID})
	if err != nil {
		return nil, fmt.Errorf("listing break rules for establishment %s: %w", establishmentID, err)
	}
	defer cursor.Close(ctx)

	var rules []models.BreakRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("decoding break rules: %w", err)
	}
	return rules, nil
}
