package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoAppointmentRepo) AppointmentsInRange(ctx context.Context, q scheduling.AppointmentQuery) ([]models.Appointment, error) {
	// Half-open overlap against the stored interval. Queue entries carry no
	// scheduledTime and fall out of the range match naturally.
	filter := bson.M{
		"establishmentId": q.EstablishmentID,
		"scheduledTime":   bson.M{"$lt": q.To},
		"endTime":         bson.M{"$gt": q.From},
	}
	if len(q.Statuses) > 0 {
		filter["status"] = bson.M{"$in": q.Statuses}
	}
	if q.BarberID != nil {
		// Appointment conflicts are barber-exact, unlike breaks and blocks.
		filter["barberId"] = *q.BarberID
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding appointments for establishment %s: %w", q.EstablishmentID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decoding appointments: %w", err)
	}
	return appts, nil
}

func (repo *mongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	if appt.ScheduledTime != nil && appt.EndTime == nil {
		end := appt.ScheduledTime.Add(time.Duration(appt.DurationMin) * time.Minute)
		appt.EndTime = &end
	}
	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}
	return nil
}

func (repo *mongoAppointmentRepo) GetByID(ctx context.Context, establishmentID, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{
		"id":              id,
		"establishmentId": establishmentID,
	}).Decode(&appt)
	if err != nil {
		return nil, fmt.Errorf("fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (repo *mongoAppointmentRepo) UpdateStatus(ctx context.Context, establishmentID, id, status string) error {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "establishmentId": establishmentID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("updating status of appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoAppointmentRepo) UpdateSchedule(ctx context.Context, establishmentID, id string, start, end time.Time) error {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "establishmentId": establishmentID},
		bson.M{"$set": bson.M{
			"scheduledTime": start,
			"endTime":       end,
			"type":          models.TypeScheduled,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("rescheduling appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *mongoAppointmentRepo) ListByEstablishmentAndDay(ctx context.Context, establishmentID string, day time.Time) ([]models.Appointment, error) {
	year, month, d := day.Date()
	dayStart := time.Date(year, month, d, 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	cursor, err := repo.coll.Find(ctx, bson.M{
		"establishmentId": establishmentID,
		"scheduledTime":   bson.M{"$gte": dayStart, "$lt": dayEnd},
	}, options.Find().SetSort(bson.D{{Key: "scheduledTime", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listing appointments for establishment %s: %w", establishmentID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decoding appointments: %w", err)
	}
	return appts, nil
}

func (repo *mongoAppointmentRepo) MarkNoShows(ctx context.Context, before time.Time) (int64, error) {
	res, err := repo.coll.UpdateMany(ctx,
		bson.M{
			"status":  models.StatusConfirmed,
			"endTime": bson.M{"$lt": before},
		},
		bson.M{"$set": bson.M{"status": models.StatusNoShow, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("marking no-shows: %w", err)
	}
	return res.ModifiedCount, nil
}

func (repo *mongoAppointmentRepo) CountQueued(ctx context.Context, establishmentID string) (int64, error) {
	n, err := repo.coll.CountDocuments(ctx, bson.M{
		"establishmentId": establishmentID,
		"type":            models.TypeQueue,
		"status":          models.StatusPending,
	})
	if err != nil {
		return 0, fmt.Errorf("counting queue for establishment %s: %w", establishmentID, err)
	}
	return n, nil
}

func (repo *mongoAppointmentRepo) NextQueued(ctx context.Context, establishmentID string) (*models.Appointment, error) {
	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{
		"establishmentId": establishmentID,
		"type":            models.TypeQueue,
		"status":          models.StatusPending,
	}, options.FindOne().SetSort(bson.D{{Key: "queuePosition", Value: 1}})).Decode(&appt)
	if err != nil {
		return nil, fmt.Errorf("fetching next queued appointment: %w", err)
	}
	return &appt, nil
}
