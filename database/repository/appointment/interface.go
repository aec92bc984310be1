package appointmentRepo

import (
	"context"
	"time"

	"barberbook/database"
	"barberbook/models"
	"barberbook/services/scheduling"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository persists appointments and queue entries. It doubles as
// the scheduling engine's AppointmentSource.
type AppointmentRepository interface {
	scheduling.AppointmentSource

	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, establishmentID, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, establishmentID, id, status string) error
	UpdateSchedule(ctx context.Context, establishmentID, id string, start, end time.Time) error
	ListByEstablishmentAndDay(ctx context.Context, establishmentID string, day time.Time) ([]models.Appointment, error)

	// MarkNoShows bulk-transitions confirmed appointments whose interval
	// ended before the cutoff. Returns how many were updated.
	MarkNoShows(ctx context.Context, before time.Time) (int64, error)

	// Queue operations. Queue entries are appointments of type "queue" with
	// no scheduled time, ordered by queue position.
	CountQueued(ctx context.Context, establishmentID string) (int64, error)
	NextQueued(ctx context.Context, establishmentID string) (*models.Appointment, error)

	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
