package staffRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository persists establishment operator accounts.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.StaffUser) error
	GetByEmail(ctx context.Context, email string) (*models.StaffUser, error)
	GetByID(ctx context.Context, id string) (*models.StaffUser, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}

func (repo *mongoStaffRepo) Create(ctx context.Context, staff *models.StaffUser) error {
	staff.CreatedAt = time.Now()
	if _, err := repo.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("inserting staff user: %w", err)
	}
	return nil
}

func (repo *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	var staff models.StaffUser
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("fetching staff user by email: %w", err)
	}
	return &staff, nil
}

func (repo *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffUser, error) {
	var staff models.StaffUser
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("fetching staff user %s: %w", id, err)
	}
	return &staff, nil
}
