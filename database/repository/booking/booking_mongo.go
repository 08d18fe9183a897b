package bookingRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"servehub/database"
	"servehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}

	// The uniqueness invariant lives in the partial unique index; do not
	// serve bookings without it.
	if err := repo.ensureIndexes(); err != nil {
		log.Fatalf("booking repo: %v", err)
	}
	return repo
}

func activeStatusFilter(providerID, date string) bson.M {
	return bson.M{
		"provider_id": providerID,
		"date":        date,
		"status":      bson.M{"$in": models.ActiveBookingStatuses},
	}
}

// FindActiveBooking returns the slot-holding booking for the triple, or nil.
func (repo *MongoBookingRepo) FindActiveBooking(ctx context.Context, providerID, date, slot string) (*models.Booking, error) {
	filter := activeStatusFilter(providerID, date)
	filter["time_slot"] = slot

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching active booking: %w", err)
	}
	return &booking, nil
}

// FindActiveBookingsByDate returns every slot-holding booking for the
// provider on the given date in a single read.
func (repo *MongoBookingRepo) FindActiveBookingsByDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	cursor, err := repo.coll.Find(ctx, activeStatusFilter(providerID, date))
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for %s on %s: %w", providerID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// InsertConfirmedBooking writes the booking. The partial unique index over
// active statuses is the serialization point: when two confirmations race,
// exactly one insert succeeds and the rest observe ErrDuplicateSlot.
func (repo *MongoBookingRepo) InsertConfirmedBooking(ctx context.Context, booking *models.Booking) error {
	now := time.Now().UTC()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

// ListByUser returns the user's bookings, newest first.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"user_id": userID})
}

// ListByProvider returns the provider's bookings, newest first.
func (repo *MongoBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"provider_id": providerID})
}

func (repo *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
