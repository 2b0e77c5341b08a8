package mongo

import (
	"context"
	"errors"

	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recordCollectionName = "workout_records"

// mongoRecordRepository implements repository.RecordRepository.
type mongoRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoRecordRepository creates a record repository over a connected database.
func NewMongoRecordRepository(db *mongo.Database) repository.RecordRepository {
	return &mongoRecordRepository{
		collection: db.Collection(recordCollectionName),
	}
}

// Create inserts a new workout record. Records are immutable once written.
func (r *mongoRecordRepository) Create(ctx context.Context, record *domain.WorkoutRecord) error {
	if record.ID == "" || record.UserID == "" {
		return errors.New("record id and user id are required")
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// GetByUserID retrieves all records of a user, timestamp ascending.
func (r *mongoRecordRepository) GetByUserID(ctx context.Context, userID string) ([]domain.WorkoutRecord, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.WorkoutRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CountByUserID reports how many records the user has.
func (r *mongoRecordRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID})
}

// EnsureRecordIndexes creates the indexes the record queries rely on.
// Call during startup.
func EnsureRecordIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// user timelines are always read sorted by timestamp
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// index creation failure is not fatal; queries still work unindexed
	}
}
