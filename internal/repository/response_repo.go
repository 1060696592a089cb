package repository

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mmgp/internal/model"
)

// ResponseRepo is the append-only store of submitted assessments.
type ResponseRepo interface {
	// Create inserts rec, assigning its ID and SubmittedAt.
	Create(ctx context.Context, rec *model.ResponseRecord) error
	GetByID(ctx context.Context, id string) (*model.ResponseRecord, error)
	// ListByEmail returns summaries, most recent first.
	ListByEmail(ctx context.Context, email string) ([]model.ResponseSummary, error)
	Ping(ctx context.Context) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates the MongoDB response repository and its indexes.
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	r := &responseRepo{collection: db.Collection("mmgp_responses")}
	r.ensureIndexes(context.Background())
	return r
}

func (r *responseRepo) ensureIndexes(ctx context.Context) {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "submitted_at", Value: -1}},
	})
	if err != nil {
		log.Printf("Warning: failed to create index on %s: %v", r.collection.Name(), err)
	}
}

func (r *responseRepo) Create(ctx context.Context, rec *model.ResponseRecord) error {
	if err := checkRecord(rec); err != nil {
		return err
	}
	rec.ID = ""
	rec.SubmittedAt = timeNow()

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return mongoWriteError(err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}
	return nil
}

func (r *responseRepo) GetByID(ctx context.Context, id string) (*model.ResponseRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var rec model.ResponseRecord
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

func (r *responseRepo) ListByEmail(ctx context.Context, email string) ([]model.ResponseSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.M{
			"email": 1, "submitted_at": 1, "maturity_index": 1,
			"level2_score": 1, "level3_score": 1, "level4_score": 1, "level5_score": 1,
		})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []model.ResponseSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *responseRepo) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, nil)
}

// documentValidationFailure is the server code for a collection validator rejection.
const documentValidationFailure = 121

func mongoWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == documentValidationFailure {
				return &ConstraintError{Message: e.Message}
			}
		}
	}
	return err
}
