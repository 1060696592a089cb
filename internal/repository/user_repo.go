package repository

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mmgp/internal/model"
)

// UserRepo stores respondent accounts
type UserRepo interface {
	// Create inserts u and returns ErrDuplicate when the e-mail is taken.
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepo struct {
	collection *mongo.Collection
}

// NewUserRepo creates the MongoDB user repository with a unique e-mail index
func NewUserRepo(db *mongo.Database) UserRepo {
	r := &userRepo{collection: db.Collection("users")}
	opts := options.Index().SetUnique(true)
	_, err := r.collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: opts,
	})
	if err != nil {
		log.Printf("Warning: failed to create index on %s: %v", r.collection.Name(), err)
	}
	return r
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = timeNow()
	}
	_, err := r.collection.InsertOne(ctx, u)
	return mongoWriteError(err)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
