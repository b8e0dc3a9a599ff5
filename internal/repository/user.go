package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"splitwise/internal/model"
)

var ErrDuplicateUser = errors.New("user with this email already exists")

const usersCollection = "users"

//go:generate mockery --name=User

type User interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type UserMongo struct {
	db *mongo.Database
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{
		db: db,
	}
}

// EnsureIndexes creates the unique email index. Index creation is
// idempotent, so this runs on every start.
func (u *UserMongo) EnsureIndexes(ctx context.Context) error {
	_, err := u.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo couldn't create users email index: %v", err)
	}
	return nil
}

func (u *UserMongo) Create(ctx context.Context, user *model.User) error {
	result, err := u.db.Collection(usersCollection).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUser
	}
	if err != nil {
		return fmt.Errorf("mongo couldn't InsertOne in user Create method: %v", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (u *UserMongo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := u.db.Collection(usersCollection).FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("mongo couldn't FindOne in GetByEmail method: %v", err)
	} else if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return &user, nil
}

func (u *UserMongo) GetByID(ctx context.Context, id string) (*model.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var user model.User
	err = u.db.Collection(usersCollection).FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&user)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("mongo couldn't FindOne in GetByID method: %v", err)
	} else if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return &user, nil
}
