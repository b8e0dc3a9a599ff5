package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"splitwise/internal/model"
)

var ErrExpenseNotFound = errors.New("expense not found")

const expensesCollection = "expenses"

//go:generate mockery --name=Expense

type Expense interface {
	Create(ctx context.Context, expense *model.Expense) error
	List(ctx context.Context, userID, from, to string) ([]model.Expense, error)
	GetOwned(ctx context.Context, id, userID string) (*model.Expense, error)
	Update(ctx context.Context, id, userID string, amount float64, reason, date string) (*model.Expense, error)
	Delete(ctx context.Context, id, userID string) error
}

type ExpenseMongo struct {
	db *mongo.Database
}

func NewExpenseMongo(db *mongo.Database) *ExpenseMongo {
	return &ExpenseMongo{
		db: db,
	}
}

func (e *ExpenseMongo) EnsureIndexes(ctx context.Context) error {
	_, err := e.db.Collection(expensesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("mongo couldn't create expenses user_id index: %v", err)
	}
	return nil
}

func (e *ExpenseMongo) Create(ctx context.Context, expense *model.Expense) error {
	result, err := e.db.Collection(expensesCollection).InsertOne(ctx, expense)
	if err != nil {
		return fmt.Errorf("mongo couldn't InsertOne in expense Create method: %v", err)
	}
	expense.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns the user's expenses ordered by date descending, most
// recently inserted first within a date. When from and to are set they
// bound the date field inclusively on both ends.
func (e *ExpenseMongo) List(ctx context.Context, userID, from, to string) ([]model.Expense, error) {
	filter := bson.D{{Key: "user_id", Value: userID}}
	if from != "" && to != "" {
		filter = append(filter, bson.E{Key: "date", Value: bson.D{
			{Key: "$gte", Value: from},
			{Key: "$lte", Value: to},
		}})
	}

	cursor, err := e.db.Collection(expensesCollection).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in List method: %v", err)
	}
	defer func() {
		if err = cursor.Close(ctx); err != nil {
			logrus.Errorf("mongo couldn't close cursor in List method: %v", err)
		}
	}()

	expenses := make([]model.Expense, 0)
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("mongo couldn't decode cursor in List method: %v", err)
	}
	return expenses, nil
}

// GetOwned reports a foreign record exactly like an absent one.
func (e *ExpenseMongo) GetOwned(ctx context.Context, id, userID string) (*model.Expense, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var expense model.Expense
	err = e.db.Collection(expensesCollection).FindOne(ctx, bson.D{
		{Key: "_id", Value: objectID},
		{Key: "user_id", Value: userID},
	}).Decode(&expense)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("mongo couldn't FindOne in GetOwned method: %v", err)
	} else if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return &expense, nil
}

// Update replaces the three mutable fields and stamps updated_at in a
// single owner-filtered round trip, so there is no window between the
// ownership check and the write.
func (e *ExpenseMongo) Update(ctx context.Context, id, userID string, amount float64, reason, date string) (*model.Expense, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrExpenseNotFound
	}

	var expense model.Expense
	err = e.db.Collection(expensesCollection).FindOneAndUpdate(ctx,
		bson.D{
			{Key: "_id", Value: objectID},
			{Key: "user_id", Value: userID},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "amount", Value: amount},
			{Key: "reason", Value: reason},
			{Key: "date", Value: date},
			{Key: "updated_at", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&expense)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't FindOneAndUpdate in Update method: %v", err)
	}
	return &expense, nil
}

func (e *ExpenseMongo) Delete(ctx context.Context, id, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrExpenseNotFound
	}
	result, err := e.db.Collection(expensesCollection).DeleteOne(ctx, bson.D{
		{Key: "_id", Value: objectID},
		{Key: "user_id", Value: userID},
	})
	if err != nil {
		return fmt.Errorf("mongo couldn't DeleteOne in Delete method: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
