package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is one dated spending record. Date is a logical calendar date
// stored as a YYYY-MM-DD string, so month filters are string ranges.
type Expense struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Amount    float64            `bson:"amount" json:"amount"`
	Reason    string             `bson:"reason" json:"reason"`
	Date      string             `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DailyTotal is one day's aggregated spending within a month.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// MonthlySummary aggregates one user's expenses over one calendar month.
type MonthlySummary struct {
	Total          float64      `json:"total"`
	DailyBreakdown []DailyTotal `json:"dailyBreakdown"`
	TopExpenses    []Expense    `json:"topExpenses"`
	AveragePerDay  float64      `json:"averagePerDay"`
	HighestDay     *DailyTotal  `json:"highestDay,omitempty"`
}
