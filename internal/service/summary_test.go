package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"splitwise/internal/model"
	"splitwise/internal/repository/mocks"
)

// marchExpenses is the store-ordered month: date descending, most recent
// insertion first within a date.
func marchExpenses() []model.Expense {
	now := time.Now().UTC()
	return []model.Expense{
		{UserID: "dima", Amount: 5, Reason: "bus", Date: "2024-03-15", CreatedAt: now},
		{UserID: "dima", Amount: 25, Reason: "books", Date: "2024-03-01", CreatedAt: now},
		{UserID: "dima", Amount: 10, Reason: "coffee", Date: "2024-03-01", CreatedAt: now.Add(-time.Minute)},
	}
}

func TestSummarizer_Monthly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expenseRepo := mocks.NewExpense(t)
	expenseRepo.On("List", mock.Anything, "dima", "2024-03-01", "2024-03-31").
		Return(marchExpenses(), nil)

	summaryServ := NewSummarizer(expenseRepo)

	summary, err := summaryServ.Monthly(ctx, "dima", 3, 2024)
	require.NoError(t, err)

	require.Equal(t, 40.0, summary.Total)

	require.Equal(t, []model.DailyTotal{
		{Date: "2024-03-15", Total: 5},
		{Date: "2024-03-01", Total: 35},
	}, summary.DailyBreakdown)

	require.Len(t, summary.TopExpenses, 3)
	require.Equal(t, 25.0, summary.TopExpenses[0].Amount)
	require.Equal(t, 10.0, summary.TopExpenses[1].Amount)
	require.Equal(t, 5.0, summary.TopExpenses[2].Amount)

	require.Equal(t, 20.0, summary.AveragePerDay)
	require.NotNil(t, summary.HighestDay)
	require.Equal(t, model.DailyTotal{Date: "2024-03-01", Total: 35}, *summary.HighestDay)
}

func TestSummarizer_MonthlyTotalEqualsBreakdownSum(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expenseRepo := mocks.NewExpense(t)
	expenseRepo.On("List", mock.Anything, "dima", "2024-03-01", "2024-03-31").
		Return(marchExpenses(), nil)

	summaryServ := NewSummarizer(expenseRepo)

	summary, err := summaryServ.Monthly(ctx, "dima", 3, 2024)
	require.NoError(t, err)

	var sum float64
	for _, day := range summary.DailyBreakdown {
		sum += day.Total
	}
	require.Equal(t, summary.Total, sum)
}

func TestSummarizer_MonthlyEmpty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expenseRepo := mocks.NewExpense(t)
	expenseRepo.On("List", mock.Anything, "dima", "2024-03-01", "2024-03-31").
		Return([]model.Expense{}, nil)

	summaryServ := NewSummarizer(expenseRepo)

	summary, err := summaryServ.Monthly(ctx, "dima", 3, 2024)
	require.NoError(t, err)

	require.Equal(t, 0.0, summary.Total)
	require.Empty(t, summary.DailyBreakdown)
	require.Empty(t, summary.TopExpenses)
	// no active days means no division
	require.Equal(t, 0.0, summary.AveragePerDay)
	require.Nil(t, summary.HighestDay)
}

func TestSummarizer_TopExpensesCapAndStability(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now().UTC()
	month := []model.Expense{
		{Amount: 7, Reason: "g", Date: "2024-03-20", CreatedAt: now},
		{Amount: 50, Reason: "a", Date: "2024-03-18", CreatedAt: now},
		{Amount: 20, Reason: "tie-first", Date: "2024-03-10", CreatedAt: now},
		{Amount: 20, Reason: "tie-second", Date: "2024-03-05", CreatedAt: now},
		{Amount: 3, Reason: "f", Date: "2024-03-04", CreatedAt: now},
		{Amount: 90, Reason: "b", Date: "2024-03-02", CreatedAt: now},
		{Amount: 1, Reason: "h", Date: "2024-03-01", CreatedAt: now},
	}

	expenseRepo := mocks.NewExpense(t)
	expenseRepo.On("List", mock.Anything, "dima", "2024-03-01", "2024-03-31").
		Return(month, nil)

	summaryServ := NewSummarizer(expenseRepo)

	summary, err := summaryServ.Monthly(ctx, "dima", 3, 2024)
	require.NoError(t, err)

	require.Len(t, summary.TopExpenses, 5)
	require.Equal(t, 90.0, summary.TopExpenses[0].Amount)
	require.Equal(t, 50.0, summary.TopExpenses[1].Amount)
	// equal amounts keep store order
	require.Equal(t, "tie-first", summary.TopExpenses[2].Reason)
	require.Equal(t, "tie-second", summary.TopExpenses[3].Reason)
	require.Equal(t, 7.0, summary.TopExpenses[4].Amount)
}

func TestSummarizer_HighestDayTieFirstOccurrence(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now().UTC()
	month := []model.Expense{
		{Amount: 30, Date: "2024-03-20", CreatedAt: now},
		{Amount: 30, Date: "2024-03-10", CreatedAt: now},
	}

	expenseRepo := mocks.NewExpense(t)
	expenseRepo.On("List", mock.Anything, "dima", "2024-03-01", "2024-03-31").
		Return(month, nil)

	summaryServ := NewSummarizer(expenseRepo)

	summary, err := summaryServ.Monthly(ctx, "dima", 3, 2024)
	require.NoError(t, err)

	// the breakdown is date descending, first occurrence wins the tie
	require.Equal(t, "2024-03-20", summary.HighestDay.Date)
}

func TestSummarizer_RoundsToCents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now().UTC()
	month := []model.Expense{
		{Amount: 0.1, Date: "2024-03-01", CreatedAt: now},
		{Amount: 0.2, Date: "2024-03-01", CreatedAt: now},
	}

	expenseRepo := mocks.NewExpense(t)
	expenseRepo.On("List", mock.Anything, "dima", "2024-03-01", "2024-03-31").
		Return(month, nil)

	summaryServ := NewSummarizer(expenseRepo)

	summary, err := summaryServ.Monthly(ctx, "dima", 3, 2024)
	require.NoError(t, err)

	require.Equal(t, 0.3, summary.Total)
	require.Equal(t, 0.3, summary.DailyBreakdown[0].Total)
}

func TestSummarizer_InvalidMonth(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expenseRepo := mocks.NewExpense(t)
	summaryServ := NewSummarizer(expenseRepo)

	_, err := summaryServ.Monthly(ctx, "dima", 0, 2024)
	require.True(t, errors.Is(err, ErrInvalidInput))
}
