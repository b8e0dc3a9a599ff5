package service

import (
	"context"
	"math"
	"sort"

	"splitwise/internal/model"
	"splitwise/internal/repository"
)

// topExpensesLimit caps the largest-amount list in a monthly summary.
const topExpensesLimit = 5

type Summarizer interface {
	Monthly(ctx context.Context, userID string, month, year int) (*model.MonthlySummary, error)
}

type summarizer struct {
	repo repository.Expense
}

func NewSummarizer(repo repository.Expense) *summarizer {
	return &summarizer{
		repo: repo,
	}
}

// Monthly aggregates one user's expenses over one calendar month: total,
// per-day totals in date-descending order, the largest expenses, and the
// derived average/highest-day metrics. Money values are rounded to two
// decimal places.
func (s *summarizer) Monthly(ctx context.Context, userID string, month, year int) (*model.MonthlySummary, error) {
	from, to, err := monthRange(month, year)
	if err != nil {
		return nil, err
	}

	monthExpenses, err := s.repo.List(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	var total float64
	for i := range monthExpenses {
		total += monthExpenses[i].Amount
	}

	breakdown := dailyBreakdown(monthExpenses)
	summary := model.MonthlySummary{
		Total:          round2(total),
		DailyBreakdown: breakdown,
		TopExpenses:    topExpenses(monthExpenses),
	}

	if len(breakdown) > 0 {
		summary.AveragePerDay = round2(total / float64(len(breakdown)))
		summary.HighestDay = highestDay(breakdown)
	}
	return &summary, nil
}

// dailyBreakdown groups by exact date value. The input arrives sorted by
// date descending, so first-occurrence order already is the output order.
func dailyBreakdown(expenses []model.Expense) []model.DailyTotal {
	breakdown := make([]model.DailyTotal, 0)
	indexByDate := make(map[string]int)
	for i := range expenses {
		idx, ok := indexByDate[expenses[i].Date]
		if !ok {
			breakdown = append(breakdown, model.DailyTotal{Date: expenses[i].Date})
			idx = len(breakdown) - 1
			indexByDate[expenses[i].Date] = idx
		}
		breakdown[idx].Total += expenses[i].Amount
	}
	for i := range breakdown {
		breakdown[i].Total = round2(breakdown[i].Total)
	}
	return breakdown
}

// topExpenses returns the up-to-five largest expenses, amount descending,
// ties kept in store order.
func topExpenses(expenses []model.Expense) []model.Expense {
	top := make([]model.Expense, len(expenses))
	copy(top, expenses)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Amount > top[j].Amount
	})
	if len(top) > topExpensesLimit {
		top = top[:topExpensesLimit]
	}
	return top
}

// highestDay picks the first maximum in the date-descending breakdown.
func highestDay(breakdown []model.DailyTotal) *model.DailyTotal {
	best := breakdown[0]
	for _, day := range breakdown[1:] {
		if day.Total > best.Total {
			best = day
		}
	}
	return &best
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
