package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"splitwise/internal/model"
	"splitwise/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

const dateLayout = "2006-01-02"

type Expenses interface {
	List(ctx context.Context, userID string, month, year int) ([]model.Expense, error)
	Create(ctx context.Context, userID string, amount float64, reason, date string) (*model.Expense, error)
	Update(ctx context.Context, id, userID string, amount float64, reason, date string) (*model.Expense, error)
	Delete(ctx context.Context, id, userID string) error
}

type expenses struct {
	repo repository.Expense
}

func NewExpenses(repo repository.Expense) *expenses {
	return &expenses{
		repo: repo,
	}
}

// List returns all of the user's expenses, or only one calendar month when
// month and year are both set.
func (e *expenses) List(ctx context.Context, userID string, month, year int) ([]model.Expense, error) {
	var from, to string
	if month != 0 || year != 0 {
		var err error
		from, to, err = monthRange(month, year)
		if err != nil {
			return nil, err
		}
	}
	return e.repo.List(ctx, userID, from, to)
}

func (e *expenses) Create(ctx context.Context, userID string, amount float64, reason, date string) (*model.Expense, error) {
	if err := validateFields(amount, reason, date); err != nil {
		return nil, err
	}

	expense := model.Expense{
		UserID:    userID,
		Amount:    amount,
		Reason:    strings.TrimSpace(reason),
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.repo.Create(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (e *expenses) Update(ctx context.Context, id, userID string, amount float64, reason, date string) (*model.Expense, error) {
	if err := validateFields(amount, reason, date); err != nil {
		return nil, err
	}
	return e.repo.Update(ctx, id, userID, amount, strings.TrimSpace(reason), date)
}

func (e *expenses) Delete(ctx context.Context, id, userID string) error {
	return e.repo.Delete(ctx, id, userID)
}

func validateFields(amount float64, reason, date string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive number", ErrInvalidInput)
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: reason must not be empty", ErrInvalidInput)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be a YYYY-MM-DD calendar date", ErrInvalidInput)
	}
	return nil
}

// monthRange returns the first and last day of the month, inclusive, in
// the stored YYYY-MM-DD form.
func monthRange(month, year int) (string, string, error) {
	if month < 1 || month > 12 || year < 1 {
		return "", "", fmt.Errorf("%w: month must be 1-12 and year positive", ErrInvalidInput)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return first.Format(dateLayout), last.Format(dateLayout), nil
}
