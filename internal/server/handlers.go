package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"splitwise/internal/model"
	"splitwise/internal/repository"
	"splitwise/internal/service"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type expenseRequest struct {
	Amount float64 `json:"amount" validate:"required"`
	Reason string  `json:"reason" validate:"required"`
	Date   string  `json:"date" validate:"required"`
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

type expenseResponse struct {
	Message string         `json:"message"`
	Expense *model.Expense `json:"expense"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	token, user, err := s.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	logrus.Infof("registered user %s", user.ID.Hex())
	s.respondJSON(w, http.StatusOK, authResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearQuery(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "Month and year must be numbers")
		return
	}

	expenses, err := s.expenses.List(r.Context(), userIDFrom(r.Context()), month, year)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string][]model.Expense{"expenses": expenses})
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Amount, reason, and date are required")
		return
	}

	expense, err := s.expenses.Create(r.Context(), userIDFrom(r.Context()), req.Amount, req.Reason, req.Date)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, expenseResponse{
		Message: "Expense added successfully",
		Expense: expense,
	})
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Amount, reason, and date are required")
		return
	}

	expense, err := s.expenses.Update(r.Context(), mux.Vars(r)["id"], userIDFrom(r.Context()),
		req.Amount, req.Reason, req.Date)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, expenseResponse{
		Message: "Expense updated successfully",
		Expense: expense,
	})
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	err := s.expenses.Delete(r.Context(), mux.Vars(r)["id"], userIDFrom(r.Context()))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}

func (s *Server) monthlySummary(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("month") == "" || r.URL.Query().Get("year") == "" {
		s.respondError(w, http.StatusBadRequest, "Month and year are required")
		return
	}
	month, year, ok := monthYearQuery(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "Month and year must be numbers")
		return
	}

	summary, err := s.summary.Monthly(r.Context(), userIDFrom(r.Context()), month, year)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, summary)
}

// monthYearQuery parses the optional month/year pair. Filtering applies
// only when both are present, a lone parameter is ignored like the
// upstream list contract describes.
func monthYearQuery(r *http.Request) (int, int, bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" || yearStr == "" {
		return 0, 0, true
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("couldn't encode response: %v", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service and repository outcomes to statuses.
// Anything unclassified is logged and suppressed behind a generic 500.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrDuplicateUser):
		s.respondError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		s.respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, repository.ErrExpenseNotFound):
		s.respondError(w, http.StatusNotFound, "Expense not found")
	default:
		logrus.Errorf("internal error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
