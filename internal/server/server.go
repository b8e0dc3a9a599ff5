package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"splitwise/internal/config"
	"splitwise/internal/service"
)

type Server struct {
	cfg       config.Server
	validator *validator.Validate
	auth      service.Authorization
	expenses  service.Expenses
	summary   service.Summarizer
	server    *http.Server
}

func New(cfg config.Server, validate *validator.Validate, auth service.Authorization,
	expenses service.Expenses, summary service.Summarizer) *Server {
	s := &Server{
		cfg:       cfg,
		validator: validate,
		auth:      auth,
		expenses:  expenses,
		summary:   summary,
		server: &http.Server{
			Addr:              cfg.Host + ":" + strconv.Itoa(cfg.Port),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	s.configureRouter()
	return s
}

func (s *Server) Start() error {
	logrus.Infof("http server started on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	defer logrus.Info("http server stopped")
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler, used by httptest in tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) configureRouter() {
	router := mux.NewRouter()
	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	router.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	router.HandleFunc("/expenses/summary", s.authenticate(s.monthlySummary)).Methods(http.MethodGet)
	router.HandleFunc("/expenses", s.authenticate(s.listExpenses)).Methods(http.MethodGet)
	router.HandleFunc("/expenses", s.authenticate(s.createExpense)).Methods(http.MethodPost)
	router.HandleFunc("/expenses/{id}", s.authenticate(s.updateExpense)).Methods(http.MethodPut)
	router.HandleFunc("/expenses/{id}", s.authenticate(s.deleteExpense)).Methods(http.MethodDelete)
	s.server.Handler = router
}
