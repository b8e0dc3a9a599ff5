package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"splitwise/internal/config"
	"splitwise/internal/repository"
	"splitwise/internal/server"
	"splitwise/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}

	mongoCli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.Endpoint))
	if err != nil {
		logrus.Fatalf("couldn't connect to mongo: %v", err)
	}
	defer func() {
		if err = mongoCli.Disconnect(context.Background()); err != nil {
			logrus.Errorf("couldn't disconnect from mongo: %v", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err = mongoCli.Ping(pingCtx, nil); err != nil {
		logrus.Fatalf("couldn't ping mongo: %v", err)
	}

	db := mongoCli.Database(cfg.Mongo.Database)

	userRepo := repository.NewUserMongo(db)
	expenseRepo := repository.NewExpenseMongo(db)
	if err = userRepo.EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("couldn't ensure user indexes: %v", err)
	}
	if err = expenseRepo.EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("couldn't ensure expense indexes: %v", err)
	}

	authService := service.NewAuth(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost)
	expenseService := service.NewExpenses(expenseRepo)
	summaryService := service.NewSummarizer(expenseRepo)

	srv := server.New(cfg.Server, validator.New(), authService, expenseService, summaryService)
	go func() {
		if startErr := srv.Start(); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logrus.Fatalf("http server error: %v", startErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit

	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stopCancel()
	if err = srv.Stop(stopCtx); err != nil {
		logrus.Errorf("couldn't stop http server: %v", err)
	}
}
