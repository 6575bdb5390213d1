package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adoptionapp "github.com/petlove/backend/application/adoption"
	appointmentapp "github.com/petlove/backend/application/appointment"
	orderapp "github.com/petlove/backend/application/order"
	petapp "github.com/petlove/backend/application/pet"
	userapp "github.com/petlove/backend/application/user"
	visitapp "github.com/petlove/backend/application/visit"
	"github.com/petlove/backend/cmd/config"
	redisclient "github.com/petlove/backend/cmd/redis"
	_ "github.com/petlove/backend/docs"
	"github.com/petlove/backend/migrations"
	adoptionRepo "github.com/petlove/backend/repository/adoption"
	appointmentRepo "github.com/petlove/backend/repository/appointment"
	orderRepo "github.com/petlove/backend/repository/order"
	petRepo "github.com/petlove/backend/repository/pet"
	redisRepo "github.com/petlove/backend/repository/redis"
	txRepo "github.com/petlove/backend/repository/tx"
	userRepo "github.com/petlove/backend/repository/user"
	visitRepo "github.com/petlove/backend/repository/visit"
	"github.com/petlove/backend/thirdparty/rabbitmq"
	"github.com/petlove/backend/transport"
	"github.com/petlove/backend/utils/logger"
	validatorx "github.com/petlove/backend/utils/validator"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// @title PetLove API
// @version 1.0
// @description Pet adoption and pet care backend
// @host localhost:5000
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Run schema migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		logger.Fatal("err goose dialect", zap.Error(err))
	}
	if err := goose.UpContext(context.Background(), db.DB, "."); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Connect RabbitMQ publisher. The API stays up without it; pending
	// adoptions simply will not expire until the worker path is back.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq, continuing without publisher", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	PetRepo := petRepo.NewPetRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	AdoptionRepo := adoptionRepo.NewAdoptionRepository(db)
	AppointmentRepo := appointmentRepo.NewAppointmentRepository(db)
	VisitRepo := visitRepo.NewVisitRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(UserRepo)
	PetApp := petapp.NewPetApp(cfg, PetRepo, RedisRepo)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, UserRepo)
	AdoptionApp := adoptionapp.NewAdoptionApp(cfg, TxRepo, AdoptionRepo, PetRepo, UserRepo, publisher)
	AppointmentApp := appointmentapp.NewAppointmentApp(AppointmentRepo, UserRepo)
	VisitApp := visitapp.NewVisitApp(VisitRepo, UserRepo)

	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		UserApp:        UserApp,
		PetApp:         PetApp,
		OrderApp:       OrderApp,
		AdoptionApp:    AdoptionApp,
		AppointmentApp: AppointmentApp,
		VisitApp:       VisitApp,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
