// The consumer binary drains the adoption expiration queue and calls the API
// back on its internal expire endpoint.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/petlove/backend/cmd/config"
	"github.com/petlove/backend/thirdparty/rabbitmq"
	"github.com/petlove/backend/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting adoption expiration consumer", zap.String("env", cfg.Environment))

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIBaseURL,
		cfg.Internal.ServiceSecret,
		cfg.Internal.TokenTTL,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Consumer running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down consumer")
}
