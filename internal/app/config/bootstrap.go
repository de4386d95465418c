package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WarmWorkerStop if set will be called during Shutdown to gracefully stop the
	// availability cache warm worker
	WarmWorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WarmWorkerStop != nil {
		b.WarmWorkerStop()
		log.Println("Successfully stopped warm worker")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
