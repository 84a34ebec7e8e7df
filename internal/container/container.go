// Package container bundles the components constructed once at startup.
// The bundle is immutable after New and passed by reference; request handlers
// share nothing else.
package container

import (
	"cloud.google.com/go/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/thriftly-app/thriftly-api/config"
	"github.com/thriftly-app/thriftly-api/pkg/helpers"
)

type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	GCS    *storage.Client
	Events *helpers.RabbitPublisher
	Tokens *helpers.TokenManager
}

func New(cfg *config.Config, logger *logrus.Logger, pool *pgxpool.Pool, rdb *redis.Client, gcs *storage.Client, events *helpers.RabbitPublisher, tokens *helpers.TokenManager) *Container {
	return &Container{
		Cfg:    cfg,
		Logger: logger,
		Pool:   pool,
		Redis:  rdb,
		GCS:    gcs,
		Events: events,
		Tokens: tokens,
	}
}
