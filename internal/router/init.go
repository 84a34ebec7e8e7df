package router

import (
	"github.com/thriftly-app/thriftly-api/internal/application"
	"github.com/thriftly-app/thriftly-api/internal/container"
	pginfra "github.com/thriftly-app/thriftly-api/internal/infrastructure/postgres"
	handlers "github.com/thriftly-app/thriftly-api/internal/interface/http"
	"github.com/thriftly-app/thriftly-api/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the dependency
// bundle and registers every feature module. Called once during startup.
func InitModules(r *Registry, c *container.Container) {
	users := pginfra.NewUserRepository(c.Pool)
	articles := pginfra.NewArticleRepository(c.Pool)

	auth := application.NewAuthorizer(c.Tokens, users)
	userSvc := application.NewUserService(users, c.Tokens, c.Logger)
	articleSvc := application.NewArticleService(
		articles,
		c.Cfg.StorageBaseURL,
		c.Redis,
		c.GCS,
		c.Cfg.GCSBucket,
		c.Events,
		c.Logger,
	)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, auth, c.Logger)))
	r.Add(modules.NewArticleModule(handlers.NewArticleHandler(articleSvc, auth, c.Logger)))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
}
