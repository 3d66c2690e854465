package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"todo-api/configs"
	"todo-api/internal/application"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/domain/usecase/user"
	infracache "todo-api/internal/infra/cache"
	"todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/migrations"
	"todo-api/internal/infra/database/postgres"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
	"todo-api/pkg/security"
)

// @title todo-api
// @version 1.0
// @description Users, bearer authentication and per-user todos.
// @BasePath /
// @securityDefinitions.oauth2.password OAuth2Password
// @tokenUrl /auth/token
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	sqlDB, err := postgres.Open(ctx, postgres.ConfigFromProperties())
	if err != nil {
		log.Fatal(msg.GetMessage("db.error.connect", err), zap.Error(err))
	}
	defer func() { _ = sqlDB.Close() }()
	log.Info(msg.GetMessage("db.connected", "postgres"))

	if resource.GetBool("app.db.migrate") {
		if err := migrations.Up(ctx, sqlDB); err != nil {
			log.Fatal(msg.GetMessage("db.error.migrate", err), zap.Error(err))
		}
		log.Info(msg.GetMessage("db.migrated"))
	}

	gormDB, err := gorm.Open(sqlDB)
	if err != nil {
		log.Fatal(msg.GetMessage("db.error.connect", err), zap.Error(err))
	}

	cacheComponents, err := infracache.NewComponents()
	if err != nil {
		log.Fatal(err.Error(), zap.Error(err))
	}
	defer func() { _ = cacheComponents.Close() }()

	// Init Gateway
	userGateway := db.NewGormUserGateway(gormDB)
	todoGateway := db.NewGormTodoGateway(gormDB)
	txManager := db.NewGormTxManager(gormDB)
	healthDBGateway := db.NewSQLHealthDBGateway(sqlDB)

	hasher := security.NewBcryptHasher(resource.GetIntOrDefault("app.security.bcrypt-cost", bcrypt.DefaultCost))
	tokens := security.NewTokenService(
		resource.GetString("app.security.secret-key"),
		resource.GetDurationOrDefault("app.security.access-token-expire", security.DefaultAccessTokenTTL))

	// Init UseCase and Routes
	e := application.NewRouter(configs.Env.ContextPath, application.UseCases{
		User:   user.NewUserUseCase(userGateway, txManager, hasher),
		Todo:   todo.NewTodoUseCase(todoGateway, txManager),
		Auth:   auth.NewAuthUseCase(userGateway, hasher, tokens, cacheComponents.Limiter),
		Health: health.NewHealthUseCase(healthDBGateway, cacheComponents.Health),
	})
	e.Server.ReadTimeout = resource.GetDurationOrDefault("app.server.read-timeout", 10*time.Second)
	e.Server.WriteTimeout = resource.GetDurationOrDefault("app.server.write-timeout", 10*time.Second)

	// Start Routes
	address := ":" + resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error(), zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", address))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		resource.GetDurationOrDefault("app.server.shutdown-timeout", 15*time.Second))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error(), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}
