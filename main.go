package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"commerce-api/internal/migrations"
	"commerce-api/internal/product"
	"commerce-api/internal/user"
	"commerce-api/pkg/config"
	"commerce-api/pkg/jwt_generator"
	"commerce-api/pkg/logger"
	"commerce-api/pkg/server"
)

func main() {
	logWithProductionConfig, _ := zap.NewProduction()
	log := logWithProductionConfig.Sugar()
	defer func(l *zap.Logger) {
		_ = l.Sync()
	}(logWithProductionConfig)

	err := godotenv.Load()
	if err != nil {
		log.Warnw(
			"no .env file loaded, relying on the process environment",
			zap.Error(err),
		)
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalw(
			"failed to read config",
			zap.Error(err),
		)
	}
	cfg.Print()

	jwtGenerator := jwt_generator.NewJwtGenerator(cfg.Jwt, log)

	ctx := context.Background()
	db, err := setupDatabase(ctx, cfg)
	if err != nil {
		log.Fatalw(
			"failed to setup database",
			zap.Error(err),
		)
	}

	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			log.Errorw(
				"failed to close database",
				zap.Error(err),
			)
		}
	}(db)

	userRepository := user.NewRepository(db)
	userService := user.NewService(userRepository, jwtGenerator)
	userHandler := user.NewHandler(userService)

	productRepository := product.NewRepository(db)
	productService := product.NewService(productRepository)
	productHandler := product.NewHandler(productService)

	var handlers []server.Handler
	handlers = append(handlers, userHandler, productHandler)
	srv := server.NewServer(cfg, handlers)

	logMiddleware := logger.Middleware(log)
	app := srv.GetFiberInstance()
	app.Use(cors.New())
	app.Use(logMiddleware)
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	srv.RegisterRoutes()

	err = srv.Start()
	if err != nil {
		log.Fatalw(
			"server stopped",
			zap.Error(err),
		)
	}
}

func setupDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.Url)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = db.PingContext(pingCtx)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	err = goose.SetDialect("postgres")
	if err != nil {
		return nil, err
	}

	err = goose.UpContext(ctx, db, ".")
	if err != nil {
		return nil, err
	}

	return db, nil
}
