package router

import (
	"context"
	"net/http"

	"app/internal/api/v1/handler"
	"app/internal/auth"
	"app/internal/config"
	"app/internal/database"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New connects to the database, wires repositories, services and handlers,
// and returns the fully assembled HTTP handler along with the pool so the
// caller can close it on shutdown.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (http.Handler, *pgxpool.Pool, error) {
	// 1. Open DB connection and apply schema migrations.
	dsn := cfg.DSN()
	if err := database.Migrate(dsn); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize repositories & services & handlers
	userRepo := repository.NewUserRepo(pool)
	courseRepo := repository.NewCourseRepo(pool)
	registrationRepo := repository.NewRegistrationRepo(pool)

	signer := auth.NewSigner(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, signer)
	courseSvc := service.NewCourseService(courseRepo)
	registrationSvc := service.NewRegistrationService(courseRepo, registrationRepo)

	authHandler := handler.NewAuthHandler(authSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	registrationHandler := handler.NewRegistrationHandler(registrationSvc, logger)

	// 4. Seed the bootstrap admin account when configured.
	if cfg.AdminEmail != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	// 5. Build the router
	authMw := middleware.NewAuth(signer, userRepo)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", handler.Status)
		authHandler.RegisterRoutes(r)
		courseHandler.RegisterRoutes(r, authMw)
		registrationHandler.RegisterRoutes(r, authMw)
	})

	// Static SPA - serve the web/ directory at the root.
	r.Handle("/*", http.FileServer(http.Dir(cfg.WebDir)))

	// 6. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(r), pool, nil
}
