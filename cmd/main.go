// @title TravelDiary Backend API
// @version 1.0
// @description AI trip planning and plan archive API for TravelDiary
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "TRAVELDIARY_BACK-END/docs" // This is required for swagger
	"TRAVELDIARY_BACK-END/internal/config"
	"TRAVELDIARY_BACK-END/internal/generation"
	"TRAVELDIARY_BACK-END/internal/handlers"
	"TRAVELDIARY_BACK-END/internal/middleware"
	"TRAVELDIARY_BACK-END/internal/planner"
	"TRAVELDIARY_BACK-END/internal/planstore"
	"TRAVELDIARY_BACK-END/internal/planstore/mongostore"
	"TRAVELDIARY_BACK-END/internal/planstore/pgstore"
	"TRAVELDIARY_BACK-END/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Plan store ---
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("plan store: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Printf("plan store close error: %v", err)
		}
	}()

	// --- Generation pipeline ---
	pipeline, err := newPipeline(ctx, cfg.Generation)
	if err != nil {
		log.Fatalf("generation: %v", err)
	}

	// --- HTTP Handlers ---
	plannerHandler := handlers.NewPlannerHandler(pipeline)
	healthHandler := handlers.NewHealthHandler(store, cfg.Generation)
	tripsHandler := handlers.NewTripsHandler(store)

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, plannerHandler, healthHandler, tripsHandler, &cfg.JWT)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	go limiter.Run(ctx)

	handler := c.Handler(middleware.SecurityHeaders(middleware.Logging(limiter.Limit(mux))))

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}

func openStore(ctx context.Context, cfg *config.Config) (planstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		s, err := pgstore.Connect(ctx, cfg.Database, cfg.GetDSN())
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMongo:
		s, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMemory:
		return planstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// newPipeline wires the generation client when a credential is configured.
// Without one the pipeline still serves template plans on the lenient flow.
func newPipeline(ctx context.Context, cfg config.GenerationConfig) (*planner.Pipeline, error) {
	synth := planner.Synthesizer{MaxDays: cfg.FallbackMaxDays}

	client, err := generation.New(ctx, cfg)
	if errors.Is(err, planner.ErrCredentialMissing) {
		return planner.NewPipeline(nil, synth), nil
	}
	if err != nil {
		return nil, err
	}
	return planner.NewPipeline(client, synth), nil
}
