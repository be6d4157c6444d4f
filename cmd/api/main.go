package main

import (
	"net/http"
	"os"
	"time"

	"visitas-api/internal/adapters/storage/postgres"
	"visitas-api/internal/adapters/storage/sqlite"
	"visitas-api/internal/domain/visits"
	"visitas-api/internal/platform/logger"
	"visitas-api/internal/router"

	"github.com/joho/godotenv"
)

// @title visitas-api - VisitaUp
// @version 1.1.0
// @description API principal del sistema VisitaUp. Gestiona visitas técnicas, consulta CEP vía ViaCEP e integra el microservicio distance-service para cálculo de distancias.
// @tag.name visits
// @tag.description CRUD completo de visitas técnicas.
// @tag.name addresses
// @tag.description Consulta de endereço por CEP (ViaCEP).
// @tag.name distance
// @tag.description Cálculo de distancia vía distance-service.
// @BasePath /
func main() {
	// .env antes del logger, para que LOG_LEVEL/LOG_FORMAT del archivo apliquen.
	envErr := godotenv.Load()

	log := logger.NewFromEnv()
	if envErr != nil {
		log.Debug("no .env file, using environment", nil)
	}

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	repo, backend := openRepo(log)

	r := router.NewRouter(router.Options{
		Repo:   repo,
		Logger: log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr, "storage": backend})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

// openRepo resuelve el storage: VISITAS_DSN (postgres) gana sobre
// VISITAS_DB (sqlite, default visitas.db).
func openRepo(log logger.Logger) (visits.Repository, string) {
	if dsn := os.Getenv("VISITAS_DSN"); dsn != "" {
		db, err := postgres.Open(dsn)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		return postgres.NewVisitsRepo(db), "postgres"
	}

	path := os.Getenv("VISITAS_DB")
	if path == "" {
		path = "visitas.db"
	}

	db, err := sqlite.Open(path)
	if err != nil {
		log.Error("sqlite open failed", map[string]any{"path": path, "err": err.Error()})
		os.Exit(1)
	}
	return sqlite.NewVisitsRepo(db), "sqlite"
}
