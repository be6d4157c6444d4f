package router

import (
	"net/http"
	"os"

	"visitas-api/internal/adapters/address/viacep"
	"visitas-api/internal/adapters/distance/distancesvc"
	mem "visitas-api/internal/adapters/storage/memory"
	pg "visitas-api/internal/adapters/storage/postgres"
	lite "visitas-api/internal/adapters/storage/sqlite"
	"visitas-api/internal/domain/addresses"
	"visitas-api/internal/domain/visits"
	"visitas-api/internal/middleware"
	"visitas-api/internal/platform/logger"
	"visitas-api/internal/ports/address"
	"visitas-api/internal/ports/distance"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "visitas-api/docs" // registro swagger
)

type Options struct {
	// Opcional: si viene, se usa como storage. Si no, se resuelve por env
	// (VISITAS_DSN => postgres, VISITAS_DB => sqlite) y como último
	// recurso in-memory (dev/tests).
	Repo visits.Repository

	// Opcionales: clientes inyectables (tests). nil => defaults por env.
	AddressLookup   address.Lookup
	DistanceChecker distance.Checker

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","service":"visitas-api"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Storage: repo explícito > env > memoria
	repo := opts.Repo
	if repo == nil {
		if dsn := os.Getenv("VISITAS_DSN"); dsn != "" {
			if db, err := pg.Open(dsn); err == nil {
				repo = pg.NewVisitsRepo(db)
			}
		}
	}
	if repo == nil {
		if path := os.Getenv("VISITAS_DB"); path != "" {
			if db, err := lite.Open(path); err == nil {
				repo = lite.NewVisitsRepo(db)
			}
		}
	}
	if repo == nil {
		repo = mem.NewVisitsRepo()
	}

	// Integraciones externas
	lookup := opts.AddressLookup
	if lookup == nil {
		lookup = viacep.NewClient(viacep.Config{
			BaseURL: os.Getenv("VIACEP_BASE_URL"), // vacío => default del cliente
		})
	}

	checker := opts.DistanceChecker
	if checker == nil {
		base := os.Getenv("DISTANCE_SERVICE_URL")
		if base == "" {
			base = "http://distance-service:5000"
		}
		checker = distancesvc.NewClient(distancesvc.Config{BaseURL: base})
	}

	// Rutas por módulo
	visitsSvc := visits.NewService(repo)
	visits.RegisterRoutes(r, visitsSvc, checker)
	addresses.RegisterRoutes(r, lookup)

	return r
}
