package router

import (
	"context"
	"net/http"
	"time"

	mem "growbraz/internal/adapters/storage/memory"

	"growbraz/docs"
	"growbraz/internal/adapters/storage"
	"growbraz/internal/domain/advisory"
	"growbraz/internal/domain/dashboard"
	"growbraz/internal/domain/growspaces"
	"growbraz/internal/domain/plants"
	"growbraz/internal/middleware"
	"growbraz/internal/platform/logger"
	"growbraz/internal/platform/metrics"
	"growbraz/internal/ports/advisor"
	"growbraz/internal/ports/kv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, todo queda en memoria.
	KV kv.Store

	// Puede ser nil (sin API_KEY): el asistente responde el texto offline.
	Advisor advisor.Advisor

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// SeedDefaults carga "Grow Alpha" y "Glookies #1" si las claves no existen.
	SeedDefaults bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	store := opts.KV
	if store == nil {
		store = mem.NewKV()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestIDHeader)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	docs.SwaggerInfo.BasePath = "/"
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Carga inicial: una lectura por colección al arrancar.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		spaceSeed []growspaces.GrowSpace
		plantSeed []plants.Plant
	)
	if opts.SeedDefaults {
		spaceSeed = growspaces.DefaultSeed()
		plantSeed = plants.DefaultSeed(time.Now())
	}

	// Services por módulo
	spacesSvc := growspaces.NewService(ctx,
		storage.NewCollection[growspaces.GrowSpace](store, storage.KeySpaces),
		growspaces.Options{Logger: log.With(map[string]any{"module": "growspaces"}), Recorder: m, Seed: spaceSeed})
	plantsSvc := plants.NewService(ctx,
		storage.NewCollection[plants.Plant](store, storage.KeyPlants),
		plants.Options{Logger: log.With(map[string]any{"module": "plants"}), Recorder: m, Seed: plantSeed})
	advisorySvc := advisory.NewService(opts.Advisor, plantsSvc,
		advisory.Options{Logger: log.With(map[string]any{"module": "advisory"}), Recorder: m})

	// Rutas por módulo
	growspaces.RegisterRoutes(r, spacesSvc)
	plants.RegisterRoutes(r, plantsSvc, spacesSvc)
	advisory.RegisterRoutes(r, advisorySvc)
	dashboard.RegisterRoutes(r, dashboard.NewBuilder(spacesSvc, plantsSvc))

	return r
}
