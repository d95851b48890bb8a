package router

import (
	"context"
	"fmt"
	"net/http"

	mem "patientor/internal/adapters/storage/memory"
	"patientor/internal/domain/diagnoses"
	"patientor/internal/domain/patients"
	"patientor/internal/export"
	"patientor/internal/fixtures"
	"patientor/internal/middleware"
	"patientor/internal/platform/logger"
	"patientor/internal/platform/metrics"

	_ "patientor/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => registry nuevo

	// Carga pacientes y diagnósticos embebidos al arrancar.
	SeedFixtures bool

	// Vacío => "*"
	CORSOrigins []string

	// Monta /swagger/* (solo en development).
	EnableDocs bool
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	if opts.EnableDocs {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	// Repos in-memory: el store vive lo que vive el proceso
	patientsSvc := patients.NewService(mem.NewPatientRepo())
	diagnosesSvc := diagnoses.NewService(mem.NewDiagnosisRepo())

	if opts.SeedFixtures {
		if err := fixtures.Seed(context.Background(), patientsSvc, diagnosesSvc); err != nil {
			return nil, fmt.Errorf("seed fixtures: %w", err)
		}
		log.Info("fixtures loaded", nil)
	}

	// Rutas por módulo
	export.RegisterRoutes(r, patientsSvc, log)
	patients.RegisterRoutes(r, patientsSvc, diagnosesSvc, log, m)
	diagnoses.RegisterRoutes(r, diagnosesSvc)

	return r, nil
}
