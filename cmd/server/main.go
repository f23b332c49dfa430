// The estimator server exposes the quote pricing engine over a JSON API:
// catalogs (flat and grouped), on-the-fly quote calculation, and persisted
// submitted quotes.
package main

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kbworks/estimator/internal/catalog"
	"github.com/kbworks/estimator/internal/config"
	"github.com/kbworks/estimator/internal/db"
	"github.com/kbworks/estimator/internal/migrations"
	"github.com/kbworks/estimator/internal/pricing"
	"github.com/kbworks/estimator/internal/seed"
)

type server struct {
	db       *sql.DB
	logger   *zap.Logger
	catalogs map[catalog.Kind]*catalog.Catalog
}

func main() {
	cfg := config.Load()

	logger, err := cfg.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	catalogs, err := loadCatalogs(cfg)
	if err != nil {
		logger.Fatal("failed to load catalogs", zap.Error(err))
	}
	logger.Info("catalogs loaded",
		zap.Int("kitchenInputs", catalogs[catalog.KindKitchen].Len()),
		zap.Int("additionalInputs", catalogs[catalog.KindAdditional].Len()),
	)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			logger.Fatal("failed to run database migrations", zap.Error(err))
		}
		stats, err := seed.Run(database, catalogs)
		if err != nil {
			logger.Fatal("failed to seed demo quotes", zap.Error(err))
		}
		if stats.Inserts > 0 {
			logger.Info("seeded demo quotes", zap.Int("inserts", stats.Inserts))
		}
	}

	srv := &server{db: database, logger: logger, catalogs: catalogs}

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalogs/{kind}", s.handleCatalog)
		r.Get("/catalogs/{kind}/grouped", s.handleCatalogGrouped)
		r.Post("/quotes/calculate", s.handleCalculate)
		r.Post("/quotes", s.handleQuoteCreate)
		r.Get("/quotes", s.handleQuotesList)
		r.Get("/quotes/{id}/summary", s.handleQuoteSummary)
	})
	return r
}

func loadCatalogs(cfg config.Config) (map[catalog.Kind]*catalog.Catalog, error) {
	if cfg.CatalogDir == "" {
		return catalog.LoadDefaults()
	}
	return catalog.LoadDir(cfg.CatalogDir)
}

// catalogInputs resolves the catalog for a request, applying the optional
// experience filter. The filter only changes kitchen catalogs in practice;
// additional-work inputs carry no tier tags.
func (s *server) catalogInputs(kind catalog.Kind, experience string) []catalog.Input {
	cat := s.catalogs[kind]
	if experience == "" {
		return cat.All()
	}
	return cat.FilterByExperience(catalog.Experience(experience))
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	inputs := s.catalogInputs(kind, r.URL.Query().Get("experience"))
	views := make([]inputView, len(inputs))
	for i, in := range inputs {
		views[i] = newInputView(in)
	}

	s.respondJSON(w, http.StatusOK, views)
}

func (s *server) handleCatalogGrouped(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	inputs := s.catalogInputs(kind, r.URL.Query().Get("experience"))
	s.respondJSON(w, http.StatusOK, newGroupedView(catalog.Group(inputs)))
}

type calculateRequest struct {
	Kind       string           `json:"kind"`
	Experience string           `json:"experience"`
	Values     pricing.Snapshot `json:"values"`
}

type calculateResponse struct {
	Total float64 `json:"total"`
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind, err := catalog.ParseKind(req.Kind)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	inputs := s.catalogInputs(kind, req.Experience)
	total := pricing.CalculateTotal(inputs, req.Values)

	s.respondJSON(w, http.StatusOK, calculateResponse{Total: total})
}

func (s *server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}
