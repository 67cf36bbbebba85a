// Package server exposes the calculators as a JSON API.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/voltworks/voltcalc/internal/circuit"
	"github.com/voltworks/voltcalc/internal/config"
	"github.com/voltworks/voltcalc/internal/reference"
)

// Server serves the calculator API.
type Server struct {
	cfg     config.ServerConfig
	limiter *rate.Limiter
}

// New creates a Server from configuration.
func New(cfg config.ServerConfig) *Server {
	return &Server{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(s.rateLimit)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ohm", handleOhm)
		r.Post("/power", handlePower)
		r.Post("/voltage-drop", handleDrop)
		r.Get("/reference", handleReference)
	})
	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("server: listening", zap.Int("port", s.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server: listen")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		zap.L().Info("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return eris.Wrap(srv.Shutdown(shutdownCtx), "server: shutdown")
	})
	return g.Wait()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleOhm(w http.ResponseWriter, r *http.Request) {
	var in circuit.OhmInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := circuit.ResolveOhm(in)
	if err != nil {
		if eris.Is(err, circuit.ErrInsufficientInputs) {
			writeError(w, http.StatusUnprocessableEntity, "at least two of voltage, current, resistance and power are required")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, roundOhm(res))
}

func handlePower(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phase       string  `json:"phase"`
		Voltage     float64 `json:"voltage"`
		Current     float64 `json:"current"`
		PowerFactor float64 `json:"power_factor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	phase, err := circuit.ParsePhase(req.Phase)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := circuit.EstimatePower(circuit.PowerInputs{
		Phase:       phase,
		Voltage:     req.Voltage,
		Current:     req.Current,
		PowerFactor: req.PowerFactor,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res.RealPowerWatts = circuit.Round(res.RealPowerWatts, 2)
	res.ApparentPowerVA = circuit.Round(res.ApparentPowerVA, 2)
	writeJSON(w, http.StatusOK, res)
}

func handleDrop(w http.ResponseWriter, r *http.Request) {
	var in circuit.DropInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := circuit.EstimateDrop(in)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res.DropVolts = circuit.Round(res.DropVolts, 2)
	res.DropPercent = circuit.Round(res.DropPercent, 2)
	res.LoopResistanceOhms = circuit.Round(res.LoopResistanceOhms, 2)
	writeJSON(w, http.StatusOK, res)
}

func handleReference(w http.ResponseWriter, r *http.Request) {
	d, err := reference.Load()
	if err != nil {
		zap.L().Error("server: reference data unavailable", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "reference data unavailable")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// roundOhm applies the 3-decimal display rounding to defined fields.
func roundOhm(res circuit.OhmResult) circuit.OhmResult {
	for _, f := range []*circuit.Field{&res.Voltage, &res.Current, &res.Resistance, &res.Power} {
		if f.Defined {
			f.Value = circuit.Round(f.Value, 3)
		}
	}
	return res
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
