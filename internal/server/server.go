package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Alias1177/Verifier/internal/resolver"
	"github.com/Alias1177/Verifier/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Handler serves the verification and accuracy API
type Handler struct {
	svc    *resolver.Service
	logger zerolog.Logger
}

type recordRequest struct {
	Predictor string `json:"predictor"`
	Domain    string `json:"domain"`
	Correct   *bool  `json:"correct"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter builds the chi router. gatherer may be nil to disable /metrics.
func NewRouter(svc *resolver.Service, gatherer prometheus.Gatherer) *chi.Mux {
	h := &Handler{
		svc:    svc,
		logger: log.With().Str("component", "http_server").Logger(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/verify", h.Verify)
		r.Route("/accuracy", func(r chi.Router) {
			r.Get("/", h.ListAccuracy)
			r.Post("/", h.RecordAccuracy)
			r.Get("/{predictor}/{domain}", h.GetAccuracy)
		})
	})

	return r
}

// Verify routes a prediction and returns its verdict. Verification failures are
// verdicts, so only malformed bodies produce an error status.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var p models.Prediction
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.svc.RouteVerification(r.Context(), p))
}

// RecordAccuracy adds one resolved prediction to the ledger
func (h *Handler) RecordAccuracy(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Predictor) == "" || strings.TrimSpace(req.Domain) == "" || req.Correct == nil {
		writeError(w, http.StatusBadRequest, "predictor, domain and correct are required")
		return
	}

	led := h.svc.Ledger()
	led.Record(req.Predictor, req.Domain, *req.Correct)
	writeJSON(w, http.StatusOK, led.Query(req.Predictor, req.Domain))
}

// GetAccuracy reports the accuracy of one predictor in one domain
func (h *Handler) GetAccuracy(w http.ResponseWriter, r *http.Request) {
	predictor := chi.URLParam(r, "predictor")
	domain := chi.URLParam(r, "domain")
	writeJSON(w, http.StatusOK, h.svc.Ledger().Query(predictor, domain))
}

// ListAccuracy reports every recorded pair
func (h *Handler) ListAccuracy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Ledger().Snapshot())
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
