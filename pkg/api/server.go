package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bank-accounts/pkg/account"
	"bank-accounts/pkg/logging"
	"bank-accounts/pkg/metrics"
	"bank-accounts/pkg/metrics/memory"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Server exposes the account registry over HTTP.
type Server struct {
	registry *Registry
	metrics  metrics.Collector
	logger   *logging.Logger
	router   *mux.Router
	server   *http.Server
	config   ServerConfig
	list     singleflight.Group
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	// Address to listen on (e.g., ":8080")
	Address string

	// ReadTimeout for HTTP requests
	ReadTimeout time.Duration

	// WriteTimeout for HTTP responses
	WriteTimeout time.Duration

	// IdleTimeout for keep-alive connections
	IdleTimeout time.Duration

	// Gatherer backs GET /metrics. When nil the endpoint is not registered.
	Gatherer prometheus.Gatherer

	// HTTPMetrics, when set, instruments every route.
	HTTPMetrics *HTTPMetrics
}

// DefaultServerConfig returns a default configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:      ":8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new API server.
func NewServer(registry *Registry, collector metrics.Collector, logger *logging.Logger, config ServerConfig) *Server {
	if collector == nil {
		collector = metrics.NoOpCollector{}
	}
	if logger == nil {
		logger = logging.L()
	}

	s := &Server{
		registry: registry,
		metrics:  collector,
		logger:   logger.Named("api"),
		config:   config,
	}

	r := mux.NewRouter()
	if config.HTTPMetrics != nil {
		r.Use(config.HTTPMetrics.Middleware())
	}

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/accounts", s.handleListAccounts).Methods(http.MethodGet)
	r.HandleFunc("/accounts", s.handleCreateAccount).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}", s.handleGetAccount).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{id}/deposit", s.handleTransact(metrics.OpDeposit)).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}/withdraw", s.handleTransact(metrics.OpWithdraw)).Methods(http.MethodPost)
	r.HandleFunc("/variants/{variant}/deposit", s.handleBulk(metrics.OpDeposit)).Methods(http.MethodPost)
	r.HandleFunc("/variants/{variant}/withdraw", s.handleBulk(metrics.OpWithdraw)).Methods(http.MethodPost)
	r.HandleFunc("/metrics/json", s.handleMetricsJSON).Methods(http.MethodGet)
	if config.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	s.router = r
	s.server = &http.Server{
		Addr:         config.Address,
		Handler:      r,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Server listening", zap.String("address", s.config.Address))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type createRequest struct {
	Variant string `json:"variant"`
	account.Spec
}

type amountRequest struct {
	Amount *float64 `json:"amount"`
}

type transactResponse struct {
	OK      bool  `json:"ok"`
	Account Entry `json:"account"`
}

type bulkResponse struct {
	Operation metrics.Operation `json:"operation"`
	Variant   account.Variant   `json:"variant"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Results   []BulkResult      `json:"results"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// handleListAccounts coalesces concurrent list requests into one registry walk.
// The key carries the registry version, so a request never joins a walk that
// started before a write it has already observed.
func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	key := "accounts:" + strconv.FormatUint(s.registry.Version(), 10)
	v, _, _ := s.list.Do(key, func() (interface{}, error) {
		return s.registry.List(), nil
	})

	entries := v.([]Entry)
	if entries == nil {
		entries = []Entry{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": entries,
		"count":    len(entries),
	})
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	variant, err := account.ParseVariant(req.Variant)
	if err != nil {
		s.writeError(w, err)
		return
	}

	entry, err := s.registry.Create(variant, req.Spec)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	entry, err := s.registry.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

// handleTransact answers 200 when the account accepts the operation and 422
// when its rules reject it.
func (s *Server) handleTransact(op metrics.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, err := decodeAmount(r)
		if err != nil {
			s.writeError(w, err)
			return
		}

		id := mux.Vars(r)["id"]
		var ok bool
		var entry Entry
		if op == metrics.OpDeposit {
			ok, entry, err = s.registry.Deposit(id, amount)
		} else {
			ok, entry, err = s.registry.Withdraw(id, amount)
		}
		if err != nil {
			s.writeError(w, err)
			return
		}

		status := http.StatusOK
		if !ok {
			status = http.StatusUnprocessableEntity
		}
		s.writeJSON(w, status, transactResponse{OK: ok, Account: entry})
	}
}

func (s *Server) handleBulk(op metrics.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variant, err := account.ParseVariant(mux.Vars(r)["variant"])
		if err != nil {
			s.writeError(w, err)
			return
		}

		amount, err := decodeAmount(r)
		if err != nil {
			s.writeError(w, err)
			return
		}

		results, err := s.registry.Bulk(variant, op, amount)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if results == nil {
			results = []BulkResult{}
		}

		succeeded := 0
		for _, res := range results {
			if res.OK {
				succeeded++
			}
		}

		s.writeJSON(w, http.StatusOK, bulkResponse{
			Operation: op,
			Variant:   variant,
			Succeeded: succeeded,
			Failed:    len(results) - succeeded,
			Results:   results,
		})
	}
}

// handleMetricsJSON returns metrics in JSON format when the collector keeps
// them in memory.
func (s *Server) handleMetricsJSON(w http.ResponseWriter, r *http.Request) {
	if mc, ok := s.metrics.(interface{ Snapshot() memory.Snapshot }); ok {
		s.writeJSON(w, http.StatusOK, mc.Snapshot())
		return
	}

	s.writeJSON(w, http.StatusNotImplemented, map[string]interface{}{
		"error": "metrics collector does not support JSON snapshot",
	})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.Error(err))
	} else {
		s.logger.Debug("Request rejected", zap.Error(err), zap.Int("status", status))
	}
	s.writeJSON(w, status, map[string]interface{}{
		"error": err.Error(),
	})
}

func decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func decodeAmount(r *http.Request) (float64, error) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		return 0, err
	}
	if req.Amount == nil {
		return 0, fmt.Errorf("%w: amount is required", ErrInvalidRequest)
	}
	return *req.Amount, nil
}

// writeJSON encodes data before any header is sent, so an unencodable value
// becomes a 500 instead of a success status with an empty body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err), zap.Int("status", status))
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]interface{}{
			"error": "failed to encode response",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
