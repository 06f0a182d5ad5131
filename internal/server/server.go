package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/closewithmario/mortgage-engine/internal/quote"
	"github.com/closewithmario/mortgage-engine/internal/store"
	"github.com/closewithmario/mortgage-engine/pkg/constants"
	"github.com/closewithmario/mortgage-engine/pkg/dpa"
	"github.com/closewithmario/mortgage-engine/pkg/loantype"
	"github.com/closewithmario/mortgage-engine/pkg/rates"
	"github.com/closewithmario/mortgage-engine/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	cache       store.Cache
	cacheTTL    time.Duration
}

// NewHandler constructs the HTTP handler that serves the quote API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, cache store.Cache, cacheTTL time.Duration) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if cache == nil {
		cache = store.NewMemoryCache()
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}

	mux := http.NewServeMux()

	// Quote API endpoint
	mux.HandleFunc("/api/quote", h.handleQuote)

	// Standalone assistance-program evaluation
	mux.HandleFunc("/api/dpa/evaluate", h.handleDPAEvaluate)

	// Assistance-program preset catalog
	mux.HandleFunc("/api/presets", h.handlePresets)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Saved quote inputs, keyed by name
	mux.HandleFunc("/api/inputs/", h.handleInputs)

	return mux
}

type quoteResponse struct {
	Result   quote.Result `json:"result"`
	Warnings []string     `json:"warnings,omitempty"`
	Duration string       `json:"duration"`
}

type dpaEvaluateRequest struct {
	Price             float64       `json:"price"`
	LoanType          loantype.Type `json:"loanType"`
	DownPaymentPct    float64       `json:"downPaymentPct"`
	FirstMortgageRate float64       `json:"firstMortgageRate,omitempty"`
	Entries           []dpa.Entry   `json:"dpaEntries,omitempty"`
	Presets           []string      `json:"presets,omitempty"`
}

type dpaEvaluateResponse struct {
	Entries         []dpa.Entry    `json:"entries"`
	Totals          dpa.Totals     `json:"totals"`
	Adjustment      dpa.Adjustment `json:"adjustment"`
	WaivesTaxStamps bool           `json:"waivesTaxStamps"`
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req quote.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), "server.handleQuote")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleQuote")
		return
	}

	warnings := validation.ValidateInputs(req.Inputs)
	result := quote.Compute(h.logger, req)
	elapsed := time.Since(start)

	h.logger.Info("quote computed",
		zap.String("op", "server.handleQuote"),
		zap.String("name", req.Name),
		zap.Float64("price", req.Inputs.Price),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, quoteResponse{
		Result:   result,
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleDPAEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req dpaEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleDPAEvaluate")
		return
	}
	if req.Price <= 0 {
		h.respondError(w, http.StatusBadRequest, "price must be positive", "server.handleDPAEvaluate")
		return
	}

	firstRate := req.FirstMortgageRate
	if firstRate <= 0 {
		firstRate = rates.DefaultRate(req.LoanType)
	}

	entries := append([]dpa.Entry(nil), req.Entries...)
	for _, name := range req.Presets {
		preset, ok := findPreset(name)
		if !ok {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown preset %q", name), "server.handleDPAEvaluate")
			return
		}
		entries = append(entries, preset.Instantiate(firstRate))
	}

	adjustment := dpa.AdjustForCLTV(h.logger, req.Price, req.DownPaymentPct, req.LoanType, entries)
	totals := dpa.Aggregate(entries, req.Price, adjustment.ProjectedLoan)

	h.writeJSON(w, http.StatusOK, dpaEvaluateResponse{
		Entries:         entries,
		Totals:          totals,
		Adjustment:      adjustment,
		WaivesTaxStamps: dpa.WaivesTaxStamps(entries),
	})
}

func (h *handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	// An optional rate query instantiates dynamic-rate presets so the client
	// sees the resolved entries rather than the raw templates.
	if rateParam := r.URL.Query().Get("rate"); rateParam != "" {
		rate, err := strconv.ParseFloat(rateParam, 64)
		if err != nil || rate <= 0 {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid rate %q", rateParam), "server.handlePresets")
			return
		}
		catalog := dpa.Catalog()
		entries := make([]dpa.Entry, 0, len(catalog))
		for _, preset := range catalog {
			entries = append(entries, preset.Instantiate(rate))
		}
		h.writeJSON(w, http.StatusOK, entries)
		return
	}

	h.writeJSON(w, http.StatusOK, dpa.Catalog())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleInputs(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/api/inputs/")
	if key == "" || strings.Contains(key, "/") {
		h.respondError(w, http.StatusBadRequest, "invalid inputs key", "server.handleInputs")
		return
	}

	switch r.Method {
	case http.MethodGet:
		value, ok := h.cache.Get(r.Context(), key)
		if !ok {
			h.respondError(w, http.StatusNotFound, fmt.Sprintf("no saved inputs under %q", key), "server.handleInputs")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(value)); err != nil {
			h.logger.Error("failed to write saved inputs", zap.Error(err))
		}
	case http.MethodPut:
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		var body json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("saved inputs must be valid JSON: %v", err), "server.handleInputs")
			return
		}
		if err := h.cache.Set(r.Context(), key, string(body), h.cacheTTL); err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save inputs: %v", err), "server.handleInputs")
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"key": key})
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func findPreset(id string) (dpa.Preset, bool) {
	for _, preset := range dpa.Catalog() {
		if preset.ID == id {
			return preset, true
		}
	}
	return dpa.Preset{}, false
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
