// Package server exposes the loan simulation over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-simulator/internal/simulation"
	"github.com/iwvelando/loan-simulator/pkg/constants"
	"github.com/iwvelando/loan-simulator/pkg/loans"
	"github.com/iwvelando/loan-simulator/pkg/locale"
	"github.com/iwvelando/loan-simulator/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// Options configures NewHandler.
type Options struct {
	MaxBodySize int64
	Version     string
	// Limiter is optional; nil disables rate limiting.
	Limiter  Limiter
	FailOpen bool
}

// NewHandler constructs the HTTP handler that serves the simulation API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	limited := func(fn http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(logger, opts.Limiter, opts.FailOpen, fn)
	}

	mux := http.NewServeMux()

	// Loan computation
	mux.Handle("/api/simulate", limited(h.handleSimulate))

	// Display normalization for typed amounts and rates
	mux.Handle("/api/normalize", limited(h.handleNormalize))

	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)

	return RequestMiddleware(logger, mux)
}

// simulateRequest accepts each field as JSON text or number.
type simulateRequest struct {
	Principal interface{} `json:"principal"`
	Rate      interface{} `json:"rate"`
	Months    interface{} `json:"months"`
}

type simulateResponse struct {
	Input         loans.Input     `json:"input"`
	Installment   float64         `json:"installment"`
	TotalPaid     float64         `json:"totalPaid"`
	TotalInterest float64         `json:"totalInterest"`
	Formatted     formattedResult `json:"formatted"`
}

type formattedResult struct {
	Installment   string `json:"installment"`
	TotalPaid     string `json:"totalPaid"`
	TotalInterest string `json:"totalInterest"`
}

type errorResponse struct {
	Error    string             `json:"error"`
	Messages []string           `json:"messages"`
	Fields   []validation.Field `json:"fields,omitempty"`
}

type normalizeRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// normalizeResponse.Value is safe to submit back to /api/simulate: it parses
// to Number.
type normalizeResponse struct {
	Value  string  `json:"value"`
	Number float64 `json:"number"`
	OK     bool    `json:"ok"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSimulate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req simulateRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	logger := RequestLogger(r, h.logger)
	input, result, err := simulation.Simulate(coerceText(req.Principal), coerceText(req.Rate), coerceText(req.Months))
	if err != nil {
		var verrs *validation.Errors
		switch {
		case errors.As(err, &verrs):
			logger.Debug("simulation rejected",
				zap.String("op", op),
				zap.Strings("messages", verrs.Messages()),
			)
			h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:    "validation",
				Messages: verrs.Messages(),
				Fields:   verrs.Fields(),
			})
		case simulation.IsComputationError(err):
			logger.Warn("simulation could not be computed",
				zap.String("op", op),
				zap.Error(err),
			)
			h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:    "computation",
				Messages: []string{simulation.ComputationMessage},
			})
		default:
			h.respondErrorWithOp(w, r, http.StatusInternalServerError, err.Error(), op)
		}
		return
	}

	logger.Info("simulation computed",
		zap.String("op", op),
		zap.Int("months", input.Months),
		zap.Float64("installment", result.Installment),
	)

	h.writeJSON(w, http.StatusOK, simulateResponse{
		Input:         input,
		Installment:   result.Installment,
		TotalPaid:     result.TotalPaid,
		TotalInterest: result.TotalInterest,
		Formatted: formattedResult{
			Installment:   locale.FormatCurrency(result.Installment),
			TotalPaid:     locale.FormatCurrency(result.TotalPaid),
			TotalInterest: locale.FormatCurrency(result.TotalInterest),
		},
	})
}

func (h *handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleNormalize"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req normalizeRequest
	if !h.decode(w, r, &req, op) {
		return
	}

	var normalize func(string) (string, float64, bool)
	switch strings.ToLower(strings.TrimSpace(req.Kind)) {
	case "currency":
		normalize = locale.NormalizeCurrencyInput
	case "percent":
		normalize = locale.NormalizePercentInput
	default:
		h.respondErrorWithOp(w, r, http.StatusBadRequest,
			fmt.Sprintf("unknown kind %q: expected currency or percent", req.Kind), op)
		return
	}

	value, number, ok := normalize(req.Value)
	if !ok {
		// Leave the text as typed; validation reports it on submit.
		value = req.Value
	}
	h.writeJSON(w, http.StatusOK, normalizeResponse{Value: value, Number: number, OK: ok})
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

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a size-limited JSON body into dst, answering the request
// itself on failure.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	RequestLogger(r, h.logger).Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: "request", Messages: []string{msg}})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(h.logger, w, status, payload)
}

func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// coerceText turns a decoded JSON value into the raw text a user would have
// typed. Numbers are written without exponent so the locale parser reads them
// unchanged; anything else becomes empty and fails validation.
func coerceText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
