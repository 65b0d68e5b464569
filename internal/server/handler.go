package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/aggregate"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/history"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/middleware"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/records"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/metrics"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/tracker"
	"github.com/DisplacedForest/ha-hevy-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=server_test

const (
	generationHeader    = "X-Snapshot-Generation"
	historyRateLimitKey = "hevy::rate-limit::history"
)

type trackerService interface {
	Snapshot() (*aggregate.Snapshot, uint64)
	HistorySource() history.Source
	PersonalRecords() records.Table
	Refresh(ctx context.Context) error
	Status() string
	LastError() error
	LastRefresh() time.Time
}

type historyQuery interface {
	WorkoutHistoryJSON(ctx context.Context, src history.Source, days int) ([]byte, error)
}

type StatusResponse struct {
	Status        string     `json:"status"`
	Generation    uint64     `json:"generation"`
	LastRefresh   *time.Time `json:"last_refresh"`
	LastError     *string    `json:"last_error"`
	LastErrorKind *string    `json:"last_error_kind"`
}

type RefreshResponse struct {
	Generation  uint64    `json:"generation"`
	LastRefresh time.Time `json:"last_refresh"`
}

type Handler struct {
	tracker trackerService
	query   historyQuery
}

func NewHandler(tracker trackerService, query historyQuery) *Handler {
	return &Handler{
		tracker: tracker,
		query:   query,
	}
}

func (h *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	historyAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	r.HandleFunc("/snapshot", h.HandleSnapshot).Methods("GET", "OPTIONS").Name("snapshot")
	r.HandleFunc("/status", h.HandleStatus).Methods("GET", "OPTIONS").Name("status")
	r.HandleFunc("/records", h.HandleRecords).Methods("GET", "OPTIONS").Name("records")
	r.HandleFunc("/refresh", h.HandleRefresh).Methods("POST", "OPTIONS").Name("refresh")

	historyRateLimit := middleware.RateLimit(rateLimiter, historyRateLimitKey, historyAllowedPerMin, metricsManager)
	r.Handle("/history", historyRateLimit(http.HandlerFunc(h.HandleHistory))).Methods("GET", "OPTIONS").Name("history")
}

func (h *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.snapshot")
	defer span.End()

	snapshot, generation := h.tracker.Snapshot()
	if snapshot == nil {
		span.SetStatus(codes.Error, "no-snapshot")
		pkg.WriteJSONError(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("marshal snapshot: %s", err)
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int64("generation", int64(generation)))
	w.Header().Set(generationHeader, strconv.FormatUint(generation, 10))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, body)
}

func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	_, generation := h.tracker.Snapshot()
	resp := StatusResponse{
		Status:     h.tracker.Status(),
		Generation: generation,
	}
	if lastRefresh := h.tracker.LastRefresh(); !lastRefresh.IsZero() {
		resp.LastRefresh = &lastRefresh
	}
	if err := h.tracker.LastError(); err != nil {
		msg := err.Error()
		kind := tracker.FailureKind(err)
		resp.LastError = &msg
		resp.LastErrorKind = &kind
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

// HandleRecords serves the personal record table as stored, weights in kg.
func (h *Handler) HandleRecords(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, h.tracker.PersonalRecords(), http.StatusOK)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history")
	defer span.End()

	days := history.DefaultDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil {
			span.SetStatus(codes.Error, "invalid-days")
			pkg.WriteJSONError(w, "days must be a number", http.StatusBadRequest)
			return
		}
		days = parsed
	}
	span.SetAttributes(attribute.Int("days", days))

	body, err := h.query.WorkoutHistoryJSON(ctx, h.tracker.HistorySource(), days)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, history.ErrInvalidDays) {
			pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("workout history for %d days: %s", days, err)
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, body)
}

// HandleRefresh runs a refresh right away. It waits for a refresh that is
// already in flight to finish first.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refresh")
	defer span.End()

	if err := h.tracker.Refresh(ctx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		status := http.StatusBadGateway
		if tracker.FailureKind(err) == "cancelled" {
			status = http.StatusServiceUnavailable
		}
		pkg.WriteJSONError(w, err.Error(), status)
		return
	}

	_, generation := h.tracker.Snapshot()
	pkg.WriteJSON(w, RefreshResponse{
		Generation:  generation,
		LastRefresh: h.tracker.LastRefresh(),
	}, http.StatusOK)
}
