package hevy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/metrics"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// https://api.hevyapp.com/docs/

const (
	DefaultBaseURL = "https://api.hevyapp.com/v1"
	DefaultTimeout = 30 * time.Second

	// MaxWorkoutsPageSize is the largest page the workouts endpoint accepts.
	MaxWorkoutsPageSize  = 10
	TemplatesPageSize    = 50
	maxErrorBodyReadSize = 4 << 10

	endpointWorkouts          = "/workouts"
	endpointWorkoutsCount     = "/workouts/count"
	endpointExerciseTemplates = "/exercise_templates"
	endpointRoutines          = "/routines"
)

type Client struct {
	baseURL        string
	apiKey         string
	timeout        time.Duration
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewClient(
	baseURL, apiKey string,
	timeout time.Duration,
	httpClient *http.Client,
	metricsManager *metrics.Manager,
) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:        baseURL,
		apiKey:         apiKey,
		timeout:        timeout,
		httpClient:     httpClient,
		metricsManager: metricsManager,
	}
}

// ValidateAPIKey makes a cheap authenticated call. An *AuthError means the
// key has to be reconfigured; any other error means the api is unreachable.
func (c *Client) ValidateAPIKey(ctx context.Context) error {
	if _, err := c.GetWorkoutCount(ctx); err != nil {
		if !errors.Is(err, ErrAuth) {
			log.Errorf("failed to validate hevy api key: %s", err)
		}
		return err
	}
	return nil
}

func (c *Client) GetWorkoutCount(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.getWorkoutCount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resp := &workoutCountResponse{}
	if err := c.get(ctx, endpointWorkoutsCount, nil, resp); err != nil {
		return 0, err
	}
	return resp.WorkoutCount, nil
}

// GetWorkouts returns a page of workouts with full exercise and set details.
// Pages are 1-indexed.
func (c *Client) GetWorkouts(ctx context.Context, page, pageSize int) (_ *WorkoutsPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.getWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page), attribute.Int("page_size", pageSize))

	resp := &workoutsPageResponse{}
	if err := c.get(ctx, endpointWorkouts, pageParams(page, pageSize), resp); err != nil {
		return nil, err
	}

	result := &WorkoutsPage{
		Page:      resp.Page,
		PageCount: resp.PageCount,
		Workouts:  make([]workouts.Workout, 0, len(resp.Workouts)),
	}
	for _, w := range resp.Workouts {
		result.Workouts = append(result.Workouts, w.toWorkout())
	}
	return result, nil
}

func (c *Client) GetExerciseTemplates(ctx context.Context, page, pageSize int) (_ *TemplatesPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.getExerciseTemplates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page), attribute.Int("page_size", pageSize))

	resp := &templatesPageResponse{}
	if err := c.get(ctx, endpointExerciseTemplates, pageParams(page, pageSize), resp); err != nil {
		return nil, err
	}

	result := &TemplatesPage{
		Page:      resp.Page,
		PageCount: resp.PageCount,
		Templates: make([]workouts.ExerciseTemplate, 0, len(resp.ExerciseTemplates)),
	}
	for _, t := range resp.ExerciseTemplates {
		result.Templates = append(result.Templates, t.toTemplate())
	}
	return result, nil
}

// GetRoutines returns the first page of saved routines.
func (c *Client) GetRoutines(ctx context.Context) (_ *RoutinesPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.getRoutines")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resp := &routinesPageResponse{}
	if err := c.get(ctx, endpointRoutines, nil, resp); err != nil {
		return nil, err
	}

	result := &RoutinesPage{
		Page:      resp.Page,
		PageCount: resp.PageCount,
		Routines:  make([]workouts.Routine, 0, len(resp.Routines)),
	}
	for _, r := range resp.Routines {
		result.Routines = append(result.Routines, r.toRoutine())
	}
	return result, nil
}

func pageParams(page, pageSize int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	return params
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, target any) (err error) {
	defer func() {
		c.countCall(endpoint, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	log.Tracef("calling hevy api: %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &ApiError{Endpoint: endpoint, Message: "build request", Err: err}
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &ApiError{Endpoint: endpoint, Message: "request timeout", Err: err}
		}
		return &ApiError{Endpoint: endpoint, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &AuthError{StatusCode: resp.StatusCode, Message: "invalid api key"}
	case resp.StatusCode == http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode, Message: "access forbidden"}
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyReadSize))
		return &ApiError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return &ApiError{Endpoint: endpoint, Message: "request timeout", Err: err}
		}
		return &ApiError{Endpoint: endpoint, Message: "read response body", Err: err}
	}

	if err := json.Unmarshal(respBytes, target); err != nil {
		return &DataShapeError{Endpoint: endpoint, Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	return nil
}

func (c *Client) countCall(endpoint string, err error) {
	if c.metricsManager == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = ErrorKind(err)
	}
	c.metricsManager.CounterApiCalls.WithLabelValues(endpoint, status).Inc()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
