package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"os-scheduler/api"
	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

const scenarioBody = `{"jobs":[
	{"process_id":"P1","arrival_time":0,"burst_time":5,"priority":"normal"},
	{"process_id":"P2","arrival_time":1,"burst_time":3,"priority":"HIGH"}
]}`

func newApp() *fiber.App {
	cfg := &config.SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: schedulers.DefaultTimeQuantum,
		ContextSwitchCost:     schedulers.DefaultContextSwitchCost,
		ThroughputThresholds:  schedulers.DefaultThroughputThresholds,
		PriorityLabels:        core.DefaultPriorityLabels,
	}
	app := fiber.New()
	api.Register(app, api.NewSchedulerHandlerImpl(cfg))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestPriorityPreemptiveRoute(t *testing.T) {
	resp := post(t, newApp(), "/api/v1/priority-preemptive", scenarioBody)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	response := decode[responses.ScheduleResponse](t, resp)
	require.Equal(t, "Priority Preemptive", response.Algorithm)
	require.Equal(t, core.Timeline{
		{Start: 0, End: 1, Label: "P1"},
		{Start: 1, End: 4, Label: "P2"},
		{Start: 4, End: 8, Label: "P1"},
	}, response.Timeline)
	require.Equal(t, 2, response.ContextSwitches)
}

func TestSingleAlgorithmRoutes(t *testing.T) {
	app := newApp()
	for _, algorithm := range schedulers.Algorithms {
		resp := post(t, app, "/api/v1/"+algorithm.Slug(), scenarioBody)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, algorithm)
		response := decode[responses.ScheduleResponse](t, resp)
		require.Equal(t, string(algorithm), response.Algorithm)
		require.Len(t, response.Details, 2)
	}
}

func TestAllRoute(t *testing.T) {
	resp := post(t, newApp(), "/api/v1/all", scenarioBody)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	all := decode[[]responses.ScheduleResponse](t, resp)
	require.Len(t, all, len(schedulers.Algorithms))
	for i, algorithm := range schedulers.Algorithms {
		require.Equal(t, string(algorithm), all[i].Algorithm)
	}
}

func TestRequestQuantumOverride(t *testing.T) {
	body := `{"jobs":[{"process_id":"P1","arrival_time":0,"burst_time":5,"priority":"low"}],"time_quantum":2}`
	resp := post(t, newApp(), "/api/v1/rr", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	response := decode[responses.ScheduleResponse](t, resp)
	require.Equal(t, core.Timeline{
		{Start: 0, End: 2, Label: "P1"},
		{Start: 2, End: 4, Label: "P1"},
		{Start: 4, End: 5, Label: "P1"},
	}, response.Timeline)
}

func TestInvalidRequests(t *testing.T) {
	app := newApp()
	bodies := []string{
		`not json`,
		`{"jobs":[{"process_id":"","arrival_time":0,"burst_time":1}]}`,
		`{"jobs":[{"process_id":"P1","arrival_time":0,"burst_time":0}]}`,
		`{"jobs":[{"process_id":"P1","burst_time":1},{"process_id":"P1","burst_time":1}]}`,
	}
	for _, body := range bodies {
		resp := post(t, app, "/api/v1/fcfs", body)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
		errBody := decode[map[string]string](t, resp)
		require.NotEmpty(t, errBody["error"])
	}
}

func TestEmptyJobs(t *testing.T) {
	resp := post(t, newApp(), "/api/v1/sjf", `{"jobs":[]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	response := decode[responses.ScheduleResponse](t, resp)
	require.Empty(t, response.Timeline)
	require.Zero(t, response.CpuEfficiency)
}

func TestHealth(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
