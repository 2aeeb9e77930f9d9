package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/locf/fill"
	"github.com/katalvlaran/locf/internal/config"
	"github.com/katalvlaran/locf/internal/server"
	"github.com/katalvlaran/locf/na"
)

type response struct {
	Values []na.Value `json:"values"`
	Stats  fill.Stats `json:"stats"`
	Error  string     `json:"error"`
	Code   string     `json:"code"`
}

func newTestServer(t *testing.T, mutate func(*config.Config)) (*httptest.Server, *prometheus.Registry) {
	t.Helper()
	cfg := config.Default()
	cfg.Fill.MinChunk = 2
	if mutate != nil {
		mutate(&cfg)
	}
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(server.New(cfg, logger, reg).Handler())
	t.Cleanup(ts.Close)

	return ts, reg
}

func postFill(t *testing.T, ts *httptest.Server, body string) (int, response) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/v1/locf", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return resp.StatusCode, out
}

func TestFill_Sequential(t *testing.T) {
	ts, reg := newTestServer(t, nil)

	status, out := postFill(t, ts, `{"values":[null,1,null,null,4,null]}`)
	require.Equal(t, http.StatusOK, status)

	want := []na.Value{na.Missing(), na.Of(1), na.Of(1), na.Of(1), na.Of(4), na.Of(4)}
	require.Len(t, out.Values, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(out.Values[i]), "index %d: got %v want %v", i, out.Values[i], want[i])
	}
	assert.Equal(t, fill.Stats{Len: 6, Present: 2, Filled: 3, Leading: 1}, out.Stats)

	assert.Equal(t, 1.0, requestsTotal(t, reg, "ok"))
}

func TestFill_ParallelMatchesSequential(t *testing.T) {
	ts, _ := newTestServer(t, func(c *config.Config) { c.Fill.Workers = 3 })

	body := `{"values":[null,null,2,null,null,null,5,null,7,null,null],"parallel":true}`
	status, par := postFill(t, ts, body)
	require.Equal(t, http.StatusOK, status)

	_, seq := postFill(t, ts, `{"values":[null,null,2,null,null,null,5,null,7,null,null]}`)
	require.Len(t, par.Values, len(seq.Values))
	for i := range seq.Values {
		assert.True(t, seq.Values[i].Equal(par.Values[i]), "index %d", i)
	}
	assert.Equal(t, seq.Stats, par.Stats)
}

func TestFill_ThresholdSelectsParallel(t *testing.T) {
	ts, _ := newTestServer(t, func(c *config.Config) { c.Fill.ParallelThreshold = 4 })

	status, out := postFill(t, ts, `{"values":[3,null,null,null,null,9,null]}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, fill.Stats{Len: 7, Present: 2, Filled: 5, Leading: 0}, out.Stats)
	assert.True(t, out.Values[4].Equal(na.Of(3)))
	assert.True(t, out.Values[6].Equal(na.Of(9)))
}

func TestFill_EmptyValues(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	status, out := postFill(t, ts, `{"values":[]}`)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, out.Values)
	assert.Equal(t, fill.Stats{}, out.Stats)
}

func TestFill_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"values":[1,`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"string cell", `{"values":[1,"x"]}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"trailing data", `{"values":[1,2]} junk`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"second document", `{"values":[1]}{"values":[2]}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"missing values", `{"parallel":true}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"too many values", `{"values":[1,2,3,4]}`, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
	}

	ts, reg := newTestServer(t, func(c *config.Config) { c.Server.MaxValues = 3 })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := postFill(t, ts, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, out.Code)
			assert.NotEmpty(t, out.Error)
		})
	}

	assert.Equal(t, 5.0, requestsTotal(t, reg, "bad_request"))
	assert.Equal(t, 1.0, requestsTotal(t, reg, "too_large"))
}

func TestFill_BodyLimit(t *testing.T) {
	ts, _ := newTestServer(t, func(c *config.Config) { c.Server.MaxBodyBytes = 16 })

	status, out := postFill(t, ts, `{"values":[1,2,3,4,5,6,7,8,9,10]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", out.Code)
}

// TestFill_CanceledParallel maps a canceled parallel pass to 503.
func TestFill_CanceledParallel(t *testing.T) {
	cfg := config.Default()
	reg := prometheus.NewRegistry()
	h := server.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), reg).Handler()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/v1/locf",
		strings.NewReader(`{"values":[1,null,3,null],"parallel":true}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var out response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "UNAVAILABLE", out.Code)
	assert.Contains(t, out.Error, "context canceled")
	assert.Equal(t, 1.0, requestsTotal(t, reg, "canceled"))
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t, nil)
	postFill(t, ts, `{"values":[1,null]}`)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `locf_requests_total{outcome="ok"} 1`)
	assert.Contains(t, buf.String(), "locf_cells_filled_total 1")
}

func requestsTotal(t *testing.T, reg *prometheus.Registry, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "locf_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "outcome" && lp.GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
	}

	return 0
}
