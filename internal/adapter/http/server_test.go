package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/route-grade-etl/internal/adapter/http"
	"github.com/couchcryptid/route-grade-etl/internal/config"
	"github.com/couchcryptid/route-grade-etl/internal/grade"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

func newTestServer(readyErr error) *httpadapter.Server {
	cfg := &config.Config{
		HTTPAddr:           ":0",
		DisplayScale:       grade.French,
		CORSAllowedOrigins: []string{"https://routebook.example"},
	}
	return httpadapter.NewServer(cfg, &mockReadiness{err: readyErr}, grade.NewEngine(nil), slog.Default())
}

func do(t *testing.T, srv *httpadapter.Server, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestHealthzReturns200(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec, body := do(t, newTestServer(fmt.Errorf("not ready yet")), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec, _ := do(t, newTestServer(nil), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/scales", nil)
	req.Header.Set("Origin", "https://routebook.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.Equal(t, "https://routebook.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestListScales(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/api/v1/scales", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"French", "UIAA", "YDS", "Elbsandstein", "Vermin", "Font"}, body["scales"])
}

func TestGetScale(t *testing.T) {
	srv := newTestServer(nil)

	rec, body := do(t, srv, http.MethodGet, "/api/v1/scales/saxon", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Elbsandstein", body["scale"])
	grades := body["grades"].([]any)
	first := grades[0].(map[string]any)
	assert.Equal(t, "II", first["token"])
	assert.Equal(t, 7.0, first["ordinal"])

	rec, body = do(t, srv, http.MethodGet, "/api/v1/scales/vermin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "VB", body["unrated"])

	rec, body = do(t, srv, http.MethodGet, "/api/v1/scales/ewbank", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body["error"], "ewbank")
}

func TestDetect(t *testing.T) {
	srv := newTestServer(nil)

	tests := map[string]string{
		"5.10a": "YDS",
		"V10":   "Vermin",
		"7A%2B": "Font",
		"7c":    "French",
		"VIIc":  "Elbsandstein",
		"9-":    "UIAA",
		"%3F%3F": "undetermined",
	}
	for token, want := range tests {
		rec, body := do(t, srv, http.MethodGet, "/api/v1/grades/detect?token="+token, "")
		require.Equal(t, http.StatusOK, rec.Code, token)
		assert.Equal(t, want, body["scale"], token)
	}

	rec, body := do(t, srv, http.MethodGet, "/api/v1/grades/detect", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "token")
}

func TestNormalize(t *testing.T) {
	srv := newTestServer(nil)

	rec, body := do(t, srv, http.MethodGet, "/api/v1/grades/normalize?token=7a&discipline=Sportclimb", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "French", body["scale"])
	assert.Equal(t, 24.0, body["ordinal"])
	assert.Equal(t, "classified", body["outcome"])
	assert.Equal(t, true, body["classified"])

	display := body["display"].(map[string]any)
	assert.Equal(t, "7a", display["French"])
	assert.Equal(t, "8", display["UIAA"])
	assert.Equal(t, "5.11d", display["YDS"])
	assert.Equal(t, "IXb", display["Elbsandstein"])
	assert.Len(t, display, 6)
}

func TestNormalize_ExplicitScale(t *testing.T) {
	srv := newTestServer(nil)

	rec, body := do(t, srv, http.MethodGet, "/api/v1/grades/normalize?token=5%2B&scale=font&discipline=boulder", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Font", body["scale"])
	assert.Equal(t, 2.0, body["ordinal"])

	rec, _ = do(t, srv, http.MethodGet, "/api/v1/grades/normalize?token=7a&scale=ewbank", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNormalize_BoulderGuard(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/api/v1/grades/normalize?token=6a&discipline=Boulder", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "boulder_guard", body["outcome"])
	assert.Equal(t, 0.0, body["ordinal"])
	assert.Equal(t, true, body["classified"])
}

func TestDenormalize(t *testing.T) {
	srv := newTestServer(nil)

	rec, body := do(t, srv, http.MethodGet, "/api/v1/grades/denormalize?ordinal=21.3&scale=YDS", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5.11a", body["token"])

	rec, body = do(t, srv, http.MethodGet, "/api/v1/grades/denormalize?ordinal=24", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "French", body["scale"], "falls back to the display scale")
	assert.Equal(t, "7a", body["token"])

	for _, q := range []string{"", "?ordinal=abc", "?ordinal=NaN", "?ordinal=24&scale=ewbank"} {
		rec, _ = do(t, srv, http.MethodGet, "/api/v1/grades/denormalize"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestConvert(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/api/v1/grades/convert?token=Xa&to=French", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Elbsandstein", body["scale"])
	assert.Equal(t, 27.0, body["ordinal"])
	assert.Equal(t, "7b+", body["converted"])
}

func TestCompare(t *testing.T) {
	srv := newTestServer(nil)

	tests := []struct {
		query string
		match bool
	}{
		{"ordinal=24&filter=7a", true},
		{"ordinal=24.5&filter=7a&op=%3D%3D", true},
		{"ordinal=25&filter=7a&op=%3D%3D", false},
		{"ordinal=25&filter=7a&op=%3E%3D", true},
		{"ordinal=23&filter=8&op=%3E%3D", false},
	}
	for _, tt := range tests {
		rec, body := do(t, srv, http.MethodGet, "/api/v1/grades/compare?"+tt.query, "")
		require.Equal(t, http.StatusOK, rec.Code, tt.query)
		assert.Equal(t, tt.match, body["match"], tt.query)
	}

	rec, body := do(t, srv, http.MethodGet, "/api/v1/grades/compare?ordinal=24&filter=garbage", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["match"], "unrecognized filter grade does not constrain")
	assert.Equal(t, "undetermined", body["filter_outcome"])

	rec, body = do(t, srv, http.MethodGet, "/api/v1/grades/compare?ordinal=0&filter=7a&discipline=Boulder", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "boulder_guard", body["filter_outcome"])
	assert.Equal(t, true, body["match"])

	rec, body = do(t, srv, http.MethodGet, "/api/v1/grades/compare?ordinal=24&filter=7a&op=%3C", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "operator")
}

func TestPyramid(t *testing.T) {
	srv := newTestServer(nil)

	payload := `{"ordinals":[20,20.5,22,24,24.5,25,26],"labels":["6a","6b","6c","7a","7a+","7b","7b+"],"rounding":"Round down"}`
	rec, body := do(t, srv, http.MethodPost, "/api/v1/grades/pyramid", payload)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "down", body["rounding"])

	counts := map[string]float64{}
	for _, b := range body["bins"].([]any) {
		bin := b.(map[string]any)
		counts[bin["label"].(string)] = bin["count"].(float64)
	}
	assert.Equal(t, map[string]float64{"6b": 2, "6c": 1, "7a": 2, "7a+": 1, "7b": 1}, counts)
}

func TestPyramid_BadRequests(t *testing.T) {
	srv := newTestServer(nil)

	for _, payload := range []string{
		`{not json`,
		`{"ordinals":[24],"labels":["7a"],"rounding":"sideways"}`,
		`{"ordinals":[24],"labels":[]}`,
	} {
		rec, body := do(t, srv, http.MethodPost, "/api/v1/grades/pyramid", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.NotEmpty(t, body["error"], payload)
	}
}

func TestPyramid_EmptyOrdinals(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodPost, "/api/v1/grades/pyramid", `{"ordinals":[],"labels":["7a"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["bins"])
}
