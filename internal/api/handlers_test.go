package api

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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/calendar"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/config"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/database"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/metrics"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

// testEnv holds a complete test environment: database, config, handlers
// and the routed HTTP handler.
type testEnv struct {
	db       *database.DB
	cfg      *config.Config
	handlers *Handlers
	router   http.Handler
}

const testAPIKey = "admin-test-key-32-characters-minimum-length"

// setupTest creates a fresh test environment. mutate, if given, adjusts the
// config before handlers are built.
func setupTest(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.Open(database.DefaultConfig(":memory:"), log)
	require.NoError(t, err, "open test database")
	_, err = db.Migrate(context.Background())
	require.NoError(t, err, "migrate test database")
	t.Cleanup(func() { db.Close() })

	cfg := config.Defaults()
	cfg.DatabasePath = ":memory:"
	cfg.LogLevel = "error"
	for _, m := range mutate {
		m(cfg)
	}

	handlers := NewHandlers(db, cfg, log, metrics.NewCollector("ethcal_test"))
	handlers.now = func() time.Time {
		return time.Date(2024, time.September, 11, 8, 30, 0, 0, time.UTC)
	}

	return &testEnv{
		db:       db,
		cfg:      cfg,
		handlers: handlers,
		router:   SetupRoutes(handlers, cfg, log),
	}
}

// envelope mirrors Response with Data left raw for typed decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
}

// do sends a request through the full router.
func (env *testEnv) do(t *testing.T, method, path string, body any, apiKey string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var resp envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	}
	return rec, resp
}

func decode[T any](t *testing.T, resp envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	return out
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, resp envelope, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, code, resp.Error.Code)
}

// =============================================================================
// HEALTH & METRICS
// =============================================================================

func TestHealthCheck(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]string{"status": "healthy"}, decode[map[string]string](t, resp))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRouterMiddlewareChain(t *testing.T) {
	env := setupTest(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/admin/days", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	env := setupTest(t)
	require.NoError(t, env.db.DB.Close())

	rec, resp := env.do(t, http.MethodGet, "/health", nil, "")
	requireErrorCode(t, rec, resp, http.StatusServiceUnavailable, CodeUnhealthy)
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTest(t)

	env.do(t, http.MethodGet, "/api/v1/convert/gregorian/2024-09-11", nil, "")

	rec, _ := env.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `ethcal_test_conversions_total{direction="to_ethiopic"} 1`)
	assert.Contains(t, body, `route="/api/v1/convert/gregorian/{date}"`)
}

// =============================================================================
// CONVERSION
// =============================================================================

func TestGetToday(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/today", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	day := decode[DayResponse](t, resp)
	assert.Equal(t, "2024-09-11", day.GregorianISO)
	assert.Equal(t, "2017-01-01", day.EthiopicISO)
	assert.Equal(t, "AM", day.Era)
	assert.Equal(t, "Wednesday", day.Weekday)
	assert.Equal(t, int64(2460565), day.JDN)
	assert.Equal(t, "computed", day.Source)
}

func TestConvertEthiopic(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name      string
		path      string
		gregorian string
		era       string
	}{
		{"new year", "/api/v1/convert/ethiopic/2017-01-01", "2024-09-11", "AM"},
		{"christmas", "/api/v1/convert/ethiopic/2017-04-16", "2024-12-25", "AM"},
		{"first day of mercy", "/api/v1/convert/ethiopic/1-01-01", "0008-08-27", "AM"},
		{"explicit amete alem", "/api/v1/convert/ethiopic/5500-01-01?era=AA", "0007-08-28", "AA"},
		{"year zero resolves to amete alem", "/api/v1/convert/ethiopic/0-01-01", "", "AA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := env.do(t, http.MethodGet, tt.path, nil, "")
			require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

			day := decode[DayResponse](t, resp)
			assert.Equal(t, tt.era, day.Era)
			if tt.gregorian != "" {
				assert.Equal(t, tt.gregorian, day.GregorianISO)
			}
		})
	}
}

func TestConvertEthiopic_Invalid(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/convert/ethiopic/2017-13-06", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidDate)
	assert.Contains(t, resp.Error.Message, "day 6 out of range [1,5]")

	rec, resp = env.do(t, http.MethodGet, "/api/v1/convert/ethiopic/2017-14-01", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidDate)
	assert.Contains(t, resp.Error.Message, "month")

	rec, resp = env.do(t, http.MethodGet, "/api/v1/convert/ethiopic/not-a-date", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidDate)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/convert/ethiopic/2017-01-01?era=XX", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidEra)
}

func TestConvertGregorian(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/convert/gregorian/2024-12-25", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	day := decode[DayResponse](t, resp)
	assert.Equal(t, calendar.EthiopicDate{Year: 2017, Month: 4, Day: 16}, day.Ethiopic)
	assert.Equal(t, "Amete Mihret", day.EraName)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/convert/gregorian/2023-02-29", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidDate)
}

func TestConvertGregorian_FromTable(t *testing.T) {
	env := setupTest(t)

	rec, _ := env.do(t, http.MethodPost, "/api/v1/admin/days/import",
		ImportRequest{Start: "2024-09-01", End: "2024-09-30"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/convert/gregorian/2024-09-11", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	day := decode[DayResponse](t, resp)
	assert.Equal(t, "table", day.Source)
	assert.Equal(t, "2017-01-01", day.EthiopicISO)
}

func TestConvertEthiopic_FromTable(t *testing.T) {
	env := setupTest(t)

	rec, _ := env.do(t, http.MethodPost, "/api/v1/admin/days/import",
		ImportRequest{Start: "2024-09-01", End: "2024-09-30"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/convert/ethiopic/2017-01-01", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	day := decode[DayResponse](t, resp)
	assert.Equal(t, "table", day.Source)
	assert.Equal(t, "2024-09-11", day.GregorianISO)

	// The table holds AM rows only.
	rec, resp = env.do(t, http.MethodGet, "/api/v1/convert/ethiopic/2017-01-01?era=AA", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	day = decode[DayResponse](t, resp)
	assert.Equal(t, "computed", day.Source)
	assert.Equal(t, "AA", day.Era)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/convert/ethiopic/2017-04-16", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "computed", decode[DayResponse](t, resp).Source)
}

func TestConvertRange(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/convert/range?start=2024-09-09&end=2024-09-12", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode[RangeResponse](t, resp)
	assert.Equal(t, 4, out.Count)
	assert.Equal(t, "computed", out.Source)
	require.Len(t, out.Days, 4)
	assert.Equal(t, "2016-13-04", out.Days[0].EthiopicISO)
	assert.Equal(t, "2016-13-05", out.Days[1].EthiopicISO)
	assert.Equal(t, "2017-01-01", out.Days[2].EthiopicISO)
	assert.Equal(t, "Thursday", out.Days[3].Weekday)
}

func TestConvertRange_Errors(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"missing end", "start=2024-01-01", CodeBadRequest},
		{"bad start", "start=2024-02-30&end=2024-03-01", CodeInvalidDate},
		{"bad end", "start=2024-01-01&end=garbage", CodeInvalidDate},
		{"reversed", "start=2024-03-01&end=2024-01-01", CodeInvalidRange},
		{"too large", "start=2024-01-01&end=2024-12-31", CodeInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := env.do(t, http.MethodGet, "/api/v1/convert/range?"+tt.query, nil, "")
			requireErrorCode(t, rec, resp, http.StatusBadRequest, tt.code)
		})
	}
}

// =============================================================================
// VALIDATION, LEAP YEARS, JDN
// =============================================================================

func TestValidate(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		path  string
		valid bool
	}{
		{"/api/v1/validate/ethiopic/2015-13-06", true},
		{"/api/v1/validate/ethiopic/2017-13-06", false},
		{"/api/v1/validate/gregorian/2024-02-29", true},
		{"/api/v1/validate/gregorian/1900-02-29", false},
		{"/api/v1/validate/gregorian/tomorrow", false},
	}

	for _, tt := range tests {
		rec, resp := env.do(t, http.MethodGet, tt.path, nil, "")
		require.Equal(t, http.StatusOK, rec.Code, tt.path)

		out := decode[ValidationResponse](t, resp)
		assert.Equal(t, tt.valid, out.Valid, tt.path)
		assert.Equal(t, tt.valid, out.Reason == "", tt.path)
	}
}

func TestLeap(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/leap/gregorian/2000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, LeapResponse{Calendar: "gregorian", Year: 2000, Leap: true, DaysInYear: 366}, decode[LeapResponse](t, resp))

	rec, resp = env.do(t, http.MethodGet, "/api/v1/leap/ethiopic/2015", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[LeapResponse](t, resp).Leap)

	_, resp = env.do(t, http.MethodGet, "/api/v1/leap/ethiopic/2016", nil, "")
	assert.Equal(t, 365, decode[LeapResponse](t, resp).DaysInYear)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/leap/gregorian/abc", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidYear)
}

func TestJDN(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/jdn/gregorian/2000-01-01", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2451545), decode[JDNResponse](t, resp).JDN)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/jdn/ethiopic/2017-01-01", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[JDNResponse](t, resp)
	assert.Equal(t, int64(2460565), out.JDN)
	assert.Equal(t, "AM", out.Era)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/jdn/ethiopic/5500-01-01?era=AA", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(calendar.GregorianToJDN(7, 8, 28)), decode[JDNResponse](t, resp).JDN)
}

func TestGetDayByJDN(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/jdn/0", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	day := decode[DayResponse](t, resp)
	assert.Equal(t, "-4713-11-24", day.GregorianISO)
	assert.Equal(t, "Monday", day.Weekday)
	assert.Equal(t, "AA", day.Era)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/jdn/2460565?era=AA", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	day = decode[DayResponse](t, resp)
	assert.Equal(t, "7517-01-01", day.EthiopicISO)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/jdn/12.5", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidJDN)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/jdn/99999999999999999", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidJDN)
}

func TestGetDayByJDN_FromTable(t *testing.T) {
	env := setupTest(t)

	rec, _ := env.do(t, http.MethodPost, "/api/v1/admin/days/import",
		ImportRequest{Start: "2024-09-11", End: "2024-09-11"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/jdn/2460565", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	day := decode[DayResponse](t, resp)
	assert.Equal(t, "table", day.Source)
	assert.Equal(t, "2017-01-01", day.EthiopicISO)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/jdn/2460565?era=AM", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "table", decode[DayResponse](t, resp).Source)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/jdn/2460565?era=AA", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	day = decode[DayResponse](t, resp)
	assert.Equal(t, "computed", day.Source)
	assert.Equal(t, "7517-01-01", day.EthiopicISO)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/jdn/2460565?era=XX", nil, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidEra)
}

func TestListEras(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/eras", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode[struct {
		Eras           []EraInfo `json:"eras"`
		GregorianEpoch int64     `json:"gregorian_epoch"`
	}](t, resp)
	require.Len(t, out.Eras, 2)
	assert.Equal(t, EraInfo{Name: "Amete Alem", Label: "AA", Offset: -285019}, out.Eras[0])
	assert.Equal(t, EraInfo{Name: "Amete Mihret", Label: "AM", Offset: 1723856}, out.Eras[1])
	assert.Equal(t, int64(1721426), out.GregorianEpoch)
}

// =============================================================================
// DAY TABLE
// =============================================================================

func TestImportDays(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodPost, "/api/v1/admin/days/import",
		ImportRequest{Start: "2024-01-01", End: "2024-12-31"}, "")
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	run := decode[database.ImportRun](t, resp)
	assert.Equal(t, 366, run.DaysWritten)
	assert.Equal(t, "api", run.Source)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/days/stats", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[StatsResponse](t, resp)
	assert.Equal(t, 366, stats.TotalDays)
	assert.Equal(t, "2024-01-01", stats.FirstGregorian)
	require.Len(t, stats.RecentImports, 1)

	// Ranges fully in the table are served from it.
	rec, resp = env.do(t, http.MethodGet, "/api/v1/convert/range?start=2024-02-01&end=2024-02-29", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "table", decode[RangeResponse](t, resp).Source)
}

func TestImportDays_Errors(t *testing.T) {
	env := setupTest(t, func(c *config.Config) { c.ImportLimitDays = 10 })

	rec, resp := env.do(t, http.MethodPost, "/api/v1/admin/days/import",
		ImportRequest{Start: "2024-01-01", End: "2024-01-31"}, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidRange)

	rec, resp = env.do(t, http.MethodPost, "/api/v1/admin/days/import",
		ImportRequest{Start: "2024-01-01"}, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeBadRequest)

	rec, resp = env.do(t, http.MethodPost, "/api/v1/admin/days/import",
		ImportRequest{Start: "2024-13-01", End: "2024-01-02"}, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidDate)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/days/import", strings.NewReader("{"))
	raw := httptest.NewRecorder()
	env.router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestImportDays_RequiresKey(t *testing.T) {
	env := setupTest(t, func(c *config.Config) { c.APIKey = testAPIKey })
	body := ImportRequest{Start: "2024-01-01", End: "2024-01-02"}

	rec, resp := env.do(t, http.MethodPost, "/api/v1/admin/days/import", body, "")
	requireErrorCode(t, rec, resp, http.StatusUnauthorized, CodeUnauthorized)

	rec, resp = env.do(t, http.MethodPost, "/api/v1/admin/days/import", body, "wrong-key")
	requireErrorCode(t, rec, resp, http.StatusUnauthorized, CodeUnauthorized)

	rec, _ = env.do(t, http.MethodPost, "/api/v1/admin/days/import", body, testAPIKey)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPurgeDays(t *testing.T) {
	env := setupTest(t)

	rec, _ := env.do(t, http.MethodPost, "/api/v1/admin/days/import",
		ImportRequest{Start: "2024-09-01", End: "2024-09-30"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := env.do(t, http.MethodDelete, "/api/v1/admin/days",
		ImportRequest{Start: "2024-09-21", End: "2024-10-31"}, "")
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	out := decode[PurgeResponse](t, resp)
	assert.Equal(t, int64(10), out.Removed)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/days/stats", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, decode[StatsResponse](t, resp).TotalDays)

	rec, resp = env.do(t, http.MethodGet, "/api/v1/convert/gregorian/2024-09-25", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "computed", decode[DayResponse](t, resp).Source)

	rec, resp = env.do(t, http.MethodDelete, "/api/v1/admin/days",
		ImportRequest{Start: "2024-09-30", End: "2024-09-01"}, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeInvalidRange)

	rec, resp = env.do(t, http.MethodDelete, "/api/v1/admin/days", ImportRequest{End: "2024-09-01"}, "")
	requireErrorCode(t, rec, resp, http.StatusBadRequest, CodeBadRequest)
}

func TestPurgeDays_RequiresKey(t *testing.T) {
	env := setupTest(t, func(c *config.Config) { c.APIKey = testAPIKey })
	body := ImportRequest{Start: "2024-01-01", End: "2024-01-02"}

	rec, resp := env.do(t, http.MethodDelete, "/api/v1/admin/days", body, "")
	requireErrorCode(t, rec, resp, http.StatusUnauthorized, CodeUnauthorized)

	rec, _ = env.do(t, http.MethodDelete, "/api/v1/admin/days", body, testAPIKey)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotFoundAndMethod(t *testing.T) {
	env := setupTest(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/nope", nil, "")
	requireErrorCode(t, rec, resp, http.StatusNotFound, CodeNotFound)

	rec, _ = env.do(t, http.MethodDelete, "/api/v1/eras", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
