package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
)

// fixedNow falls inside Abhijit Muhurat on 2024-01-25.
var fixedNow = time.Date(2024, time.January, 25, 11, 45, 0, 0, astro.IST)

func setupAPI(t *testing.T, deps Dependencies) *WebAPI {
	t.Helper()
	if deps.Now == nil {
		deps.Now = func() time.Time { return fixedNow }
	}
	return NewWebAPI(zerolog.New(zerolog.NewTestWriter(t)), Config{Dependencies: deps})
}

func do(t *testing.T, api *WebAPI, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

type panchangResponse struct {
	GeneratedAt   time.Time                `json:"generated_at"`
	Day           panchang.Day             `json:"panchang"`
	ActiveWindows []panchang.MuhuratWindow `json:"active_windows"`
	Festivals     []festival.Festival      `json:"upcoming_festivals"`
}

func TestHealth(t *testing.T) {
	rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetPanchang(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		wantWeekday   string
		wantTithi     int
		wantNakshatra string
		wantActive    []string
		wantFestivals []string
	}{
		{
			name:          "defaults to now",
			target:        "/api/v1/panchang",
			wantWeekday:   "Thursday",
			wantTithi:     15,
			wantNakshatra: "Pushya",
			wantActive:    []string{panchang.WindowAbhijit},
			wantFestivals: []string{"Makar Sankranti"},
		},
		{
			name:          "explicit date and time",
			target:        "/api/v1/panchang?date=2024-03-05&time=06:00",
			wantWeekday:   "Tuesday",
			wantTithi:     24,
			wantActive:    []string{},
			wantFestivals: []string{"Maha Shivaratri", "Holi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			resp := decode[panchangResponse](t, rec)
			assert.Equal(t, tt.wantWeekday, resp.Day.Weekday)
			assert.Equal(t, tt.wantTithi, resp.Day.Tithi.Number)
			if tt.wantNakshatra != "" {
				assert.Equal(t, tt.wantNakshatra, resp.Day.Nakshatra.Name)
			}

			active := []string{}
			for _, w := range resp.ActiveWindows {
				active = append(active, w.Name)
			}
			assert.Equal(t, tt.wantActive, active)

			var fests []string
			for _, f := range resp.Festivals {
				fests = append(fests, f.Name)
			}
			assert.Equal(t, tt.wantFestivals, fests)
		})
	}
}

func TestGetPanchang_BadRequest(t *testing.T) {
	for _, target := range []string{
		"/api/v1/panchang?date=25-01-2024",
		"/api/v1/panchang?time=25:00",
		"/api/v1/panchang?date=2024-02-30",
	} {
		t.Run(target, func(t *testing.T) {
			rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet, target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decode[errorResponse](t, rec)
			assert.Contains(t, resp.Error, "bad request")
		})
	}
}

func TestGetPanchangRange(t *testing.T) {
	api := setupAPI(t, Dependencies{})
	rec := do(t, api, http.MethodGet, "/api/v1/panchang/range?from=2024-01-01&to=2024-01-31", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	days := decode[[]panchang.Day](t, rec)
	require.Len(t, days, 31)

	calc := panchang.NewCalculator()
	for i, d := range days {
		want := time.Date(2024, time.January, 1+i, 12, 0, 0, 0, astro.IST)
		assert.True(t, d.Date.Equal(want), "day %d date = %v, want %v", i, d.Date, want)
		assert.Equal(t, calc.Calculate(want).Tithi, d.Tithi, "day %d", i)
	}
}

func TestGetPanchangRange_Time(t *testing.T) {
	rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet,
		"/api/v1/panchang/range?from=2024-03-05&to=2024-03-06&time=06:00", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	days := decode[[]panchang.Day](t, rec)
	require.Len(t, days, 2)
	assert.Equal(t, 24, days[0].Tithi.Number)
	assert.Equal(t, 6, days[1].Date.Hour())
}

func TestGetPanchangRange_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{"missing from", "to=2024-01-02", "from"},
		{"bad to", "from=2024-01-01&to=tomorrow", "to"},
		{"reversed", "from=2024-01-10&to=2024-01-01", "before"},
		{"too long", "from=2024-01-01&to=2024-02-01", "exceeds 31"},
		{"bad time", "from=2024-01-01&to=2024-01-02&time=noon", "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet, "/api/v1/panchang/range?"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[errorResponse](t, rec).Error, tt.errMsg)
		})
	}
}

func TestListFestivals(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCount int
		wantFirst string
	}{
		{"upcoming this month", "", 1, "Makar Sankranti"},
		{"whole year", "year=2025", 17, "Makar Sankranti"},
		{"one month", "year=2024&month=11", 3, "Karwa Chauth"},
		{"month of the current year", "month=10", 2, "Navaratri"},
		{"empty month", "month=6", 0, ""},
		{"limit", "limit=1", 1, "Makar Sankranti"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet, "/api/v1/festivals?"+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.NotEqual(t, "null\n", rec.Body.String())

			fests := decode[[]festival.Festival](t, rec)
			require.Len(t, fests, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, fests[0].Name)
			}
		})
	}
}

func TestListFestivals_CustomStore(t *testing.T) {
	store := festival.NewStore(&festival.Calendar{Rules: []festival.Rule{
		{Name: "Test Day", Month: 1, Day: 30, Type: festival.Minor, Duration: 1},
	}})

	rec := do(t, setupAPI(t, Dependencies{Festivals: store}), http.MethodGet, "/api/v1/festivals", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	fests := decode[[]festival.Festival](t, rec)
	require.Len(t, fests, 1)
	assert.Equal(t, "Test Day", fests[0].Name)
	assert.Equal(t, festival.Minor, fests[0].Type)
}

func TestListFestivals_BadRequest(t *testing.T) {
	for _, query := range []string{"year=abc", "month=13", "month=0", "limit=-1", "limit=x"} {
		t.Run(query, func(t *testing.T) {
			rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet, "/api/v1/festivals?"+query, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestActiveMuhurat(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantActive bool
	}{
		{"inside", "start=11:00&end=12:00", true},
		{"inclusive end", "start=11:00&end=11:45", true},
		{"outside", "start=13:00&end=14:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet, "/api/v1/muhurat/active?"+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[activeResponse](t, rec)
			assert.Equal(t, tt.wantActive, resp.Active)
			assert.Equal(t, "11:45", resp.Now)
		})
	}
}

func TestActiveMuhurat_TodaysWindows(t *testing.T) {
	at := func(h, m int) func() time.Time {
		return func() time.Time { return time.Date(2024, time.January, 25, h, m, 0, 0, astro.IST) }
	}

	tests := []struct {
		name string
		now  func() time.Time
		want []string
	}{
		{"abhijit", at(11, 45), []string{panchang.WindowAbhijit}},
		{"rahu kaal", at(14, 0), []string{panchang.WindowRahuKaal}},
		{"evening", at(20, 0), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, setupAPI(t, Dependencies{Now: tt.now}), http.MethodGet, "/api/v1/muhurat/active", nil)
			require.Equal(t, http.StatusOK, rec.Code)

			windows := decode[[]panchang.MuhuratWindow](t, rec)
			names := []string{}
			for _, w := range windows {
				names = append(names, w.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestActiveMuhurat_BadRequest(t *testing.T) {
	rec := do(t, setupAPI(t, Dependencies{}), http.MethodGet, "/api/v1/muhurat/active?start=11:00&end=25:00", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[errorResponse](t, rec).Error, "invalid clock time")
}

func chartBody(t *testing.T, details chart.BirthDetails, system string) []byte {
	t.Helper()
	b, err := json.Marshal(chartRequest{BirthDetails: details, System: system})
	require.NoError(t, err)
	return b
}

var delhiBirth = chart.BirthDetails{
	Date:      "1990-06-15",
	Time:      "08:30",
	Latitude:  "28.6139",
	Longitude: "77.2090",
	Timezone:  "Asia/Kolkata",
}

func TestCreateChart(t *testing.T) {
	tests := []struct {
		system    string
		wantLabel string
		wantMoon  string
	}{
		{"vedic", "Dasha", "Aquarius"},
		{"", "Dasha", "Aquarius"},
		{"Western", "Planetary Period", "Pisces"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("system %q", tt.system), func(t *testing.T) {
			rec := do(t, setupAPI(t, Dependencies{}), http.MethodPost, "/api/v1/chart", chartBody(t, delhiBirth, tt.system))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			resp := decode[map[string]any](t, rec)
			assert.Equal(t, tt.wantLabel, resp["period_label"])
			assert.Equal(t, tt.wantMoon, resp["moon_sign"])
			assert.Equal(t, "Sagittarius", resp["ascendant_sign"])
			assert.Len(t, resp["planets"], 2)
		})
	}
}

// brokenEphemeris claims every planet but can only compute the Sun.
type brokenEphemeris struct{}

func (brokenEphemeris) Name() string { return "broken" }

func (brokenEphemeris) Available(chart.Planet) bool { return true }

func (brokenEphemeris) Longitude(p chart.Planet, jd float64) (float64, error) {
	if p == chart.Sun {
		return 10, nil
	}
	return 0, fmt.Errorf("%w: %s", chart.ErrUnsupportedPlanet, p)
}

func TestCreateChart_Errors(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.Planets = []chart.Planet{chart.Sun, chart.Mars}
	broken, err := chart.NewGenerator(cfg, brokenEphemeris{})
	require.NoError(t, err)

	badLat := delhiBirth
	badLat.Latitude = "91"

	tests := []struct {
		name       string
		deps       Dependencies
		body       []byte
		wantStatus int
		wantErr    string
	}{
		{
			name:       "malformed json",
			body:       []byte(`{"birth_details":`),
			wantStatus: http.StatusBadRequest,
			wantErr:    "decoding body",
		},
		{
			name:       "unknown system",
			body:       chartBody(t, delhiBirth, "sidereal"),
			wantStatus: http.StatusBadRequest,
			wantErr:    "unknown",
		},
		{
			name:       "invalid birth details",
			body:       chartBody(t, badLat, "vedic"),
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid birth details",
		},
		{
			name:       "unsupported planet",
			deps:       Dependencies{Generator: broken},
			body:       chartBody(t, delhiBirth, "vedic"),
			wantStatus: http.StatusUnprocessableEntity,
			wantErr:    "Mars",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, setupAPI(t, tt.deps), http.MethodPost, "/api/v1/chart", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, decode[errorResponse](t, rec).Error, tt.wantErr)
		})
	}
}

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	api := NewWebAPI(logger, Config{Dependencies: Dependencies{Now: func() time.Time { return fixedNow }}})

	rec := do(t, api, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	line := buf.String()
	assert.Contains(t, line, `"path":"/healthz"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, `"request_id":"`)
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	api := NewWebAPI(zerolog.Nop(), Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- api.Start(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestStart_ListenError(t *testing.T) {
	api := NewWebAPI(zerolog.Nop(), Config{Addr: "bad-address"})

	err := api.Start(context.Background())
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "Server closed"))
}
