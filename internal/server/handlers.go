package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/export"
	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
)

const (
	// MaxRangeDays caps the span of a range request, inclusive.
	MaxRangeDays = 31

	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
	rangeClock  = "12:00"
)

var errBadRequest = errors.New("bad request")

type handler struct {
	calc      *panchang.Calculator
	generator *chart.Generator
	festivals *festival.Store
	now       func() time.Time
}

func newHandler(deps Dependencies) *handler {
	h := &handler{
		calc:      deps.Calculator,
		generator: deps.Generator,
		festivals: deps.Festivals,
		now:       deps.Now,
	}
	if h.calc == nil {
		h.calc = panchang.NewCalculator()
	}
	if h.generator == nil {
		h.generator = chart.MustGenerator(chart.DefaultConfig(), nil)
	}
	if h.festivals == nil {
		h.festivals = festival.NewStore(nil)
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// istNow is the current wall clock on IST.
func (h *handler) istNow() time.Time {
	return h.now().In(astro.IST)
}

type errorResponse struct {
	Error string `json:"error"`
}

// chartRequest is the body of POST /chart.
type chartRequest struct {
	BirthDetails chart.BirthDetails `json:"birth_details"`
	System       string             `json:"system"`
}

// activeResponse answers whether now falls inside a window.
type activeResponse struct {
	Now    string `json:"now"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	zerolog.Ctx(r.Context()).Warn().
		Err(err).
		Int("status", status).
		Msg("request failed")
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// parseMoment combines optional date and time query values into an IST
// wall clock, filling missing parts from now.
func parseMoment(date, clock string, now time.Time) (time.Time, error) {
	if date == "" {
		date = now.Format(dateLayout)
	}
	if clock == "" {
		clock = now.Format(clockLayout)
	}
	t, err := time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, astro.IST)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q time %q: want YYYY-MM-DD and HH:MM", errBadRequest, date, clock)
	}
	return t, nil
}

func (h *handler) getPanchang(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := h.istNow()

	at, err := parseMoment(q.Get("date"), q.Get("time"), now)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	day := h.calc.Calculate(at)
	writeJSON(w, r, http.StatusOK, export.ExportPanchang(&day, h.festivals.Upcoming(at, 0), at))
}

func (h *handler) getPanchangRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	from, err := time.ParseInLocation(dateLayout, q.Get("from"), astro.IST)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: from %q", errBadRequest, q.Get("from")))
		return
	}
	to, err := time.ParseInLocation(dateLayout, q.Get("to"), astro.IST)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: to %q", errBadRequest, q.Get("to")))
		return
	}
	clock := q.Get("time")
	if clock == "" {
		clock = rangeClock
	}
	tod, err := time.Parse(clockLayout, clock)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: time %q", errBadRequest, clock))
		return
	}

	if to.Before(from) {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: to is before from", errBadRequest))
		return
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days > MaxRangeDays {
		writeError(w, r, http.StatusBadRequest,
			fmt.Errorf("%w: range of %d days exceeds %d", errBadRequest, days, MaxRangeDays))
		return
	}

	results := make([]panchang.Day, days)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < days; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d := from.AddDate(0, 0, i)
			at := time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), 0, 0, astro.IST)
			results[i] = h.calc.Calculate(at)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("range calculation aborted")
		return
	}

	writeJSON(w, r, http.StatusOK, results)
}

func (h *handler) listFestivals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := h.istNow()
	cal := h.festivals.Calendar()

	yearParam, monthParam := q.Get("year"), q.Get("month")
	if yearParam == "" && monthParam == "" {
		limit := 0
		if l := q.Get("limit"); l != "" {
			n, err := strconv.Atoi(l)
			if err != nil || n < 1 {
				writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: limit %q", errBadRequest, l))
				return
			}
			limit = n
		}
		writeJSON(w, r, http.StatusOK, nonNil(cal.Upcoming(now, limit)))
		return
	}

	year := now.Year()
	if yearParam != "" {
		y, err := strconv.Atoi(yearParam)
		if err != nil || y < 1 {
			writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: year %q", errBadRequest, yearParam))
			return
		}
		year = y
	}

	if monthParam == "" {
		writeJSON(w, r, http.StatusOK, nonNil(cal.ForYear(year, astro.IST)))
		return
	}
	m, err := strconv.Atoi(monthParam)
	if err != nil || m < 1 || m > 12 {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: month %q", errBadRequest, monthParam))
		return
	}
	writeJSON(w, r, http.StatusOK, nonNil(cal.ForMonth(year, time.Month(m), astro.IST)))
}

func nonNil(f []festival.Festival) []festival.Festival {
	if f == nil {
		return []festival.Festival{}
	}
	return f
}

// activeMuhurat reports whether now falls in start..end. Without bounds it
// lists the windows of today that are running.
func (h *handler) activeMuhurat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := h.istNow()

	start, end := q.Get("start"), q.Get("end")
	if start == "" && end == "" {
		day := h.calc.Calculate(now)
		active := day.ActiveWindows(now)
		if active == nil {
			active = []panchang.MuhuratWindow{}
		}
		writeJSON(w, r, http.StatusOK, active)
		return
	}

	ok, err := panchang.IsWithinMuhurat(start, end, now)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, r, http.StatusOK, activeResponse{
		Now:    now.Format(clockLayout),
		Start:  start,
		End:    end,
		Active: ok,
	})
}

func (h *handler) createChart(w http.ResponseWriter, r *http.Request) {
	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: decoding body: %v", errBadRequest, err))
		return
	}

	system, err := chart.ParseSystem(req.System)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	c, err := h.generator.Calculate(req.BirthDetails, system, h.istNow())
	switch {
	case errors.Is(err, chart.ErrInvalidBirthDetails):
		writeError(w, r, http.StatusBadRequest, err)
		return
	case errors.Is(err, chart.ErrUnsupportedPlanet):
		writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Str("system", system.String()).
		Str("ascendant", c.AscendantSign.String()).
		Msg("chart generated")

	writeJSON(w, r, http.StatusOK, export.ExportChart(c))
}
