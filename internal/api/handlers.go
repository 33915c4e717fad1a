package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/calendar"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/config"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/database"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/daytable"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/logger"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/metrics"
)

// maxJDN bounds accepted day numbers to roughly ±2.7 billion years.
const maxJDN = 1_000_000_000_000

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	resolver *daytable.Resolver
	importer *daytable.Importer
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *metrics.Collector

	// now is replaced in tests.
	now func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, log *slog.Logger, m *metrics.Collector) *Handlers {
	return &Handlers{
		db:       db,
		resolver: daytable.NewResolver(db),
		importer: daytable.NewImporter(db, log, cfg.ImportLimitDays),
		cfg:      cfg,
		logger:   log,
		metrics:  m,
		now:      time.Now,
	}
}

// =============================================================================
// Response Types
// =============================================================================

// DayResponse describes one day in both calendars.
type DayResponse struct {
	JDN          int64                  `json:"jdn"`
	Gregorian    calendar.GregorianDate `json:"gregorian"`
	GregorianISO string                 `json:"gregorian_iso"`
	Ethiopic     calendar.EthiopicDate  `json:"ethiopic"`
	EthiopicISO  string                 `json:"ethiopic_iso"`
	Era          string                 `json:"era"`
	EraName      string                 `json:"era_name"`
	Weekday      string                 `json:"weekday"`
	Source       string                 `json:"source,omitempty"`
}

func newDayResponse(d calendar.Day, src daytable.Source) DayResponse {
	return DayResponse{
		JDN:          int64(d.JDN),
		Gregorian:    d.Gregorian,
		GregorianISO: d.Gregorian.String(),
		Ethiopic:     d.Ethiopic,
		EthiopicISO:  d.Ethiopic.String(),
		Era:          d.Era.String(),
		EraName:      d.Era.Name(),
		Weekday:      d.Weekday.String(),
		Source:       string(src),
	}
}

// RangeResponse is returned by the range conversion endpoint.
type RangeResponse struct {
	Start  string        `json:"start"`
	End    string        `json:"end"`
	Count  int           `json:"count"`
	Source string        `json:"source"`
	Days   []DayResponse `json:"days"`
}

// ValidationResponse reports whether a date exists.
type ValidationResponse struct {
	Calendar string `json:"calendar"`
	Input    string `json:"input"`
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason,omitempty"`
}

// LeapResponse reports whether a year is a leap year.
type LeapResponse struct {
	Calendar   string `json:"calendar"`
	Year       int    `json:"year"`
	Leap       bool   `json:"leap"`
	DaysInYear int    `json:"days_in_year"`
}

// JDNResponse maps a date to its Julian Day Number.
type JDNResponse struct {
	Calendar string `json:"calendar"`
	Date     string `json:"date"`
	Era      string `json:"era,omitempty"`
	JDN      int64  `json:"jdn"`
}

// EraInfo describes one epoch constant.
type EraInfo struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Offset int64  `json:"offset"`
}

// ImportRequest is the body of the admin import endpoint.
type ImportRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StatsResponse summarises the day table.
type StatsResponse struct {
	database.DayStats
	RecentImports []database.ImportRun `json:"recent_imports"`
}

// =============================================================================
// Health
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		logger.Warn(r.Context(), "health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeUnhealthy)
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// =============================================================================
// Conversion
// =============================================================================

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	today := calendar.GregorianDateOf(h.now().UTC())

	day, src, err := h.resolver.Resolve(r.Context(), today)
	if err != nil {
		logger.Error(r.Context(), "failed to resolve today", err)
		WriteInternalError(w, "Failed to resolve today's date")
		return
	}

	h.metrics.RecordConversion(metrics.ToEthiopic)
	WriteSuccess(w, newDayResponse(day, src))
}

// ConvertEthiopic handles GET /api/v1/convert/ethiopic/{date}?era=AA|AM
func (h *Handlers) ConvertEthiopic(w http.ResponseWriter, r *http.Request) {
	date, ok := h.ethiopicParam(w, r)
	if !ok {
		return
	}
	era, ok := h.eraParam(w, r, date)
	if !ok {
		return
	}

	day, src, err := h.resolver.ResolveEthiopic(r.Context(), date, era)
	if err != nil {
		logger.Error(r.Context(), "failed to resolve date", err,
			slog.String("date", date.String()),
			slog.String("era", era.String()),
		)
		WriteInternalError(w, "Failed to convert date")
		return
	}

	h.metrics.RecordConversion(metrics.ToGregorian)
	WriteSuccess(w, newDayResponse(day, src))
}

// ConvertGregorian handles GET /api/v1/convert/gregorian/{date}
func (h *Handlers) ConvertGregorian(w http.ResponseWriter, r *http.Request) {
	date, ok := h.gregorianParam(w, r)
	if !ok {
		return
	}

	day, src, err := h.resolver.Resolve(r.Context(), date)
	if err != nil {
		logger.Error(r.Context(), "failed to resolve date", err, slog.String("date", date.String()))
		WriteInternalError(w, "Failed to convert date")
		return
	}

	h.metrics.RecordConversion(metrics.ToEthiopic)
	WriteSuccess(w, newDayResponse(day, src))
}

// ConvertRange handles GET /api/v1/convert/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) ConvertRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseGregorianDate(startStr)
	if err != nil {
		h.invalidDate(w, calendar.Gregorian, "start: "+err.Error())
		return
	}
	end, err := calendar.ParseGregorianDate(endStr)
	if err != nil {
		h.invalidDate(w, calendar.Gregorian, "end: "+err.Error())
		return
	}

	days, src, err := h.resolver.ResolveRange(r.Context(), start, end, h.cfg.RangeLimitDays)
	switch {
	case errors.Is(err, daytable.ErrReversedRange), errors.Is(err, daytable.ErrRangeTooLarge):
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidRange)
		return
	case err != nil:
		logger.Error(r.Context(), "failed to resolve range", err,
			slog.String("start", startStr),
			slog.String("end", endStr),
		)
		WriteInternalError(w, "Failed to convert range")
		return
	}

	resp := RangeResponse{
		Start:  start.String(),
		End:    end.String(),
		Count:  len(days),
		Source: string(src),
		Days:   make([]DayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, newDayResponse(d, ""))
	}

	h.metrics.RecordRangeSource(string(src))
	WriteSuccess(w, resp)
}

// =============================================================================
// Validation & Leap Years
// =============================================================================

// ValidateEthiopic handles GET /api/v1/validate/ethiopic/{date}
func (h *Handlers) ValidateEthiopic(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "date")
	_, err := calendar.ParseEthiopicDate(input)
	WriteSuccess(w, newValidationResponse(calendar.Ethiopic, input, err))
}

// ValidateGregorian handles GET /api/v1/validate/gregorian/{date}
func (h *Handlers) ValidateGregorian(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "date")
	_, err := calendar.ParseGregorianDate(input)
	WriteSuccess(w, newValidationResponse(calendar.Gregorian, input, err))
}

func newValidationResponse(kind calendar.Kind, input string, err error) ValidationResponse {
	resp := ValidationResponse{Calendar: string(kind), Input: input, Valid: err == nil}
	if err != nil {
		resp.Reason = err.Error()
	}
	return resp
}

// GetGregorianLeap handles GET /api/v1/leap/gregorian/{year}
func (h *Handlers) GetGregorianLeap(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	leap := calendar.IsGregorianLeap(year)
	WriteSuccess(w, LeapResponse{Calendar: string(calendar.Gregorian), Year: year, Leap: leap, DaysInYear: daysInYear(leap)})
}

// GetEthiopicLeap handles GET /api/v1/leap/ethiopic/{year}
func (h *Handlers) GetEthiopicLeap(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	leap := calendar.IsEthiopicLeap(year)
	WriteSuccess(w, LeapResponse{Calendar: string(calendar.Ethiopic), Year: year, Leap: leap, DaysInYear: daysInYear(leap)})
}

func daysInYear(leap bool) int {
	if leap {
		return 366
	}
	return 365
}

// =============================================================================
// Julian Day Numbers
// =============================================================================

// GetEthiopicJDN handles GET /api/v1/jdn/ethiopic/{date}?era=AA|AM
func (h *Handlers) GetEthiopicJDN(w http.ResponseWriter, r *http.Request) {
	date, ok := h.ethiopicParam(w, r)
	if !ok {
		return
	}
	era, ok := h.eraParam(w, r, date)
	if !ok {
		return
	}

	h.metrics.RecordConversion(metrics.ToJDN)
	WriteSuccess(w, JDNResponse{
		Calendar: string(calendar.Ethiopic),
		Date:     date.String(),
		Era:      era.String(),
		JDN:      int64(date.JDN(era)),
	})
}

// GetGregorianJDN handles GET /api/v1/jdn/gregorian/{date}
func (h *Handlers) GetGregorianJDN(w http.ResponseWriter, r *http.Request) {
	date, ok := h.gregorianParam(w, r)
	if !ok {
		return
	}

	h.metrics.RecordConversion(metrics.ToJDN)
	WriteSuccess(w, JDNResponse{
		Calendar: string(calendar.Gregorian),
		Date:     date.String(),
		JDN:      int64(date.JDN()),
	})
}

// GetDayByJDN handles GET /api/v1/jdn/{jdn}?era=AA|AM
func (h *Handlers) GetDayByJDN(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "jdn")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n > maxJDN || n < -maxJDN {
		h.metrics.RecordInvalidInput("jdn")
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JDN %q: must be an integer within ±%d", raw, int64(maxJDN)), CodeInvalidJDN)
		return
	}
	jdn := calendar.JDN(n)

	era := calendar.GuessEra(jdn)
	if s := r.URL.Query().Get("era"); s != "" {
		if era, err = calendar.ParseEra(s); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidEra)
			return
		}
	}

	// Table rows carry the guessed era; other eras are computed.
	day, src := calendar.DayInEra(jdn, era), daytable.SourceComputed
	if era == calendar.GuessEra(jdn) {
		if day, src, err = h.resolver.ResolveJDN(r.Context(), jdn); err != nil {
			logger.Error(r.Context(), "failed to resolve JDN", err, slog.Int64("jdn", n))
			WriteInternalError(w, "Failed to convert JDN")
			return
		}
	}

	h.metrics.RecordConversion(metrics.FromJDN)
	WriteSuccess(w, newDayResponse(day, src))
}

// ListEras handles GET /api/v1/eras
func (h *Handlers) ListEras(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]any{
		"eras": []EraInfo{
			{Name: calendar.AmeteAlem.Name(), Label: calendar.AmeteAlem.String(), Offset: int64(calendar.AmeteAlem)},
			{Name: calendar.AmeteMihret.Name(), Label: calendar.AmeteMihret.String(), Offset: int64(calendar.AmeteMihret)},
		},
		"gregorian_epoch": int64(calendar.GregorianEpoch),
	})
}

// =============================================================================
// Day Table
// =============================================================================

// GetDayStats handles GET /api/v1/days/stats
func (h *Handlers) GetDayStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.db.GetDayStats(ctx)
	if err != nil {
		logger.Error(ctx, "failed to get day stats", err)
		WriteInternalError(w, "Failed to retrieve statistics")
		return
	}

	runs, err := h.db.GetRecentImportRuns(ctx, 5)
	if err != nil {
		logger.Error(ctx, "failed to get import runs", err)
		WriteInternalError(w, "Failed to retrieve statistics")
		return
	}

	WriteSuccess(w, StatsResponse{DayStats: *stats, RecentImports: runs})
}

// ImportDays handles POST /api/v1/admin/days/import
func (h *Handlers) ImportDays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Start == "" || req.End == "" {
		WriteBadRequest(w, "Both start and end are required")
		return
	}

	start, err := calendar.ParseGregorianDate(req.Start)
	if err != nil {
		h.invalidDate(w, calendar.Gregorian, "start: "+err.Error())
		return
	}
	end, err := calendar.ParseGregorianDate(req.End)
	if err != nil {
		h.invalidDate(w, calendar.Gregorian, "end: "+err.Error())
		return
	}

	began := time.Now()
	run, err := h.importer.Import(ctx, start, end, "api")
	switch {
	case errors.Is(err, daytable.ErrReversedRange), errors.Is(err, daytable.ErrRangeTooLarge):
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidRange)
		return
	case err != nil:
		logger.Error(ctx, "day import failed", err,
			slog.String("start", req.Start),
			slog.String("end", req.End),
		)
		WriteInternalError(w, "Import failed")
		return
	}

	h.metrics.RecordImport(run.DaysWritten, time.Since(began))
	logger.Info(ctx, "days imported",
		slog.Int("days_written", run.DaysWritten),
		slog.Int64("run_id", run.ID),
	)

	WriteJSON(w, http.StatusCreated, Response{Success: true, Data: run})
}

// PurgeResponse reports how many imported days were removed.
type PurgeResponse struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Removed int64  `json:"removed"`
}

// PurgeDays handles DELETE /api/v1/admin/days
func (h *Handlers) PurgeDays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Start == "" || req.End == "" {
		WriteBadRequest(w, "Both start and end are required")
		return
	}

	start, err := calendar.ParseGregorianDate(req.Start)
	if err != nil {
		h.invalidDate(w, calendar.Gregorian, "start: "+err.Error())
		return
	}
	end, err := calendar.ParseGregorianDate(req.End)
	if err != nil {
		h.invalidDate(w, calendar.Gregorian, "end: "+err.Error())
		return
	}

	removed, err := h.importer.Purge(ctx, start, end)
	switch {
	case errors.Is(err, daytable.ErrReversedRange):
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidRange)
		return
	case err != nil:
		logger.Error(ctx, "day purge failed", err,
			slog.String("start", req.Start),
			slog.String("end", req.End),
		)
		WriteInternalError(w, "Purge failed")
		return
	}

	logger.Info(ctx, "days purged", slog.Int64("removed", removed))
	WriteSuccess(w, PurgeResponse{Start: start.String(), End: end.String(), Removed: removed})
}

// =============================================================================
// Helpers
// =============================================================================

func (h *Handlers) ethiopicParam(w http.ResponseWriter, r *http.Request) (calendar.EthiopicDate, bool) {
	date, err := calendar.ParseEthiopicDate(chi.URLParam(r, "date"))
	if err != nil {
		h.invalidDate(w, calendar.Ethiopic, err.Error())
		return calendar.EthiopicDate{}, false
	}
	return date, true
}

func (h *Handlers) gregorianParam(w http.ResponseWriter, r *http.Request) (calendar.GregorianDate, bool) {
	date, err := calendar.ParseGregorianDate(chi.URLParam(r, "date"))
	if err != nil {
		h.invalidDate(w, calendar.Gregorian, err.Error())
		return calendar.GregorianDate{}, false
	}
	return date, true
}

// eraParam reads ?era=, falling back to the era the date resolves to.
func (h *Handlers) eraParam(w http.ResponseWriter, r *http.Request, date calendar.EthiopicDate) (calendar.Era, bool) {
	s := r.URL.Query().Get("era")
	if s == "" {
		return calendar.ResolveEra(date.Year, date.Month, date.Day), true
	}
	era, err := calendar.ParseEra(s)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidEra)
		return 0, false
	}
	return era, true
}

func (h *Handlers) invalidDate(w http.ResponseWriter, kind calendar.Kind, message string) {
	h.metrics.RecordInvalidInput(string(kind))
	WriteInvalidDate(w, message)
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year > 10_000_000 || year < -10_000_000 {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid year %q", raw), CodeInvalidYear)
		return 0, false
	}
	return year, true
}
