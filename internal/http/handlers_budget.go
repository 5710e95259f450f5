package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"ledgerchat/internal/core"
)

var errInvalidPeriod = errors.New("query parameters 'year' and 'month' must both be valid integers")

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Budget())
}

func (s *Server) handlePutBudget(w http.ResponseWriter, r *http.Request) {
	var b core.Budget
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := b.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.store.ReplaceBudget(b)
	respondJSON(w, http.StatusOK, s.store.Budget())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	items, budget := s.store.Snapshot()

	year, month, ok, err := parseYearMonth(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if ok {
		respondJSON(w, http.StatusOK, core.SummarizeMonth(items, budget, year, month))
		return
	}
	respondJSON(w, http.StatusOK, core.Summarize(items, budget))
}

// parseYearMonth reads optional year and month query parameters. Both must
// be present to select a monthly summary.
func parseYearMonth(r *http.Request) (int, time.Month, bool, error) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	if yearStr == "" && monthStr == "" {
		return 0, 0, false, nil
	}
	if yearStr == "" || monthStr == "" {
		return 0, 0, false, errInvalidPeriod
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1970 || year > 9999 {
		return 0, 0, false, errInvalidPeriod
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false, errInvalidPeriod
	}
	return year, time.Month(month), true, nil
}
