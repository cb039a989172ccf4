package web

import (
	"net/http"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

// getForecast handles GET /api/forecast?scope=&horizon=. The scope defaults
// to combined and the horizon to one week.
func (h *Handler) getForecast(w http.ResponseWriter, r *http.Request) {
	scope := core.ForecastScope(r.URL.Query().Get("scope"))
	if scope == "" {
		scope = core.ScopeCombined
	}
	horizon := core.Horizon(r.URL.Query().Get("horizon"))
	if horizon == "" {
		horizon = core.HorizonOneWeek
	}

	res, err := h.svc.GetForecast(r.Context(), scope, horizon)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// getInsight handles GET /api/insight?horizon=.
func (h *Handler) getInsight(w http.ResponseWriter, r *http.Request) {
	horizon := core.Horizon(r.URL.Query().Get("horizon"))
	if horizon == "" {
		horizon = core.HorizonOneWeek
	}

	insight, err := h.svc.GetInsight(r.Context(), horizon)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, insight)
}
