package web

import (
	"net/http"
	"strconv"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/app"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

// getStock handles GET /api/stock?location=.
func (h *Handler) getStock(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetStock(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		writeError(w, r, err.Error(), "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

// getCatalog handles GET /api/catalog.
func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetCatalog(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// getTransactions handles GET /api/transactions?limit=.
func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(w, r, "limit must be a non-negative integer", "INVALID_REQUEST", http.StatusBadRequest)
			return
		}
		limit = v
	}

	res, err := h.svc.GetTransactions(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// executeTransfer handles POST /api/transfers.
func (h *Handler) executeTransfer(w http.ResponseWriter, r *http.Request) {
	var req core.TransferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.ExecuteTransfer(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// markUnfit handles POST /api/condemned/mark.
func (h *Handler) markUnfit(w http.ResponseWriter, r *http.Request) {
	var req app.CondemnRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.MarkUnfit(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// executeDestruction handles POST /api/condemned/destroy.
func (h *Handler) executeDestruction(w http.ResponseWriter, r *http.Request) {
	var req app.CondemnRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.ExecuteDestruction(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// restoreFromCondemned handles POST /api/condemned/restore.
func (h *Handler) restoreFromCondemned(w http.ResponseWriter, r *http.Request) {
	var req app.CondemnRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.RestoreFromCondemned(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// finishRepair handles POST /api/repair/complete.
func (h *Handler) finishRepair(w http.ResponseWriter, r *http.Request) {
	var req app.CondemnRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.FinishRepair(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}
