package web

import (
	"net/http"
	"time"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/importer"
)

// createProduct handles POST /api/products.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in core.ProductInput
	if !decodeJSON(w, r, &in) {
		return
	}

	res, err := h.svc.RegisterProduct(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, res)
}

// updateProduct handles PUT /api/products/{id}.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var in core.ProductInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if err := h.svc.UpdateProduct(r.Context(), productID(r), in); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteProduct handles DELETE /api/products/{id}.
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), productID(r)); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// setQuantity handles PUT /api/products/{id}/quantity.
func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location core.Location `json:"location"`
		Quantity int           `json:"quantity"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.SetQuantity(r.Context(), productID(r), req.Location, req.Quantity); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// setUsageRate handles PUT /api/products/{id}/usage.
func (h *Handler) setUsageRate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UsagePerShift float64 `json:"usagePerShift"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.SetUsageRate(r.Context(), productID(r), req.UsagePerShift); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// maxWorkbookSize caps uploaded workbooks at 10 MB.
const maxWorkbookSize = 10 << 20

// importWorkbook handles POST /api/import?location=. The body is the raw
// XLSX file; the target location defaults to central.
func (h *Handler) importWorkbook(w http.ResponseWriter, r *http.Request) {
	target := core.Location(r.URL.Query().Get("location"))
	if target == "" {
		target = core.LocationCentral
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxWorkbookSize)
	rows, err := importer.ParseWorkbook(r.Body)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_WORKBOOK", http.StatusBadRequest)
		return
	}

	res, err := h.svc.ImportRows(r.Context(), rows, target)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, res)
}

// exportWorkbook handles GET /api/export — streams the stock table as XLSX.
func (h *Handler) exportWorkbook(w http.ResponseWriter, r *http.Request) {
	stock, err := h.svc.ExportStock(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	filename := "stock-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := importer.WriteWorkbook(w, stock); err != nil {
		// Headers are out already; the truncated body is all we can signal.
		return
	}
}

// syncPush handles POST /api/sync/push.
func (h *Handler) syncPush(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SyncPush(r.Context()); err != nil {
		writeError(w, r, err.Error(), "SYNC_FAILED", http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]string{"status": "pushed"})
}

// syncPull handles POST /api/sync/pull.
func (h *Handler) syncPull(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SyncPull(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "SYNC_FAILED", http.StatusBadGateway)
		return
	}
	writeJSON(w, res)
}
