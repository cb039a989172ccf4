package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/app"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{
		svc:       svc,
		jwtSecret: jwtSecret,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Health (public) ───────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Auth (public) ─────────────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(1 << 12)) // the login body is a PIN, keep it tiny
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
	})

	// ── Protected API ─────────────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		// Workbook upload: the body limit is managed inside the handler.
		r.Post("/api/import", h.importWorkbook)
		r.Get("/api/export", h.exportWorkbook)

		r.Group(func(r chi.Router) {
			r.Use(RequestBodyLimit(1 << 20)) // 1 MB

			// Stock and ledger
			r.Get("/api/stock", h.getStock)
			r.Get("/api/catalog", h.getCatalog)
			r.Get("/api/transactions", h.getTransactions)

			// Movements
			r.Post("/api/transfers", h.executeTransfer)
			r.Post("/api/condemned/mark", h.markUnfit)
			r.Post("/api/condemned/destroy", h.executeDestruction)
			r.Post("/api/condemned/restore", h.restoreFromCondemned)
			r.Post("/api/repair/complete", h.finishRepair)

			// Forecast and AI
			r.Get("/api/forecast", h.getForecast)
			r.Get("/api/insight", h.getInsight)

			// Product registry
			r.Post("/api/products", h.createProduct)
			r.Put("/api/products/{id}", h.updateProduct)
			r.Delete("/api/products/{id}", h.deleteProduct)
			r.Put("/api/products/{id}/quantity", h.setQuantity)
			r.Put("/api/products/{id}/usage", h.setUsageRate)

			// Sheet sync
			r.Post("/api/sync/push", h.syncPush)
			r.Post("/api/sync/pull", h.syncPull)
		})
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// productID extracts the {id} URL parameter.
func productID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// decodeJSON decodes the request body into v. On failure it writes an error
// response and returns false: HTTP 413 when the body exceeds the limit set by
// RequestBodyLimit, HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
