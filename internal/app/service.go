package app

import (
	"context"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/ai"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI, Web)
// call. It decouples presentation from business logic. Implementations must
// contain no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// GetStock returns the stock table, optionally filtered to one location.
	GetStock(ctx context.Context, location string) (*StockResult, error)

	// GetCatalog returns the master product list derived from the stock table.
	GetCatalog(ctx context.Context) (*CatalogResult, error)

	// GetTransactions returns the ledger, newest first, capped at limit
	// entries. limit <= 0 means no cap.
	GetTransactions(ctx context.Context, limit int) (*TransactionsResult, error)

	// ExecuteTransfer validates and applies one stock movement.
	ExecuteTransfer(ctx context.Context, req core.TransferRequest) (*TransferResult, error)

	// MarkUnfit moves units from a holding location into the condemned pool.
	MarkUnfit(ctx context.Context, req CondemnRequest) (*TransferResult, error)

	// ExecuteDestruction permanently removes condemned units.
	ExecuteDestruction(ctx context.Context, req CondemnRequest) (*TransferResult, error)

	// RestoreFromCondemned returns condemned units to the central warehouse.
	RestoreFromCondemned(ctx context.Context, req CondemnRequest) (*TransferResult, error)

	// FinishRepair returns repaired units to the central warehouse.
	FinishRepair(ctx context.Context, req CondemnRequest) (*TransferResult, error)

	// GetForecast projects per-product need for the scope and horizon.
	GetForecast(ctx context.Context, scope core.ForecastScope, horizon core.Horizon) (*ForecastResult, error)

	// RegisterProduct creates a product with a full location record set.
	RegisterProduct(ctx context.Context, in core.ProductInput) (*ProductResult, error)

	// UpdateProduct rewrites a product's descriptive fields everywhere.
	UpdateProduct(ctx context.Context, productID string, in core.ProductInput) error

	// DeleteProduct removes a product's stock records. Ledger history stays.
	DeleteProduct(ctx context.Context, productID string) error

	// SetQuantity overwrites one location's quantity outside the workflows.
	SetQuantity(ctx context.Context, productID string, location core.Location, quantity int) error

	// SetUsageRate overwrites a product's per-shift usage rate.
	SetUsageRate(ctx context.Context, productID string, usagePerShift float64) error

	// ImportRows merges parsed workbook rows into the stock table.
	ImportRows(ctx context.Context, rows []core.ImportRow, target core.Location) (*ImportResult, error)

	// ExportStock returns the current stock table for workbook export.
	ExportStock(ctx context.Context) ([]core.StockRecord, error)

	// SyncPush mirrors the current snapshot to the configured sheet endpoint.
	SyncPush(ctx context.Context) error

	// SyncPull replaces local state with the endpoint's snapshot.
	SyncPull(ctx context.Context) (*SyncResult, error)

	// GetInsight asks the AI agent to assess the combined forecast.
	GetInsight(ctx context.Context, horizon core.Horizon) (*ai.Insight, error)

	// AuthenticatePIN checks the shared access PIN.
	AuthenticatePIN(ctx context.Context, pin string) error
}
