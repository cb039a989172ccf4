package app

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/ai"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/cloudsync"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

// SnapshotStore persists the full application state.
type SnapshotStore interface {
	Replace(ctx context.Context, st core.State) error
	Load(ctx context.Context) (core.State, error)
}

// appService holds the authoritative state in memory and serializes every
// mutation through one mutex. Each successful mutation is written through to
// the snapshot store.
type appService struct {
	mu     sync.Mutex
	state  core.State
	engine *core.Engine
	store  SnapshotStore
	sync   *cloudsync.Client
	agent  *ai.Agent
	pin    string
}

// NewAppService constructs an appService that satisfies ApplicationService,
// seeded with the given state. agent may be nil when no API key is set.
func NewAppService(initial core.State, engine *core.Engine, store SnapshotStore,
	syncClient *cloudsync.Client, agent *ai.Agent, pin string) ApplicationService {
	return &appService{
		state:  initial,
		engine: engine,
		store:  store,
		sync:   syncClient,
		agent:  agent,
		pin:    pin,
	}
}

// commit installs next as the authoritative state and writes it through.
// The caller must hold s.mu. The in-memory state is kept even when the
// write-through fails so the ledger and the quantities stay consistent.
func (s *appService) commit(ctx context.Context, next core.State) error {
	s.state = next
	if err := s.store.Replace(ctx, next); err != nil {
		return fmt.Errorf("change applied but snapshot persistence failed: %w", err)
	}
	return nil
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *appService) GetStock(ctx context.Context, location string) (*StockResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if location == "" {
		records := make([]core.StockRecord, len(s.state.Stock))
		copy(records, s.state.Stock)
		return &StockResult{Records: records}, nil
	}
	loc := core.Location(location)
	if !loc.Tracked() {
		return nil, fmt.Errorf("unknown location %q", location)
	}
	var records []core.StockRecord
	for _, rec := range s.state.Stock {
		if rec.Location == loc {
			records = append(records, rec)
		}
	}
	return &StockResult{Records: records}, nil
}

func (s *appService) GetCatalog(ctx context.Context) (*CatalogResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &CatalogResult{Products: core.DeriveCatalog(s.state.Stock)}, nil
}

func (s *appService) GetTransactions(ctx context.Context, limit int) (*TransactionsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.state.Ledger)
	n := total
	if limit > 0 && limit < n {
		n = limit
	}
	entries := make([]core.TransactionRecord, n)
	copy(entries, s.state.Ledger[:n])
	return &TransactionsResult{Entries: entries, Total: total}, nil
}

func (s *appService) GetForecast(ctx context.Context, scope core.ForecastScope, horizon core.Horizon) (*ForecastResult, error) {
	days, err := horizon.Days()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	catalog := core.DeriveCatalog(s.state.Stock)
	rows, err := core.ComputeForecast(catalog, s.state.Stock, scope, days)
	if err != nil {
		return nil, err
	}
	return &ForecastResult{Scope: scope, HorizonDays: days, Rows: rows}, nil
}

func (s *appService) ExportStock(ctx context.Context) ([]core.StockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]core.StockRecord, len(s.state.Stock))
	copy(records, s.state.Stock)
	return records, nil
}

// ── Stock movements ───────────────────────────────────────────────────────────

func (s *appService) ExecuteTransfer(ctx context.Context, req core.TransferRequest) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.ExecuteTransfer(s.state, req)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &TransferResult{Entry: next.Ledger[0]}, nil
}

func (s *appService) MarkUnfit(ctx context.Context, req CondemnRequest) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.MarkUnfit(s.state, req.ProductID, req.Source, req.Amount, req.Note, req.Shift)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &TransferResult{Entry: next.Ledger[0]}, nil
}

func (s *appService) ExecuteDestruction(ctx context.Context, req CondemnRequest) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.ExecuteDestruction(s.state, req.ProductID, req.Amount, req.Note, req.Shift)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &TransferResult{Entry: next.Ledger[0]}, nil
}

func (s *appService) RestoreFromCondemned(ctx context.Context, req CondemnRequest) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.RestoreFromCondemned(s.state, req.ProductID, req.Amount, req.Note, req.Shift)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &TransferResult{Entry: next.Ledger[0]}, nil
}

func (s *appService) FinishRepair(ctx context.Context, req CondemnRequest) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.FinishRepair(s.state, req.ProductID, req.Amount, req.Note, req.Shift)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &TransferResult{Entry: next.Ledger[0]}, nil
}

// ── Product registry ──────────────────────────────────────────────────────────

func (s *appService) RegisterProduct(ctx context.Context, in core.ProductInput) (*ProductResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, product, err := s.engine.RegisterProduct(s.state, in)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &ProductResult{Product: product}, nil
}

func (s *appService) UpdateProduct(ctx context.Context, productID string, in core.ProductInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.UpdateProduct(s.state, productID, in)
	if err != nil {
		return err
	}
	return s.commit(ctx, next)
}

func (s *appService) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.DeleteProduct(s.state, productID)
	if err != nil {
		return err
	}
	return s.commit(ctx, next)
}

func (s *appService) SetQuantity(ctx context.Context, productID string, location core.Location, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.SetQuantity(s.state, productID, location, quantity)
	if err != nil {
		return err
	}
	return s.commit(ctx, next)
}

func (s *appService) SetUsageRate(ctx context.Context, productID string, usagePerShift float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.engine.SetUsageRate(s.state, productID, usagePerShift)
	if err != nil {
		return err
	}
	return s.commit(ctx, next)
}

func (s *appService) ImportRows(ctx context.Context, rows []core.ImportRow, target core.Location) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Rows the workbook carried without a SKU get one assigned here.
	for i := range rows {
		if rows[i].ProductID == "" {
			rows[i].ProductID = core.ProductSKU(uuid.NewString())
		}
	}

	next, err := s.engine.ApplyImport(s.state, rows, target)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &ImportResult{Imported: len(rows), Target: target}, nil
}

// ── Sync and AI ───────────────────────────────────────────────────────────────

func (s *appService) SyncPush(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.state
	s.mu.Unlock()

	return s.sync.Push(ctx, snapshot)
}

func (s *appService) SyncPull(ctx context.Context) (*SyncResult, error) {
	pulled, err := s.sync.Pull(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(ctx, pulled); err != nil {
		return nil, err
	}
	return &SyncResult{StockRecords: len(pulled.Stock), LedgerSize: len(pulled.Ledger)}, nil
}

func (s *appService) GetInsight(ctx context.Context, horizon core.Horizon) (*ai.Insight, error) {
	if s.agent == nil {
		return nil, fmt.Errorf("AI agent is not configured, set OPENAI_API_KEY")
	}

	forecast, err := s.GetForecast(ctx, core.ScopeCombined, horizon)
	if err != nil {
		return nil, err
	}
	return s.agent.StockInsight(ctx, forecast.Rows, forecast.HorizonDays)
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func (s *appService) AuthenticatePIN(ctx context.Context, pin string) error {
	if s.pin == "" {
		return fmt.Errorf("access PIN is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.pin)) != 1 {
		return fmt.Errorf("invalid PIN")
	}
	return nil
}
